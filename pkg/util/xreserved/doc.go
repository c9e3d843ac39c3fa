// Package xreserved 提供 IPv4 保留地址块注册表。
//
// 默认注册表 [Default] 由 IANA 特殊用途地址表的 14 个块组成，
// xipv4.Addr.IsPrivate 基于它分类。也可以从 YAML/JSON 文件加载自定义注册表，
// 并在文件变更时热更新。
//
// # 核心功能
//
//   - registry.go: [Registry] 按顺序首个命中匹配，合并覆盖范围（基于 go4.org/netipx）
//   - load.go: [Load]/[LoadBytes] 通过 koanf 解析配置
//   - watch.go: [Watcher] 基于 fsnotify 的防抖热更新
//
// # 配置格式
//
//	reserved:
//	  include_defaults: true   # 缺省为 true，默认块优先匹配
//	  blocks:
//	    - cidr: 100.64.0.0/10
//	      name: shared-address
//	      rfc: RFC 6598
//
// # 设计决策
//
//   - 匹配通过 [SubnetMatcher] 完成，默认使用 xsubnet.Default()，已解析 CIDR 走 LRU 缓存
//   - [Registry] 构建后不可变，热更新通过原子替换整个注册表实现
//   - 重载失败保留旧注册表，错误通过回调和日志上报
package xreserved
