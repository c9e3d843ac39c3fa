// Package xsubnet 提供 IPv4 子网成员判断与范围解析工具。
//
// xsubnet 基于 Go 标准库 [net/netip] 和社区库 [go4.org/netipx] 构建，
// 是 xipv4 保留地址分类依赖的子网判断组件。
//
// # 核心功能
//
//   - matcher.go: [Matcher] 判断地址是否属于 CIDR，已解析前缀缓存在 LRU 中
//   - parse.go: [ParsePrefix] 解析 "a.b.c.d/n" 与 "a.b.c.d/m.m.m.m"，[ParseRange] 解析 4 种范围格式
//   - contains.go: 范围包含、大小计算、CIDR 分解与合并
//   - convert.go: uint32 与 [netip.Addr] 互转
//
// # 快速示例
//
//	addr := netip.MustParseAddr("10.1.2.3")
//	ok, _ := xsubnet.IsIn(addr, "10.0.0.0/8")  // true
//
//	m, _ := xsubnet.NewMatcher(xsubnet.WithCacheSize(64))
//	ok, _ = m.IsIn(addr, "10.0.0.0/255.0.0.0")  // true，点分掩码
//
// # 设计决策
//
//   - 仅支持 IPv4：IPv4-mapped IPv6 地址/前缀归一化为纯 IPv4，其余 IPv6 输入返回错误
//   - 缓存以原始 CIDR 字符串为 key，"10.0.0.0/8" 与 "10.0.0.0/255.0.0.0" 分别缓存
//   - 点分掩码必须连续，拒绝 "255.0.255.0" 这类非法掩码
//   - 主机位被清零："10.1.2.3/8" 解析为 10.0.0.0/8
//
// # 错误处理
//
// 预定义错误变量支持 errors.Is 判断：
//
//	_, err := xsubnet.ParsePrefix("10.0.0.0/33")
//	if errors.Is(err, xsubnet.ErrInvalidCIDR) {
//	    // 处理无效 CIDR
//	}
package xsubnet
