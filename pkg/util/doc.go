// Package util 提供 IPv4 地址相关的子包。
//
// 子包列表：
//   - xipv4: IPv4 地址值类型，多格式解析、进制输出、按位与有界加减运算、保留地址分类、序列化
//   - xreserved: 保留地址块注册表，IANA 默认表、YAML/JSON 加载与文件热更新
//   - xsubnet: IPv4 子网判断与范围解析，基于 net/netip + go4.org/netipx，前缀 LRU 缓存
//
// 依赖方向：xipv4 → xreserved → xsubnet。
//
// 设计原则：
//   - 值类型不可变，可直接比较和用作 map key
//   - 所有错误为包级哨兵错误，支持 errors.Is 判断
package util
