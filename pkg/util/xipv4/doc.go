// Package xipv4 提供 IPv4 地址值类型 [Addr]。
//
// [Addr] 是不可变的 32 位无符号值，支持从多种输入构造、多进制输出、
// 按位与/或、有界加减运算，以及基于 IANA 特殊用途地址表的保留地址分类。
//
// # 核心功能
//
//   - parse.go: [Parse] 解析二进制/点分十进制/十进制字符串，[From] 统一转换任意输入
//   - format.go: [Addr.Numeric] 输出 2..36 进制，[Addr.HumanReadable] 输出点分十进制
//   - ops.go: [Addr.And]、[Addr.Or]、[Addr.Plus]、[Addr.Minus]
//   - classify.go: [Addr.IsPrivate] 及自定义注册表分类（基于 xreserved）
//   - encoding.go: Text/JSON/Binary/SQL/BSON 编解码
//
// # 快速示例
//
//	a, _ := xipv4.Parse("192.168.1.1")
//	a.Numeric(10)            // "3232235777", nil
//	a.IsPrivate()            // true
//	next, _ := a.Plus(1)     // 192.168.1.2
//	_, err := xipv4.MustParse("255.255.255.255").Plus(1)
//	errors.Is(err, xipv4.ErrOverflow) // true
//
// # 设计决策
//
//   - 解析顺序固定：先按是否可打印区分二进制与文本，文本先按严格点分十进制，再按纯数字
//   - 加减运算在 64 位中间值上进行，越界返回错误，不回绕
//   - 保留地址分类在构造时计算，[Addr] 可在 goroutine 间自由共享
//   - 零值 Addr{} 即 0.0.0.0，是有效且已正确分类的地址
//
// # 错误处理
//
// 所有错误都是包级哨兵错误，支持 errors.Is 判断：
//
//	_, err := xipv4.Parse("999.1.1.1")
//	if errors.Is(err, xipv4.ErrInvalidFormat) {
//	    // 处理格式错误
//	}
package xipv4
