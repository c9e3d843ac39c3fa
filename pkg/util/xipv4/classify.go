package xipv4

import "github.com/omeyang/xip/pkg/util/xreserved"

// IsPrivate 报告地址是否属于 IANA 特殊用途（保留）地址块：
//
//	0.0.0.0/8, 10.0.0.0/8, 127.0.0.0/8, 169.254.0.0/16, 172.16.0.0/12,
//	192.0.0.0/29, 192.0.0.170/31, 192.0.2.0/24, 192.168.0.0/16,
//	198.18.0.0/15, 198.51.100.0/24, 203.0.113.0/24, 240.0.0.0/4,
//	255.255.255.255/32
//
// 结果在构造时计算，调用本身没有开销。
func (a Addr) IsPrivate() bool {
	return !a.public
}

// ReservedBlock 返回地址命中的第一个默认保留块。
func (a Addr) ReservedBlock() (xreserved.Block, bool) {
	return xreserved.Default().Match(a.Netip())
}

// IsPrivateIn 报告地址是否属于 r 中的任一保留块，结果不缓存。
// r 为 nil 时等同于 [Addr.IsPrivate]。
func (a Addr) IsPrivateIn(r *xreserved.Registry) bool {
	if r == nil {
		return a.IsPrivate()
	}
	return r.Contains(a.Netip())
}
