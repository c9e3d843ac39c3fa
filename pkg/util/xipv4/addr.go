package xipv4

import (
	"cmp"
	"encoding/binary"
	"net/netip"

	"github.com/omeyang/xip/pkg/util/xreserved"
)

// MaxValue 是 IPv4 地址的最大数值（255.255.255.255）。
const MaxValue = 0xFFFFFFFF

// Addr 表示一个 IPv4 地址。
//
// Addr 是不可变值类型：
//   - 零值 Addr{} 就是 0.0.0.0，是有效地址
//   - 可直接比较（==）和用作 map key
//   - 并发安全，无需加锁
//
// 所有运算都返回新值，不修改接收者。
type Addr struct {
	v uint32

	// 设计决策: 保留地址分类在构造时计算并随值保存，避免惰性缓存的并发问题。
	// 取反存储使零值 Addr{}（0.0.0.0，属于 0.0.0.0/8）天然是正确分类的私有地址。
	public bool
}

// newAddr 是所有构造路径的汇合点。
func newAddr(v uint32) Addr {
	return Addr{v: v, public: !xreserved.Default().Contains(netip.AddrFrom4(be4(v)))}
}

func be4(v uint32) [4]byte {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	return b
}

// AddrFrom4 从网络字节序的 4 字节数组创建地址。
func AddrFrom4(b [4]byte) Addr {
	return newAddr(binary.BigEndian.Uint32(b[:]))
}

// AddrFromUint32 从 32 位数值创建地址。
func AddrFromUint32(v uint32) Addr {
	return newAddr(v)
}

// Uint32 返回地址的数值。
func (a Addr) Uint32() uint32 {
	return a.v
}

// As4 返回网络字节序的 4 字节表示。
func (a Addr) As4() [4]byte {
	return be4(a.v)
}

// Netip 返回等价的 [netip.Addr]（纯 IPv4）。
func (a Addr) Netip() netip.Addr {
	return netip.AddrFrom4(a.As4())
}

// Compare 按数值比较两个地址。
// 返回值：-1 (a < b), 0 (a == b), 1 (a > b)。
func (a Addr) Compare(b Addr) int {
	return cmp.Compare(a.v, b.v)
}

// Less 报告 a 是否小于 b。
func (a Addr) Less(b Addr) bool {
	return a.v < b.v
}
