package xsubnet

import (
	"encoding/binary"
	"net/netip"
)

// AddrFromUint32 从 IPv4 的 uint32 表示创建 [netip.Addr]。
// 使用网络字节序（大端）。
func AddrFromUint32(v uint32) netip.Addr {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	return netip.AddrFrom4(b)
}

// AddrToUint32 将 IPv4 地址转换为 uint32（网络字节序）。
// IPv4-mapped IPv6 地址按其内嵌的 IPv4 地址转换。
// 其他地址返回 (0, false)。
func AddrToUint32(addr netip.Addr) (uint32, bool) {
	if !addr.Is4() && !addr.Is4In6() {
		return 0, false
	}
	b := addr.Unmap().As4()
	return binary.BigEndian.Uint32(b[:]), true
}

// unmap4 将 IPv4-mapped IPv6 地址还原为纯 IPv4。
// 非 IPv4 地址返回 [ErrNotIPv4]。
func unmap4(addr netip.Addr) (netip.Addr, error) {
	if addr.Is4() {
		return addr, nil
	}
	if addr.Is4In6() {
		return addr.Unmap(), nil
	}
	return netip.Addr{}, ErrNotIPv4
}
