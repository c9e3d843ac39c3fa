package xsubnet

import (
	"fmt"
	"net/netip"

	"go4.org/netipx"
)

// RangeContains 使用 uint32 比较判断 addr 是否在 IPv4 范围 r 内。
// 非 IPv4 范围或地址返回 false。
func RangeContains(r netipx.IPRange, addr netip.Addr) bool {
	fromU, ok1 := AddrToUint32(r.From())
	toU, ok2 := AddrToUint32(r.To())
	addrU, ok3 := AddrToUint32(addr)
	if !ok1 || !ok2 || !ok3 {
		return false
	}
	return addrU >= fromU && addrU <= toU
}

// RangeSize 计算 IPv4 范围包含的地址数量（To - From + 1）。
// 整个地址空间为 1<<32，因此结果用 uint64 表示。
// 非 IPv4 范围或无效范围返回 (0, false)。
func RangeSize(r netipx.IPRange) (uint64, bool) {
	if !r.IsValid() {
		return 0, false
	}
	fromU, ok1 := AddrToUint32(r.From())
	toU, ok2 := AddrToUint32(r.To())
	if !ok1 || !ok2 {
		return 0, false
	}
	return uint64(toU-fromU) + 1, true
}

// RangeToPrefixes 将 IP 范围分解为最少数量的 CIDR 前缀。
// 无效范围返回 nil。
//
//	r, _ := xsubnet.ParseRange("192.168.1.1-192.168.1.3")
//	xsubnet.RangeToPrefixes(r)  // [192.168.1.1/32 192.168.1.2/31]
func RangeToPrefixes(r netipx.IPRange) []netip.Prefix {
	if !r.IsValid() {
		return nil
	}
	return r.Prefixes()
}

// MergeRanges 合并重叠和相邻的 IP 范围，返回已排序且互不重叠的结果。
// 输入包含无效范围（From > To 或混合地址族）时返回 [ErrInvalidRange]。
// 空切片或 nil 返回 (nil, nil)。
func MergeRanges(ranges []netipx.IPRange) ([]netipx.IPRange, error) {
	if len(ranges) == 0 {
		return nil, nil
	}
	var b netipx.IPSetBuilder
	for i, r := range ranges {
		if !r.IsValid() {
			return nil, fmt.Errorf("%w: range [%d] %s-%s is invalid", ErrInvalidRange, i, r.From(), r.To())
		}
		b.AddRange(r)
	}
	set, err := b.IPSet()
	if err != nil {
		return nil, fmt.Errorf("merge ranges: %w", err)
	}
	return set.Ranges(), nil
}
