package xsubnet

import (
	"encoding/binary"
	"fmt"
	"net/netip"
	"strings"

	"go4.org/netipx"
)

// ParsePrefix 解析 IPv4 CIDR 字符串。支持 2 种写法：
//   - 前缀长度: "192.168.0.0/16"
//   - 点分掩码: "192.168.0.0/255.255.0.0"（掩码必须连续）
//
// 输入会自动去除首尾空白，主机位会被清零（"10.1.2.3/8" → 10.0.0.0/8）。
// IPv4-mapped IPv6 前缀（"::ffff:10.0.0.0/104"）会被归一化为纯 IPv4。
func ParsePrefix(s string) (netip.Prefix, error) {
	s = strings.TrimSpace(s)
	idx := strings.IndexByte(s, '/')
	if idx < 0 {
		return netip.Prefix{}, fmt.Errorf("%w: missing '/': %q", ErrInvalidCIDR, s)
	}
	addrPart := strings.TrimSpace(s[:idx])
	bitsPart := strings.TrimSpace(s[idx+1:])

	if strings.Contains(bitsPart, ".") {
		return parsePrefixWithMask(addrPart, bitsPart)
	}

	prefix, err := netip.ParsePrefix(addrPart + "/" + bitsPart)
	if err != nil {
		return netip.Prefix{}, fmt.Errorf("%w: %w", ErrInvalidCIDR, err)
	}
	addr := prefix.Addr()
	bits := prefix.Bits()
	if addr.Is4In6() {
		// ::ffff:0:0/96 之后的位才落在 IPv4 部分
		if bits < 96 {
			return netip.Prefix{}, fmt.Errorf("%w: IPv4-mapped prefix shorter than /96: %q", ErrInvalidCIDR, s)
		}
		addr = addr.Unmap()
		bits -= 96
	}
	if !addr.Is4() {
		return netip.Prefix{}, fmt.Errorf("%w: %q: %w", ErrInvalidCIDR, s, ErrNotIPv4)
	}
	return netip.PrefixFrom(addr, bits).Masked(), nil
}

// parsePrefixWithMask 解析 "addr/mask" 形式，掩码必须为前缀全 1、后缀全 0。
func parsePrefixWithMask(addrStr, maskStr string) (netip.Prefix, error) {
	addr, err := netip.ParseAddr(addrStr)
	if err != nil {
		return netip.Prefix{}, fmt.Errorf("%w: invalid address: %w", ErrInvalidCIDR, err)
	}
	addr, err = unmap4(addr)
	if err != nil {
		return netip.Prefix{}, fmt.Errorf("%w: %q: %w", ErrInvalidCIDR, addrStr, err)
	}
	bits, err := maskBits(maskStr)
	if err != nil {
		return netip.Prefix{}, err
	}
	return netip.PrefixFrom(addr, bits).Masked(), nil
}

// maskBits 返回点分掩码对应的前缀长度。
func maskBits(maskStr string) (int, error) {
	mask, err := netip.ParseAddr(maskStr)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidMask, err)
	}
	mask, err = unmap4(mask)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %w", ErrInvalidMask, maskStr, err)
	}
	b := mask.As4()
	m := binary.BigEndian.Uint32(b[:])

	// 合法掩码取反后形如 0...01...1，加 1 后与自身无公共位。
	inverted := ^m
	if inverted&(inverted+1) != 0 {
		return 0, fmt.Errorf("%w: non-contiguous mask: %s", ErrInvalidMask, maskStr)
	}
	bits := 0
	for m != 0 {
		bits++
		m <<= 1
	}
	return bits, nil
}

// ParseRange 从字符串解析 IPv4 范围。支持 4 种格式：
//   - 单 IP: "192.168.1.1"
//   - CIDR: "192.168.1.0/24"
//   - 掩码: "192.168.1.0/255.255.255.0"
//   - 范围: "192.168.1.1-192.168.1.100"
//
// 输入会自动去除首尾空白。IPv6 地址返回 [ErrInvalidRange]。
func ParseRange(s string) (netipx.IPRange, error) {
	s = strings.TrimSpace(s)

	if idx := strings.IndexByte(s, '-'); idx >= 0 {
		return parseExplicitRange(s, idx)
	}

	if strings.Contains(s, "/") {
		prefix, err := ParsePrefix(s)
		if err != nil {
			return netipx.IPRange{}, fmt.Errorf("%w: %w", ErrInvalidRange, err)
		}
		return netipx.RangeOfPrefix(prefix), nil
	}

	addr, err := parseAddr4(s)
	if err != nil {
		return netipx.IPRange{}, fmt.Errorf("%w: %w", ErrInvalidRange, err)
	}
	return netipx.IPRangeFrom(addr, addr), nil
}

// parseExplicitRange 按 idx 处的 '-' 拆分为起止地址。
// IPv4 地址本身不含 '-'，因此不存在 IPv6 zone ID 的歧义。
func parseExplicitRange(s string, idx int) (netipx.IPRange, error) {
	startStr := strings.TrimSpace(s[:idx])
	endStr := strings.TrimSpace(s[idx+1:])
	start, err := parseAddr4(startStr)
	if err != nil {
		return netipx.IPRange{}, fmt.Errorf("%w: invalid range start %q: %w", ErrInvalidRange, startStr, err)
	}
	end, err := parseAddr4(endStr)
	if err != nil {
		return netipx.IPRange{}, fmt.Errorf("%w: invalid range end %q: %w", ErrInvalidRange, endStr, err)
	}
	r := netipx.IPRangeFrom(start, end)
	if !r.IsValid() {
		return netipx.IPRange{}, fmt.Errorf("%w: start %s > end %s", ErrInvalidRange, start, end)
	}
	return r, nil
}

// parseAddr4 解析单个 IPv4 地址，IPv4-mapped 形式归一化为纯 IPv4。
func parseAddr4(s string) (netip.Addr, error) {
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return netip.Addr{}, err
	}
	return unmap4(addr)
}

// ParseRanges 从字符串切片解析并合并为 [*netipx.IPSet]。
// 每个字符串使用 [ParseRange] 解析，重叠和相邻的范围会被合并。
// 空切片或 nil 返回空的 IPSet。
func ParseRanges(strs []string) (*netipx.IPSet, error) {
	var b netipx.IPSetBuilder
	for _, s := range strs {
		r, err := ParseRange(s)
		if err != nil {
			return nil, fmt.Errorf("parse range %q: %w", s, err)
		}
		b.AddRange(r)
	}
	set, err := b.IPSet()
	if err != nil {
		return nil, fmt.Errorf("build IPSet: %w", err)
	}
	return set, nil
}
