package xsubnet

import "errors"

var (
	// ErrInvalidCIDR 表示无效的 CIDR 字符串。
	ErrInvalidCIDR = errors.New("xsubnet: invalid CIDR")

	// ErrInvalidMask 表示无效或非连续的点分掩码。
	ErrInvalidMask = errors.New("xsubnet: invalid mask")

	// ErrInvalidRange 表示无效的 IP 范围格式。
	ErrInvalidRange = errors.New("xsubnet: invalid IP range")

	// ErrNotIPv4 表示地址不是 IPv4（也不是 IPv4-mapped IPv6）。
	ErrNotIPv4 = errors.New("xsubnet: not an IPv4 address")

	// ErrInvalidCacheSize 表示前缀缓存大小配置无效。
	ErrInvalidCacheSize = errors.New("xsubnet: cache size must be greater than 0")
)
