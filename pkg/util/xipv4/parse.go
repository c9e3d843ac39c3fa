package xipv4

import (
	"fmt"
	"math"
	"math/big"
	"net/netip"
	"strconv"
)

// Parse 解析字符串形式的 IPv4 地址，按以下顺序判断：
//
//  1. 含不可打印字节（0x20..0x7E 之外）：视为二进制，必须恰好 4 字节（网络字节序），
//     否则返回 [ErrInvalidBinaryLength]
//  2. 严格点分十进制："192.168.1.1"（拒绝前导零和越界字节）
//  3. 纯十进制数字："3232235777"，超过 0xFFFFFFFF 返回 [ErrOutOfRange]
//  4. 其他返回 [ErrInvalidFormat]，包括空字符串
func Parse(s string) (Addr, error) {
	if !isPrintable(s) {
		if len(s) != 4 {
			return Addr{}, fmt.Errorf("%w: got %d bytes", ErrInvalidBinaryLength, len(s))
		}
		return AddrFrom4([4]byte{s[0], s[1], s[2], s[3]}), nil
	}

	if ip, err := netip.ParseAddr(s); err == nil && ip.Is4() {
		return AddrFrom4(ip.As4()), nil
	}

	if isDigits(s) {
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil || v > MaxValue {
			return Addr{}, fmt.Errorf("%w: %q", ErrOutOfRange, s)
		}
		return newAddr(uint32(v)), nil
	}

	return Addr{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
}

// ParseBytes 从网络字节序的 4 字节切片创建地址。
// 与 [Parse] 不同，不做可打印判断，长度不是 4 返回 [ErrInvalidBinaryLength]。
func ParseBytes(b []byte) (Addr, error) {
	if len(b) != 4 {
		return Addr{}, fmt.Errorf("%w: got %d bytes", ErrInvalidBinaryLength, len(b))
	}
	return AddrFrom4([4]byte(b)), nil
}

// MustParse 与 [Parse] 相同，但失败时 panic。
// 用于测试和包级变量初始化。
func MustParse(s string) Addr {
	a, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return a
}

// From 把任意受支持的输入转换为地址：
//
//   - Addr、*Addr
//   - 有符号/无符号整数：必须在 [0, 0xFFFFFFFF] 内，否则 [ErrOutOfRange]
//   - float32/float64：必须是有限的整数值，否则 [ErrInvalidFormat]
//   - string、[]byte：规则同 [Parse]
//   - [4]byte：网络字节序
//   - [netip.Addr]：IPv4 或 IPv4-mapped IPv6
//   - *big.Int：必须在 [0, 0xFFFFFFFF] 内
//
// 其他类型返回 [ErrUnsupportedType]。
// 所有二元运算（And/Or/Plus/Minus）都通过 From 转换操作数。
func From(v any) (Addr, error) {
	switch x := v.(type) {
	case Addr:
		return x, nil
	case *Addr:
		if x == nil {
			return Addr{}, fmt.Errorf("%w: nil *Addr", ErrUnsupportedType)
		}
		return *x, nil
	case string:
		return Parse(x)
	case []byte:
		return Parse(string(x))
	case [4]byte:
		return AddrFrom4(x), nil
	case netip.Addr:
		return fromNetip(x)
	case *big.Int:
		return fromBig(x)
	case int:
		return fromInt64(int64(x))
	case int8:
		return fromInt64(int64(x))
	case int16:
		return fromInt64(int64(x))
	case int32:
		return fromInt64(int64(x))
	case int64:
		return fromInt64(x)
	case uint:
		return fromUint64(uint64(x))
	case uint8:
		return fromUint64(uint64(x))
	case uint16:
		return fromUint64(uint64(x))
	case uint32:
		return newAddr(x), nil
	case uint64:
		return fromUint64(x)
	case float32:
		return fromFloat64(float64(x))
	case float64:
		return fromFloat64(x)
	default:
		return Addr{}, fmt.Errorf("%w: %T", ErrUnsupportedType, v)
	}
}

// MustFrom 与 [From] 相同，但失败时 panic。
func MustFrom(v any) Addr {
	a, err := From(v)
	if err != nil {
		panic(err)
	}
	return a
}

func fromInt64(v int64) (Addr, error) {
	if v < 0 || v > MaxValue {
		return Addr{}, fmt.Errorf("%w: %d", ErrOutOfRange, v)
	}
	return newAddr(uint32(v)), nil
}

func fromUint64(v uint64) (Addr, error) {
	if v > MaxValue {
		return Addr{}, fmt.Errorf("%w: %d", ErrOutOfRange, v)
	}
	return newAddr(uint32(v)), nil
}

func fromFloat64(f float64) (Addr, error) {
	if !isWhole(f) {
		return Addr{}, fmt.Errorf("%w: non-integral number %v", ErrInvalidFormat, f)
	}
	if f < 0 || f > MaxValue {
		return Addr{}, fmt.Errorf("%w: %v", ErrOutOfRange, f)
	}
	return newAddr(uint32(f)), nil
}

func fromBig(x *big.Int) (Addr, error) {
	if x == nil {
		return Addr{}, fmt.Errorf("%w: nil *big.Int", ErrUnsupportedType)
	}
	if x.Sign() < 0 || x.BitLen() > 32 {
		return Addr{}, fmt.Errorf("%w: %s", ErrOutOfRange, x)
	}
	return newAddr(uint32(x.Uint64())), nil
}

func fromNetip(ip netip.Addr) (Addr, error) {
	ip = ip.Unmap()
	if !ip.Is4() {
		return Addr{}, fmt.Errorf("%w: non-IPv4 netip.Addr %s", ErrUnsupportedType, ip)
	}
	return AddrFrom4(ip.As4()), nil
}

// isWhole 报告 f 是否为有限整数。
func isWhole(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0) && f == math.Trunc(f)
}

// isPrintable 报告 s 的每个字节是否都在 0x20..0x7E 内。空字符串视为可打印。
func isPrintable(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7E {
			return false
		}
	}
	return true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
