package xipv4

import (
	"fmt"
	"strconv"
)

// Numeric 以 base 进制（2..36，小写字母）输出地址的无符号数值。
// base 越界返回 [ErrInvalidBase]。
//
//	MustParse("192.168.1.1").Numeric(10) // "3232235777"
//	MustParse("192.168.1.1").Numeric(16) // "c0a80101"
func (a Addr) Numeric(base int) (string, error) {
	if base < 2 || base > 36 {
		return "", fmt.Errorf("%w: got %d", ErrInvalidBase, base)
	}
	return strconv.FormatUint(uint64(a.v), base), nil
}

// HumanReadable 返回规范的点分十进制形式，每段无前导零。
func (a Addr) HumanReadable() string {
	return string(a.appendTo(make([]byte, 0, 15)))
}

// String 实现 [fmt.Stringer]，等同于 [Addr.HumanReadable]。
func (a Addr) String() string {
	return a.HumanReadable()
}

// appendTo 把点分十进制形式追加到 buf。
// 手写格式化避免 fmt.Sprintf 的反射开销。
func (a Addr) appendTo(buf []byte) []byte {
	b := a.As4()
	for i, octet := range b {
		if i > 0 {
			buf = append(buf, '.')
		}
		buf = strconv.AppendUint(buf, uint64(octet), 10)
	}
	return buf
}
