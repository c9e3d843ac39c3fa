package xipv4

import (
	"errors"
	"fmt"
)

// 预定义错误变量，支持 errors.Is 判断。
var (
	// ErrUnsupportedType 表示输入类型无法转换为 IPv4 地址。
	ErrUnsupportedType = errors.New("xipv4: unsupported input type")

	// ErrInvalidFormat 表示可打印字符串既不是点分十进制也不是纯十进制数字，
	// 或浮点数不是整数。
	ErrInvalidFormat = errors.New("xipv4: invalid format")

	// ErrInvalidBinaryLength 表示二进制输入长度不是 4 字节。
	ErrInvalidBinaryLength = errors.New("xipv4: binary input must be exactly 4 bytes")

	// ErrOutOfRange 表示数值超出 [0, 0xFFFFFFFF]。
	ErrOutOfRange = errors.New("xipv4: value out of range")

	// ErrInvalidBase 表示 Numeric 的进制不在 [2, 36] 内。
	ErrInvalidBase = errors.New("xipv4: base must be in [2, 36]")

	// ErrOutOfBounds 表示算术运算结果越界，[ErrOverflow] 和 [ErrUnderflow] 都包装了它。
	ErrOutOfBounds = errors.New("xipv4: arithmetic out of bounds")

	// ErrOverflow 表示运算结果超过 255.255.255.255。
	ErrOverflow = fmt.Errorf("%w: overflow", ErrOutOfBounds)

	// ErrUnderflow 表示运算结果低于 0.0.0.0。
	ErrUnderflow = fmt.Errorf("%w: underflow", ErrOutOfBounds)

	// ErrNilReceiver 表示在 nil 指针上调用了反序列化方法。
	ErrNilReceiver = errors.New("xipv4: nil receiver")
)
