package xipv4

import (
	"fmt"
	"math"
	"math/big"
)

// And 返回 a 与 other 的按位与。other 通过 [From] 转换，只有转换会失败。
func (a Addr) And(other any) (Addr, error) {
	b, err := From(other)
	if err != nil {
		return Addr{}, err
	}
	return newAddr(a.v & b.v), nil
}

// Or 返回 a 与 other 的按位或。other 通过 [From] 转换，只有转换会失败。
func (a Addr) Or(other any) (Addr, error) {
	b, err := From(other)
	if err != nil {
		return Addr{}, err
	}
	return newAddr(a.v | b.v), nil
}

// Plus 返回 a + delta。
//
// delta 可以是有符号整数、整数值浮点数、*big.Int，或任何 [From] 接受的值
// （此时取其无符号数值）。负的 delta 等价于 Minus(|delta|)。
// 地址空间是有界整数线而不是环：结果超过 255.255.255.255 返回 [ErrOverflow]，
// 低于 0.0.0.0 返回 [ErrUnderflow]，两者都满足 errors.Is(err, ErrOutOfBounds)。
func (a Addr) Plus(delta any) (Addr, error) {
	neg, mag, err := toDelta(delta)
	if err != nil {
		return Addr{}, err
	}
	if neg {
		return a.sub(mag)
	}
	return a.add(mag)
}

// Minus 返回 a - delta，是 [Addr.Plus] 的对偶运算。
func (a Addr) Minus(delta any) (Addr, error) {
	neg, mag, err := toDelta(delta)
	if err != nil {
		return Addr{}, err
	}
	if neg {
		return a.add(mag)
	}
	return a.sub(mag)
}

// maxMagnitude 是有意义的最大偏移量，更大的值对任何地址都必然越界。
const maxMagnitude = MaxValue + 1

func (a Addr) add(mag uint64) (Addr, error) {
	sum := uint64(a.v) + mag
	if sum > MaxValue {
		return Addr{}, fmt.Errorf("%w: %s + %d", ErrOverflow, a, mag)
	}
	return newAddr(uint32(sum)), nil
}

func (a Addr) sub(mag uint64) (Addr, error) {
	if mag > uint64(a.v) {
		return Addr{}, fmt.Errorf("%w: %s - %d", ErrUnderflow, a, mag)
	}
	return newAddr(a.v - uint32(mag)), nil
}

// toDelta 把偏移量拆成符号和绝对值，绝对值饱和到 maxMagnitude。
func toDelta(delta any) (neg bool, mag uint64, err error) {
	switch x := delta.(type) {
	case int:
		neg, mag = splitInt64(int64(x))
	case int8:
		neg, mag = splitInt64(int64(x))
	case int16:
		neg, mag = splitInt64(int64(x))
	case int32:
		neg, mag = splitInt64(int64(x))
	case int64:
		neg, mag = splitInt64(x)
	case uint:
		mag = uint64(x)
	case uint8:
		mag = uint64(x)
	case uint16:
		mag = uint64(x)
	case uint32:
		mag = uint64(x)
	case uint64:
		mag = x
	case float32:
		return splitFloat64(float64(x))
	case float64:
		return splitFloat64(x)
	case *big.Int:
		if x == nil {
			return false, 0, fmt.Errorf("%w: nil *big.Int", ErrUnsupportedType)
		}
		neg = x.Sign() < 0
		abs := new(big.Int).Abs(x)
		if abs.IsUint64() {
			mag = abs.Uint64()
		} else {
			mag = maxMagnitude
		}
	default:
		b, ferr := From(delta)
		if ferr != nil {
			return false, 0, ferr
		}
		mag = uint64(b.v)
	}
	return neg, min(mag, maxMagnitude), nil
}

func splitInt64(v int64) (bool, uint64) {
	if v < 0 {
		// 取补码得到绝对值，math.MinInt64 也能正确处理
		return true, uint64(^v) + 1
	}
	return false, uint64(v)
}

func splitFloat64(f float64) (bool, uint64, error) {
	if !isWhole(f) {
		return false, 0, fmt.Errorf("%w: non-integral delta %v", ErrInvalidFormat, f)
	}
	abs := math.Abs(f)
	if abs >= maxMagnitude {
		return f < 0, maxMagnitude, nil
	}
	return f < 0, uint64(abs), nil
}
