package xipv4

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// 设计决策: 零值 Addr{} 是有效地址 0.0.0.0，因此空文本、空字符串不会被静默
// 解码为零值，而是返回 [ErrInvalidFormat]；JSON null 与标准库一致，保持接收者不变。

// MarshalText 实现 [encoding.TextMarshaler]，输出点分十进制。
// YAML 编解码也经由此方法。
func (a Addr) MarshalText() ([]byte, error) {
	return a.appendTo(make([]byte, 0, 15)), nil
}

// UnmarshalText 实现 [encoding.TextUnmarshaler]，支持所有 [Parse] 支持的格式。
// 对 nil 接收者返回 [ErrNilReceiver]。
func (a *Addr) UnmarshalText(text []byte) error {
	if a == nil {
		return ErrNilReceiver
	}
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// MarshalJSON 实现 [json.Marshaler]，输出带引号的点分十进制（"192.168.1.1"）。
//
// 点分十进制只包含 [0-9.]，无需 JSON 转义，直接构造字节切片。
func (a Addr) MarshalJSON() ([]byte, error) {
	buf := make([]byte, 0, 17)
	buf = append(buf, '"')
	buf = a.appendTo(buf)
	buf = append(buf, '"')
	return buf, nil
}

// UnmarshalJSON 实现 [json.Unmarshaler]。
// 接受字符串（规则同 [Parse]）和 JSON 数字（规则同 [From]），null 不修改接收者。
// 对 nil 接收者返回 [ErrNilReceiver]。
func (a *Addr) UnmarshalJSON(data []byte) error {
	if a == nil {
		return ErrNilReceiver
	}
	data = bytes.TrimSpace(data)
	if string(data) == "null" {
		return nil
	}

	var parsed Addr
	var err error
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidFormat, err)
		}
		parsed, err = Parse(s)
	} else {
		parsed, err = fromJSONNumber(data)
	}
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

func fromJSONNumber(data []byte) (Addr, error) {
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return Addr{}, fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}
	if i, err := n.Int64(); err == nil {
		return From(i)
	}
	f, err := n.Float64()
	if err != nil {
		return Addr{}, fmt.Errorf("%w: %w", ErrOutOfRange, err)
	}
	return From(f)
}

// MarshalBinary 实现 [encoding.BinaryMarshaler]，输出网络字节序的 4 字节。
func (a Addr) MarshalBinary() ([]byte, error) {
	b := a.As4()
	return b[:], nil
}

// UnmarshalBinary 实现 [encoding.BinaryUnmarshaler]。
// 长度不是 4 返回 [ErrInvalidBinaryLength]，对 nil 接收者返回 [ErrNilReceiver]。
func (a *Addr) UnmarshalBinary(data []byte) error {
	if a == nil {
		return ErrNilReceiver
	}
	parsed, err := ParseBytes(data)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Value 实现 [database/sql/driver.Valuer]，以点分十进制字符串写入。
func (a Addr) Value() (driver.Value, error) {
	return a.String(), nil
}

// Scan 实现 [database/sql.Scanner]。
//
// 支持的列值：
//   - string：规则同 [Parse]
//   - []byte：4 字节视为 BINARY(4) 原始字节，其他长度按字符串解析。
//     注意 4 字符的十进制文本（如 "1234"）也按原始字节处理，得到 49.50.51.52，
//     与 Parse("1234") 的 0.0.4.210 不同；以文本列保存整数形式时请扫描到 string
//   - int64：INT UNSIGNED 列中的数值
//
// NULL 返回 [ErrUnsupportedType]，可空列请使用 sql.Null[xipv4.Addr]。
// 对 nil 接收者返回 [ErrNilReceiver]。
func (a *Addr) Scan(src any) error {
	if a == nil {
		return ErrNilReceiver
	}
	var (
		parsed Addr
		err    error
	)
	switch v := src.(type) {
	case string:
		parsed, err = Parse(v)
	case []byte:
		// 点分十进制最短 7 字符，但 4 位数字串与 BINARY(4) 无法区分，按原始字节处理
		if len(v) == 4 {
			parsed, err = ParseBytes(v)
		} else {
			parsed, err = Parse(string(v))
		}
	case int64:
		parsed, err = From(v)
	default:
		return fmt.Errorf("%w: scan %T", ErrUnsupportedType, src)
	}
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// MarshalBSONValue 实现 bson.ValueMarshaler，以 BSON string 存储点分十进制。
func (a Addr) MarshalBSONValue() (byte, []byte, error) {
	t, data, err := bson.MarshalValue(a.String())
	return byte(t), data, err
}

// UnmarshalBSONValue 实现 bson.ValueUnmarshaler。
// 接受 BSON string（规则同 [Parse]）以及 int32/int64 数值。
// 对 nil 接收者返回 [ErrNilReceiver]。
func (a *Addr) UnmarshalBSONValue(typ byte, data []byte) error {
	if a == nil {
		return ErrNilReceiver
	}
	rv := bson.RawValue{Type: bson.Type(typ), Value: data}

	var (
		parsed Addr
		err    error
	)
	if s, ok := rv.StringValueOK(); ok {
		parsed, err = Parse(s)
	} else if i, ok := rv.Int32OK(); ok {
		parsed, err = From(i)
	} else if i, ok := rv.Int64OK(); ok {
		parsed, err = From(i)
	} else {
		return fmt.Errorf("%w: bson type %s", ErrUnsupportedType, bson.Type(typ))
	}
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
