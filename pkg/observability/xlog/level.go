package xlog

import (
	"fmt"
	"log/slog"
	"strings"
)

// Level 日志级别，取值与 slog.Level 相同，可直接转换。
type Level slog.Level

const (
	LevelDebug = Level(slog.LevelDebug)
	LevelInfo  = Level(slog.LevelInfo)
	LevelWarn  = Level(slog.LevelWarn)
	LevelError = Level(slog.LevelError)
)

var _ slog.Leveler = LevelInfo

// levelAliases 配置中可接受的级别名称（小写）。
var levelAliases = map[string]Level{
	"debug":   LevelDebug,
	"info":    LevelInfo,
	"warn":    LevelWarn,
	"warning": LevelWarn,
	"error":   LevelError,
}

// Level 实现 slog.Leveler，可直接用作 HandlerOptions.Level。
func (l Level) Level() slog.Level { return slog.Level(l) }

// String 标准级别输出大写名称，其余沿用 slog 的偏移写法（如 "INFO+2"）。
func (l Level) String() string { return slog.Level(l).String() }

func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

func (l *Level) UnmarshalText(data []byte) error {
	v, err := ParseLevel(string(data))
	if err == nil {
		*l = v
	}
	return err
}

// ParseLevel 按名称解析级别，忽略大小写和首尾空白。
// 无法识别时返回 LevelInfo 和错误，调用方可忽略错误直接使用默认级别。
func ParseLevel(s string) (Level, error) {
	if l, ok := levelAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return l, nil
	}
	return LevelInfo, fmt.Errorf("xlog: unknown level name %q", s)
}
