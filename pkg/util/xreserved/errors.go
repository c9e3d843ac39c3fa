package xreserved

import "errors"

// 注册表构建与配置加载相关错误。
var (
	// ErrInvalidBlock 表示保留块的 CIDR 无效。
	ErrInvalidBlock = errors.New("xreserved: invalid block")

	// ErrEmptyRegistry 表示注册表不包含任何保留块。
	ErrEmptyRegistry = errors.New("xreserved: empty registry")

	// ErrEmptyPath 表示配置文件路径为空。
	ErrEmptyPath = errors.New("xreserved: empty config path")

	// ErrUnsupportedFormat 表示不支持的配置格式。
	ErrUnsupportedFormat = errors.New("xreserved: unsupported config format")

	// ErrLoadFailed 表示配置文件读取失败。
	ErrLoadFailed = errors.New("xreserved: failed to load config")

	// ErrParseFailed 表示配置内容解析失败。
	ErrParseFailed = errors.New("xreserved: failed to parse config")
)
