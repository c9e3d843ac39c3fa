package xlog

import (
	"log/slog"
	"time"
)

// 常用属性 Key 常量，保持各包日志字段一致。
const (
	// KeyError 错误字段的标准 key
	KeyError = "error"

	// KeyDuration 耗时字段的标准 key
	KeyDuration = "duration"

	// KeyCount 计数字段的标准 key
	KeyCount = "count"

	// KeyPath 文件路径字段的标准 key
	KeyPath = "path"

	// KeyComponent 组件名称字段的标准 key
	KeyComponent = "component"

	// KeyOperation 操作名称字段的标准 key
	KeyOperation = "operation"

	// KeyCIDR 子网字段的标准 key
	KeyCIDR = "cidr"

	// KeyBlock 保留地址块名称字段的标准 key
	KeyBlock = "block"
)

// Err 创建错误属性。
// 如果 err 为 nil，返回空属性（会被 slog 忽略）。
//
//	if err != nil {
//	    logger.Error(ctx, "reload failed", xlog.Err(err))
//	}
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String(KeyError, err.Error())
}

// Duration 创建耗时属性，输出人类可读格式（如 "1.5s"）。
func Duration(d time.Duration) slog.Attr {
	return slog.String(KeyDuration, d.String())
}

// Count 创建计数属性
func Count(n int64) slog.Attr {
	return slog.Int64(KeyCount, n)
}

// Path 创建文件路径属性
func Path(p string) slog.Attr {
	return slog.String(KeyPath, p)
}

// Component 创建组件名属性，用于标识日志来源组件。
func Component(name string) slog.Attr {
	return slog.String(KeyComponent, name)
}

// Operation 创建操作名属性
func Operation(name string) slog.Attr {
	return slog.String(KeyOperation, name)
}

// CIDR 创建子网属性
func CIDR(cidr string) slog.Attr {
	return slog.String(KeyCIDR, cidr)
}

// Block 创建保留地址块名称属性
func Block(name string) slog.Attr {
	return slog.String(KeyBlock, name)
}
