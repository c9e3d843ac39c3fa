// Package xlog 基于 log/slog 的结构化日志库。
//
// # 核心功能
//
//   - Builder 模式配置（输出目标、级别、格式、按大小轮转）
//   - 动态级别调整（运行时热更新）
//   - 所有日志方法强制传递 context，只接受 slog.Attr
//   - [Discard] 作为可选 logger 参数的默认值
//
// # 创建 Logger
//
//	logger, cleanup, err := xlog.New().
//	    SetLevelString("debug").
//	    SetFormat("json").
//	    SetRotation("/var/log/xip/reserved.log", xlog.WithMaxBackups(3)).
//	    Build()
//	if err != nil {
//	    return err
//	}
//	defer cleanup()
//
// Builder 为 first-error-wins：遇到第一个配置错误后，[Builder.Build] 返回该错误。
//
// # 日志级别
//
// LevelDebug(-4)、LevelInfo(0)、LevelWarn(4)、LevelError(8)。
// 可通过 [ParseLevel] 从字符串解析。Level 实现 encoding.TextMarshaler/TextUnmarshaler，
// 支持配置文件直接反序列化。
//
// # 便捷属性
//
// [Err]、[Duration]、[Count]、[Path]、[Component]、[Operation]、[CIDR]、[Block]。
package xlog
