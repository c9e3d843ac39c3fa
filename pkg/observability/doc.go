// Package observability 提供可观测性相关的子包。
//
// 子包列表：
//   - xlog: 结构化日志，基于 log/slog 扩展，支持 lumberjack 文件轮转
//
// 设计原则：
//   - 强制 context 传递
//   - 支持动态级别控制
package observability
