package xreserved

import (
	"time"

	"github.com/omeyang/xip/pkg/observability/xlog"
)

// DefaultDebounce 是 [Watcher] 的默认防抖时间。
const DefaultDebounce = 100 * time.Millisecond

// Option 定义注册表构建、加载和监视的可选配置函数类型。
//
// 同一组 Option 可传给 [New]、[Load]、[LoadBytes] 和 [Watch]，
// 与当前调用无关的选项会被忽略。
type Option func(*options)

type options struct {
	matcher  SubnetMatcher
	logger   xlog.Logger
	debounce time.Duration
}

func defaultOptions() *options {
	return &options{
		logger:   xlog.Discard(),
		debounce: DefaultDebounce,
	}
}

func applyOptions(opts []Option) *options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return o
}

// WithMatcher 设置子网判断组件，默认使用 xsubnet.Default()。
// nil 被忽略。
func WithMatcher(m SubnetMatcher) Option {
	return func(o *options) {
		if m != nil {
			o.matcher = m
		}
	}
}

// WithLogger 设置加载与监视过程使用的 logger，默认丢弃日志。
// nil 被忽略。
func WithLogger(l xlog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithDebounce 设置 [Watcher] 的防抖时间。
// 在指定时间内的多次变更只触发一次重载，d <= 0 时使用 [DefaultDebounce]。
func WithDebounce(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.debounce = d
		}
	}
}
