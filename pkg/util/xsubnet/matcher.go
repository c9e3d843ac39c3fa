package xsubnet

import (
	"fmt"
	"net/netip"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize 是 [Matcher] 前缀缓存的默认容量。
const DefaultCacheSize = 1024

// Option 定义 [Matcher] 的可选配置函数类型。
type Option func(*options)

type options struct {
	cacheSize int
}

// WithCacheSize 设置已解析前缀的缓存容量，默认 [DefaultCacheSize]。
// n <= 0 会使 [NewMatcher] 返回 [ErrInvalidCacheSize]。
func WithCacheSize(n int) Option {
	return func(o *options) {
		o.cacheSize = n
	}
}

// Matcher 判断 IPv4 地址是否属于某个 CIDR 子网。
//
// CIDR 字符串解析结果按原始字符串缓存在 LRU 中，
// 同一组 CIDR 被反复查询（如保留地址表）时不会重复解析。
// 所有方法都是并发安全的。
type Matcher struct {
	cache *lru.Cache[string, netip.Prefix]
}

// NewMatcher 创建新的 Matcher。
func NewMatcher(opts ...Option) (*Matcher, error) {
	o := &options{cacheSize: DefaultCacheSize}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	if o.cacheSize <= 0 {
		return nil, ErrInvalidCacheSize
	}
	cache, err := lru.New[string, netip.Prefix](o.cacheSize)
	if err != nil {
		return nil, fmt.Errorf("xsubnet: create prefix cache: %w", err)
	}
	return &Matcher{cache: cache}, nil
}

// Prefix 返回 cidr 解析后的前缀，命中缓存时不重新解析。
// 解析规则见 [ParsePrefix]，无效输入不会进入缓存。
func (m *Matcher) Prefix(cidr string) (netip.Prefix, error) {
	if p, ok := m.cache.Get(cidr); ok {
		return p, nil
	}
	p, err := ParsePrefix(cidr)
	if err != nil {
		return netip.Prefix{}, err
	}
	m.cache.Add(cidr, p)
	return p, nil
}

// IsIn 报告 addr 是否落在 cidr 表示的子网内。
//
// IPv4-mapped IPv6 地址按内嵌的 IPv4 地址判断；
// 其他非 IPv4 地址返回 [ErrNotIPv4]，无效 cidr 返回 [ErrInvalidCIDR]。
func (m *Matcher) IsIn(addr netip.Addr, cidr string) (bool, error) {
	a, err := unmap4(addr)
	if err != nil {
		return false, fmt.Errorf("%w: %s", err, addr)
	}
	p, err := m.Prefix(cidr)
	if err != nil {
		return false, err
	}
	return p.Contains(a), nil
}

// Len 返回当前缓存的前缀数量。
func (m *Matcher) Len() int {
	return m.cache.Len()
}

// Purge 清空前缀缓存。
func (m *Matcher) Purge() {
	m.cache.Purge()
}

var (
	defaultOnce    sync.Once
	defaultMatcher *Matcher
)

// Default 返回包级共享的 Matcher（缓存容量为 [DefaultCacheSize]）。
func Default() *Matcher {
	defaultOnce.Do(func() {
		m, err := NewMatcher()
		if err != nil {
			// 默认配置下 NewMatcher 不会失败
			panic(fmt.Sprintf("xsubnet: default matcher: %v", err))
		}
		defaultMatcher = m
	})
	return defaultMatcher
}

// IsIn 使用 [Default] Matcher 判断 addr 是否落在 cidr 内。
func IsIn(addr netip.Addr, cidr string) (bool, error) {
	return Default().IsIn(addr, cidr)
}
