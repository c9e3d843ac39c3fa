package xreserved

import (
	"fmt"
	"net/netip"
	"sync"

	"go4.org/netipx"

	"github.com/omeyang/xip/pkg/util/xsubnet"
)

//go:generate mockgen -source=registry.go -destination=mock_matcher_test.go -package=xreserved

// SubnetMatcher 判断地址是否属于某个 CIDR。
// *xsubnet.Matcher 实现了此接口。
type SubnetMatcher interface {
	IsIn(addr netip.Addr, cidr string) (bool, error)
}

// PrefixResolver 是可选接口：实现了它的 [SubnetMatcher] 在 [New] 中一次性解析
// 所有块的 CIDR，之后的匹配只扫描只读前缀表，不再经过 matcher。
type PrefixResolver interface {
	Prefix(cidr string) (netip.Prefix, error)
}

var (
	_ SubnetMatcher  = (*xsubnet.Matcher)(nil)
	_ PrefixResolver = (*xsubnet.Matcher)(nil)
)

// Registry 是有序的保留地址块集合。
//
// 块的顺序即匹配优先级，[Registry.Match] 返回第一个命中的块。
// Registry 构建后不可变，可在多个 goroutine 间共享。
type Registry struct {
	blocks  []Block
	set     *netipx.IPSet
	matcher SubnetMatcher

	// prefixes 与 blocks 一一对应，仅当 matcher 实现 PrefixResolver 时非空
	prefixes []netip.Prefix
}

// New 由 blocks 构建注册表。
//
// 每个块的 CIDR 都会被校验，任一无效返回 [ErrInvalidBlock]；
// blocks 为空返回 [ErrEmptyRegistry]。
func New(blocks []Block, opts ...Option) (*Registry, error) {
	if len(blocks) == 0 {
		return nil, ErrEmptyRegistry
	}
	o := applyOptions(opts)
	matcher := o.matcher
	if matcher == nil {
		matcher = xsubnet.Default()
	}

	var b netipx.IPSetBuilder
	for i, blk := range blocks {
		p, err := xsubnet.ParsePrefix(blk.CIDR)
		if err != nil {
			return nil, fmt.Errorf("%w: block %d (%s): %w", ErrInvalidBlock, i, blk.Name, err)
		}
		b.AddPrefix(p)
	}
	set, err := b.IPSet()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBlock, err)
	}

	owned := make([]Block, len(blocks))
	copy(owned, blocks)
	r := &Registry{blocks: owned, set: set, matcher: matcher}

	if resolver, ok := matcher.(PrefixResolver); ok {
		r.prefixes = make([]netip.Prefix, len(owned))
		for i, blk := range owned {
			p, err := resolver.Prefix(blk.CIDR)
			if err != nil {
				return nil, fmt.Errorf("%w: block %d (%s): %w", ErrInvalidBlock, i, blk.Name, err)
			}
			r.prefixes[i] = p
		}
	}
	return r, nil
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default 返回 IANA 特殊用途 IPv4 地址表构成的注册表。
//
//	0.0.0.0/8, 10.0.0.0/8, 127.0.0.0/8, 169.254.0.0/16, 172.16.0.0/12,
//	192.0.0.0/29, 192.0.0.170/31, 192.0.2.0/24, 192.168.0.0/16,
//	198.18.0.0/15, 198.51.100.0/24, 203.0.113.0/24, 240.0.0.0/4,
//	255.255.255.255/32
func Default() *Registry {
	defaultOnce.Do(func() {
		r, err := New(ianaBlocks)
		if err != nil {
			// 内置表是静态的，失败只可能是代码错误
			panic(fmt.Sprintf("xreserved: default registry: %v", err))
		}
		defaultRegistry = r
	})
	return defaultRegistry
}

// Match 按顺序逐块判断 addr，返回第一个命中的块。
// 非 IPv4 地址（IPv4-mapped 除外）不属于任何块。
//
// 前缀已在 [New] 中解析时只做只读扫描，无锁、无缓存访问。
func (r *Registry) Match(addr netip.Addr) (Block, bool) {
	if r.prefixes != nil {
		return r.matchPrefixes(addr)
	}
	for _, blk := range r.blocks {
		ok, err := r.matcher.IsIn(addr, blk.CIDR)
		if err != nil {
			// 块在 New 中已校验，这里的错误只来自 addr 本身
			return Block{}, false
		}
		if ok {
			return blk, true
		}
	}
	return Block{}, false
}

func (r *Registry) matchPrefixes(addr netip.Addr) (Block, bool) {
	addr = addr.Unmap()
	if !addr.Is4() {
		return Block{}, false
	}
	for i, p := range r.prefixes {
		if p.Contains(addr) {
			return r.blocks[i], true
		}
	}
	return Block{}, false
}

// Contains 报告 addr 是否属于任一保留块。
func (r *Registry) Contains(addr netip.Addr) bool {
	_, ok := r.Match(addr)
	return ok
}

// Covers 报告 cidr 表示的整个子网是否都被保留块覆盖。
// 子网可以跨越多个相邻的块。
func (r *Registry) Covers(cidr string) (bool, error) {
	p, err := xsubnet.ParsePrefix(cidr)
	if err != nil {
		return false, err
	}
	return r.set.ContainsPrefix(p), nil
}

// Blocks 返回保留块列表的副本，顺序与匹配优先级一致。
func (r *Registry) Blocks() []Block {
	out := make([]Block, len(r.blocks))
	copy(out, r.blocks)
	return out
}

// Len 返回保留块数量。
func (r *Registry) Len() int {
	return len(r.blocks)
}

// Ranges 返回所有保留块合并后的最小有序范围列表。
func (r *Registry) Ranges() []netipx.IPRange {
	return r.set.Ranges()
}

// Prefixes 返回合并后覆盖范围的最小 CIDR 列表。
func (r *Registry) Prefixes() []netip.Prefix {
	return r.set.Prefixes()
}
