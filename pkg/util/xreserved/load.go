package xreserved

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/omeyang/xip/pkg/observability/xlog"
	"github.com/omeyang/xip/pkg/util/xsubnet"
)

// Format 配置文件格式。
type Format string

// 支持的配置格式。
const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// 配置文件中的 key。
const (
	keyRoot            = "reserved"
	keyIncludeDefaults = keyRoot + ".include_defaults"
)

// fileConfig 是配置文件中 reserved 节点的结构。
type fileConfig struct {
	IncludeDefaults bool    `koanf:"include_defaults"`
	Blocks          []Block `koanf:"blocks"`
}

// Load 从配置文件加载注册表，格式由扩展名决定（.yaml/.yml 或 .json）。
//
// 配置示例：
//
//	reserved:
//	  include_defaults: true
//	  blocks:
//	    - cidr: 100.64.0.0/10
//	      name: shared-address
//	      rfc: RFC 6598
//
// include_defaults 缺省为 true，此时默认块排在自定义块之前，优先匹配。
func Load(path string, opts ...Option) (*Registry, error) {
	r, err := loadFile(path, opts)
	logger := applyOptions(opts).logger
	if err != nil {
		logger.Warn(context.Background(), "load reserved registry failed",
			xlog.Operation("load"), xlog.Path(path), xlog.Err(err))
		return nil, err
	}
	logger.Info(context.Background(), "reserved registry loaded",
		xlog.Operation("load"), xlog.Path(path), xlog.Count(int64(r.Len())))
	return r, nil
}

// loadFile 读取并构建注册表，不记录日志。
func loadFile(path string, opts []Option) (*Registry, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	format, err := detectFormat(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}
	return build(data, format, opts)
}

// LoadBytes 从字节数据加载注册表，需要显式指定格式。
func LoadBytes(data []byte, format Format, opts ...Option) (*Registry, error) {
	if !isValidFormat(format) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	r, err := build(data, format, opts)
	if err != nil {
		return nil, err
	}
	applyOptions(opts).logger.Debug(context.Background(), "reserved registry loaded",
		xlog.Count(int64(r.Len())))
	return r, nil
}

func build(data []byte, format Format, opts []Option) (*Registry, error) {
	k := koanf.New(".")
	if len(data) > 0 {
		if err := loadData(k, data, format); err != nil {
			return nil, err
		}
	}

	var cfg fileConfig
	if err := k.UnmarshalWithConf(keyRoot, &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseFailed, err)
	}
	if !k.Exists(keyIncludeDefaults) {
		cfg.IncludeDefaults = true
	}

	var blocks []Block
	if cfg.IncludeDefaults {
		blocks = append(blocks, ianaBlocks...)
	}
	logger := applyOptions(opts).logger
	for i, b := range cfg.Blocks {
		b.CIDR = strings.TrimSpace(b.CIDR)
		if _, err := xsubnet.ParsePrefix(b.CIDR); err != nil {
			logger.Warn(context.Background(), "reject reserved block",
				xlog.CIDR(b.CIDR), xlog.Block(b.Name), xlog.Err(err))
			return nil, fmt.Errorf("%w: config block %d (%s): %w", ErrInvalidBlock, i, b.Name, err)
		}
		blocks = append(blocks, b)
	}
	return New(blocks, opts...)
}

// detectFormat 根据文件扩展名检测配置格式。
func detectFormat(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: unknown extension %s", ErrUnsupportedFormat, ext)
	}
}

func isValidFormat(format Format) bool {
	switch format {
	case FormatYAML, FormatJSON:
		return true
	default:
		return false
	}
}

// loadData 加载数据到 koanf 实例。
func loadData(k *koanf.Koanf, data []byte, format Format) error {
	var parser koanf.Parser
	switch format {
	case FormatYAML:
		parser = yaml.Parser()
	case FormatJSON:
		parser = json.Parser()
	default:
		return ErrUnsupportedFormat
	}
	if err := k.Load(rawbytes.Provider(data), parser); err != nil {
		return fmt.Errorf("%w: %w", ErrParseFailed, err)
	}
	return nil
}
