package xreserved

import (
	"bytes"
	"context"
	"net/netip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omeyang/xip/pkg/observability/xlog"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

const sharedYAML = `reserved:
  include_defaults: true
  blocks:
    - cidr: 100.64.0.0/10
      name: shared-address
      rfc: RFC 6598
    - cidr: " 198.18.0.0/255.254.0.0 "
      name: duplicate-benchmarking
`

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "reserved.yaml", sharedYAML)

	r, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 16, r.Len())

	b, ok := r.Match(netip.MustParseAddr("100.64.1.1"))
	require.True(t, ok)
	assert.Equal(t, Block{CIDR: "100.64.0.0/10", Name: "shared-address", RFC: "RFC 6598"}, b)

	// 默认块优先
	b, ok = r.Match(netip.MustParseAddr("198.18.0.1"))
	require.True(t, ok)
	assert.Equal(t, "benchmarking", b.Name)

	assert.Equal(t, "198.18.0.0/255.254.0.0", r.Blocks()[15].CIDR)
}

func TestLoad_JSONWithoutDefaults(t *testing.T) {
	path := writeFile(t, "reserved.json", `{
  "reserved": {
    "include_defaults": false,
    "blocks": [{"cidr": "100.64.0.0/10", "name": "shared-address"}]
  }
}`)

	r, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1, r.Len())
	assert.False(t, r.Contains(netip.MustParseAddr("10.0.0.1")))
	assert.True(t, r.Contains(netip.MustParseAddr("100.127.255.255")))
}

func TestLoadBytes(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		format  Format
		wantLen int
		wantErr error
	}{
		{"empty data uses defaults", "", FormatYAML, 14, nil},
		{"include_defaults omitted", "reserved:\n  blocks:\n    - cidr: 100.64.0.0/10\n", FormatYAML, 15, nil},
		{"no reserved section", "other: 1\n", FormatYAML, 14, nil},
		{"defaults disabled and no blocks", "reserved:\n  include_defaults: false\n", FormatYAML, 0, ErrEmptyRegistry},
		{"invalid cidr", "reserved:\n  blocks:\n    - cidr: 300.0.0.0/8\n", FormatYAML, 0, ErrInvalidBlock},
		{"malformed yaml", "reserved: [\n", FormatYAML, 0, ErrParseFailed},
		{"malformed json", `{"reserved":`, FormatJSON, 0, ErrParseFailed},
		{"wrong shape", "reserved:\n  blocks: 42\n", FormatYAML, 0, ErrParseFailed},
		{"unknown format", "", Format("toml"), 0, ErrUnsupportedFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := LoadBytes([]byte(tt.data), tt.format)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, r)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLen, r.Len())
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load("")
	assert.ErrorIs(t, err, ErrEmptyPath)

	_, err = Load(filepath.Join(t.TempDir(), "reserved.toml"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yml"))
	assert.ErrorIs(t, err, ErrLoadFailed)
}

func TestLoad_Logging(t *testing.T) {
	var buf bytes.Buffer
	logger, cleanup, err := xlog.New().SetOutput(&buf).SetLevel(xlog.LevelDebug).Build()
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, cleanup()) })

	path := writeFile(t, "reserved.yml", sharedYAML)
	_, err = Load(path, WithLogger(logger))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "reserved registry loaded")
	assert.Contains(t, buf.String(), "count=16")

	buf.Reset()
	bad := writeFile(t, "bad.yml", "reserved:\n  include_defaults: false\n")
	_, err = Load(bad, WithLogger(logger), WithLogger(nil))
	require.Error(t, err)
	assert.Contains(t, buf.String(), "load reserved registry failed")
	assert.Contains(t, buf.String(), "operation=load")

	buf.Reset()
	rejected := writeFile(t, "rejected.yaml", "reserved:\n  blocks:\n    - cidr: 10.0.0.0/33\n      name: typo\n")
	_, err = Load(rejected, WithLogger(logger))
	assert.ErrorIs(t, err, ErrInvalidBlock)
	assert.Contains(t, err.Error(), "config block 0 (typo)")
	assert.Contains(t, buf.String(), "reject reserved block")
	assert.Contains(t, buf.String(), "cidr=10.0.0.0/33")
	assert.Contains(t, buf.String(), "block=typo")

	logger.Info(context.Background(), "done")
}
