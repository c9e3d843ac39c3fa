package xsubnet

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePrefix(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{"prefix length", "192.168.0.0/16", "192.168.0.0/16", nil},
		{"host bits masked", "10.1.2.3/8", "10.0.0.0/8", nil},
		{"whitespace", "  172.16.0.0 / 12 ", "172.16.0.0/12", nil},
		{"single host", "255.255.255.255/32", "255.255.255.255/32", nil},
		{"whole space", "0.0.0.0/0", "0.0.0.0/0", nil},
		{"dotted mask", "192.168.1.7/255.255.255.0", "192.168.1.0/24", nil},
		{"dotted mask zero", "1.2.3.4/0.0.0.0", "0.0.0.0/0", nil},
		{"dotted mask full", "1.2.3.4/255.255.255.255", "1.2.3.4/32", nil},
		{"mapped prefix", "::ffff:10.0.0.0/104", "10.0.0.0/8", nil},
		{"missing slash", "10.0.0.0", "", ErrInvalidCIDR},
		{"bits too large", "10.0.0.0/33", "", ErrInvalidCIDR},
		{"negative bits", "10.0.0.0/-1", "", ErrInvalidCIDR},
		{"garbage", "not-a-cidr/8", "", ErrInvalidCIDR},
		{"ipv6", "2001:db8::/32", "", ErrNotIPv4},
		{"mapped too short", "::ffff:0:0/80", "", ErrInvalidCIDR},
		{"non-contiguous mask", "10.0.0.0/255.0.255.0", "", ErrInvalidMask},
		{"bad mask", "10.0.0.0/255.0.0", "", ErrInvalidMask},
		{"ipv6 mask", "10.0.0.0/ffff::", "", ErrInvalidCIDR},
		{"mapped mask", "10.0.0.0/::ffff:255.0.0.0", "10.0.0.0/8", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePrefix(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
			assert.True(t, got.Addr().Is4())
		})
	}
}

func TestMaskBits(t *testing.T) {
	tests := []struct {
		mask string
		want int
	}{
		{"0.0.0.0", 0},
		{"128.0.0.0", 1},
		{"255.0.0.0", 8},
		{"255.240.0.0", 12},
		{"255.255.255.248", 29},
		{"255.255.255.254", 31},
		{"255.255.255.255", 32},
	}
	for _, tt := range tests {
		t.Run(tt.mask, func(t *testing.T) {
			got, err := maskBits(tt.mask)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRange(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantStart string
		wantEnd   string
		wantErr   bool
	}{
		{name: "single IP", input: "192.168.1.1", wantStart: "192.168.1.1", wantEnd: "192.168.1.1"},
		{name: "CIDR /24", input: "192.168.1.0/24", wantStart: "192.168.1.0", wantEnd: "192.168.1.255"},
		{name: "CIDR /32", input: "10.0.0.1/32", wantStart: "10.0.0.1", wantEnd: "10.0.0.1"},
		{name: "mask notation", input: "192.168.1.0/255.255.255.0", wantStart: "192.168.1.0", wantEnd: "192.168.1.255"},
		{name: "explicit range", input: "10.0.0.1-10.0.0.100", wantStart: "10.0.0.1", wantEnd: "10.0.0.100"},
		{name: "explicit range with spaces", input: " 10.0.0.1 - 10.0.0.2 ", wantStart: "10.0.0.1", wantEnd: "10.0.0.2"},
		{name: "mapped single", input: "::ffff:192.168.1.1", wantStart: "192.168.1.1", wantEnd: "192.168.1.1"},
		{name: "invalid", input: "invalid", wantErr: true},
		{name: "ipv6 single", input: "2001:db8::1", wantErr: true},
		{name: "ipv6 CIDR", input: "2001:db8::/32", wantErr: true},
		{name: "invalid range start", input: "invalid-10.0.0.1", wantErr: true},
		{name: "invalid range end", input: "10.0.0.1-invalid", wantErr: true},
		{name: "reversed range", input: "10.0.0.9-10.0.0.1", wantErr: true},
		{name: "invalid CIDR", input: "192.168.1.0/99", wantErr: true},
		{name: "non-contiguous mask", input: "192.168.1.0/255.0.255.0", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := ParseRange(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidRange)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStart, r.From().String())
			assert.Equal(t, tt.wantEnd, r.To().String())
		})
	}
}

func TestParseRanges(t *testing.T) {
	set, err := ParseRanges([]string{
		"10.0.0.50-10.0.0.150",
		"10.0.0.1-10.0.0.100",
		"192.168.1.0/24",
	})
	require.NoError(t, err)
	assert.Len(t, set.Ranges(), 2)
	assert.True(t, set.Contains(netip.MustParseAddr("10.0.0.120")))
	assert.False(t, set.Contains(netip.MustParseAddr("10.0.0.151")))

	empty, err := ParseRanges(nil)
	require.NoError(t, err)
	assert.Empty(t, empty.Ranges())

	_, err = ParseRanges([]string{"10.0.0.0/8", "bogus"})
	assert.ErrorIs(t, err, ErrInvalidRange)
	assert.Contains(t, err.Error(), `"bogus"`)
}
