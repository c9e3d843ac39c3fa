package xipv4

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddr_Bitwise(t *testing.T) {
	addrs := []Addr{{}, MustParse("10.1.2.3"), MustParse("192.168.1.1"), MustParse("255.255.255.255")}
	zero := AddrFromUint32(0)
	ones := AddrFromUint32(MaxValue)
	for _, a := range addrs {
		t.Run(a.String(), func(t *testing.T) {
			assert.Equal(t, a, must(a.And(a)))
			assert.Equal(t, a, must(a.Or(a)))
			assert.Equal(t, zero, must(a.And(zero)))
			assert.Equal(t, ones, must(a.Or(ones)))
		})
	}
}

func TestAddr_Bitwise_Coercion(t *testing.T) {
	a := MustParse("192.168.1.77")

	net, err := a.And("255.255.255.0")
	require.NoError(t, err)
	assert.Equal(t, "192.168.1.0", net.String())
	assert.True(t, net.IsPrivate())

	bcast, err := a.Or(uint32(0xFF))
	require.NoError(t, err)
	assert.Equal(t, "192.168.1.255", bcast.String())

	_, err = a.And("bogus")
	assert.ErrorIs(t, err, ErrInvalidFormat)
	_, err = a.Or(struct{}{})
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestAddr_PlusMinus(t *testing.T) {
	tests := []struct {
		name    string
		addr    string
		op      string
		delta   any
		want    string
		wantErr error
	}{
		{"plus one", "10.0.0.255", "plus", 1, "10.0.1.0", nil},
		{"plus zero", "10.0.0.1", "plus", 0, "10.0.0.1", nil},
		{"minus zero", "10.0.0.1", "minus", 0, "10.0.0.1", nil},
		{"plus negative", "10.0.1.0", "plus", -1, "10.0.0.255", nil},
		{"minus negative", "10.0.0.255", "minus", int64(-1), "10.0.1.0", nil},
		{"plus to max", "255.255.255.254", "plus", uint8(1), "255.255.255.255", nil},
		{"minus to zero", "0.0.0.1", "minus", 1, "0.0.0.0", nil},
		{"plus float", "1.0.0.0", "plus", 256.0, "1.0.1.0", nil},
		{"minus float negative", "1.0.0.0", "minus", float32(-1), "1.0.0.1", nil},
		{"plus big", "0.0.0.0", "plus", big.NewInt(MaxValue), "255.255.255.255", nil},
		{"minus big negative", "0.0.0.0", "minus", big.NewInt(-16), "0.0.0.16", nil},
		{"plus address", "0.0.0.1", "plus", MustParse("0.0.1.0"), "0.0.1.1", nil},
		{"plus dotted string", "10.0.0.0", "plus", "0.0.0.5", "10.0.0.5", nil},
		{"plus decimal string", "10.0.0.0", "plus", "256", "10.0.1.0", nil},
		{"minus whole space", "255.255.255.255", "minus", uint32(MaxValue), "0.0.0.0", nil},

		{"overflow", "255.255.255.255", "plus", 1, "", ErrOverflow},
		{"underflow", "0.0.0.0", "minus", 1, "", ErrUnderflow},
		{"plus negative underflow", "0.0.0.0", "plus", -1, "", ErrUnderflow},
		{"minus negative overflow", "255.255.255.255", "minus", -1, "", ErrOverflow},
		{"huge uint64", "0.0.0.0", "plus", uint64(math.MaxUint64), "", ErrOverflow},
		{"min int64", "255.255.255.255", "plus", int64(math.MinInt64), "", ErrUnderflow},
		{"huge float", "0.0.0.0", "plus", 1e30, "", ErrOverflow},
		{"huge negative float", "0.0.0.0", "minus", -1e30, "", ErrOverflow},
		{"huge big", "1.0.0.0", "minus", new(big.Int).Lsh(big.NewInt(1), 100), "", ErrUnderflow},
		{"fractional", "1.0.0.0", "plus", 0.5, "", ErrInvalidFormat},
		{"nil big", "1.0.0.0", "plus", (*big.Int)(nil), "", ErrUnsupportedType},
		{"bad string", "1.0.0.0", "minus", "-5", "", ErrInvalidFormat},
		{"unsupported", "1.0.0.0", "plus", []string{"1"}, "", ErrUnsupportedType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := MustParse(tt.addr)
			var got Addr
			var err error
			if tt.op == "plus" {
				got, err = a.Plus(tt.delta)
			} else {
				got, err = a.Minus(tt.delta)
			}
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, Addr{}, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
			assert.Equal(t, MustParse(tt.want), got)
		})
	}
}

func TestAddr_OutOfBounds(t *testing.T) {
	_, err := AddrFromUint32(MaxValue).Plus(1)
	assert.ErrorIs(t, err, ErrOutOfBounds)
	assert.ErrorIs(t, err, ErrOverflow)
	assert.NotErrorIs(t, err, ErrUnderflow)

	_, err = Addr{}.Minus(1)
	assert.ErrorIs(t, err, ErrOutOfBounds)
	assert.ErrorIs(t, err, ErrUnderflow)
	assert.NotErrorIs(t, err, ErrOverflow)
}

func TestAddr_PlusMinus_Inverse(t *testing.T) {
	addrs := []Addr{{}, MustParse("10.0.0.1"), MustParse("128.0.0.0"), AddrFromUint32(MaxValue)}
	deltas := []int64{0, 1, -1, 255, -65536, 1 << 31, -(1 << 31)}
	for _, a := range addrs {
		for _, d := range deltas {
			r, err := a.Plus(d)
			if err != nil {
				assert.ErrorIs(t, err, ErrOutOfBounds)
				continue
			}
			back, err := r.Minus(d)
			require.NoError(t, err)
			assert.Equal(t, a, back, "%s + %d - %d", a, d, d)

			dual, err := a.Minus(-d)
			require.NoError(t, err)
			assert.Equal(t, r, dual)
		}
	}
}

func TestAddr_Immutable(t *testing.T) {
	a := MustParse("10.0.0.1")
	_, _ = a.Plus(5)
	_, _ = a.And("0.0.0.0")
	assert.Equal(t, "10.0.0.1", a.String())
}

func must(a Addr, err error) Addr {
	if err != nil {
		panic(err)
	}
	return a
}
