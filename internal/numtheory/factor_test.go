package numtheory

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/mega/internal/numerr"
)

func TestFactorize(t *testing.T) {
	tests := []struct {
		n    int64
		want []PrimePower
	}{
		{1, nil},
		{2, []PrimePower{{2, 1}}},
		{12, []PrimePower{{2, 2}, {3, 1}}},
		{97, []PrimePower{{97, 1}}},
		{100, []PrimePower{{2, 2}, {5, 2}}},
		{1_000_000, []PrimePower{{2, 6}, {5, 6}}},
		{2 * 999_983, []PrimePower{{2, 1}, {999_983, 1}}},
		{1 << 40, []PrimePower{{2, 40}}},
	}

	for _, tt := range tests {
		got, err := Factorize(tt.n)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "Factorize(%d)", tt.n)
	}
}

func TestFactorizeRebuildsN(t *testing.T) {
	for n := int64(1); n <= 2000; n++ {
		factors, err := Factorize(n)
		require.NoError(t, err)
		prod := int64(1)
		for _, f := range factors {
			pe, ok := IPow(f.Prime, int64(f.Exponent))
			require.True(t, ok)
			prod *= pe
		}
		assert.Equal(t, n, prod, "product of factors of %d", n)
	}
}

func TestFactorizeInvalid(t *testing.T) {
	for _, n := range []int64{0, -1, math.MinInt64} {
		_, err := Factorize(n)
		assert.ErrorIs(t, err, numerr.ErrInvalidArgument, "Factorize(%d)", n)
	}
}

func TestDistinctPrimes(t *testing.T) {
	primes, err := DistinctPrimes(360)
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 3, 5}, primes)
}

func TestDivisors(t *testing.T) {
	tests := []struct {
		n    int64
		want []int64
	}{
		{1, []int64{1}},
		{4, []int64{1, 2, 4}},
		{28, []int64{1, 2, 4, 7, 14, 28}},
		{36, []int64{1, 2, 3, 4, 6, 9, 12, 18, 36}},
		{13, []int64{1, 13}},
	}

	for _, tt := range tests {
		got, err := Divisors(tt.n)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "Divisors(%d)", tt.n)
	}

	_, err := Divisors(0)
	assert.ErrorIs(t, err, numerr.ErrInvalidArgument)
}

func TestIPow(t *testing.T) {
	tests := []struct {
		base, exp int64
		want      int64
		ok        bool
	}{
		{2, 0, 1, true},
		{0, 0, 1, true},
		{2, 10, 1024, true},
		{-3, 3, -27, true},
		{2, 62, 1 << 62, true},
		{2, 63, 0, false},
		{-2, 63, math.MinInt64, true},
		{10, 18, 1_000_000_000_000_000_000, true},
		{10, 19, 0, false},
		{1, 1 << 40, 1, true},
		{5, -1, 0, false},
	}

	for _, tt := range tests {
		got, ok := IPow(tt.base, tt.exp)
		assert.Equal(t, tt.ok, ok, "IPow(%d, %d) ok", tt.base, tt.exp)
		if tt.ok {
			assert.Equal(t, tt.want, got, "IPow(%d, %d)", tt.base, tt.exp)
		}
	}
}

func TestSieve(t *testing.T) {
	for _, tt := range []struct {
		limit int
		count int
	}{
		{1, 0},
		{2, 1},
		{10, 4},
		{1000, 168},
		{100_000, 9592},
	} {
		primes, err := Sieve(tt.limit)
		require.NoError(t, err)
		assert.Len(t, primes, tt.count, "limit = %d", tt.limit)
	}

	primes, err := Sieve(10)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 5, 7}, primes)
}

func TestSieveLimit(t *testing.T) {
	for _, limit := range []int{MaxSieveLimit + 1, math.MaxInt} {
		primes, err := Sieve(limit)
		assert.ErrorIs(t, err, numerr.ErrInvalidArgument, "limit = %d", limit)
		assert.Nil(t, primes)
	}
}
