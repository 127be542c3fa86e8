package numtheory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/mega/internal/numerr"
)

func TestJordanTotientKnownValues(t *testing.T) {
	tests := []struct {
		n, k, want int64
	}{
		{6, 0, 0},
		{12, 0, 0},
		{1, 1, 1},
		{2, 1, 1},
		{3, 1, 2},
		{5, 1, 4},
		{6, 1, 2},
		{7, 1, 6},
		{10, 1, 4},
		{1, 2, 1},
		{2, 2, 3},
		{3, 2, 8},
		{5, 2, 24},
		{6, 2, 24},
		{1, 3, 1},
		{2, 3, 7},
		{3, 3, 26},
		{5, 3, 124},
		{6, 3, 182},
		{100, 2, 5184},
		{12, 2, 72},
	}

	for _, tt := range tests {
		j, err := NewJordanTotient(tt.n, tt.k)
		require.NoError(t, err)
		got, err := j.Compute()
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "J_%d(%d)", tt.k, tt.n)
	}
}

func TestJordanTotientZeroOrder(t *testing.T) {
	for n := int64(1); n <= 20; n++ {
		j, err := NewJordanTotient(n, 0)
		require.NoError(t, err)
		got, err := j.Compute()
		require.NoError(t, err)
		assert.Zero(t, got, "J_0(%d)", n)
	}
}

func TestJordanTotientSquareFreeMatchesPhi(t *testing.T) {
	for _, n := range []int64{2, 3, 6, 10, 15, 30, 105, 2310} {
		j, _ := NewJordanTotient(n, 1)
		phi, _ := NewEulerPhi(n)
		got, err := j.Compute()
		require.NoError(t, err)
		assert.Equal(t, phi.Compute(), got, "J_1(%d)", n)
	}
}

func TestJordanTotientOverflow(t *testing.T) {
	for _, tc := range []struct{ n, k int64 }{{97, 40}, {2, 63}, {6, 1 << 40}} {
		j, err := NewJordanTotient(tc.n, tc.k)
		require.NoError(t, err)
		_, err = j.Compute()
		assert.ErrorIs(t, err, numerr.ErrOverflow, "J_%d(%d)", tc.k, tc.n)
	}

	// n = 1 never overflows: the product is empty.
	j, _ := NewJordanTotient(1, 1<<40)
	got, err := j.Compute()
	require.NoError(t, err)
	assert.Equal(t, int64(1), got)
}

func TestJordanTotientInvalid(t *testing.T) {
	for _, tc := range []struct{ n, k int64 }{{0, 1}, {-3, 2}, {5, -1}} {
		j, err := NewJordanTotient(tc.n, tc.k)
		assert.ErrorIs(t, err, numerr.ErrInvalidArgument, "J_%d(%d)", tc.k, tc.n)
		assert.Nil(t, j)
	}
}
