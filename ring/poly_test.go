package ring_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/latticeforge/ringlwe/ring"
)

func TestPolyEqualIgnoresTrailingZeros(t *testing.T) {
	a := ring.NewPolyFromCoeffs([]int64{1, 2, 3})
	b := ring.NewPolyFromCoeffs([]int64{1, 2, 3, 0, 0})
	require.True(t, a.Equal(b))
}

func TestPolyResizeZeroExtends(t *testing.T) {
	a := ring.NewPolyFromCoeffs([]int64{1, 2, 3})
	r := a.Resize(5)
	require.Equal(t, []int64{1, 2, 3, 0, 0}, r.Coeffs)
}

func TestPolyResizeTruncates(t *testing.T) {
	a := ring.NewPolyFromCoeffs([]int64{1, 2, 3, 4})
	r := a.Resize(2)
	require.Equal(t, []int64{1, 2}, r.Coeffs)
}

func TestEmptyPolyIsZero(t *testing.T) {
	var empty ring.Poly
	zero := ring.NewPoly(4)
	require.True(t, empty.Equal(zero))
}
