package bigint_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/packstream-go/bolt/packstream/bigint"
)

func TestArithmetic(t *testing.T) {
	a := bigint.FromInt64(17)
	b := bigint.FromInt64(5)

	assert.Equal(t, int64(22), a.Add(b).Int64())
	assert.Equal(t, int64(12), a.Sub(b).Int64())
	assert.Equal(t, int64(85), a.Mul(b).Int64())
	assert.Equal(t, int64(3), a.Div(b).Int64())
	assert.Equal(t, int64(2), a.Mod(b).Int64())
}

func TestFloorDivFloorMod(t *testing.T) {
	cases := []struct {
		a, b, div, mod int64
	}{
		{7, 3, 2, 1},
		{-7, 3, -3, 2},
		{7, -3, -3, -2},
		{-7, -3, 2, -1},
	}
	for _, c := range cases {
		a, b := bigint.FromInt64(c.a), bigint.FromInt64(c.b)
		assert.Equal(t, c.div, a.FloorDiv(b).Int64())
		assert.Equal(t, c.mod, a.FloorMod(b).Int64())
	}
}

func TestCmpAndSign(t *testing.T) {
	assert.Equal(t, -1, bigint.FromInt64(1).Cmp(bigint.FromInt64(2)))
	assert.Equal(t, 0, bigint.FromInt64(2).Cmp(bigint.FromInt64(2)))
	assert.Equal(t, 1, bigint.FromInt64(3).Cmp(bigint.FromInt64(2)))

	assert.Equal(t, -1, bigint.FromInt64(-5).Sign())
	assert.Equal(t, 0, bigint.FromInt64(0).Sign())
	assert.Equal(t, 1, bigint.FromInt64(5).Sign())
}

func TestMulOverflowSaturatesToInfinity(t *testing.T) {
	huge := bigint.FromInt64(math.MaxInt64)
	product := huge.Mul(bigint.FromInt64(2))
	assert.True(t, product.Overflowed())
	assert.True(t, math.IsInf(product.Float64(), 1))
}

func TestFromFloat64Saturates(t *testing.T) {
	assert.Equal(t, int64(math.MaxInt64), bigint.FromFloat64(1e300).Int64())
	assert.Equal(t, int64(math.MinInt64), bigint.FromFloat64(-1e300).Int64())
	assert.Equal(t, int64(0), bigint.FromFloat64(math.NaN()).Int64())
	assert.Equal(t, int64(42), bigint.FromFloat64(42.9).Int64())
}
