package checkval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/neutronlab/simkit/pkg/checkval"
)

func TestRepOf(t *testing.T) {
	t.Parallel()

	t.Run("classifies builtin representations", func(t *testing.T) {
		assert.Equal(t, checkval.Bool, checkval.RepOf(true))
		assert.Equal(t, checkval.String, checkval.RepOf("abc"))
		assert.Equal(t, checkval.Int, checkval.RepOf(5))
		assert.Equal(t, checkval.Int32, checkval.RepOf(int32(5)))
		assert.Equal(t, checkval.Uint16, checkval.RepOf(uint16(5)))
		assert.Equal(t, checkval.Float32, checkval.RepOf(float32(1.5)))
		assert.Equal(t, checkval.Float64, checkval.RepOf(1.5))
		assert.Equal(t, checkval.Slice, checkval.RepOf([]int{1}))
		assert.Equal(t, checkval.Array, checkval.RepOf([2]int{1, 2}))
		assert.Equal(t, checkval.Map, checkval.RepOf(map[string]int{}))
	})

	t.Run("classifies named types by underlying kind", func(t *testing.T) {
		type spacing float64
		assert.Equal(t, checkval.Float64, checkval.RepOf(spacing(0.1)))
	})

	t.Run("nil and structs are unsupported", func(t *testing.T) {
		assert.Equal(t, checkval.Unsupported, checkval.RepOf(nil))
		assert.Equal(t, checkval.Unsupported, checkval.RepOf(struct{}{}))
	})
}

func TestMatches(t *testing.T) {
	t.Parallel()

	t.Run("single concrete tag", func(t *testing.T) {
		assert.True(t, checkval.Matches(1.5, checkval.TypeSpec{checkval.Float64}))
		assert.False(t, checkval.Matches(float32(1.5), checkval.TypeSpec{checkval.Float64}))
	})

	t.Run("set of tags", func(t *testing.T) {
		spec := checkval.TypeSpec{checkval.String, checkval.Bool}
		assert.True(t, checkval.Matches("x", spec))
		assert.True(t, checkval.Matches(false, spec))
		assert.False(t, checkval.Matches(1, spec))
	})

	t.Run("integral category accepts every integer width", func(t *testing.T) {
		spec := checkval.TypeSpec{checkval.Integral}
		assert.True(t, checkval.Matches(5, spec))
		assert.True(t, checkval.Matches(int8(5), spec))
		assert.True(t, checkval.Matches(int64(5), spec))
		assert.True(t, checkval.Matches(uint(5), spec))
		assert.True(t, checkval.Matches(uint64(5), spec))
		assert.False(t, checkval.Matches(5.0, spec))
		assert.False(t, checkval.Matches("5", spec))
	})

	t.Run("real category subsumes integral", func(t *testing.T) {
		spec := checkval.TypeSpec{checkval.Real}
		assert.True(t, checkval.Matches(1.5, spec))
		assert.True(t, checkval.Matches(float32(1.5), spec))
		assert.True(t, checkval.Matches(7, spec))
		assert.True(t, checkval.Matches(uint8(7), spec))
		assert.False(t, checkval.Matches("1.5", spec))
	})

	t.Run("iterable category accepts slices and arrays only", func(t *testing.T) {
		spec := checkval.TypeSpec{checkval.Iterable}
		assert.True(t, checkval.Matches([]float64{1}, spec))
		assert.True(t, checkval.Matches([1]int{1}, spec))
		assert.False(t, checkval.Matches("abc", spec))
		assert.False(t, checkval.Matches(map[int]int{}, spec))
	})

	t.Run("empty spec matches nothing", func(t *testing.T) {
		assert.False(t, checkval.Matches(1, checkval.TypeSpec{}))
	})
}

func TestTypeSpecString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "float64", checkval.TypeSpec{checkval.Float64}.String())
	assert.Equal(t, "integral, string", checkval.TypeSpec{checkval.Integral, checkval.String}.String())
}
