package material_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neutronlab/simkit/modules/material"
	"github.com/neutronlab/simkit/pkg/checkval"
)

func newTwoGroup(t *testing.T) *material.Material {
	t.Helper()
	m, err := material.New("uo2")
	require.NoError(t, err)
	require.NoError(t, m.SetNumEnergyGroups(2))
	return m
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("assigns identity and name", func(t *testing.T) {
		m, err := material.New("water")
		require.NoError(t, err)
		assert.Equal(t, "water", m.Name())
		assert.NotEqual(t, uuid.Nil, m.ID())
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := material.New("")
		require.Error(t, err)
		assert.True(t, checkval.IsKind(err, checkval.KindRangeViolation))
	})
}

func TestSetNumEnergyGroups(t *testing.T) {
	t.Parallel()

	t.Run("rejects non-positive counts", func(t *testing.T) {
		m, err := material.New("uo2")
		require.NoError(t, err)
		assert.Error(t, m.SetNumEnergyGroups(0))
		assert.Error(t, m.SetNumEnergyGroups(-7))
		assert.NoError(t, m.SetNumEnergyGroups(7))
	})

	t.Run("changing the group structure clears cross sections", func(t *testing.T) {
		m := newTwoGroup(t)
		require.NoError(t, m.SetSigmaT([]float64{0.2, 1.5}))

		require.NoError(t, m.SetNumEnergyGroups(7))
		assert.Nil(t, m.SigmaT())
	})
}

func TestGroupwiseSetters(t *testing.T) {
	t.Parallel()

	t.Run("accepts arrays matching the group count", func(t *testing.T) {
		m := newTwoGroup(t)
		require.NoError(t, m.SetSigmaT([]float64{0.2, 1.5}))
		require.NoError(t, m.SetSigmaA([]float64{0.01, 0.3}))
		require.NoError(t, m.SetSigmaF([]float64{0.005, 0.2}))
		require.NoError(t, m.SetNuSigmaF([]float64{0.012, 0.5}))
		assert.Equal(t, []float64{0.2, 1.5}, m.SigmaT())
	})

	t.Run("rejects a wrong-length array", func(t *testing.T) {
		m := newTwoGroup(t)
		err := m.SetSigmaT([]float64{0.2})
		require.Error(t, err)
		assert.True(t, checkval.IsKind(err, checkval.KindLengthMismatch))
		assert.Nil(t, m.SigmaT())
	})

	t.Run("setter copies its argument", func(t *testing.T) {
		m := newTwoGroup(t)
		xs := []float64{0.2, 1.5}
		require.NoError(t, m.SetSigmaT(xs))
		xs[0] = 99
		assert.Equal(t, []float64{0.2, 1.5}, m.SigmaT())
	})
}

func TestSetChi(t *testing.T) {
	t.Parallel()

	t.Run("accepts fractions in the unit interval", func(t *testing.T) {
		m := newTwoGroup(t)
		require.NoError(t, m.SetChi([]float64{1.0, 0.0}))
	})

	t.Run("rejects a fraction above one", func(t *testing.T) {
		m := newTwoGroup(t)
		err := m.SetChi([]float64{1.2, 0.0})
		require.Error(t, err)
		assert.True(t, checkval.IsKind(err, checkval.KindRangeViolation))
		assert.Nil(t, m.Chi())
	})
}

func TestSetSigmaS(t *testing.T) {
	t.Parallel()

	t.Run("accepts a square matrix", func(t *testing.T) {
		m := newTwoGroup(t)
		require.NoError(t, m.SetSigmaS([][]float64{{0.1, 0.02}, {0.0, 1.2}}))
		assert.Equal(t, 1.2, m.SigmaS()[1][1])
	})

	t.Run("rejects a ragged row", func(t *testing.T) {
		m := newTwoGroup(t)
		err := m.SetSigmaS([][]float64{{0.1, 0.02}, {0.0}})
		require.Error(t, err)
		assert.True(t, checkval.IsKind(err, checkval.KindLengthMismatch))
		assert.Nil(t, m.SigmaS())
	})

	t.Run("rejects a wrong row count", func(t *testing.T) {
		m := newTwoGroup(t)
		err := m.SetSigmaS([][]float64{{0.1, 0.02}})
		require.Error(t, err)
		assert.True(t, checkval.IsKind(err, checkval.KindLengthMismatch))
	})
}
