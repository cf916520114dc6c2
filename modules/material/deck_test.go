package material_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neutronlab/simkit/modules/material"
	"github.com/neutronlab/simkit/pkg/checkval"
)

const pinCellDeck = `materials:
  - name: uo2
    num_groups: 2
    sigma_t: [0.2, 1.5]
    sigma_a: [0.01, 0.3]
    sigma_f: [0.005, 0.2]
    nu_sigma_f: [0.012, 0.5]
    chi: [1.0, 0.0]
    sigma_s:
      - [0.1, 0.02]
      - [0.0, 1.2]
  - name: water
    num_groups: 2
    sigma_t: [0.3, 2.0]
    sigma_a: [0.002, 0.05]
    sigma_s:
      - [0.25, 0.05]
      - [0.0, 1.9]
`

func writeDeck(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "deck.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadDeck(t *testing.T) {
	t.Parallel()

	t.Run("loads and builds a valid deck", func(t *testing.T) {
		deck, err := material.LoadDeck(writeDeck(t, pinCellDeck))
		require.NoError(t, err)

		mats, err := deck.Build()
		require.NoError(t, err)
		require.Len(t, mats, 2)
		assert.Equal(t, "uo2", mats[0].Name())
		assert.Equal(t, []float64{1.0, 0.0}, mats[0].Chi())
		assert.Nil(t, mats[1].Chi())
		assert.Equal(t, []float64{0.3, 2.0}, mats[1].SigmaT())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := material.LoadDeck(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := material.LoadDeck(writeDeck(t, "materials: ["))
		assert.Error(t, err)
	})

	t.Run("violation names the offending material", func(t *testing.T) {
		bad := `materials:
  - name: uo2
    num_groups: 2
    sigma_t: [0.2, 1.5]
  - name: clad
    num_groups: 2
    sigma_t: [0.3]
`
		deck, err := material.LoadDeck(writeDeck(t, bad))
		require.NoError(t, err)

		_, err = deck.Build()
		require.Error(t, err)
		assert.Contains(t, err.Error(), `material "clad"`)
		assert.True(t, checkval.IsKind(err, checkval.KindLengthMismatch))
	})

	t.Run("ragged scattering matrix fails the build", func(t *testing.T) {
		bad := `materials:
  - name: uo2
    num_groups: 2
    sigma_s:
      - [0.1, 0.02]
      - [0.5]
`
		deck, err := material.LoadDeck(writeDeck(t, bad))
		require.NoError(t, err)

		_, err = deck.Build()
		require.Error(t, err)
		assert.True(t, checkval.IsKind(err, checkval.KindLengthMismatch))
	})
}
