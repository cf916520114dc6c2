package material

import (
	"github.com/google/uuid"

	"github.com/neutronlab/simkit/pkg/checkval"
)

// Material is a multigroup material: per-group cross-section arrays plus a
// group-to-group scattering matrix. Every setter validates its argument before
// assignment; a failed check leaves the material untouched.
type Material struct {
	id        uuid.UUID
	name      string
	numGroups int

	sigmaT   []float64
	sigmaA   []float64
	sigmaF   []float64
	nuSigmaF []float64
	chi      []float64
	sigmaS   [][]float64
}

// New creates a named material with no group structure. Cross sections cannot
// be assigned until SetNumEnergyGroups has been called.
func New(name string) (*Material, error) {
	if err := checkval.CheckGreaterThan("material name length", len(name), 0, false); err != nil {
		return nil, err
	}
	return &Material{id: uuid.New(), name: name}, nil
}

func (m *Material) ID() uuid.UUID { return m.id }

func (m *Material) Name() string { return m.name }

func (m *Material) NumEnergyGroups() int { return m.numGroups }

// SetNumEnergyGroups fixes the group structure. Changing it invalidates any
// previously assigned cross sections, so they are cleared.
func (m *Material) SetNumEnergyGroups(n int) error {
	if err := checkval.CheckGreaterThan("number of energy groups", n, 0, false); err != nil {
		return err
	}
	if n != m.numGroups {
		m.sigmaT, m.sigmaA, m.sigmaF, m.nuSigmaF, m.chi, m.sigmaS = nil, nil, nil, nil, nil, nil
	}
	m.numGroups = n
	return nil
}

// setGroupwise validates and clones one per-group cross-section array.
func (m *Material) setGroupwise(name string, xs []float64) ([]float64, error) {
	if err := checkval.CheckType(name, xs,
		checkval.TypeSpec{checkval.Iterable}, checkval.TypeSpec{checkval.Real}); err != nil {
		return nil, err
	}
	if err := checkval.CheckLength(name, xs, m.numGroups); err != nil {
		return nil, err
	}
	out := make([]float64, len(xs))
	copy(out, xs)
	return out, nil
}

func (m *Material) SetSigmaT(xs []float64) error {
	v, err := m.setGroupwise("total cross-section", xs)
	if err != nil {
		return err
	}
	m.sigmaT = v
	return nil
}

func (m *Material) SetSigmaA(xs []float64) error {
	v, err := m.setGroupwise("absorption cross-section", xs)
	if err != nil {
		return err
	}
	m.sigmaA = v
	return nil
}

func (m *Material) SetSigmaF(xs []float64) error {
	v, err := m.setGroupwise("fission cross-section", xs)
	if err != nil {
		return err
	}
	m.sigmaF = v
	return nil
}

func (m *Material) SetNuSigmaF(xs []float64) error {
	v, err := m.setGroupwise("nu-fission cross-section", xs)
	if err != nil {
		return err
	}
	m.nuSigmaF = v
	return nil
}

// SetChi assigns the fission spectrum. Each fraction must lie in [0, 1].
func (m *Material) SetChi(chi []float64) error {
	v, err := m.setGroupwise("fission spectrum", chi)
	if err != nil {
		return err
	}
	for _, f := range chi {
		if err := checkval.CheckGreaterThan("fission spectrum fraction", f, 0.0, true); err != nil {
			return err
		}
		if err := checkval.CheckLessThan("fission spectrum fraction", f, 1.0, true); err != nil {
			return err
		}
	}
	m.chi = v
	return nil
}

// SetSigmaS assigns the scattering matrix: exactly numGroups rows of
// numGroups real entries, validated as a depth-2 nested container.
func (m *Material) SetSigmaS(s [][]float64) error {
	if err := checkval.CheckIterableType("scattering matrix", s,
		checkval.TypeSpec{checkval.Real}, 2, 2); err != nil {
		return err
	}
	if err := checkval.CheckLength("scattering matrix", s, m.numGroups); err != nil {
		return err
	}
	out := make([][]float64, len(s))
	for i, row := range s {
		if err := checkval.CheckLength("scattering matrix row", row, m.numGroups); err != nil {
			return err
		}
		out[i] = make([]float64, len(row))
		copy(out[i], row)
	}
	m.sigmaS = out
	return nil
}

func (m *Material) SigmaT() []float64 { return m.sigmaT }

func (m *Material) SigmaA() []float64 { return m.sigmaA }

func (m *Material) SigmaF() []float64 { return m.sigmaF }

func (m *Material) NuSigmaF() []float64 { return m.nuSigmaF }

func (m *Material) Chi() []float64 { return m.chi }

func (m *Material) SigmaS() [][]float64 { return m.sigmaS }
