package material

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Deck is a YAML material deck: the cross-section library for one simulation.
type Deck struct {
	Materials []Spec `yaml:"materials"`
}

// Spec is the raw YAML form of one material, prior to validation. Build routes
// every field through the guarded setters.
type Spec struct {
	Name      string      `yaml:"name"`
	NumGroups int         `yaml:"num_groups"`
	SigmaT    []float64   `yaml:"sigma_t"`
	SigmaA    []float64   `yaml:"sigma_a"`
	SigmaF    []float64   `yaml:"sigma_f"`
	NuSigmaF  []float64   `yaml:"nu_sigma_f"`
	Chi       []float64   `yaml:"chi"`
	SigmaS    [][]float64 `yaml:"sigma_s"`
}

// LoadDeck parses a material deck from a YAML file.
func LoadDeck(path string) (*Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read material deck: %w", err)
	}
	var d Deck
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parse material deck: %w", err)
	}
	return &d, nil
}

// Build validates every spec in the deck and returns the resulting materials.
// The first violation aborts the build, wrapped with the offending material's
// name.
func (d *Deck) Build() ([]*Material, error) {
	mats := make([]*Material, 0, len(d.Materials))
	for _, spec := range d.Materials {
		m, err := spec.Build()
		if err != nil {
			return nil, err
		}
		mats = append(mats, m)
	}
	return mats, nil
}

// Build constructs one material from its raw spec.
func (s Spec) Build() (*Material, error) {
	m, err := New(s.Name)
	if err != nil {
		return nil, fmt.Errorf("material %q: %w", s.Name, err)
	}
	if err := m.SetNumEnergyGroups(s.NumGroups); err != nil {
		return nil, fmt.Errorf("material %q: %w", s.Name, err)
	}

	steps := []struct {
		set func() error
		has bool
	}{
		{func() error { return m.SetSigmaT(s.SigmaT) }, s.SigmaT != nil},
		{func() error { return m.SetSigmaA(s.SigmaA) }, s.SigmaA != nil},
		{func() error { return m.SetSigmaF(s.SigmaF) }, s.SigmaF != nil},
		{func() error { return m.SetNuSigmaF(s.NuSigmaF) }, s.NuSigmaF != nil},
		{func() error { return m.SetChi(s.Chi) }, s.Chi != nil},
		{func() error { return m.SetSigmaS(s.SigmaS) }, s.SigmaS != nil},
	}
	for _, step := range steps {
		if !step.has {
			continue
		}
		if err := step.set(); err != nil {
			return nil, fmt.Errorf("material %q: %w", s.Name, err)
		}
	}
	return m, nil
}
