package geometry

import (
	"github.com/neutronlab/simkit/pkg/checkval"
)

// Lattice is a rectangular repeating structure: a grid of universe IDs laid
// out row by row, with a fixed pitch in each direction.
type Lattice struct {
	name      string
	pitchX    float64
	pitchY    float64
	universes [][]int
}

// NewLattice creates a named, empty lattice.
func NewLattice(name string) (*Lattice, error) {
	if err := checkval.CheckGreaterThan("lattice name length", len(name), 0, false); err != nil {
		return nil, err
	}
	return &Lattice{name: name}, nil
}

func (l *Lattice) Name() string { return l.name }

// SetPitch assigns the cell pitch in each direction; both must be positive.
func (l *Lattice) SetPitch(x, y float64) error {
	if err := checkval.CheckGreaterThan("lattice x pitch", x, 0.0, false); err != nil {
		return err
	}
	if err := checkval.CheckGreaterThan("lattice y pitch", y, 0.0, false); err != nil {
		return err
	}
	l.pitchX, l.pitchY = x, y
	return nil
}

// Pitch returns the lattice pitch in each direction.
func (l *Lattice) Pitch() (x, y float64) {
	return l.pitchX, l.pitchY
}

// SetUniverses assigns the universe layout: a depth-2 grid of integer IDs with
// equal-length rows.
func (l *Lattice) SetUniverses(grid [][]int) error {
	if err := checkval.CheckIterableType("lattice universes", grid,
		checkval.TypeSpec{checkval.Integral}, 2, 2); err != nil {
		return err
	}
	if err := checkval.CheckGreaterThan("lattice row count", len(grid), 0, false); err != nil {
		return err
	}
	width := len(grid[0])
	out := make([][]int, len(grid))
	for i, row := range grid {
		if err := checkval.CheckLength("lattice universe row", row, width); err != nil {
			return err
		}
		out[i] = make([]int, len(row))
		copy(out[i], row)
	}
	l.universes = out
	return nil
}

// Universes returns the universe layout, or nil before assignment.
func (l *Lattice) Universes() [][]int {
	return l.universes
}

// Shape returns the number of rows and columns in the layout.
func (l *Lattice) Shape() (rows, cols int) {
	if len(l.universes) == 0 {
		return 0, 0
	}
	return len(l.universes), len(l.universes[0])
}
