package geometry

import (
	"github.com/google/uuid"

	"github.com/neutronlab/simkit/pkg/checkval"
)

// Axis identifies one spatial dimension of the problem domain.
type Axis string

const (
	AxisX Axis = "x"
	AxisY Axis = "y"
	AxisZ Axis = "z"
)

var axes = []Axis{AxisX, AxisY, AxisZ}

// bounds is one axis-aligned extent.
type bounds struct {
	lower, upper float64
	set          bool
}

// Cell is an axis-aligned region of the problem domain filled by a single
// material. Bounds are assigned per axis through a guarded setter.
type Cell struct {
	id       uuid.UUID
	name     string
	material string
	extent   map[Axis]bounds
}

// NewCell creates a named cell filled with the named material.
func NewCell(name, materialName string) (*Cell, error) {
	if err := checkval.CheckGreaterThan("cell name length", len(name), 0, false); err != nil {
		return nil, err
	}
	if err := checkval.CheckGreaterThan("cell material name length", len(materialName), 0, false); err != nil {
		return nil, err
	}
	return &Cell{
		id:       uuid.New(),
		name:     name,
		material: materialName,
		extent:   make(map[Axis]bounds),
	}, nil
}

func (c *Cell) ID() uuid.UUID { return c.id }

func (c *Cell) Name() string { return c.name }

func (c *Cell) MaterialName() string { return c.material }

// SetBounds assigns the cell's extent along one axis. The lower bound must be
// strictly below the upper bound.
func (c *Cell) SetBounds(axis Axis, lower, upper float64) error {
	if err := checkval.CheckValue("cell axis", axis, axes); err != nil {
		return err
	}
	if err := checkval.CheckLessThan("cell lower bound", lower, upper, false); err != nil {
		return err
	}
	c.extent[axis] = bounds{lower: lower, upper: upper, set: true}
	return nil
}

// Bounds returns the extent along one axis and whether it has been assigned.
func (c *Cell) Bounds(axis Axis) (lower, upper float64, ok bool) {
	b := c.extent[axis]
	return b.lower, b.upper, b.set
}
