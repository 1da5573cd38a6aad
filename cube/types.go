// Package cube - cell states, axes, coordinates and sentinel errors.
package cube

import (
	"errors"
	"fmt"
)

// Sentinel errors for cube construction, mutation and projection.
var (
	// ErrInvalidOrder is returned for orders below 2.
	ErrInvalidOrder = errors.New("cube: order must be at least 2")

	// ErrImproperCube is returned when an operation requires a proper cube
	// but an improper coordinate is currently recorded. Finish the walk
	// (its cleanup phase drains the flaw) before projecting or scanning.
	ErrImproperCube = errors.New("cube: cube is improper")

	// ErrDefect is returned when an internal walk invariant breaks: an
	// illegal cell transition, a missing expected On cell, a second
	// improper cell, or a malformed line met during projection. It always
	// means a logic defect, never bad user input; callers must abort and
	// discard the cube.
	ErrDefect = errors.New("cube: invariant violated")
)

// CellState is the tri-state content of one cube cell.
//
// Off and On are the ordinary incidence values. Improper is the transient
// "-1" state of the Jacobson–Matthews walk: at most one cell may hold it,
// and only between move steps of an unfinished randomization.
type CellState int

const (
	// Off marks a cell outside the encoded square (the zero value).
	Off CellState = iota

	// On marks an incidence cell: row x, column y holds symbol z.
	On

	// Improper marks the single transiently negative cell of the walk.
	Improper
)

// String returns the state name for diagnostics.
func (s CellState) String() string {
	switch s {
	case Off:
		return "Off"
	case On:
		return "On"
	case Improper:
		return "Improper"
	default:
		return fmt.Sprintf("CellState(%d)", int(s))
	}
}

// Raise steps the state upward: Improper→Off→On.
// Raising an On cell wraps ErrDefect.
func (s CellState) Raise() (CellState, error) {
	switch s {
	case Improper:
		return Off, nil
	case Off:
		return On, nil
	default:
		return s, fmt.Errorf("%w: raise past On", ErrDefect)
	}
}

// Lower steps the state downward: On→Off→Improper.
// Lowering an Improper cell wraps ErrDefect.
func (s CellState) Lower() (CellState, error) {
	switch s {
	case On:
		return Off, nil
	case Off:
		return Improper, nil
	default:
		return s, fmt.Errorf("%w: lower past Improper", ErrDefect)
	}
}

// Axis names one of the three cube directions. The tag plus the pure
// accessors on Coord keep the line-scanning code axis-generic without any
// per-axis duplication.
type Axis int

const (
	// AxisX varies the row component.
	AxisX Axis = iota

	// AxisY varies the column component.
	AxisY

	// AxisZ varies the symbol component.
	AxisZ
)

// String returns "x", "y" or "z".
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	default:
		return "z"
	}
}

// Coord is one cube cell position; components lie in [0,n) for order n.
type Coord struct {
	X, Y, Z int
}

// Along returns the component of c named by a.
func (c Coord) Along(a Axis) int {
	switch a {
	case AxisX:
		return c.X
	case AxisY:
		return c.Y
	default:
		return c.Z
	}
}

// Advance increments the component named by a in place.
func (c *Coord) Advance(a Axis) {
	switch a {
	case AxisX:
		c.X++
	case AxisY:
		c.Y++
	default:
		c.Z++
	}
}

// String returns "(x,y,z)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.X, c.Y, c.Z)
}

// withAxis returns c with the component named by a replaced by v. Passing
// v=0 builds the canonical start of an axis scan: two components kept, the
// searched one zeroed.
func withAxis(c Coord, a Axis, v int) Coord {
	switch a {
	case AxisX:
		c.X = v
	case AxisY:
		c.Y = v
	default:
		c.Z = v
	}
	return c
}
