// Package cube - incidence cube construction, mutation and projection.
package cube

import (
	"fmt"

	"github.com/katalvlaran/latinsquare/square"
)

// properness is the cube's tagged walk state: either proper, or improper at
// exactly one recorded coordinate. It is mutated only inside Raise and
// Lower, so the tag can never drift from the cell grid.
type properness struct {
	improper bool
	at       Coord
}

// Cube is the order-n tri-state incidence grid the randomization walk
// mutates in place: On at (x,y,z) means row x, column y holds symbol z.
//
// A proper cube carries exactly one On cell per line on all three axes,
// n² On cells in total, and is a latin square in incidence form. During a
// walk at most one cell may be Improper, and the cube records where; while
// the tag is set the line through the flaw holds two On cells on each axis
// (so across the whole cube, on − improper stays pinned at n²).
//
// A Cube is not safe for concurrent use: one walk owns one cube.
type Cube struct {
	n     int
	cells []CellState // flat, (x·n+y)·n+z
	state properness
}

// NewCyclic returns the order-n incidence cube of the canonical cyclic
// latin square: On wherever z = (x+y) mod n. Always proper, the fixed
// starting shape of every generation run.
//
// Returns ErrInvalidOrder for order < 2 (orders 0 and 1 are degenerate and
// never silently accepted).
//
// Complexity: O(n³) time and space.
func NewCyclic(order int) (*Cube, error) {
	if order < square.MinOrder {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidOrder, order)
	}
	c := &Cube{
		n:     order,
		cells: make([]CellState, order*order*order), // zero value is Off
	}
	for x := 0; x < order; x++ {
		for y := 0; y < order; y++ {
			c.cells[c.idx(Coord{X: x, Y: y, Z: (x + y) % order})] = On
		}
	}
	return c, nil
}

// Order returns n.
func (c *Cube) Order() int { return c.n }

// idx maps a coordinate to its flat cell index.
func (c *Cube) idx(p Coord) int { return (p.X*c.n+p.Y)*c.n + p.Z }

// At returns the state of the cell at p. Components must lie in [0,n).
func (c *Cube) At(p Coord) CellState { return c.cells[c.idx(p)] }

// Improper returns the recorded improper coordinate, if any.
func (c *Cube) Improper() (Coord, bool) { return c.state.at, c.state.improper }

// Counts returns how many cells hold each state. Between legal moves a
// cube always satisfies on − improper == n² with improper 0 or 1.
//
// Complexity: O(n³).
func (c *Cube) Counts() (on, off, improper int) {
	for _, s := range c.cells {
		switch s {
		case On:
			on++
		case Off:
			off++
		default:
			improper++
		}
	}
	return on, off, improper
}

// Raise steps the cell at p upward (Improper→Off→On) and keeps the
// improper tag in sync: raising the recorded improper cell clears the tag.
//
// Wraps ErrDefect when the cell is already On, or when it is Improper but
// not the recorded flaw (the tag and the grid disagree).
func (c *Cube) Raise(p Coord) error {
	prev := c.At(p)
	next, err := prev.Raise()
	if err != nil {
		return fmt.Errorf("%w at %v", err, p)
	}
	if prev == Improper {
		if !c.state.improper || c.state.at != p {
			return fmt.Errorf("%w: untracked improper cell at %v", ErrDefect, p)
		}
		c.state = properness{}
	}
	c.cells[c.idx(p)] = next
	return nil
}

// Lower steps the cell at p downward (On→Off→Improper) and keeps the
// improper tag in sync: a lower that yields Improper records p.
//
// Wraps ErrDefect when the cell is already Improper, or when another
// improper cell is already recorded (the walk must never create two).
func (c *Cube) Lower(p Coord) error {
	next, err := c.At(p).Lower()
	if err != nil {
		return fmt.Errorf("%w at %v", err, p)
	}
	if next == Improper {
		if c.state.improper {
			return fmt.Errorf("%w: second improper cell at %v, first at %v", ErrDefect, p, c.state.at)
		}
		c.state = properness{improper: true, at: p}
	}
	c.cells[c.idx(p)] = next
	return nil
}

// Project reads the cube into its two-dimensional latin square.
//
// Fails fast instead of guessing: a cube with a recorded improper cell
// returns ErrImproperCube, and a z-line holding zero or two On cells wraps
// ErrDefect (a proper tag over a malformed grid means the walk corrupted
// the cube).
//
// Complexity: O(n³).
func (c *Cube) Project() (*square.Square, error) {
	grid, err := c.symbolGrid()
	if err != nil {
		return nil, err
	}
	return square.FromGrid(grid)
}

// symbolGrid scans every (x,y) line for its unique On cell.
func (c *Cube) symbolGrid() ([][]int, error) {
	if _, improper := c.Improper(); improper {
		return nil, ErrImproperCube
	}
	grid := make([][]int, c.n)
	for x := 0; x < c.n; x++ {
		grid[x] = make([]int, c.n)
		for y := 0; y < c.n; y++ {
			symbol := -1
			for z := 0; z < c.n; z++ {
				if c.At(Coord{X: x, Y: y, Z: z}) != On {
					continue
				}
				if symbol >= 0 {
					return nil, fmt.Errorf("%w: z-line (%d,%d) holds two On cells, z=%d and z=%d",
						ErrDefect, x, y, symbol, z)
				}
				symbol = z
			}
			if symbol < 0 {
				return nil, fmt.Errorf("%w: z-line (%d,%d) holds no On cell", ErrDefect, x, y)
			}
			grid[x][y] = symbol
		}
	}
	return grid, nil
}
