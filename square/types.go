// Package square - the Square value type and its sentinel errors.
package square

import "errors"

// MinOrder is the smallest usable order. Orders 0 and 1 are degenerate
// (empty or single-cell) and rejected by every constructor in the module.
const MinOrder = 2

// Sentinel errors for square construction and validation.
var (
	// ErrInvalidOrder is returned for orders below MinOrder.
	ErrInvalidOrder = errors.New("square: order must be at least 2")

	// ErrBadShape is returned when a source grid is not n×n.
	ErrBadShape = errors.New("square: grid is not square")

	// ErrBadSymbol is returned when a cell value lies outside [0,n).
	ErrBadSymbol = errors.New("square: symbol out of range")

	// ErrNotLatin is returned by Validate when a row or column repeats a symbol.
	ErrNotLatin = errors.New("square: duplicate symbol in row or column")
)

// Square is an order-n grid of symbols in [0,n).
//
// Construction enforces shape and symbol range but not the latin property
// itself; use Validate or IsLatin for that. Projection from a proper
// incidence cube always yields a valid latin square, hand-built grids may
// not.
type Square struct {
	order int
	grid  [][]int
}

// Order returns n, the side length and symbol count.
func (s *Square) Order() int { return s.order }

// At returns the symbol at row r, column c. Both must lie in [0,n).
func (s *Square) At(r, c int) int { return s.grid[r][c] }

// Row returns a copy of row r.
func (s *Square) Row(r int) []int {
	out := make([]int, s.order)
	copy(out, s.grid[r])
	return out
}

// Grid returns a deep copy of the whole grid, rows first.
func (s *Square) Grid() [][]int {
	out := make([][]int, s.order)
	for r := range s.grid {
		out[r] = make([]int, s.order)
		copy(out[r], s.grid[r])
	}
	return out
}
