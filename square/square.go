// Package square - constructors, validation and rendering.
package square

import (
	"fmt"
	"strconv"
	"strings"
)

// NewCyclic returns the canonical cyclic latin square of the given order:
// cell (r,c) holds (r+c) mod order. Row r therefore reads
// [r, r+1 mod n, ...], the fixed starting shape of every generation run.
//
// Returns ErrInvalidOrder for order < MinOrder.
//
// Complexity: O(n²) time and space.
func NewCyclic(order int) (*Square, error) {
	if order < MinOrder {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidOrder, order)
	}
	grid := make([][]int, order)
	for r := 0; r < order; r++ {
		grid[r] = make([]int, order)
		for c := 0; c < order; c++ {
			grid[r][c] = (r + c) % order
		}
	}
	return &Square{order: order, grid: grid}, nil
}

// FromGrid builds a Square from an existing grid, copying it. The grid must
// be n×n with every value in [0,n); the latin property is not checked here
// (see Validate).
//
// Returns ErrInvalidOrder, ErrBadShape or ErrBadSymbol.
//
// Complexity: O(n²) time and space.
func FromGrid(grid [][]int) (*Square, error) {
	n := len(grid)
	if n < MinOrder {
		return nil, fmt.Errorf("%w: got %d rows", ErrInvalidOrder, n)
	}
	out := make([][]int, n)
	for r, row := range grid {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrBadShape, r, len(row), n)
		}
		out[r] = make([]int, n)
		for c, v := range row {
			if v < 0 || v >= n {
				return nil, fmt.Errorf("%w: %d at (%d,%d)", ErrBadSymbol, v, r, c)
			}
			out[r][c] = v
		}
	}
	return &Square{order: n, grid: out}, nil
}

// Validate checks the defining latin property: every row and every column
// is a permutation of [0,n). The first violation is reported with its
// position, wrapping ErrNotLatin.
//
// Complexity: O(n²) time, O(n) space.
func (s *Square) Validate() error {
	for r := 0; r < s.order; r++ {
		seen := make([]bool, s.order)
		for c := 0; c < s.order; c++ {
			v := s.grid[r][c]
			if seen[v] {
				return fmt.Errorf("%w: symbol %d twice in row %d", ErrNotLatin, v, r)
			}
			seen[v] = true
		}
	}
	for c := 0; c < s.order; c++ {
		seen := make([]bool, s.order)
		for r := 0; r < s.order; r++ {
			v := s.grid[r][c]
			if seen[v] {
				return fmt.Errorf("%w: symbol %d twice in column %d", ErrNotLatin, v, c)
			}
			seen[v] = true
		}
	}
	return nil
}

// IsLatin reports whether Validate passes.
func (s *Square) IsLatin() bool { return s.Validate() == nil }

// String renders the square as text: a header naming the order, then rows
// separated by blank lines, symbols three spaces apart. For order 3:
//
//	Latin square of size 3
//
//	0   1   2
//
//	1   2   0
//
//	2   0   1
func (s *Square) String() string {
	rows := make([]string, s.order)
	for r, row := range s.grid {
		cells := make([]string, s.order)
		for c, v := range row {
			cells[c] = strconv.Itoa(v)
		}
		rows[r] = strings.Join(cells, "   ")
	}
	return fmt.Sprintf("Latin square of size %d\n\n%s", s.order, strings.Join(rows, "\n\n"))
}
