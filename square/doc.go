// Package square provides the two-dimensional latin square value: an
// order-n grid of symbols in [0,n), each symbol once per row and column.
//
// What
//
//   - Square: an immutable-after-construction n×n symbol grid with copy
//     accessors (At, Row, Grid).
//   - NewCyclic(n): the canonical cyclic square, cell (r,c) = (r+c) mod n.
//   - FromGrid(grid): adopt an existing grid, validating shape and symbol
//     range (not the latin property).
//   - Validate / IsLatin: the defining property, every row and column a
//     permutation of [0,n).
//   - String: the fixed text rendering (header line, blank-line-separated
//     rows, three-space-separated symbols).
//
// Why
//
//	The randomization walk lives in three dimensions (package cube); this
//	package is its two-dimensional output form, plus the validation the
//	tests and callers lean on.
//
// Complexity
//
//   - Construction and validation: O(n²) time, O(n²) space.
//   - Rendering: O(n²).
//
// Usage
//
//	sq, err := square.NewCyclic(4)
//	if err != nil {
//	    // ErrInvalidOrder for orders 0 and 1
//	}
//	fmt.Println(sq)          // rendered text form
//	_ = sq.IsLatin()         // true for any cyclic square
//
// Errors
//
//   - ErrInvalidOrder  for order < MinOrder (2).
//   - ErrBadShape      when FromGrid receives a non-square grid.
//   - ErrBadSymbol     when FromGrid meets a value outside [0,n).
//   - ErrNotLatin      from Validate, wrapped with the offending position.
package square
