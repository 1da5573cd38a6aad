// Package cube implements the three-dimensional incidence representation of
// a latin square and the cell-level operations the Jacobson–Matthews walk
// is built from.
//
// What
//
//   - CellState: tri-state cell value {Off, On, Improper} with the two
//     legal one-step transitions each way (Raise, Lower); the third
//     direction is an invariant violation.
//   - Axis and Coord: a closed axis tag plus pure component accessors, so
//     line-scanning code is written once and runs on any axis.
//   - Cube: the n×n×n grid with a tagged proper/improper state. The tag is
//     maintained inside Raise and Lower themselves (a lower that turns a
//     cell Improper records its coordinate, the raise that consumes it
//     clears the record), so the tag and the grid cannot go out of sync.
//   - NewCyclic: the deterministic starting shape, On at z = (x+y) mod n.
//   - PickOn: the axis search used for partner selection during a move:
//     first On along a line, or the second one strictly past it.
//   - Project: read a proper cube into a square.Square, verifying exactly
//     one On per z-line on the way.
//   - Intercalates: the expensive optional scan for 2×2 latin subsquares.
//
// Why
//
//	In incidence form a latin square is a 0/1 cube with all line sums equal
//	to one, and the uniform random walk of Jacobson–Matthews is a sequence
//	of local ±1 toggles over 2×2×2 sub-boxes. The cube owns exactly the
//	state and primitives that walk needs; the walk itself (origin sampling,
//	coin tosses, phase driving) lives in package walk.
//
// Proper and improper
//
//	A proper cube has exactly one On per line on all three axes and n² On
//	cells overall. Mid-walk, at most one cell may sit at Improper (the
//	transient "-1" of the chain), and each line through it then carries two
//	On cells. Counts exposes the resulting conserved quantity:
//	on − improper == n² at every step boundary.
//
// Complexity (order n)
//
//   - NewCyclic: O(n³) time and space.
//   - Raise, Lower, At: O(1).
//   - PickOn: O(n).
//   - Project, Counts: O(n³).
//   - Intercalates: O(n⁴), documented expensive; default path never scans.
//
// Usage
//
//	c, err := cube.NewCyclic(4)
//	if err != nil {
//	    // ErrInvalidOrder for orders 0 and 1
//	}
//	// ... hand c to walk.Randomize ...
//	sq, err := c.Project()
//	if err != nil {
//	    // ErrImproperCube if the walk has not drained, ErrDefect wraps
//	    // if an invariant broke
//	}
//
// Errors
//
//   - ErrInvalidOrder  for order < 2 at construction.
//   - ErrImproperCube  from Project/Intercalates while a flaw is recorded.
//   - ErrDefect        wrapped with coordinate context at every invariant break:
//     illegal transition, untracked or second improper cell, missing
//     expected On cell, malformed projection line. Always a logic defect;
//     discard the cube.
package cube
