// Package cube - axis search and coordinate picking for the walk.
package cube

import "fmt"

// findOnAlong scans upward from p's current position along a, returning the
// axis component of the first On cell, or ok=false when the scan reaches
// the cube bound without a hit.
//
// Complexity: O(n).
func (c *Cube) findOnAlong(p Coord, a Axis) (int, bool) {
	for ; p.Along(a) < c.n; p.Advance(a) {
		if c.At(p) == On {
			return p.Along(a), true
		}
	}
	return 0, false
}

// PickOn locates an On cell on the line through origin along a. The line is
// scanned from zero; takeFirst selects the first hit, otherwise the scan
// resumes one past it and returns the second, strictly further along.
//
// The caller owns the choice: a proper cube holds exactly one On per line,
// so only true is meaningful there, while the three lines through an
// improper cell hold two On cells each and a fair coin picks between them.
//
// A missing first or second hit wraps ErrDefect: the calling context
// guarantees the cell exists, so its absence means the cube is corrupt.
//
// Complexity: O(n).
func (c *Cube) PickOn(origin Coord, a Axis, takeFirst bool) (int, error) {
	first, ok := c.findOnAlong(withAxis(origin, a, 0), a)
	if !ok {
		return 0, fmt.Errorf("%w: no On cell along %s from %v", ErrDefect, a, origin)
	}
	if takeFirst {
		return first, nil
	}
	second, ok := c.findOnAlong(withAxis(origin, a, first+1), a)
	if !ok {
		return 0, fmt.Errorf("%w: second On cell missing along %s from %v", ErrDefect, a, origin)
	}
	return second, nil
}
