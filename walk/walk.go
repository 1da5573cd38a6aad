// Package walk - mixing, cleanup and the eight-cell move step.
package walk

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/latinsquare/cube"
	"github.com/katalvlaran/latinsquare/square"
)

// Randomize drives the Jacobson–Matthews walk over c in place: exactly n³
// move steps (mixing phase), then further steps until the improper tag
// clears (cleanup phase). With WithAvoidIntercalates it then reruns whole
// rounds until the encoded square is intercalate-free.
//
// On success c is proper and distributed approximately uniformly over the
// latin squares of its order.
//
// Returns:
//   - ErrNilCube / ErrOptionViolation for bad inputs.
//   - ErrAcyclicOrder / ErrAcyclicExhausted from the intercalate-free mode.
//   - A cube.ErrDefect wrap if a move ever meets a corrupted cube. The cube
//     must then be discarded, never retried: a half-applied move is
//     corruption, and continuing would yield a statistically invalid square.
//
// Complexity: O(n⁴) expected time (n³ steps, O(n) per step; cleanup is
// unbounded but expected short), O(1) extra space. The intercalate-free
// mode adds O(n⁴) scanning per round.
func Randomize(c *cube.Cube, opts ...Option) error {
	// 1) Build and validate options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if c == nil {
		return ErrNilCube
	}
	if cfg.err != nil {
		return cfg.err
	}
	// Orders 2 and 4 have no intercalate-free squares at all.
	if n := c.Order(); cfg.AvoidIntercalates && (n == 2 || n == 4) {
		return fmt.Errorf("%w: order %d", ErrAcyclicOrder, n)
	}

	// 2) Resolve the RNG stream: an explicit Rand wins, else the seed policy.
	r := cfg.Rand
	if r == nil {
		r = rngFromSeed(cfg.Seed)
	}
	w := &runner{c: c, r: r, verbose: cfg.Verbose}

	// 3) One mixing+cleanup round always runs; the intercalate-free mode
	//    keeps rerunning rounds until the scan comes back empty.
	if !cfg.AvoidIntercalates {
		return w.shuffle()
	}
	rounds := cfg.AcyclicRounds
	if rounds == 0 {
		rounds = DefaultAcyclicRounds
	}
	for round := 1; round <= rounds; round++ {
		if err := w.shuffle(); err != nil {
			return err
		}
		found, err := c.Intercalates()
		if err != nil {
			return err
		}
		if len(found) == 0 {
			return nil
		}
		if cfg.Verbose {
			fmt.Printf("walk: round %d left %d intercalates, reshuffling\n", round, len(found))
		}
	}
	return fmt.Errorf("%w: after %d rounds", ErrAcyclicExhausted, rounds)
}

// Generate builds a cyclic cube of the given order, randomizes it and
// projects the result: the whole pipeline in one call.
//
// Returns cube.ErrInvalidOrder for order < 2, otherwise whatever Randomize
// or Project report.
//
// Complexity: O(n⁴) expected time, O(n³) space.
func Generate(order int, opts ...Option) (*square.Square, error) {
	c, err := cube.NewCyclic(order)
	if err != nil {
		return nil, err
	}
	if err = Randomize(c, opts...); err != nil {
		return nil, err
	}
	return c.Project()
}

// runner carries one walk's mutable state: the cube under mutation and the
// RNG stream driving it. Strictly sequential, never shared.
type runner struct {
	c       *cube.Cube
	r       *rand.Rand
	verbose bool
}

// shuffle is one full mixing+cleanup round.
func (w *runner) shuffle() error {
	n := w.c.Order()

	// 1) Mixing: exactly n³ steps, unconditionally.
	total := n * n * n
	for i := 0; i < total; i++ {
		if err := w.step(); err != nil {
			return fmt.Errorf("walk: mixing step %d: %w", i, err)
		}
	}

	// 2) Cleanup: walk on until the improper tag clears. No iteration
	//    bound; every step from an improper cube has a real chance of
	//    resolving the flaw, and stopping early would bias the result.
	drained := 0
	for {
		if _, improper := w.c.Improper(); !improper {
			break
		}
		if err := w.step(); err != nil {
			return fmt.Errorf("walk: cleanup step %d: %w", drained, err)
		}
		drained++
	}
	if w.verbose {
		fmt.Printf("walk: order %d mixed %d steps, cleanup took %d\n", n, total, drained)
	}
	return nil
}

// step performs one Jacobson–Matthews move: choose an origin, pick one
// partner coordinate per axis, then flip the eight corners of the spanned
// 2×2×2 box.
func (w *runner) step() error {
	// 1) Origin. An improper cube continues at its recorded flaw, whose
	//    three lines hold two On cells each, so the picks toss a coin. A
	//    proper cube starts at a fresh Off cell, whose lines hold exactly
	//    one On cell each, so the picks must take the first hit.
	origin, coin := w.c.Improper()
	if !coin {
		origin = w.sampleOff()
	}

	// 2) Partners: one pick per axis, independent coins when coin is set.
	x2, err := w.pick(origin, cube.AxisX, coin)
	if err != nil {
		return err
	}
	y2, err := w.pick(origin, cube.AxisY, coin)
	if err != nil {
		return err
	}
	z2, err := w.pick(origin, cube.AxisZ, coin)
	if err != nil {
		return err
	}

	// 3) Toggle: raise the origin and the three corners sharing exactly one
	//    of its components; lower the four others. Order matters: the
	//    origin is raised first (consuming an improper origin), the
	//    all-partner corner (x2,y2,z2) is lowered last (it alone may turn
	//    Improper, and the cube records it as it happens).
	raise := [4]cube.Coord{
		origin,
		{X: origin.X, Y: y2, Z: z2},
		{X: x2, Y: y2, Z: origin.Z},
		{X: x2, Y: origin.Y, Z: z2},
	}
	for _, p := range raise {
		if err = w.c.Raise(p); err != nil {
			return err
		}
	}
	lower := [4]cube.Coord{
		{X: origin.X, Y: origin.Y, Z: z2},
		{X: origin.X, Y: y2, Z: origin.Z},
		{X: x2, Y: origin.Y, Z: origin.Z},
		{X: x2, Y: y2, Z: z2},
	}
	for _, p := range lower {
		if err = w.c.Lower(p); err != nil {
			return err
		}
	}
	return nil
}

// pick resolves one partner coordinate along a. When coin is set, the
// choice between the line's two On cells is a fair per-call toss.
func (w *runner) pick(origin cube.Coord, a cube.Axis, coin bool) (int, error) {
	first := true
	if coin {
		first = w.r.Intn(2) == 0
	}
	return w.c.PickOn(origin, a, first)
}

// sampleOff draws uniform coordinates until an Off cell turns up. Rejection
// sampling: Off cells fill (n³−n²)/n³ of the cube, so a handful of draws
// suffices. Requires at least one Off cell (guaranteed for any order ≥ 2);
// the loop would not terminate without one.
func (w *runner) sampleOff() cube.Coord {
	n := w.c.Order()
	for {
		p := cube.Coord{X: w.r.Intn(n), Y: w.r.Intn(n), Z: w.r.Intn(n)}
		if w.c.At(p) == cube.Off {
			return p
		}
	}
}
