// Package walk randomizes an incidence cube with the Jacobson–Matthews
// random walk, producing a latin square drawn approximately uniformly at
// random from all latin squares of its order.
//
// What
//
//   - Randomize(c): the two-phase walk driver: exactly n³ move steps of
//     mixing, then cleanup steps until the cube is proper again.
//   - Generate(n): cyclic cube → Randomize → Project, in one call.
//   - One move step: choose an origin (the recorded improper cell, or a
//     fresh uniformly sampled Off cell), pick one partner coordinate per
//     axis along the origin's lines, and flip the eight corners of the
//     spanned 2×2×2 box, raising four cells and lowering four.
//   - DeriveSeed: SplitMix64 seed derivation for callers running
//     independent generations in parallel workers.
//   - An experimental intercalate-free mode (WithAvoidIntercalates) that
//     reruns whole rounds until the square has no 2×2 latin subsquare.
//
// Why
//
//	The walk is a symmetric Markov chain over proper cubes plus cubes with
//	exactly one improper cell; restricted to the proper subspace its
//	stationary distribution is uniform over latin squares (Jacobson &
//	Matthews, "Generating uniformly distributed random latin squares",
//	1996). Everything statistical hangs on two details this package owns:
//	from a proper cube the partner picks are forced (each line holds one
//	On cell), from an improper cube each pick tosses a fair coin between
//	the line's two On cells.
//
// Determinism
//
//	Randomness is explicit and injectable. WithSeed(s) fixes the stream
//	(same seed ⇒ identical square); seed 0 means a fixed library default,
//	so even zero-config runs reproduce. WithRand supplies a caller-owned
//	*rand.Rand. The library never reads the clock.
//
// Complexity (order n)
//
//   - Time:  O(n⁴) expected: n³ mixing steps at O(n) each, plus a short
//     unbounded cleanup tail.
//   - Space: O(1) beyond the cube itself.
//   - Intercalate-free mode: + O(n⁴) scan per reshuffle round.
//
// Usage
//
//	// One-call generation, fixed seed:
//	sq, err := walk.Generate(6, walk.WithSeed(42))
//	if err != nil { ... }
//	fmt.Println(sq)
//
//	// Phased, reusing a cube you built yourself:
//	c, _ := cube.NewCyclic(6)
//	if err := walk.Randomize(c, walk.WithSeed(42)); err != nil { ... }
//	sq, _ := c.Project()
//
//	// Independent parallel runs, one derived stream per worker:
//	seed := walk.DeriveSeed(base, uint64(workerID))
//	sq, err := walk.Generate(6, walk.WithSeed(seed))
//
// Options
//
//   - DefaultOptions(): default seed, no intercalate scanning, quiet.
//   - WithSeed(s):            fix the RNG stream (0 = library default).
//   - WithRand(r):            use a caller-owned RNG; nil is a violation.
//   - WithAvoidIntercalates(): reshuffle until intercalate-free (orders 2
//     and 4 are rejected, no such square exists there).
//   - WithAcyclicRounds(k):   bound the reshuffle rounds (default 100).
//   - WithVerbose():          print phase diagnostics to stdout.
//
// Errors
//
//   - ErrNilCube            if the cube pointer is nil.
//   - ErrOptionViolation    if an invalid Option was supplied.
//   - ErrAcyclicOrder       intercalate-free mode on order 2 or 4.
//   - ErrAcyclicExhausted   intercalate-free rounds used up.
//   - cube.ErrDefect wraps  if a move meets a corrupted cube; discard it.
package walk
