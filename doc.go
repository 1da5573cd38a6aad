// Package latinsquare generates random latin squares, drawn approximately
// uniformly from all squares of a given order via the Jacobson–Matthews
// incidence-cube walk.
//
// 🚀 What is latinsquare?
//
//	A small, deterministic-by-default sampling library that brings together:
//		• Square values: cyclic construction, grid import, validation, rendering
//		• Incidence cubes: the n×n×n tri-state view a square projects out of
//		• The walk: n³ eight-cell mixing moves, then cleanup back to proper
//		• Intercalate tools: find 2×2 latin subsquares, or reshuffle them away
//		• A CLI: latinsq [order] prints one random square
//
// ✨ Why choose latinsquare?
//
//   - Uniform sampling – the Jacobson–Matthews chain, not naive row shuffling
//   - Reproducible – explicit seeds, same seed ⇒ same square, no hidden clock
//   - Parallel-friendly – one derived seed per worker, zero shared state
//   - Honest failures – sentinel errors for bad orders and broken invariants
//
// Under the hood, everything is organized under three subpackages:
//
//	square/ — the 2D value: construction, validation, text rendering
//	cube/   — cell states, axes, raise/lower moves, projection, intercalates
//	walk/   — options, seeded RNG policy, mixing+cleanup driver, Generate
//
// Quick example:
//
//	sq, err := walk.Generate(5, walk.WithSeed(42))
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(sq)
//
// Dive into each package's doc.go for the invariants, complexity notes and
// error contracts.
//
//	go get github.com/katalvlaran/latinsquare
package latinsquare
