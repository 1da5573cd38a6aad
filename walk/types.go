// Package walk - options and sentinel errors for the randomization walk.
package walk

import (
	"errors"
	"fmt"
	"math/rand"
)

// Sentinel errors for walk execution.
var (
	// ErrNilCube is returned if a nil cube pointer is passed.
	ErrNilCube = errors.New("walk: cube is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("walk: invalid option supplied")

	// ErrAcyclicOrder is returned by the intercalate-free mode for orders 2
	// and 4: every latin square of those orders contains an intercalate, so
	// the reshuffle loop could never terminate.
	ErrAcyclicOrder = errors.New("walk: no intercalate-free square exists for this order")

	// ErrAcyclicExhausted is returned when the intercalate-free mode uses up
	// its reshuffle rounds without reaching an intercalate-free square.
	ErrAcyclicExhausted = errors.New("walk: intercalate-free rounds exhausted")
)

// DefaultAcyclicRounds bounds the intercalate-free mode's reshuffle rounds
// when WithAcyclicRounds is not supplied.
const DefaultAcyclicRounds = 100

// Option configures the walk via functional arguments. An invalid Option
// (nil RNG, non-positive round count) is recorded internally and surfaced
// as ErrOptionViolation when the walk is invoked.
type Option func(*Options)

// Options holds the tunables of one randomization run.
type Options struct {
	// Seed selects the deterministic RNG stream when Rand is nil.
	// Seed 0 means the fixed library default, so zero-config runs are
	// reproducible; pass e.g. time.Now().UnixNano() for varied output.
	Seed int64

	// Rand, when non-nil, is used directly and Seed is ignored.
	// A *rand.Rand is not goroutine-safe; the run owns it exclusively.
	Rand *rand.Rand

	// AvoidIntercalates enables the experimental intercalate-free mode:
	// once the cube is proper, keep reshuffling until the square contains
	// no 2×2 latin subsquare. Costs an O(n⁴) scan per round and is not
	// part of the uniformity contract.
	AvoidIntercalates bool

	// AcyclicRounds bounds the reshuffle rounds of the intercalate-free
	// mode. Zero means DefaultAcyclicRounds.
	AcyclicRounds int

	// Verbose prints phase diagnostics (mixing, cleanup, reshuffle rounds)
	// to stdout.
	Verbose bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns the zero-config run: default deterministic seed,
// no intercalate scanning, quiet.
func DefaultOptions() Options {
	return Options{AcyclicRounds: DefaultAcyclicRounds}
}

// WithSeed selects the deterministic RNG stream and drops any previously
// set Rand (last option wins). Seed 0 keeps the fixed library default.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
		o.Rand = nil
	}
}

// WithRand supplies an explicit RNG, overriding the seed policy. The run
// advances r; never share it with another goroutine. Nil is recorded and
// surfaced as ErrOptionViolation.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r == nil {
			o.err = fmt.Errorf("%w: WithRand(nil)", ErrOptionViolation)
			return
		}
		o.Rand = r
	}
}

// WithAvoidIntercalates enables the intercalate-free reshuffle mode.
func WithAvoidIntercalates() Option {
	return func(o *Options) { o.AvoidIntercalates = true }
}

// WithAcyclicRounds bounds the intercalate-free mode's reshuffle rounds.
// Values below 1 are recorded and surfaced as ErrOptionViolation.
func WithAcyclicRounds(rounds int) Option {
	return func(o *Options) {
		if rounds < 1 {
			o.err = fmt.Errorf("%w: WithAcyclicRounds(%d)", ErrOptionViolation, rounds)
			return
		}
		o.AcyclicRounds = rounds
	}
}

// WithVerbose enables phase diagnostics on stdout.
func WithVerbose() Option {
	return func(o *Options) { o.Verbose = true }
}
