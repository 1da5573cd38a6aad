package walk_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/latinsquare/cube"
	"github.com/katalvlaran/latinsquare/walk"
)

// BenchmarkRandomize_Order8 measures steady-state reshuffling of one cube:
// n³ mixing steps plus cleanup per iteration, a fresh stream each time.
func BenchmarkRandomize_Order8(b *testing.B) {
	c, err := cube.NewCyclic(8)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if err = walk.Randomize(c, walk.WithSeed(walk.DeriveSeed(42, uint64(i)))); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkGenerate measures the full pipeline (cube build, walk,
// projection) across orders.
func BenchmarkGenerate(b *testing.B) {
	for _, order := range []int{4, 8, 16} {
		b.Run(fmt.Sprintf("order%d", order), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if _, err := walk.Generate(order, walk.WithSeed(walk.DeriveSeed(7, uint64(i)))); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
