package walk_test

import (
	"fmt"

	"github.com/katalvlaran/latinsquare/cube"
	"github.com/katalvlaran/latinsquare/walk"
)

// ExampleGenerate draws a random latin square of order 4 with a fixed seed.
// The square itself varies with the seed; its shape and latin property do
// not.
func ExampleGenerate() {
	sq, err := walk.Generate(4, walk.WithSeed(42))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(sq.Order(), sq.IsLatin())
	// Output:
	// 4 true
}

// ExampleRandomize shows the phased form: build a cube, randomize it in
// place, then project.
func ExampleRandomize() {
	c, err := cube.NewCyclic(3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if err = walk.Randomize(c, walk.WithSeed(7)); err != nil {
		fmt.Println("error:", err)
		return
	}
	sq, err := c.Project()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(sq.IsLatin())
	// Output:
	// true
}

// ExampleWithAvoidIntercalates keeps reshuffling until the square holds no
// 2×2 latin subsquare.
func ExampleWithAvoidIntercalates() {
	c, err := cube.NewCyclic(5)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if err = walk.Randomize(c, walk.WithSeed(11), walk.WithAvoidIntercalates()); err != nil {
		fmt.Println("error:", err)
		return
	}
	found, err := c.Intercalates()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(len(found))
	// Output:
	// 0
}
