package square_test

import (
	"fmt"

	"github.com/katalvlaran/latinsquare/square"
)

// ExampleNewCyclic renders the canonical cyclic square of order 3.
func ExampleNewCyclic() {
	sq, _ := square.NewCyclic(3)
	fmt.Println(sq)
	// Output:
	// Latin square of size 3
	//
	// 0   1   2
	//
	// 1   2   0
	//
	// 2   0   1
}

// ExampleSquare_Validate shows the latin property failing on a grid that
// repeats a symbol within a column.
func ExampleSquare_Validate() {
	sq, _ := square.FromGrid([][]int{
		{0, 1},
		{0, 1},
	})
	fmt.Println(sq.IsLatin())
	fmt.Println(sq.Validate())
	// Output:
	// false
	// square: duplicate symbol in row or column: symbol 0 twice in column 0
}
