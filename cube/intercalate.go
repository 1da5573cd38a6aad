// Package cube - intercalate scan, the optional expensive post-check.
package cube

// Intercalate is a 2×2 latin subsquare: two rows, two columns and two
// symbols arranged crosswise. The four coordinates are the On cells of the
// pattern, ordered {x1,y1,z1}, {x2,y2,z1}, {x1,y2,z2}, {x2,y1,z2} with
// x1<x2 and y1<y2.
type Intercalate [4]Coord

// Intercalates returns every intercalate of the encoded square: row pair
// x1<x2 and column pair y1<y2 where one symbol sits at (x1,y1) and (x2,y2)
// while another sits crosswise at (x1,y2) and (x2,y1). Pairs are reported
// in row-major discovery order; an empty slice means intercalate-free.
//
// The default generation path never calls this; the walk's experimental
// intercalate-free mode does, once per reshuffle round.
//
// Returns ErrImproperCube while an improper cell is recorded (the encoded
// square is undefined), or a defect wrap from the underlying line scan.
//
// Complexity: O(n⁴) time after an O(n³) projection scan. Expensive: avoid
// on large orders or hot paths.
func (c *Cube) Intercalates() ([]Intercalate, error) {
	grid, err := c.symbolGrid()
	if err != nil {
		return nil, err
	}

	var found []Intercalate
	for x1 := 0; x1 < c.n; x1++ {
		for x2 := x1 + 1; x2 < c.n; x2++ {
			for y1 := 0; y1 < c.n; y1++ {
				for y2 := y1 + 1; y2 < c.n; y2++ {
					z1, z2 := grid[x1][y1], grid[x1][y2]
					if z1 == z2 || grid[x2][y2] != z1 || grid[x2][y1] != z2 {
						continue
					}
					found = append(found, Intercalate{
						{X: x1, Y: y1, Z: z1},
						{X: x2, Y: y2, Z: z1},
						{X: x1, Y: y2, Z: z2},
						{X: x2, Y: y1, Z: z2},
					})
				}
			}
		}
	}
	return found, nil
}
