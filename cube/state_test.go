package cube

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// White-box checks for the axis helpers and the tag/grid consistency guard.

func TestWithAxis(t *testing.T) {
	c := Coord{X: 1, Y: 2, Z: 3}
	assert.Equal(t, Coord{X: 9, Y: 2, Z: 3}, withAxis(c, AxisX, 9))
	assert.Equal(t, Coord{X: 1, Y: 9, Z: 3}, withAxis(c, AxisY, 9))
	assert.Equal(t, Coord{X: 1, Y: 2, Z: 9}, withAxis(c, AxisZ, 9))
	assert.Equal(t, Coord{X: 1, Y: 2, Z: 3}, c, "withAxis must not mutate its input")
}

func TestCoord_AlongAdvance(t *testing.T) {
	c := Coord{X: 4, Y: 5, Z: 6}
	assert.Equal(t, 4, c.Along(AxisX))
	assert.Equal(t, 5, c.Along(AxisY))
	assert.Equal(t, 6, c.Along(AxisZ))

	c.Advance(AxisY)
	assert.Equal(t, Coord{X: 4, Y: 6, Z: 6}, c)
}

func TestFindOnAlong_StartsMidLine(t *testing.T) {
	c, err := NewCyclic(4)
	require.NoError(t, err)

	// Line (0,·,2) holds its On at y=2. A scan starting past it misses.
	idx, ok := c.findOnAlong(Coord{X: 0, Y: 0, Z: 2}, AxisY)
	require.True(t, ok)
	assert.Equal(t, 2, idx)

	_, ok = c.findOnAlong(Coord{X: 0, Y: 3, Z: 2}, AxisY)
	assert.False(t, ok)
}

func TestRaise_RejectsUntrackedImproper(t *testing.T) {
	c, err := NewCyclic(2)
	require.NoError(t, err)

	// Plant an Improper cell behind the tag's back; Raise must refuse to
	// treat grid and tag as consistent.
	p := Coord{X: 1, Y: 1, Z: 1}
	c.cells[c.idx(p)] = Improper

	assert.ErrorIs(t, c.Raise(p), ErrDefect)
}

func TestCellState_String(t *testing.T) {
	assert.Equal(t, "Off", Off.String())
	assert.Equal(t, "On", On.String())
	assert.Equal(t, "Improper", Improper.String())
	assert.Equal(t, "x", AxisX.String())
	assert.Equal(t, "y", AxisY.String())
	assert.Equal(t, "z", AxisZ.String())
}
