package main

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/latinsquare/cube"
	"github.com/katalvlaran/latinsquare/square"
)

// parseRender rebuilds a Square from the CLI's stdout text, failing the
// test on any structural mismatch. The content is random (clock seeded);
// the shape and the latin property are not.
func parseRender(t *testing.T, out string, order int) *square.Square {
	t.Helper()

	header := "Latin square of size " + strconv.Itoa(order) + "\n\n"
	require.True(t, strings.HasPrefix(out, header), "unexpected header in %q", out)

	body := strings.TrimSuffix(strings.TrimPrefix(out, header), "\n")
	rows := strings.Split(body, "\n\n")
	require.Len(t, rows, order)

	grid := make([][]int, order)
	for r, row := range rows {
		cells := strings.Split(row, "   ")
		require.Len(t, cells, order, "row %d: %q", r, row)
		grid[r] = make([]int, order)
		for c, cell := range cells {
			v, err := strconv.Atoi(cell)
			require.NoError(t, err, "row %d cell %d: %q", r, c, cell)
			grid[r][c] = v
		}
	}
	sq, err := square.FromGrid(grid)
	require.NoError(t, err)
	return sq
}

func execute(args []string) (string, string, error) {
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRun_ExplicitOrder(t *testing.T) {
	out, _, err := execute([]string{"3"})
	require.NoError(t, err)
	sq := parseRender(t, out, 3)
	assert.True(t, sq.IsLatin())
}

func TestRun_DefaultOrder(t *testing.T) {
	out, _, err := execute([]string{})
	require.NoError(t, err)
	sq := parseRender(t, out, defaultOrder)
	assert.True(t, sq.IsLatin())
}

func TestRun_UnparsableFallsBack(t *testing.T) {
	out, _, err := execute([]string{"banana"})
	require.NoError(t, err)
	sq := parseRender(t, out, defaultOrder)
	assert.True(t, sq.IsLatin())
}

func TestRun_RejectsOrderOne(t *testing.T) {
	_, errOut, err := execute([]string{"1"})
	require.Error(t, err)
	assert.ErrorIs(t, err, cube.ErrInvalidOrder)
	assert.Contains(t, errOut, "order")
}
