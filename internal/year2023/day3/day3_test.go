package day3

import (
	"context"
	"testing"

	"github.com/go-ricrob/aoc/internal/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const example = `467..114..
...*......
..35..633.
......#...
617*......
.....+.58.
..592.....
......755.
...$.*....
.664.598..
`

func TestIsSymbol(t *testing.T) {
	for _, b := range []byte("*#+$/=@%&-") {
		assert.True(t, isSymbol(b), string(b))
	}
	for _, b := range []byte(".0123456789") {
		assert.False(t, isSymbol(b), string(b))
	}
}

func TestParse(t *testing.T) {
	sc, err := parse(example)
	require.NoError(t, err)
	assert.Len(t, sc.numbers, 10)
	assert.Len(t, sc.touches, 6)
	assert.Equal(t, []grid.Number{
		{Row: 0, Start: 0, End: 3, Value: 467},
		{Row: 2, Start: 2, End: 4, Value: 35},
	}, sc.touches[grid.Pt{X: 3, Y: 1}])
}

func TestSums(t *testing.T) {
	sc, err := parse(example)
	require.NoError(t, err)
	assert.Equal(t, 4361, sc.partNumberSum())
	assert.Equal(t, 467835, sc.gearRatioSum())
}

func TestNumberCountsOnce(t *testing.T) {
	sc, err := parse("*12*\n")
	require.NoError(t, err)
	assert.Equal(t, 12, sc.partNumberSum())
	assert.Equal(t, 0, sc.gearRatioSum())

	sc, err = parse("2*3\n#..\n")
	require.NoError(t, err)
	assert.Equal(t, 5, sc.partNumberSum())
	assert.Equal(t, 6, sc.gearRatioSum())

	sc, err = parse("2#3\n")
	require.NoError(t, err)
	assert.Equal(t, 0, sc.gearRatioSum())

	// symbols on the first and last row and column
	sc, err = parse("*...\n.1.2\n...*\n")
	require.NoError(t, err)
	assert.Equal(t, 3, sc.partNumberSum())
	assert.Equal(t, 0, sc.gearRatioSum())
	assert.Len(t, sc.touches, 2)
}

func TestSolve(t *testing.T) {
	answers, err := Solve(context.Background(), example)
	require.NoError(t, err)
	assert.Equal(t, []int{4361, 467835}, answers.Values())
}
