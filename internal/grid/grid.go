// Package grid provides points and character grids for puzzle boards.
package grid

import (
	"fmt"
	"strconv"

	"golang.org/x/exp/constraints"
)

// Point is a two dimensional coordinate. X is the column, Y the row.
type Point[T constraints.Signed] struct {
	X, Y T
}

// Pt is the point type used for character grids.
type Pt = Point[int]

func (p Point[T]) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Grid is a rectangular or ragged board of characters.
type Grid struct {
	rows [][]byte
}

// New returns a grid of lines. Rows may have different lengths.
func New(lines []string) *Grid {
	g := &Grid{rows: make([][]byte, len(lines))}
	for i, line := range lines {
		g.rows[i] = []byte(line)
	}
	return g
}

// In reports whether p addresses a cell of the grid.
func (g *Grid) In(p Pt) bool {
	return p.Y >= 0 && p.Y < len(g.rows) && p.X >= 0 && p.X < len(g.rows[p.Y])
}

// At returns the character at p and false if p is outside of the grid.
func (g *Grid) At(p Pt) (byte, bool) {
	if !g.In(p) {
		return 0, false
	}
	return g.rows[p.Y][p.X], true
}

// Find returns the points of all cells matching pred in row-major order.
func (g *Grid) Find(pred func(b byte) bool) []Pt {
	var pts []Pt
	for y, row := range g.rows {
		for x, b := range row {
			if pred(b) {
				pts = append(pts, Pt{x, y})
			}
		}
	}
	return pts
}

// Number is a maximal run of decimal digits in a grid row.
type Number struct {
	Row        int
	Start, End int // End is exclusive
	Value      int
}

// Numbers returns all digit runs of line, which is row number row.
func Numbers(row int, line string) ([]Number, error) {
	var numbers []Number
	for i := 0; i < len(line); {
		if !isDigit(line[i]) {
			i++
			continue
		}
		j := i
		for j < len(line) && isDigit(line[j]) {
			j++
		}
		v, err := strconv.Atoi(line[i:j])
		if err != nil {
			return nil, fmt.Errorf("row %d column %d: %w", row, i, err)
		}
		numbers = append(numbers, Number{Row: row, Start: i, End: j, Value: v})
		i = j
	}
	return numbers, nil
}

// Numbers returns the digit runs of all grid rows.
func (g *Grid) Numbers() ([]Number, error) {
	var numbers []Number
	for y, row := range g.rows {
		n, err := Numbers(y, string(row))
		if err != nil {
			return nil, err
		}
		numbers = append(numbers, n...)
	}
	return numbers, nil
}

// Adjacent reports whether p touches the number horizontally, vertically or
// diagonally.
func (n Number) Adjacent(p Pt) bool {
	if p.Y == n.Row && p.X >= n.Start && p.X < n.End {
		return false
	}
	return p.Y >= n.Row-1 && p.Y <= n.Row+1 && p.X >= n.Start-1 && p.X <= n.End
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
