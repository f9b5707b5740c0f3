// Package day3 solves the gear ratios puzzle on an engine schematic.
package day3

import (
	"context"

	"github.com/go-ricrob/aoc/internal/grid"
	"github.com/go-ricrob/aoc/internal/input"
	"github.com/go-ricrob/aoc/internal/solver"
	"golang.org/x/exp/maps"
)

const gear = '*'

func isSymbol(b byte) bool { return b != '.' && (b < '0' || b > '9') }

// schematic links every symbol to the numbers next to it.
type schematic struct {
	grid    *grid.Grid
	numbers []grid.Number
	touches map[grid.Pt][]grid.Number // symbol -> adjacent numbers
}

func parse(s string) (*schematic, error) {
	g := grid.New(input.Lines(s))
	numbers, err := g.Numbers()
	if err != nil {
		return nil, err
	}
	rows := map[int][]grid.Number{}
	for _, n := range numbers {
		rows[n.Row] = append(rows[n.Row], n)
	}
	sc := &schematic{grid: g, numbers: numbers, touches: map[grid.Pt][]grid.Number{}}
	for _, p := range g.Find(isSymbol) {
		for y := p.Y - 1; y <= p.Y+1; y++ {
			for _, n := range rows[y] {
				if n.Adjacent(p) {
					sc.touches[p] = append(sc.touches[p], n)
				}
			}
		}
	}
	return sc, nil
}

// partNumberSum returns the sum of all numbers adjacent to a symbol. A
// number touching several symbols counts once.
func (sc *schematic) partNumberSum() int {
	parts := map[grid.Number]bool{}
	for _, numbers := range maps.Values(sc.touches) {
		for _, n := range numbers {
			parts[n] = true
		}
	}
	sum := 0
	for n := range parts {
		sum += n.Value
	}
	return sum
}

// gearRatioSum returns the sum of the products of the two numbers of every
// gear symbol touching exactly two numbers.
func (sc *schematic) gearRatioSum() int {
	sum := 0
	for p, numbers := range sc.touches {
		if b, _ := sc.grid.At(p); b != gear || len(numbers) != 2 {
			continue
		}
		sum += numbers[0].Value * numbers[1].Value
	}
	return sum
}

// Solve returns the sum of the part numbers and the sum of the gear ratios.
func Solve(_ context.Context, s string) (solver.Answers, error) {
	sc, err := parse(s)
	if err != nil {
		return nil, err
	}
	return solver.Answers{
		{Label: "Sum of part numbers touching symbols", Value: sc.partNumberSum()},
		{Label: "Sum of gear ratios", Value: sc.gearRatioSum()},
	}, nil
}
