// Package day2 solves the cube conundrum: an elf draws handfuls of colored
// cubes from a bag and we reason about the bag's content.
package day2

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-ricrob/aoc/internal/input"
	"github.com/go-ricrob/aoc/internal/solver"
)

var (
	errMalformedGame = errors.New("malformed game")
	errUnknownColor  = errors.New("unknown color")
)

// limit is the bag content the possible games are checked against.
var limit = Draw{Red: 12, Green: 13, Blue: 14}

// Draw is one handful of cubes.
type Draw struct {
	Red, Green, Blue int
}

// within reports whether no color of d exceeds the one of o.
func (d Draw) within(o Draw) bool {
	return d.Red <= o.Red && d.Green <= o.Green && d.Blue <= o.Blue
}

// Game is the sequence of draws of one game.
type Game struct {
	ID    int
	Draws []Draw
}

// Possible reports whether all draws could come from a bag holding limit.
func (g *Game) Possible(limit Draw) bool {
	for _, d := range g.Draws {
		if !d.within(limit) {
			return false
		}
	}
	return true
}

// Minimum returns the fewest cubes per color the bag must have held.
func (g *Game) Minimum() Draw {
	var m Draw
	for _, d := range g.Draws {
		m.Red = max(m.Red, d.Red)
		m.Green = max(m.Green, d.Green)
		m.Blue = max(m.Blue, d.Blue)
	}
	return m
}

// Power is the product of the minimum cube counts.
func (g *Game) Power() int {
	m := g.Minimum()
	return m.Red * m.Green * m.Blue
}

// parseDraw parses "3 blue, 4 red".
func parseDraw(s string) (Draw, error) {
	var d Draw
	for _, part := range strings.Split(s, ",") {
		fields := strings.Fields(part)
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			return Draw{}, fmt.Errorf("%w: cube count %q", errMalformedGame, part)
		}
		n, err := strconv.Atoi(fields[0])
		if err != nil {
			return Draw{}, fmt.Errorf("%w: cube count %q", errMalformedGame, part)
		}
		switch fields[1] {
		case "red":
			d.Red += n
		case "green":
			d.Green += n
		case "blue":
			d.Blue += n
		default:
			return Draw{}, fmt.Errorf("%w %q", errUnknownColor, fields[1])
		}
	}
	return d, nil
}

// ParseGame parses "Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green".
func ParseGame(line string) (*Game, error) {
	header, draws, ok := strings.Cut(line, ":")
	if !ok {
		return nil, fmt.Errorf("%w: missing ':' in %q", errMalformedGame, line)
	}
	id, err := input.FirstInt(header)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errMalformedGame, err)
	}
	g := &Game{ID: id}
	if strings.TrimSpace(draws) == "" {
		return g, nil
	}
	for _, s := range strings.Split(draws, ";") {
		d, err := parseDraw(s)
		if err != nil {
			return nil, fmt.Errorf("game %d: %w", id, err)
		}
		g.Draws = append(g.Draws, d)
	}
	return g, nil
}

// Solve returns the sum of the ids of the possible games and the sum of the
// powers of all games.
func Solve(_ context.Context, s string) (solver.Answers, error) {
	var idTotal, powerTotal int
	for _, line := range input.Lines(s) {
		g, err := ParseGame(line)
		if err != nil {
			return nil, err
		}
		if g.Possible(limit) {
			idTotal += g.ID
		}
		powerTotal += g.Power()
	}
	return solver.Answers{
		{Label: "The total of the possible game IDs", Value: idTotal},
		{Label: "The total power of the games", Value: powerTotal},
	}, nil
}
