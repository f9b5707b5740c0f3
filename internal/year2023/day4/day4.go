// Package day4 solves the scratchcards puzzle.
package day4

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-ricrob/aoc/internal/input"
	"github.com/go-ricrob/aoc/internal/solver"
	"golang.org/x/exp/slices"
)

var errMalformedCard = errors.New("malformed card")

// Card is a scratchcard: the winning numbers left of the bar and the drawn
// numbers right of it.
type Card struct {
	Winning []int
	Drawn   []int
}

// ParseCard parses "Card 1: 41 48 83 86 17 | 83 86  6 31 17  9 48 53".
func ParseCard(line string) (*Card, error) {
	_, numbers, ok := strings.Cut(line, ":")
	if !ok {
		return nil, fmt.Errorf("%w: missing ':' in %q", errMalformedCard, line)
	}
	winning, drawn, ok := strings.Cut(numbers, "|")
	if !ok {
		return nil, fmt.Errorf("%w: missing '|' in %q", errMalformedCard, line)
	}
	c := new(Card)
	var err error
	if c.Winning, err = input.Ints(winning); err != nil {
		return nil, err
	}
	if c.Drawn, err = input.Ints(drawn); err != nil {
		return nil, err
	}
	return c, nil
}

// Matches returns the number of drawn numbers that are winning numbers.
func (c *Card) Matches() int {
	n := 0
	for _, d := range c.Drawn {
		if slices.Contains(c.Winning, d) {
			n++
		}
	}
	return n
}

// Score is one point for the first match, doubled for every further match.
func (c *Card) Score() int {
	n := c.Matches()
	if n == 0 {
		return 0
	}
	return 1 << (n - 1)
}

// countCards returns the total number of cards after every card has won
// copies of the cards following it. Wins beyond the last card are dropped.
func countCards(cards []*Card) int {
	copies := make([]int, len(cards))
	for i := range copies {
		copies[i] = 1
	}
	total := 0
	for i, c := range cards {
		last := min(i+c.Matches(), len(cards)-1)
		for j := i + 1; j <= last; j++ {
			copies[j] += copies[i]
		}
		total += copies[i]
	}
	return total
}

// Solve returns the sum of the card scores and the total number of cards won.
func Solve(_ context.Context, s string) (solver.Answers, error) {
	var cards []*Card
	score := 0
	for i, line := range input.Lines(s) {
		c, err := ParseCard(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		cards = append(cards, c)
		score += c.Score()
	}
	return solver.Answers{
		{Label: "Sum of scratch card scores", Value: score},
		{Label: "Sum of scratch cards generated", Value: countCards(cards)},
	}, nil
}
