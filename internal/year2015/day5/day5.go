// Package day5 decides which strings on Santa's list are nice.
package day5

import (
	"context"
	"strings"

	"github.com/go-ricrob/aoc/internal/input"
	"github.com/go-ricrob/aoc/internal/solver"
)

const vowels = "aeiou"

var banned = [...]string{"ab", "cd", "pq", "xy"}

// IsNice reports whether s contains at least three vowels, one letter twice
// in a row and none of the banned pairs.
func IsNice(s string) bool {
	numVowels := 0
	hasDouble := false
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(vowels, s[i]) >= 0 {
			numVowels++
		}
		if i+1 == len(s) {
			break
		}
		pair := s[i : i+2]
		for _, b := range banned {
			if pair == b {
				return false
			}
		}
		if s[i] == s[i+1] {
			hasDouble = true
		}
	}
	return numVowels >= 3 && hasDouble
}

// IsNiceNew reports whether s contains a pair of letters twice without
// overlap and a letter repeated with exactly one letter between.
func IsNiceNew(s string) bool {
	return hasRepeatedPair(s) && hasSandwich(s)
}

func hasRepeatedPair(s string) bool {
	firstAt := map[string]int{} // pair -> first index
	for i := 0; i+1 < len(s); i++ {
		pair := s[i : i+2]
		j, ok := firstAt[pair]
		if !ok {
			firstAt[pair] = i
			continue
		}
		if i-j >= 2 {
			return true
		}
	}
	return false
}

func hasSandwich(s string) bool {
	for i := 0; i+2 < len(s); i++ {
		if s[i] == s[i+2] {
			return true
		}
	}
	return false
}

func count(lines []string, nice func(string) bool) int {
	n := 0
	for _, line := range lines {
		if nice(strings.TrimSpace(line)) {
			n++
		}
	}
	return n
}

// Solve returns the number of nice strings by the old and by the new rules.
func Solve(_ context.Context, s string) (solver.Answers, error) {
	lines := input.Lines(s)
	return solver.Answers{
		{Label: "Nice strings", Value: count(lines, IsNice)},
		{Label: "Nice strings by the new rules", Value: count(lines, IsNiceNew)},
	}, nil
}
