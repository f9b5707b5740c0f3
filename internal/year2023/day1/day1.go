// Package day1 solves the calibration document puzzle: recover two-digit
// values from lines of noisy text.
package day1

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-ricrob/aoc/internal/input"
	"github.com/go-ricrob/aoc/internal/solver"
)

var errNoDigit = errors.New("no digit")

var words = [...]string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

// digitAt returns the digit starting at index i of line. Spelled out digits
// are only recognized if spelled is set.
func digitAt(line string, i int, spelled bool) (int, bool) {
	if b := line[i]; b >= '1' && b <= '9' {
		return int(b - '0'), true
	}
	if !spelled {
		return 0, false
	}
	for n, word := range words {
		if strings.HasPrefix(line[i:], word) {
			return n + 1, true
		}
	}
	return 0, false
}

// calibrationValue combines the first and the last digit of line.
// Overlapping words count for both digits, so "eightwo" is 82.
func calibrationValue(line string, spelled bool) (int, error) {
	first, last := -1, -1
	for i := range len(line) {
		if d, ok := digitAt(line, i, spelled); ok {
			if first < 0 {
				first = d
			}
			last = d
		}
	}
	if first < 0 {
		return 0, fmt.Errorf("%w in %q", errNoDigit, line)
	}
	return 10*first + last, nil
}

func sum(lines []string, spelled bool) (int, error) {
	total := 0
	for i, line := range lines {
		v, err := calibrationValue(line, spelled)
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", i+1, err)
		}
		total += v
	}
	return total, nil
}

// Solve returns the sum of the calibration values with digits only and
// with spelled out digits.
func Solve(_ context.Context, s string) (solver.Answers, error) {
	lines := input.Lines(s)
	digits, err := sum(lines, false)
	if err != nil {
		return nil, err
	}
	spelled, err := sum(lines, true)
	if err != nil {
		return nil, err
	}
	return solver.Answers{
		{Label: "Sum of calibration values", Value: digits},
		{Label: "Sum of calibration values with spelled digits", Value: spelled},
	}, nil
}
