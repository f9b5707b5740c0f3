// Package input provides helpers to split and scan puzzle input text.
package input

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// ErrNoNumber is returned if a string does not contain any decimal number.
var ErrNoNumber = errors.New("no number found")

var numberRx = regexp.MustCompile(`\d+`)

// Read returns the content of the input file at path.
func Read(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(b), nil
}

// Lines splits s into lines. Carriage returns at line ends are removed and
// a final newline does not produce an empty last line.
func Lines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(s, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, "\r")
	}
	return lines
}

// Ints returns all unsigned decimal numbers in s in order of appearance.
func Ints(s string) ([]int, error) {
	matches := numberRx.FindAllString(s, -1)
	ints := make([]int, 0, len(matches))
	for _, m := range matches {
		i, err := strconv.Atoi(m)
		if err != nil {
			return nil, fmt.Errorf("parse number %q: %w", m, err)
		}
		ints = append(ints, i)
	}
	return ints, nil
}

// FirstInt returns the first unsigned decimal number in s.
func FirstInt(s string) (int, error) {
	m := numberRx.FindString(s)
	if m == "" {
		return 0, fmt.Errorf("%w in %q", ErrNoNumber, s)
	}
	return strconv.Atoi(m)
}

// JoinedInt concatenates all digits in s, ignoring everything else, and
// returns the resulting number.
func JoinedInt(s string) (int, error) {
	digits := strings.Join(numberRx.FindAllString(s, -1), "")
	if digits == "" {
		return 0, fmt.Errorf("%w in %q", ErrNoNumber, s)
	}
	return strconv.Atoi(digits)
}
