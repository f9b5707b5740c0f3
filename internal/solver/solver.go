// Package solver defines the puzzle solver contract and the registry to
// select solvers by year and day.
package solver

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

const (
	firstYear = 2015
	lastDay   = 25
)

var (
	// ErrInvalidKey is returned for malformed year or day selectors.
	ErrInvalidKey = errors.New("invalid solver key")
	// ErrUnknownSolver is returned if no solver is registered for a key.
	ErrUnknownSolver = errors.New("unknown solver")
)

// Answer is a labelled puzzle answer.
type Answer struct {
	Label string
	Value int
}

func (a Answer) String() string { return a.Label + ": " + strconv.Itoa(a.Value) }

// Answers are the answers of one puzzle in part order.
type Answers []Answer

// Values returns the answer values only.
func (as Answers) Values() []int {
	values := make([]int, len(as))
	for i, a := range as {
		values[i] = a.Value
	}
	return values
}

// Func solves a puzzle for the given input text.
type Func func(ctx context.Context, input string) (Answers, error)

// Key selects a puzzle.
type Key struct {
	Year, Day int
}

func parseSelector(prefix, s string) (int, error) {
	s = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), prefix)
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not a number", ErrInvalidKey, prefix, s)
	}
	return i, nil
}

// ParseKey parses year and day selectors. The year may be written as 2023 or
// year2023, the day as 4, 04 or day4.
func ParseKey(year, day string) (Key, error) {
	y, err := parseSelector("year", year)
	if err != nil {
		return Key{}, err
	}
	d, err := parseSelector("day", day)
	if err != nil {
		return Key{}, err
	}
	k := Key{Year: y, Day: d}
	if err := k.validate(); err != nil {
		return Key{}, err
	}
	return k, nil
}

func (k Key) validate() error {
	if k.Year < firstYear {
		return fmt.Errorf("%w: year %d before %d", ErrInvalidKey, k.Year, firstYear)
	}
	if k.Day < 1 || k.Day > lastDay {
		return fmt.Errorf("%w: day %d not in 1..%d", ErrInvalidKey, k.Day, lastDay)
	}
	return nil
}

// Compare orders keys by year and day. It returns -1, 0 or +1.
func (k Key) Compare(o Key) int {
	switch {
	case k.Year < o.Year:
		return -1
	case k.Year > o.Year:
		return 1
	case k.Day < o.Day:
		return -1
	case k.Day > o.Day:
		return 1
	}
	return 0
}

// String returns the package path of the key's solver below internal.
func (k Key) String() string { return fmt.Sprintf("year%d/day%d", k.Year, k.Day) }

// Registry maps keys to solvers.
type Registry struct {
	m    map[Key]Func
	keys []Key // sorted
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry { return &Registry{m: map[Key]Func{}} }

// Register adds a solver. Registering an invalid or duplicate key panics.
func (r *Registry) Register(key Key, fn Func) {
	if err := key.validate(); err != nil {
		panic(err)
	}
	if _, ok := r.m[key]; ok {
		panic(fmt.Sprintf("solver %s registered twice", key))
	}
	r.m[key] = fn
	i, _ := slices.BinarySearchFunc(r.keys, key, Key.Compare)
	r.keys = slices.Insert(r.keys, i, key)
}

// Lookup returns the solver registered for key.
func (r *Registry) Lookup(key Key) (Func, error) {
	fn, ok := r.m[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSolver, key)
	}
	return fn, nil
}

// Keys returns all registered keys ordered by year and day.
func (r *Registry) Keys() []Key { return slices.Clone(r.keys) }

// Len returns the number of registered solvers.
func (r *Registry) Len() int { return len(r.keys) }
