// Package day5 solves the seed almanac puzzle: seeds are converted through
// a chain of category maps down to locations.
package day5

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-ricrob/aoc/internal/input"
	"github.com/go-ricrob/aoc/internal/interval"
	"github.com/go-ricrob/aoc/internal/solver"
)

const (
	seedCategory     = "seed"
	locationCategory = "location"
)

var (
	errMalformedAlmanac = errors.New("malformed almanac")
	errNoSeeds          = errors.New("no seeds")
)

// Almanac is the parsed puzzle input.
type Almanac struct {
	Seeds []int
	Maps  []*interval.Map
}

// parseHeader parses "seed-to-soil map:".
func parseHeader(line string) (source, destination string, err error) {
	name, ok := strings.CutSuffix(strings.TrimSpace(line), " map:")
	if !ok {
		return "", "", fmt.Errorf("%w: map header %q", errMalformedAlmanac, line)
	}
	source, destination, ok = strings.Cut(name, "-to-")
	if !ok || source == "" || destination == "" {
		return "", "", fmt.Errorf("%w: map header %q", errMalformedAlmanac, line)
	}
	return source, destination, nil
}

// parseMap parses a header line followed by "destination source length"
// lines.
func parseMap(lines []string) (*interval.Map, error) {
	source, destination, err := parseHeader(lines[0])
	if err != nil {
		return nil, err
	}
	m := &interval.Map{Source: source, Destination: destination}
	for _, line := range lines[1:] {
		ints, err := input.Ints(line)
		if err != nil {
			return nil, err
		}
		if len(ints) != 3 {
			return nil, fmt.Errorf("%w: range %q in %s map", errMalformedAlmanac, line, name(m))
		}
		m.Shifts = append(m.Shifts, interval.NewShift(ints[0], ints[1], ints[2]))
	}
	return m, nil
}

func name(m *interval.Map) string { return m.Source + "-to-" + m.Destination }

// Parse parses the almanac. Sections are separated by blank lines.
func Parse(s string) (*Almanac, error) {
	var sections [][]string
	var section []string
	for _, line := range append(input.Lines(s), "") {
		if strings.TrimSpace(line) != "" {
			section = append(section, line)
			continue
		}
		if section != nil {
			sections = append(sections, section)
			section = nil
		}
	}
	if len(sections) == 0 {
		return nil, errNoSeeds
	}

	seeds, ok := strings.CutPrefix(sections[0][0], "seeds:")
	if !ok || len(sections[0]) != 1 {
		return nil, fmt.Errorf("%w: seeds line %q", errMalformedAlmanac, sections[0][0])
	}
	a := new(Almanac)
	var err error
	if a.Seeds, err = input.Ints(seeds); err != nil {
		return nil, err
	}
	if len(a.Seeds) == 0 {
		return nil, errNoSeeds
	}
	for _, section := range sections[1:] {
		m, err := parseMap(section)
		if err != nil {
			return nil, err
		}
		a.Maps = append(a.Maps, m)
	}
	return a, nil
}

// SeedRanges interprets the seeds as pairs of start and length.
func (a *Almanac) SeedRanges() ([]interval.Range, error) {
	if len(a.Seeds)%2 != 0 {
		return nil, fmt.Errorf("%w: odd number of seed range values %d", errMalformedAlmanac, len(a.Seeds))
	}
	rs := make([]interval.Range, 0, len(a.Seeds)/2)
	for i := 0; i < len(a.Seeds); i += 2 {
		rs = append(rs, interval.Range{Start: a.Seeds[i], End: a.Seeds[i] + a.Seeds[i+1]})
	}
	return rs, nil
}

func checkLocation(category string) error {
	if category != locationCategory {
		return fmt.Errorf("%w: chain ends at %s instead of %s", errMalformedAlmanac, category, locationCategory)
	}
	return nil
}

// lowestLocation returns the lowest location of the listed seeds.
func lowestLocation(chain *interval.Chain, seeds []int) (int, error) {
	lowest := -1
	for _, seed := range seeds {
		category, location, err := chain.Resolve(seedCategory, seed)
		if err != nil {
			return 0, err
		}
		if err := checkLocation(category); err != nil {
			return 0, err
		}
		if lowest < 0 || location < lowest {
			lowest = location
		}
	}
	return lowest, nil
}

// lowestRangeLocation returns the lowest location of all seeds in rs.
func lowestRangeLocation(chain *interval.Chain, rs []interval.Range) (int, error) {
	category, locations, err := chain.ResolveRanges(seedCategory, rs)
	if err != nil {
		return 0, err
	}
	if err := checkLocation(category); err != nil {
		return 0, err
	}
	lowest := -1
	for _, r := range locations {
		if !r.Empty() && (lowest < 0 || r.Start < lowest) {
			lowest = r.Start
		}
	}
	if lowest < 0 {
		return 0, errNoSeeds
	}
	return lowest, nil
}

// Solve returns the lowest location of the listed seeds and of the seed
// ranges.
func Solve(_ context.Context, s string) (solver.Answers, error) {
	a, err := Parse(s)
	if err != nil {
		return nil, err
	}
	chain, err := interval.NewChain(a.Maps)
	if err != nil {
		return nil, err
	}
	lowest, err := lowestLocation(chain, a.Seeds)
	if err != nil {
		return nil, err
	}
	rs, err := a.SeedRanges()
	if err != nil {
		return nil, err
	}
	lowestRange, err := lowestRangeLocation(chain, rs)
	if err != nil {
		return nil, err
	}
	return solver.Answers{
		{Label: "Minimum location", Value: lowest},
		{Label: "Minimum location of seed ranges", Value: lowestRange},
	}, nil
}
