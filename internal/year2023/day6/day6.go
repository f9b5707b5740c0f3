// Package day6 solves the toy boat race puzzle: holding the button longer
// makes the boat faster but leaves less time to travel.
package day6

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-ricrob/aoc/internal/input"
	"github.com/go-ricrob/aoc/internal/solver"
)

var errMalformedRaces = errors.New("malformed races")

// Race is a race duration and the record distance to beat.
type Race struct {
	Time, Distance int
}

// beats reports whether holding the button for hold milliseconds travels
// farther than the record. hold*(Time-hold) > Distance is tested by division
// so long races cannot overflow.
func (r Race) beats(hold int) bool {
	travel := r.Time - hold
	if hold <= 0 || travel <= 0 {
		return false
	}
	return hold > r.Distance/travel
}

// Wins returns the number of hold times that beat the record. The travelled
// distance rises up to Time/2 and is symmetric, so the first winning hold
// time determines the count.
func (r Race) Wins() int {
	half := r.Time / 2
	first := sort.Search(half+1, r.beats)
	if first > half {
		return 0
	}
	return r.Time - 2*first + 1
}

func cutLine(line, prefix string) (string, error) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(line), prefix)
	if !ok {
		return "", fmt.Errorf("%w: expected %q in %q", errMalformedRaces, prefix, line)
	}
	return rest, nil
}

func splitInput(s string) (times, distances string, err error) {
	lines := input.Lines(s)
	if len(lines) != 2 {
		return "", "", fmt.Errorf("%w: expected 2 lines, got %d", errMalformedRaces, len(lines))
	}
	if times, err = cutLine(lines[0], "Time:"); err != nil {
		return "", "", err
	}
	if distances, err = cutLine(lines[1], "Distance:"); err != nil {
		return "", "", err
	}
	return times, distances, nil
}

// ParseRaces parses the time and distance columns into races.
func ParseRaces(s string) ([]Race, error) {
	timesLine, distancesLine, err := splitInput(s)
	if err != nil {
		return nil, err
	}
	times, err := input.Ints(timesLine)
	if err != nil {
		return nil, err
	}
	distances, err := input.Ints(distancesLine)
	if err != nil {
		return nil, err
	}
	if len(times) != len(distances) {
		return nil, fmt.Errorf("%w: %d times but %d distances", errMalformedRaces, len(times), len(distances))
	}
	races := make([]Race, len(times))
	for i := range races {
		races[i] = Race{Time: times[i], Distance: distances[i]}
	}
	return races, nil
}

// ParseRace parses the input as a single race ignoring the spaces between
// the digits.
func ParseRace(s string) (Race, error) {
	timesLine, distancesLine, err := splitInput(s)
	if err != nil {
		return Race{}, err
	}
	var r Race
	if r.Time, err = input.JoinedInt(timesLine); err != nil {
		return Race{}, fmt.Errorf("%w: %w", errMalformedRaces, err)
	}
	if r.Distance, err = input.JoinedInt(distancesLine); err != nil {
		return Race{}, fmt.Errorf("%w: %w", errMalformedRaces, err)
	}
	return r, nil
}

// Solve returns the product of the winning hold times of all races and the
// winning hold times of the single long race.
func Solve(_ context.Context, s string) (solver.Answers, error) {
	races, err := ParseRaces(s)
	if err != nil {
		return nil, err
	}
	product := 1
	for _, r := range races {
		product *= r.Wins()
	}
	race, err := ParseRace(s)
	if err != nil {
		return nil, err
	}
	return solver.Answers{
		{Label: "Product of winning times", Value: product},
		{Label: "Number of winning times of the long race", Value: race.Wins()},
	}, nil
}
