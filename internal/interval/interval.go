// Package interval implements half-open integer ranges and piecewise
// offset maps between them.
package interval

import (
	"errors"
	"fmt"
)

var (
	errDuplicateSource = errors.New("duplicate map source")
	errCycle           = errors.New("map chain contains a cycle")
)

// Range is the half-open interval [Start, End).
type Range struct {
	Start, End int
}

// Len returns the number of integers in r.
func (r Range) Len() int { return max(0, r.End-r.Start) }

// Empty reports whether r contains no integer.
func (r Range) Empty() bool { return r.End <= r.Start }

// Contains reports whether v lies in r.
func (r Range) Contains(v int) bool { return v >= r.Start && v < r.End }

// Intersect returns the common part of r and o. The result may be empty.
func (r Range) Intersect(o Range) Range {
	return Range{max(r.Start, o.Start), min(r.End, o.End)}
}

func (r Range) String() string { return fmt.Sprintf("[%d,%d)", r.Start, r.End) }

// Shift moves every value of Src by Offset.
type Shift struct {
	Src    Range
	Offset int
}

// NewShift returns the shift mapping length values starting at src to the
// values starting at dst.
func NewShift(dst, src, length int) Shift {
	return Shift{Src: Range{src, src + length}, Offset: dst - src}
}

// Map converts values of the Source category into the Destination category.
// Values not covered by any shift map to themselves.
type Map struct {
	Source, Destination string
	Shifts              []Shift
}

// Resolve returns the destination value of v. The first shift containing v
// wins.
func (m *Map) Resolve(v int) int {
	for _, s := range m.Shifts {
		if s.Src.Contains(v) {
			return v + s.Offset
		}
	}
	return v
}

// ResolveRanges maps every value of rs to its destination value and returns
// the resulting ranges. Input ranges are split at shift boundaries, so the
// total length is preserved. The order of the result is unspecified.
func (m *Map) ResolveRanges(rs []Range) []Range {
	var out []Range
	pending := make([]Range, 0, len(rs))
	for _, r := range rs {
		if !r.Empty() {
			pending = append(pending, r)
		}
	}
	for _, s := range m.Shifts {
		var next []Range
		for _, r := range pending {
			in := r.Intersect(s.Src)
			if in.Empty() {
				next = append(next, r)
				continue
			}
			out = append(out, Range{in.Start + s.Offset, in.End + s.Offset})
			if left := (Range{r.Start, min(r.End, s.Src.Start)}); !left.Empty() {
				next = append(next, left)
			}
			if right := (Range{max(r.Start, s.Src.End), r.End}); !right.Empty() {
				next = append(next, right)
			}
		}
		pending = next
	}
	return append(out, pending...)
}

// Chain links maps by category: the destination of one map is the source
// of the next.
type Chain struct {
	bySource map[string]*Map
}

// NewChain returns a chain of maps. Each source category may appear once.
func NewChain(maps []*Map) (*Chain, error) {
	c := &Chain{bySource: make(map[string]*Map, len(maps))}
	for _, m := range maps {
		if _, ok := c.bySource[m.Source]; ok {
			return nil, fmt.Errorf("%w: %s", errDuplicateSource, m.Source)
		}
		c.bySource[m.Source] = m
	}
	return c, nil
}

// walk calls fn for every map on the path starting at category and returns
// the final category.
func (c *Chain) walk(category string, fn func(m *Map)) (string, error) {
	for steps := 0; ; steps++ {
		m, ok := c.bySource[category]
		if !ok {
			return category, nil
		}
		if steps == len(c.bySource) {
			return "", fmt.Errorf("%w at %s", errCycle, category)
		}
		fn(m)
		category = m.Destination
	}
}

// Resolve follows the chain from category until no map consumes the current
// category and returns that final category and the resolved value.
func (c *Chain) Resolve(category string, v int) (string, int, error) {
	last, err := c.walk(category, func(m *Map) { v = m.Resolve(v) })
	if err != nil {
		return "", 0, err
	}
	return last, v, nil
}

// ResolveRanges is the range equivalent of Resolve.
func (c *Chain) ResolveRanges(category string, rs []Range) (string, []Range, error) {
	last, err := c.walk(category, func(m *Map) { rs = m.ResolveRanges(rs) })
	if err != nil {
		return "", nil, err
	}
	return last, rs, nil
}
