package interval

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedToSoil() *Map {
	return &Map{
		Source:      "seed",
		Destination: "soil",
		Shifts:      []Shift{NewShift(50, 98, 2), NewShift(52, 50, 48)},
	}
}

func sortRanges(a, b Range) bool { return a.Start < b.Start }

func TestRange(t *testing.T) {
	r := Range{3, 7}
	assert.Equal(t, 4, r.Len())
	assert.True(t, r.Contains(3))
	assert.False(t, r.Contains(7))
	assert.Equal(t, Range{5, 7}, r.Intersect(Range{5, 10}))
	assert.True(t, r.Intersect(Range{7, 10}).Empty())
	assert.Equal(t, 0, Range{5, 2}.Len())
	assert.Equal(t, "[3,7)", r.String())
}

func TestResolve(t *testing.T) {
	m := seedToSoil()
	tests := []struct{ in, want int }{
		{79, 81}, {14, 14}, {55, 57}, {13, 13},
		{98, 50}, {99, 51}, {100, 100}, {49, 49}, {50, 52}, {97, 99},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, m.Resolve(test.in), "resolve %d", test.in)
	}
}

func TestResolveRanges(t *testing.T) {
	m := seedToSoil()

	tests := []struct {
		in, want []Range
	}{
		{[]Range{{79, 93}}, []Range{{81, 95}}},
		{[]Range{{10, 20}}, []Range{{10, 20}}},
		{[]Range{{45, 100}}, []Range{{45, 50}, {50, 52}, {52, 100}}},
		{[]Range{{97, 110}}, []Range{{50, 52}, {99, 100}, {100, 110}}},
		{[]Range{{5, 5}}, nil},
	}
	for _, test := range tests {
		got := m.ResolveRanges(test.in)
		if diff := cmp.Diff(test.want, got, cmpopts.SortSlices(sortRanges), cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("ResolveRanges(%v) mismatch (-want +got):\n%s", test.in, diff)
		}
	}
}

func TestResolveRangesPreservesLength(t *testing.T) {
	m := seedToSoil()
	in := []Range{{0, 200}, {40, 60}, {96, 99}}
	var inLen, outLen int
	for _, r := range in {
		inLen += r.Len()
	}
	for _, r := range m.ResolveRanges(in) {
		outLen += r.Len()
	}
	assert.Equal(t, inLen, outLen)
}

func TestChain(t *testing.T) {
	soilToFertilizer := &Map{
		Source:      "soil",
		Destination: "fertilizer",
		Shifts:      []Shift{NewShift(0, 15, 37), NewShift(37, 52, 2), NewShift(39, 0, 15)},
	}
	c, err := NewChain([]*Map{soilToFertilizer, seedToSoil()})
	require.NoError(t, err)

	category, v, err := c.Resolve("seed", 79)
	require.NoError(t, err)
	assert.Equal(t, "fertilizer", category)
	assert.Equal(t, 81, v)

	category, v, err = c.Resolve("seed", 14)
	require.NoError(t, err)
	assert.Equal(t, "fertilizer", category)
	assert.Equal(t, 53, v)

	category, v, err = c.Resolve("location", 7)
	require.NoError(t, err)
	assert.Equal(t, "location", category)
	assert.Equal(t, 7, v)

	category, rs, err := c.ResolveRanges("seed", []Range{{79, 93}})
	require.NoError(t, err)
	assert.Equal(t, "fertilizer", category)
	assert.Equal(t, []Range{{81, 95}}, rs)
}

func TestChainErrors(t *testing.T) {
	_, err := NewChain([]*Map{seedToSoil(), seedToSoil()})
	assert.ErrorIs(t, err, errDuplicateSource)

	c, err := NewChain([]*Map{
		{Source: "a", Destination: "b"},
		{Source: "b", Destination: "a"},
	})
	require.NoError(t, err)
	_, _, err = c.Resolve("a", 1)
	assert.ErrorIs(t, err, errCycle)
}
