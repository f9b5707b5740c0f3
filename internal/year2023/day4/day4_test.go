package day4

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const example = `Card 1: 41 48 83 86 17 | 83 86  6 31 17  9 48 53
Card 2: 13 32 20 16 61 | 61 30 68 82 17 32 24 19
Card 3:  1 21 53 59 44 | 69 82 63 72 16 21 14  1
Card 4: 41 92 73 84 69 | 59 84 76 51 58  5 54 83
Card 5: 87 83 26 28 32 | 88 30 70 12 93 22 82 36
Card 6: 31 18 13 56 72 | 74 77 10 23 35 67 36 11
`

func parseExample(t *testing.T) []*Card {
	t.Helper()
	var cards []*Card
	for _, line := range []string{
		"Card 1: 41 48 83 86 17 | 83 86  6 31 17  9 48 53",
		"Card 2: 13 32 20 16 61 | 61 30 68 82 17 32 24 19",
		"Card 3:  1 21 53 59 44 | 69 82 63 72 16 21 14  1",
		"Card 4: 41 92 73 84 69 | 59 84 76 51 58  5 54 83",
		"Card 5: 87 83 26 28 32 | 88 30 70 12 93 22 82 36",
		"Card 6: 31 18 13 56 72 | 74 77 10 23 35 67 36 11",
	} {
		c, err := ParseCard(line)
		require.NoError(t, err)
		cards = append(cards, c)
	}
	return cards
}

func TestParseCard(t *testing.T) {
	cards := parseExample(t)
	want := []*Card{
		{Winning: []int{41, 48, 83, 86, 17}, Drawn: []int{83, 86, 6, 31, 17, 9, 48, 53}},
		{Winning: []int{13, 32, 20, 16, 61}, Drawn: []int{61, 30, 68, 82, 17, 32, 24, 19}},
		{Winning: []int{1, 21, 53, 59, 44}, Drawn: []int{69, 82, 63, 72, 16, 21, 14, 1}},
		{Winning: []int{41, 92, 73, 84, 69}, Drawn: []int{59, 84, 76, 51, 58, 5, 54, 83}},
		{Winning: []int{87, 83, 26, 28, 32}, Drawn: []int{88, 30, 70, 12, 93, 22, 82, 36}},
		{Winning: []int{31, 18, 13, 56, 72}, Drawn: []int{74, 77, 10, 23, 35, 67, 36, 11}},
	}
	if diff := cmp.Diff(want, cards); diff != "" {
		t.Fatalf("cards mismatch (-want +got):\n%s", diff)
	}

	_, err := ParseCard("Card 1 41 | 41")
	assert.ErrorIs(t, err, errMalformedCard)
	_, err = ParseCard("Card 1: 41 41")
	assert.ErrorIs(t, err, errMalformedCard)
}

func TestMatchesAndScore(t *testing.T) {
	cards := parseExample(t)
	matches := []int{4, 2, 2, 1, 0, 0}
	scores := []int{8, 2, 2, 1, 0, 0}
	for i, c := range cards {
		assert.Equal(t, matches[i], c.Matches(), "card %d", i+1)
		assert.Equal(t, scores[i], c.Score(), "card %d", i+1)
	}
}

func TestCountCards(t *testing.T) {
	assert.Equal(t, 30, countCards(parseExample(t)))
	assert.Equal(t, 0, countCards(nil))

	// wins beyond the last card are dropped
	cards := []*Card{
		{Winning: []int{1, 2, 3}, Drawn: []int{1, 2, 3}},
		{Winning: []int{1}, Drawn: []int{1}},
	}
	assert.Equal(t, 3, countCards(cards))
}

func TestSolve(t *testing.T) {
	answers, err := Solve(context.Background(), example)
	require.NoError(t, err)
	assert.Equal(t, []int{13, 30}, answers.Values())
}
