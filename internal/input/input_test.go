package input

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLines(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"\n", []string{""}},
		{"a\nb\n", []string{"a", "b"}},
		{"a\r\nb", []string{"a", "b"}},
		{"a\n\nb\n", []string{"a", "", "b"}},
		{"ab\r", []string{"ab"}},
		{"a\r\r\nb\r\n", []string{"a", "b"}},
		{"\r\n", []string{""}},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, Lines(test.in), "input %q", test.in)
	}
}

func TestInts(t *testing.T) {
	ints, err := Ints("Card  3:  1 21 53 | 69 82")
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1, 21, 53, 69, 82}, ints)

	ints, err = Ints("no numbers")
	require.NoError(t, err)
	assert.Empty(t, ints)

	_, err = Ints("99999999999999999999999")
	assert.Error(t, err)
}

func TestFirstInt(t *testing.T) {
	i, err := FirstInt("Game 100: 10 blue")
	require.NoError(t, err)
	assert.Equal(t, 100, i)

	_, err = FirstInt("Game: 10 blue")
	require.NoError(t, err)

	_, err = FirstInt("Game")
	assert.ErrorIs(t, err, ErrNoNumber)
}

func TestJoinedInt(t *testing.T) {
	i, err := JoinedInt("Time:      7  15   30")
	require.NoError(t, err)
	assert.Equal(t, 71530, i)

	_, err = JoinedInt("Time:")
	assert.ErrorIs(t, err, ErrNoNumber)
}

func TestRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "1.input")
	require.NoError(t, os.WriteFile(path, []byte("abc\n"), 0o644))

	s, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, "abc\n", s)

	_, err = Read(filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
