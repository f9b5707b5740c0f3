package day1

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalibrationValue(t *testing.T) {
	tests := []struct {
		line    string
		spelled bool
		want    int
	}{
		{"1abc2", false, 12},
		{"pqr3stu8vwx", false, 38},
		{"a1b2c3d4e5f", false, 15},
		{"treb7uchet", false, 77},
		{"two1nine", false, 11},
		{"two1nine", true, 29},
		{"eightwothree", true, 83},
		{"abcone2threexyz", true, 13},
		{"xtwone3four", true, 24},
		{"4nineeightseven2", true, 42},
		{"zoneight234", true, 14},
		{"7pqrstsixteen", true, 76},
		{"eightwo", true, 82},
		{"oneight", true, 18},
		{"0zero9", false, 99},
	}
	for _, test := range tests {
		v, err := calibrationValue(test.line, test.spelled)
		require.NoError(t, err, test.line)
		assert.Equal(t, test.want, v, test.line)
	}
}

func TestCalibrationValueNoDigit(t *testing.T) {
	_, err := calibrationValue("eightwothree", false)
	assert.ErrorIs(t, err, errNoDigit)

	_, err = calibrationValue("", true)
	assert.ErrorIs(t, err, errNoDigit)
}

func TestSolve(t *testing.T) {
	const in = "1abc2\npqr3stu8vwx\na1b2c3d4e5f\ntreb7uchet\n"
	answers, err := Solve(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, []int{142, 142}, answers.Values())

	const spelled = "two1nine\neight3wothree\nabcone2threexyz\nxtwone3four\n4nineeightseven2\nzoneight234\n7pqrstsixteen\n"
	answers, err = Solve(context.Background(), spelled)
	require.NoError(t, err)
	assert.Equal(t, []int{11 + 33 + 22 + 33 + 42 + 24 + 77, 29 + 83 + 13 + 24 + 42 + 14 + 76}, answers.Values())

	_, err = Solve(context.Background(), "12\nabc\n")
	assert.ErrorIs(t, err, errNoDigit)
	assert.ErrorContains(t, err, "line 2")
}
