package prompt

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scripted(lines ...string) (*Prompter, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return New(strings.NewReader(strings.Join(lines, "\n")+"\n"), out), out
}

func TestLineStripsNewline(t *testing.T) {
	p, out := scripted("Cowboy Bebop")

	got, err := p.Line("Name?")
	require.NoError(t, err)
	assert.Equal(t, "Cowboy Bebop", got)
	assert.Equal(t, "Name?\n", out.String())
}

func TestLineKeepsInnerWhitespace(t *testing.T) {
	p := New(strings.NewReader("  spaced out  \r\n"), &bytes.Buffer{})

	got, err := p.Line("Review?")
	require.NoError(t, err)
	assert.Equal(t, "  spaced out  ", got)
}

func TestLineWithoutTrailingNewline(t *testing.T) {
	p := New(strings.NewReader("last"), &bytes.Buffer{})

	got, err := p.Line("?")
	require.NoError(t, err)
	assert.Equal(t, "last", got)

	_, err = p.Line("?")
	assert.ErrorIs(t, err, ErrNoInput)
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		answer string
		want   bool
	}{
		{"y", true},
		{"Y", true},
		{"yes", false},
		{"n", false},
		{"", false},
		{" y", false},
		{"y\r", true},
	}

	for _, tt := range tests {
		p, _ := scripted(tt.answer)
		got, err := p.Confirm("Update?")
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "answer %q", tt.answer)
	}
}

func TestFloatRetriesUntilInRange(t *testing.T) {
	p, out := scripted("10.5", "abc", "-1", "NaN", "7.2")

	got, err := p.Float("Score?", "Invalid score", 0, 10)
	require.NoError(t, err)
	assert.Equal(t, float32(7.2), got)

	assert.Equal(t, "Score?\nInvalid score\nInvalid score\nInvalid score\nInvalid score\n", out.String())
}

func TestFloatAcceptsBounds(t *testing.T) {
	for _, in := range []string{"0", "10", "0.0", "10.0"} {
		p, _ := scripted(in)
		got, err := p.Float("Score?", "Invalid", 0, 10)
		require.NoError(t, err, in)
		assert.GreaterOrEqual(t, got, float32(0))
		assert.LessOrEqual(t, got, float32(10))
	}
}

func TestFloatNeverReturnsOutOfRange(t *testing.T) {
	inputs := []string{"11", "-0.1", "Inf", "-Inf", "1e9", "10.0001", "x", "", "3"}
	p, _ := scripted(inputs...)

	got, err := p.Float("Score?", "Invalid", 0, 10)
	require.NoError(t, err)
	assert.Equal(t, float32(3), got)
}

func TestIntDynamicUpperBound(t *testing.T) {
	p, out := scripted("13", "-1", "2.5", "12")

	got, err := p.Int("Current episode?", "Invalid episode", 0, 12)
	require.NoError(t, err)
	assert.Equal(t, 12, got)
	assert.Equal(t, 4, strings.Count(out.String(), "\n"))
	assert.True(t, strings.HasPrefix(out.String(), "Current episode?\n"))
}

func TestIntOpenUpperBound(t *testing.T) {
	p, _ := scripted("-5", "2000")

	got, err := p.Int("Total?", "Invalid", 0, math.MaxInt32)
	require.NoError(t, err)
	assert.Equal(t, 2000, got)
}

func TestIntRejectsPast32Bits(t *testing.T) {
	p, out := scripted("3000000000", "2147483648", "2147483647")

	got, err := p.Int("Total?", "Invalid", 0, math.MaxInt32)
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt32, got)
	assert.Equal(t, 2, strings.Count(out.String(), "Invalid\n"))
}

func TestIntZeroAgainstBounds(t *testing.T) {
	p, out := scripted("0", "1")

	got, err := p.Int("Pick", "Invalid", 1, 3)
	require.NoError(t, err)
	assert.Equal(t, 1, got)
	assert.Equal(t, "Pick\nInvalid\n", out.String())

	p, _ = scripted("0")
	got, err = p.Int("Current?", "Invalid", 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, got)
}

func TestFloatRejectsNonDecimalForms(t *testing.T) {
	p, out := scripted("0x1p3", "1_0", "inf", "nan", "1e39", " 5", "5")

	got, err := p.Float("Score?", "Invalid", 0, 10)
	require.NoError(t, err)
	assert.Equal(t, float32(5), got)
	assert.Equal(t, 6, strings.Count(out.String(), "Invalid\n"))
}

func TestFloatAcceptsDecimalForms(t *testing.T) {
	for in, want := range map[string]float32{"+7.5": 7.5, ".5": 0.5, "5.": 5, "1e1": 10, "0.0": 0} {
		p, _ := scripted(in)
		got, err := p.Float("Score?", "Invalid", 0, 10)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestChoiceRetriesOnAnyInvalidInput(t *testing.T) {
	options := []string{"Watching", "Completed", "Dropped"}
	pick := func(n int) (string, bool) {
		if n < 1 || n > len(options) {
			return "", false
		}
		return options[n-1], true
	}
	p, out := scripted("watching", "0", "4", "2")

	got, err := Choice(p, "Status?", "Pick 1-3", pick)
	require.NoError(t, err)
	assert.Equal(t, "Completed", got)
	assert.Equal(t, "Status?\nPick 1-3\nPick 1-3\nPick 1-3\n", out.String())
}

func TestAskWithoutRetryMessageRepeatsQuestion(t *testing.T) {
	p, out := scripted("no", "ok")

	got, err := Ask(p, Question[string]{
		Message: "Say ok",
		Parse: func(s string) (string, error) {
			if s != "ok" {
				return "", errors.New("not ok")
			}
			return s, nil
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", got)
	assert.Equal(t, "Say ok\nSay ok\n", out.String())
}

func TestAskStopsAtEndOfInput(t *testing.T) {
	p, _ := scripted("bad", "worse")

	_, err := p.Int("Number?", "Invalid", 0, 10)
	assert.ErrorIs(t, err, ErrNoInput)
}
