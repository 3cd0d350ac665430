package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseContinuation(t *testing.T) {
	testCases := map[string]ContinuationChoice{
		"1":      ChoiceRetrySameTarget,
		"retry":  ChoiceRetrySameTarget,
		" Same ": ChoiceRetrySameTarget,
		"2":      ChoiceNewTarget,
		"Y":      ChoiceNewTarget,
		"yes":    ChoiceNewTarget,
		"again":  ChoiceNewTarget,
		"3":      ChoiceNewRange,
		"RANGE":  ChoiceNewRange,
		"4":      ChoiceQuit,
		"q":      ChoiceQuit,
		"no":     ChoiceQuit,
		"exit":   ChoiceQuit,
	}

	for input, expected := range testCases {
		t.Run(input, func(t *testing.T) {
			choice, err := ParseContinuation(input)
			assert.NoError(t, err)
			assert.Equal(t, expected, choice)
		})
	}
}

func TestParseContinuationUnknownQuits(t *testing.T) {
	for _, input := range []string{"", "5", "maybe", "yess"} {
		choice, err := ParseContinuation(input)
		assert.ErrorIs(t, err, ErrInvalidContinuation)
		assert.Equal(t, ChoiceQuit, choice, "input %q", input)
	}
}

func TestParseHintKind(t *testing.T) {
	testCases := map[string]HintKind{
		"1":     HintEasy,
		"easy":  HintEasy,
		"E":     HintEasy,
		"2":     HintHard,
		" hard": HintHard,
		"3":     HintNone,
		"":      HintNone,
		"none":  HintNone,
	}

	for input, expected := range testCases {
		kind, err := ParseHintKind(input)
		assert.NoError(t, err, "input %q", input)
		assert.Equal(t, expected, kind, "input %q", input)
	}

	kind, err := ParseHintKind("4")
	assert.ErrorIs(t, err, ErrInvalidHintKind)
	assert.Equal(t, HintNone, kind)
}

func TestHintText(t *testing.T) {
	placeholder := &Hint{Label: "The secret number is 5 more than {}", Value: 37}
	assert.Equal(t, "The secret number is 5 more than 37.00", placeholder.Text())

	appended := &Hint{Label: "x² + 1", Value: 2.5}
	assert.Equal(t, "x² + 1 = 2.50", appended.Text())
}

func TestOutcomeIsCorrect(t *testing.T) {
	assert.True(t, OutcomeCorrect.IsCorrect())
	assert.False(t, OutcomeTooLow.IsCorrect())
	assert.False(t, OutcomeTooHigh.IsCorrect())
}
