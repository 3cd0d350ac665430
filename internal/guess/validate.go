// Package guess turns typed input into guesses and scores them against a target.
package guess

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/KirkDiggler/numguess/internal/models"
)

// Reason identifies why input was rejected
type Reason string

// Error implements the error interface so reasons work with errors.Is
func (r Reason) Error() string {
	return string(r)
}

const (
	ErrEmpty      Reason = "no input provided"
	ErrNotANumber Reason = "input is not a number"
	ErrOutOfRange Reason = "number is outside the range"
)

// ValidationError describes rejected guess input
type ValidationError struct {
	// Reason is one of ErrEmpty, ErrNotANumber or ErrOutOfRange
	Reason Reason

	// Input is the raw text that was rejected
	Input string

	// Range is the range the guess was checked against
	Range models.Range
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	switch e.Reason {
	case ErrEmpty:
		return string(e.Reason)
	case ErrOutOfRange:
		return fmt.Sprintf("%s: %q is not within %s", e.Reason, e.Input, e.Range)
	default:
		return fmt.Sprintf("%s: %q", e.Reason, e.Input)
	}
}

// Unwrap exposes the reason to errors.Is
func (e *ValidationError) Unwrap() error {
	return e.Reason
}

// ReasonOf returns the rejection reason carried by err, or "" if err is not a
// validation error
func ReasonOf(err error) Reason {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Reason
	}
	return ""
}

// ParseAndValidate reads a guess from raw text and checks it against r.
// The parsed value is returned unchanged.
func ParseAndValidate(raw string, r models.Range) (float64, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return 0, &ValidationError{Reason: ErrEmpty, Input: raw, Range: r}
	}

	value, err := strconv.ParseFloat(text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, &ValidationError{Reason: ErrNotANumber, Input: text, Range: r}
	}

	// ParseFloat accepts "NaN", which no comparison can score
	if math.IsNaN(value) {
		return 0, &ValidationError{Reason: ErrNotANumber, Input: text, Range: r}
	}

	// Overflowing input comes back as ±Inf and lands here
	if !r.Contains(value) {
		return 0, &ValidationError{Reason: ErrOutOfRange, Input: text, Range: r}
	}

	return value, nil
}
