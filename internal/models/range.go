package models

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	// DefaultRangeLow is the lower bound used when a session starts without one
	DefaultRangeLow = 1.0

	// DefaultRangeHigh is the upper bound used when a session starts without one
	DefaultRangeHigh = 100.0
)

// Range is an inclusive numeric interval a target is drawn from
type Range struct {
	// Low is the smallest value a target or guess may take
	Low float64

	// High is the largest value a target or guess may take
	High float64
}

// DefaultRange returns the 1-100 range a new session starts with
func DefaultRange() Range {
	return Range{Low: DefaultRangeLow, High: DefaultRangeHigh}
}

// Validate reports whether the range is usable for a round
func (r Range) Validate() error {
	if !isFinite(r.Low) || !isFinite(r.High) {
		return fmt.Errorf("%w: bounds must be finite numbers", ErrInvalidRange)
	}

	if r.Low > r.High {
		return fmt.Errorf("%w: low %g is greater than high %g", ErrInvalidRange, r.Low, r.High)
	}

	return nil
}

// Contains reports whether v lies within the range, bounds included
func (r Range) Contains(v float64) bool {
	return v >= r.Low && v <= r.High
}

// String renders the range the way players type it
func (r Range) String() string {
	return fmt.Sprintf("%s-%s", formatBound(r.Low), formatBound(r.High))
}

// ParseRange reads a range typed by a player.
// Accepted forms are "1 100", "1,100", "1-100" and "1..100".
func ParseRange(text string) (Range, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Range{}, fmt.Errorf("%w: no range provided", ErrInvalidRange)
	}

	parts := splitRange(text)
	if len(parts) != 2 {
		return Range{}, fmt.Errorf("%w: expected two numbers, got %q", ErrInvalidRange, text)
	}

	low, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return Range{}, fmt.Errorf("%w: %q is not a number", ErrInvalidRange, parts[0])
	}

	high, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return Range{}, fmt.Errorf("%w: %q is not a number", ErrInvalidRange, parts[1])
	}

	r := Range{Low: low, High: high}
	if err := r.Validate(); err != nil {
		return Range{}, err
	}

	return r, nil
}

func splitRange(text string) []string {
	if strings.Contains(text, "..") {
		return trimAll(strings.SplitN(text, "..", 2))
	}

	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
	if len(fields) == 3 && fields[1] == "-" {
		return []string{fields[0], fields[2]}
	}
	if len(fields) != 1 {
		return fields
	}

	// A single field may still be "low-high". The separator is the first '-'
	// that is not a sign, so "-5--1" splits into "-5" and "-1".
	for i := 1; i < len(text); i++ {
		if text[i] == '-' && text[i-1] != 'e' && text[i-1] != 'E' {
			return trimAll([]string{text[:i], text[i+1:]})
		}
	}

	return fields
}

func trimAll(parts []string) []string {
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
