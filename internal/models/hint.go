package models

import (
	"fmt"
	"strconv"
	"strings"
)

// HintKind selects which catalog a hint is drawn from
type HintKind string

const (
	// HintNone means the player plays without a hint
	HintNone HintKind = "none"

	// HintEasy is a simple offset from the target
	HintEasy HintKind = "easy"

	// HintHard is a polynomial evaluated at the target
	HintHard HintKind = "hard"
)

// hintPlaceholder marks where the computed value goes in a hint label
const hintPlaceholder = "{}"

// ParseHintKind maps a typed answer to a hint kind. Blank input means no hint.
// Unknown input returns HintNone with ErrInvalidHintKind.
func ParseHintKind(text string) (HintKind, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "1", "easy", "e":
		return HintEasy, nil
	case "2", "hard", "h":
		return HintHard, nil
	case "", "3", "none":
		return HintNone, nil
	default:
		return HintNone, fmt.Errorf("%w: %q", ErrInvalidHintKind, text)
	}
}

// Hint is a display-only relation between a value and the target
type Hint struct {
	// Kind is the catalog the hint came from
	Kind HintKind

	// Label describes the relation, with {} where Value belongs
	Label string

	// Value is the label's transform applied to the target
	Value float64
}

// Text renders the hint with its value rounded to two decimals
func (h *Hint) Text() string {
	value := strconv.FormatFloat(h.Value, 'f', 2, 64)
	if strings.Contains(h.Label, hintPlaceholder) {
		return strings.Replace(h.Label, hintPlaceholder, value, 1)
	}
	return h.Label + " = " + value
}
