package hint

import (
	"github.com/KirkDiggler/numguess/internal/models"
	"github.com/KirkDiggler/numguess/internal/rng"
)

// Config holds configuration for the hint service
type Config struct {
	// Generator picks catalog entries
	Generator rng.Generator
}

// GetHintInput contains parameters for drawing a hint
type GetHintInput struct {
	// Kind selects the catalog
	Kind models.HintKind

	// Target is the value the hint describes
	Target float64
}

// GetHintOutput contains the drawn hint
type GetHintOutput struct {
	Hint *models.Hint
}
