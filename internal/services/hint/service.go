package hint

import (
	"context"
	"fmt"
	"math"

	"github.com/KirkDiggler/numguess/internal/models"
	"github.com/KirkDiggler/numguess/internal/rng"
)

type service struct {
	generator rng.Generator
	catalogs  map[models.HintKind][]entry
}

// New creates a new hint service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Generator == nil {
		return nil, ErrNilGenerator
	}

	return &service{
		generator: cfg.Generator,
		catalogs: map[models.HintKind][]entry{
			models.HintEasy: easyCatalog,
			models.HintHard: hardCatalog,
		},
	}, nil
}

// GetHint draws a hint of the requested kind and evaluates it at the target.
// Entries that evaluate to NaN or an infinity at the target are skipped.
func (s *service) GetHint(ctx context.Context, input *GetHintInput) (*GetHintOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.Kind == models.HintNone {
		return nil, ErrNoHint
	}

	catalog, ok := s.catalogs[input.Kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, input.Kind)
	}

	start := s.generator.Intn(len(catalog))
	for i := range catalog {
		e := catalog[(start+i)%len(catalog)]
		value := e.fn(input.Target)
		if math.IsNaN(value) || math.IsInf(value, 0) {
			continue
		}

		return &GetHintOutput{
			Hint: &models.Hint{
				Kind:  input.Kind,
				Label: e.label,
				Value: value,
			},
		}, nil
	}

	return nil, ErrNoHint
}
