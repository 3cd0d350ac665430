package rng

//go:generate mockgen -package=mocks -destination=mocks/mock_generator.go github.com/KirkDiggler/numguess/internal/rng Generator

import (
	"math"
	"math/rand/v2"

	"github.com/KirkDiggler/numguess/internal/models"
)

// unitSteps is the resolution of a draw over [0, 1]
const unitSteps = 1 << 53

// pcgStream separates the two PCG words so a single seed is enough
const pcgStream = 0x9e3779b97f4a7c15

// Generator produces the random values a session needs
type Generator interface {
	// Float draws a value uniformly from r, both bounds included
	Float(r models.Range) float64

	// Grid draws uniformly among the multiples of 10^-decimals inside r.
	// Negative decimals, or a range holding no such multiple, fall back to Float.
	Grid(r models.Range, decimals int) float64

	// Intn returns a value in [0, n), or 0 when n <= 0
	Intn(n int) int
}

// Config for the random source
type Config struct {
	// Optional seed for testing
	Seed uint64
}

// Source is a Generator backed by a PCG stream
type Source struct {
	random *rand.Rand
}

// New creates a new random source. Without a seed the stream is seeded from
// the runtime's random state and cannot be reproduced.
func New(cfg *Config) *Source {
	seed := rand.Uint64()
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	}

	return &Source{
		random: rand.New(rand.NewPCG(seed, seed^pcgStream)),
	}
}

// Float draws a value uniformly from r, both bounds included
func (s *Source) Float(r models.Range) float64 {
	if r.Low >= r.High {
		return r.Low
	}

	// k/2^53 covers [0, 1] with both ends reachable. Blending the bounds instead
	// of adding Low to a width keeps huge ranges from overflowing.
	u := float64(s.random.Uint64N(unitSteps+1)) / unitSteps
	v := r.Low*(1-u) + r.High*u

	return math.Min(math.Max(v, r.Low), r.High)
}

// Grid draws uniformly among the multiples of 10^-decimals inside r, every
// grid point including both ends equally likely. Grids too fine to index
// exactly fall back to a rounded continuous draw.
func (s *Source) Grid(r models.Range, decimals int) float64 {
	lo, hi, scale, ok := gridBounds(r, decimals)
	if !ok {
		return s.Float(r)
	}

	points := hi - lo + 1
	if points > unitSteps || math.Abs(lo) > unitSteps || math.Abs(hi) > unitSteps {
		return Quantize(s.Float(r), r, decimals)
	}

	v := (lo + float64(s.random.Uint64N(uint64(points)))) / scale
	if !r.Contains(v) {
		return Quantize(s.Float(r), r, decimals)
	}

	return v
}

// Intn returns a value in [0, n), or 0 when n <= 0
func (s *Source) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return s.random.IntN(n)
}

// Quantize snaps v to the nearest multiple of 10^-decimals inside r, so a
// target can be typed back exactly. v is returned unchanged when decimals is
// negative or no such multiple lies inside r.
func Quantize(v float64, r models.Range, decimals int) float64 {
	lo, hi, scale, ok := gridBounds(r, decimals)
	if !ok {
		return v
	}

	q := math.Min(math.Max(math.Round(v*scale), lo), hi)

	// Division by an exact power of ten rounds to the same float64 that
	// strconv.ParseFloat produces for the printed decimal.
	snapped := q / scale
	if !r.Contains(snapped) {
		return v
	}

	return snapped
}

// gridBounds returns the scaled first and last grid points inside r
func gridBounds(r models.Range, decimals int) (lo, hi, scale float64, ok bool) {
	if decimals < 0 || decimals > 15 {
		return 0, 0, 0, false
	}

	scale = math.Pow10(decimals)
	lo = math.Ceil(r.Low * scale)
	hi = math.Floor(r.High * scale)
	if lo > hi || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return 0, 0, 0, false
	}

	return lo, hi, scale, true
}
