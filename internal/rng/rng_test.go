package rng

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/numguess/internal/models"
)

const sampleCount = 10_000

func TestFloatStaysWithinRange(t *testing.T) {
	ranges := []models.Range{
		{Low: 1, High: 100},
		{Low: 1, High: 10},
		{Low: -50.5, High: -0.25},
		{Low: 0.1, High: 0.3},
		{Low: -math.MaxFloat64, High: math.MaxFloat64},
		{Low: 7, High: 7},
	}

	for _, r := range ranges {
		t.Run(r.String(), func(t *testing.T) {
			source := New(&Config{Seed: 42})
			for i := 0; i < sampleCount; i++ {
				v := source.Float(r)
				require.False(t, math.IsNaN(v), "sample %d is NaN", i)
				require.GreaterOrEqual(t, v, r.Low, "sample %d below range", i)
				require.LessOrEqual(t, v, r.High, "sample %d above range", i)
			}
		})
	}
}

func TestFloatIsRoughlyUniform(t *testing.T) {
	source := New(&Config{Seed: 7})
	r := models.Range{Low: 0, High: 1}

	var sum float64
	buckets := make([]int, 10)
	for i := 0; i < sampleCount; i++ {
		v := source.Float(r)
		sum += v
		bucket := int(v * 10)
		if bucket == 10 {
			bucket = 9
		}
		buckets[bucket]++
	}

	assert.InDelta(t, 0.5, sum/sampleCount, 0.02)
	for i, count := range buckets {
		assert.InDelta(t, sampleCount/10, count, 200, "bucket %d", i)
	}
}

func TestSeedIsReproducible(t *testing.T) {
	r := models.DefaultRange()
	a := New(&Config{Seed: 99})
	b := New(&Config{Seed: 99})

	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Float(r), b.Float(r))
		assert.Equal(t, a.Intn(40), b.Intn(40))
	}
}

func TestUnseededSourcesDiffer(t *testing.T) {
	r := models.Range{Low: 0, High: 1e9}
	a := New(nil)
	b := New(&Config{})

	same := 0
	for i := 0; i < 10; i++ {
		if a.Float(r) == b.Float(r) {
			same++
		}
	}
	assert.Less(t, same, 10)
}

func TestIntn(t *testing.T) {
	source := New(&Config{Seed: 3})

	assert.Equal(t, 0, source.Intn(0))
	assert.Equal(t, 0, source.Intn(-4))

	for i := 0; i < 1000; i++ {
		v := source.Intn(5)
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, 5)
	}
}

func TestQuantize(t *testing.T) {
	testCases := []struct {
		name     string
		value    float64
		r        models.Range
		decimals int
		want     float64
	}{
		{name: "rounds down to whole", value: 7.4, r: models.Range{Low: 1, High: 10}, decimals: 0, want: 7},
		{name: "rounds up to upper bound", value: 9.9, r: models.Range{Low: 1, High: 10}, decimals: 0, want: 10},
		{name: "clamps into range", value: 1.2, r: models.Range{Low: 1.5, High: 10}, decimals: 0, want: 2},
		{name: "two decimals", value: 42.3749, r: models.DefaultRange(), decimals: 2, want: 42.37},
		{name: "negative range", value: -3.6, r: models.Range{Low: -10, High: -1}, decimals: 0, want: -4},
		{name: "no grid point inside", value: 1.3, r: models.Range{Low: 1.2, High: 1.4}, decimals: 0, want: 1.3},
		{name: "raw precision", value: 3.14159, r: models.DefaultRange(), decimals: -1, want: 3.14159},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Quantize(tc.value, tc.r, tc.decimals))
		})
	}
}

func TestQuantizeMatchesTypedText(t *testing.T) {
	source := New(&Config{Seed: 11})
	r := models.DefaultRange()

	for i := 0; i < 1000; i++ {
		target := Quantize(source.Float(r), r, 2)
		typed, err := strconv.ParseFloat(strconv.FormatFloat(target, 'f', 2, 64), 64)
		require.NoError(t, err)
		require.Equal(t, target, typed)
		require.True(t, r.Contains(target))
	}
}

func TestGridIsUniformIncludingEndpoints(t *testing.T) {
	source := New(&Config{Seed: 5})
	r := models.Range{Low: 1, High: 10}
	const draws = 90_000

	counts := make(map[float64]int)
	for i := 0; i < draws; i++ {
		counts[source.Grid(r, 0)]++
	}

	require.Len(t, counts, 10)
	for v := 1.0; v <= 10; v++ {
		assert.InDelta(t, draws/10, counts[v], 450, "value %v", v)
	}
	assert.InDelta(t, counts[5], counts[1], 600, "low endpoint is as likely as an interior point")
	assert.InDelta(t, counts[5], counts[10], 600, "high endpoint is as likely as an interior point")
}

func TestGridStaysOnGrid(t *testing.T) {
	testCases := []struct {
		name     string
		r        models.Range
		decimals int
	}{
		{name: "whole numbers", r: models.DefaultRange(), decimals: 0},
		{name: "two decimals", r: models.Range{Low: 0.5, High: 2.25}, decimals: 2},
		{name: "negative", r: models.Range{Low: -10, High: -1}, decimals: 0},
		{name: "fractional bounds", r: models.Range{Low: 1.5, High: 4.5}, decimals: 0},
		{name: "degenerate", r: models.Range{Low: 7, High: 7}, decimals: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			source := New(&Config{Seed: 17})
			for i := 0; i < sampleCount; i++ {
				v := source.Grid(tc.r, tc.decimals)
				require.True(t, tc.r.Contains(v), "sample %v outside %s", v, tc.r)

				typed, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', tc.decimals, 64), 64)
				require.NoError(t, err)
				require.Equal(t, v, typed)
			}
		})
	}
}

func TestGridFallsBackToFloat(t *testing.T) {
	r := models.Range{Low: 1.2, High: 1.4}

	raw := New(&Config{Seed: 23})
	grid := New(&Config{Seed: 23})
	for i := 0; i < 100; i++ {
		assert.Equal(t, raw.Float(r), grid.Grid(r, 0), "no whole number inside the range")
	}

	unrounded := New(&Config{Seed: 29})
	for i := 0; i < 100; i++ {
		v := unrounded.Grid(models.DefaultRange(), -1)
		require.True(t, models.DefaultRange().Contains(v))
	}

	huge := New(&Config{Seed: 31})
	wide := models.Range{Low: -math.MaxFloat64, High: math.MaxFloat64}
	for i := 0; i < 100; i++ {
		require.True(t, wide.Contains(huge.Grid(wide, 0)))
	}
}
