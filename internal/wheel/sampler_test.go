package wheel

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/petuhovskiy/spinwheel/internal/wrand"
)

func constSource(v float64) wrand.Source {
	return wrand.SourceFunc(func() float64 { return v })
}

func TestSampler_TeaCoffee(t *testing.T) {
	items := []Item{{Label: "tea", Weight: 50}, {Label: "coffee", Weight: 50}}

	// r = 20
	assert.Equal(t, 0, NewSampler(constSource(0.2)).Sample(items, Weighted))
	// r = 70
	assert.Equal(t, 1, NewSampler(constSource(0.7)).Sample(items, Weighted))
}

func TestSampler_Unweighted(t *testing.T) {
	items := labels(4)

	assert.Equal(t, 0, NewSampler(constSource(0)).Sample(items, Unweighted))
	assert.Equal(t, 1, NewSampler(constSource(0.25)).Sample(items, Unweighted))
	assert.Equal(t, 3, NewSampler(constSource(0.9999)).Sample(items, Unweighted))
	// a broken source returning 1 still yields a valid index
	assert.Equal(t, 3, NewSampler(constSource(1)).Sample(items, Unweighted))
}

func TestSampler_DriftFallsBackToLast(t *testing.T) {
	items := []Item{{Label: "a", Weight: 1}, {Label: "b", Weight: 2}}
	assert.Equal(t, 1, NewSampler(constSource(1.0000001)).Sample(items, Weighted))
}

func TestSampler_WeightedFairness(t *testing.T) {
	const trials = 200_000

	items := []Item{
		{Label: "a", Weight: 10},
		{Label: "b", Weight: 20},
		{Label: "c", Weight: 30},
		{Label: "d", Weight: 40},
	}
	rng := rand.New(rand.NewSource(7))
	s := NewSampler(wrand.SourceFunc(rng.Float64))

	counts := make([]int, len(items))
	for i := 0; i < trials; i++ {
		counts[s.Sample(items, Weighted)]++
	}

	for i, it := range items {
		got := float64(counts[i]) / trials
		assert.InDelta(t, it.Weight/100, got, 0.01, "item %s", it.Label)
	}
}

func TestSampler_UnweightedFairness(t *testing.T) {
	const trials = 100_000

	rng := rand.New(rand.NewSource(9))
	s := NewSampler(wrand.SourceFunc(rng.Float64))
	items := labels(5)

	counts := make([]int, len(items))
	for i := 0; i < trials; i++ {
		counts[s.Sample(items, Unweighted)]++
	}
	for i := range items {
		assert.InDelta(t, 0.2, float64(counts[i])/trials, 0.01)
	}
}

func TestSampler_DefaultSource(t *testing.T) {
	s := NewSampler(nil)
	for i := 0; i < 100; i++ {
		idx := s.Sample(labels(3), Unweighted)
		assert.GreaterOrEqual(t, idx, 0)
		assert.Less(t, idx, 3)
	}
}
