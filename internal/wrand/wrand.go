package wrand

import "lukechampine.com/frand"

// Source is a uniform generator of floats in [0, 1).
type Source interface {
	Float64() float64
}

// SourceFunc adapts a plain function to Source.
type SourceFunc func() float64

func (f SourceFunc) Float64() float64 {
	return f()
}

// Default source, backed by a fast CSPRNG.
var Default Source = SourceFunc(frand.Float64)

type Wrand[T any] []WrandItem[T]

type WrandItem[T any] struct {
	Weight float64
	Item   T
}

// Total returns the sum of all weights.
func (w Wrand[T]) Total() float64 {
	var sum float64
	for _, item := range w {
		sum += item.Weight
	}
	return sum
}

// PickIndex draws r uniformly over [0, total) and returns the first index
// whose cumulative weight exceeds r. Panics on an empty list.
func (w Wrand[T]) PickIndex(src Source) int {
	if src == nil {
		src = Default
	}

	r := src.Float64() * w.Total()
	return w.IndexOf(r)
}

// IndexOf maps a point in [0, total) to the item owning it.
// Float drift past the last item resolves to the last index.
func (w Wrand[T]) IndexOf(r float64) int {
	for i, item := range w {
		if r < item.Weight {
			return i
		}
		r -= item.Weight
	}

	return len(w) - 1
}

func (w Wrand[T]) Pick(src Source) T {
	return w[w.PickIndex(src)].Item
}
