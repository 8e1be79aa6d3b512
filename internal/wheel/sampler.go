package wheel

import "github.com/petuhovskiy/spinwheel/internal/wrand"

// Sampler draws winning indices in proportion to sector spans.
type Sampler struct {
	src wrand.Source
}

func NewSampler(src wrand.Source) *Sampler {
	if src == nil {
		src = wrand.Default
	}
	return &Sampler{src: src}
}

// Sample returns the index of the winning item. Items must be non-empty.
func (s *Sampler) Sample(items []Item, mode Mode) int {
	if mode == Unweighted {
		n := len(items)
		i := int(s.src.Float64() * float64(n))
		if i >= n {
			i = n - 1
		}
		return i
	}

	return weights(items).PickIndex(s.src)
}

func weights(items []Item) wrand.Wrand[int] {
	w := make(wrand.Wrand[int], len(items))
	for i, it := range items {
		w[i] = wrand.WrandItem[int]{Weight: it.Weight, Item: i}
	}
	return w
}
