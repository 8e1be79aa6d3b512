package wheel

import (
	"fmt"
	"math"
)

// Mode is fixed at construction: a wheel is either weighted or not, never mixed.
type Mode int

const (
	Unweighted Mode = iota
	Weighted
)

func (m Mode) String() string {
	switch m {
	case Unweighted:
		return "unweighted"
	case Weighted:
		return "weighted"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

var (
	ErrDuplicateLabel   = fmt.Errorf("label already exists")
	ErrCapacityExceeded = fmt.Errorf("total weight exceeds cap")
	ErrInvalidWeight    = fmt.Errorf("weight must be a positive number")
	ErrWrongMode        = fmt.Errorf("item kind does not match wheel mode")
	ErrSpinInFlight     = fmt.Errorf("wheel is spinning")
	ErrWeightTooSmall   = fmt.Errorf("weight share is too small to land on")
)

// MinShare is the smallest fraction of the total weight a single weighted item may hold.
const MinShare = 1e-9

// Item is a single selectable entry. Weight is ignored for unweighted wheels.
type Item struct {
	Label  string
	Weight float64
}

// weight returns the share of the circle the item takes.
func (it Item) weight(mode Mode) float64 {
	if mode == Unweighted {
		return 1
	}
	return it.Weight
}

// AddItem appends an equal-probability entry to an unweighted wheel.
func (w *Wheel) AddItem(label string) error {
	if w.mode != Unweighted {
		return fmt.Errorf("add %q: %w", label, ErrWrongMode)
	}
	return w.add(Item{Label: label})
}

// AddWeightedItem appends an entry to a weighted wheel. The item is rejected
// when the total weight would go over the configured cap.
func (w *Wheel) AddWeightedItem(label string, weight float64) error {
	if w.mode != Weighted {
		return fmt.Errorf("add %q: %w", label, ErrWrongMode)
	}
	if weight <= 0 || math.IsNaN(weight) || math.IsInf(weight, 0) {
		return fmt.Errorf("add %q with weight %v: %w", label, weight, ErrInvalidWeight)
	}
	return w.add(Item{Label: label, Weight: weight})
}

func (w *Wheel) add(item Item) error {
	w.mu.Lock()

	if w.spinning.Load() {
		w.mu.Unlock()
		return fmt.Errorf("add %q: %w", item.Label, ErrSpinInFlight)
	}

	var total float64
	smallest := item.Weight
	for _, existing := range w.items {
		if existing.Label == item.Label {
			w.mu.Unlock()
			return fmt.Errorf("add %q: %w", item.Label, ErrDuplicateLabel)
		}
		total += existing.Weight
		smallest = math.Min(smallest, existing.Weight)
	}

	if w.mode == Weighted && w.weightCap > 0 && total+item.Weight > w.weightCap {
		w.mu.Unlock()
		return fmt.Errorf("add %q: %v + %v > %v: %w", item.Label, total, item.Weight, w.weightCap, ErrCapacityExceeded)
	}

	// a sector narrower than this can be sampled but not hit by the pointer
	if w.mode == Weighted && smallest/(total+item.Weight) < MinShare {
		w.mu.Unlock()
		return fmt.Errorf("add %q: %v of %v: %w", item.Label, smallest, total+item.Weight, ErrWeightTooSmall)
	}

	w.items = append(w.items, item)
	w.mu.Unlock()

	w.redraw(1, false)
	return nil
}

// Count returns the number of items on the wheel.
func (w *Wheel) Count() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.items)
}

// Label returns the label of the i-th item.
func (w *Wheel) Label(i int) string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.items[i].Label
}

// Items returns a copy of the item list in wheel order.
func (w *Wheel) Items() []Item {
	w.mu.Lock()
	defer w.mu.Unlock()
	items := make([]Item, len(w.items))
	copy(items, w.items)
	return items
}

// TotalWeight returns the sum of weights, or the item count for unweighted wheels.
func (w *Wheel) TotalWeight() float64 {
	w.mu.Lock()
	defer w.mu.Unlock()

	var total float64
	for _, it := range w.items {
		total += it.weight(w.mode)
	}
	return total
}
