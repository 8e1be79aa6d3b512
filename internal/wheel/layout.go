package wheel

import "math"

const (
	// FullTurn is one revolution in radians.
	FullTurn = 2 * math.Pi

	// ReferenceAngle is where the first sector starts, 12 o'clock.
	ReferenceAngle = -math.Pi / 2
)

// Sector is a contiguous slice of the wheel owned by one item.
// Offset and Span are measured clockwise from ReferenceAngle.
type Sector struct {
	Index  int
	Label  string
	Offset float64
	Span   float64
}

// Start returns the absolute angle where the sector begins.
func (s Sector) Start() float64 {
	return ReferenceAngle + s.Offset
}

// End returns the absolute angle where the sector ends (exclusive).
func (s Sector) End() float64 {
	return ReferenceAngle + s.Offset + s.Span
}

// Mid returns the offset of the sector's midpoint from ReferenceAngle.
func (s Sector) Mid() float64 {
	return s.Offset + s.Span/2
}

// contains reports whether the offset falls into [Offset, Offset+Span).
func (s Sector) contains(offset float64) bool {
	return offset >= s.Offset && offset < s.Offset+s.Span
}

// Layout partitions the full circle into sectors in item order. Weighted
// spans are proportional to weight; unweighted spans are equal. The caller
// guarantees a positive total weight.
func Layout(items []Item, mode Mode) []Sector {
	n := len(items)
	if n == 0 {
		return nil
	}

	sectors := make([]Sector, n)

	if mode == Unweighted {
		slice := FullTurn / float64(n)
		for i, it := range items {
			sectors[i] = Sector{
				Index:  i,
				Label:  it.Label,
				Offset: float64(i) * slice,
				Span:   slice,
			}
		}
	} else {
		var total float64
		for _, it := range items {
			total += it.Weight
		}

		// offsets come from the cumulative weight so errors do not accumulate
		var cum float64
		for i, it := range items {
			sectors[i] = Sector{
				Index:  i,
				Label:  it.Label,
				Offset: FullTurn * cum / total,
			}
			cum += it.Weight
		}
		for i := 0; i < n-1; i++ {
			sectors[i].Span = sectors[i+1].Offset - sectors[i].Offset
		}
	}

	// close the circle exactly
	last := &sectors[n-1]
	last.Span = FullTurn - last.Offset

	return sectors
}

// Normalize reduces an angle to [0, 2π).
func Normalize(angle float64) float64 {
	a := math.Mod(angle, FullTurn)
	if a < 0 {
		a += FullTurn
	}
	if a >= FullTurn {
		a = 0
	}
	return a
}

// PointerOffset returns the offset from ReferenceAngle, in the wheel's own
// frame, that sits under the fixed pointer after the wheel turned by rotation.
func PointerOffset(rotation float64) float64 {
	return Normalize(FullTurn - Normalize(rotation))
}

// Resolve returns the index of the sector under the pointer for the given
// cumulative rotation. Sector boundaries are half-open.
func Resolve(sectors []Sector, rotation float64) int {
	if len(sectors) == 0 {
		return -1
	}

	offset := PointerOffset(rotation)
	for _, s := range sectors {
		if s.contains(offset) {
			return s.Index
		}
	}

	return sectors[len(sectors)-1].Index
}

// TargetDelta returns how far the wheel must turn from start so that the
// pointer lands on the middle of sectors[index], after the given number of
// whole extra revolutions. Fractional revolutions are dropped.
func TargetDelta(sectors []Sector, index int, start float64, revolutions float64) float64 {
	revs := math.Floor(revolutions)
	if revs < 0 || math.IsNaN(revs) || math.IsInf(revs, 0) {
		revs = 0
	}

	align := Normalize(FullTurn - sectors[index].Mid() - Normalize(start))
	return FullTurn*revs + align
}
