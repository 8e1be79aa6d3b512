package wheel

// Frame is a snapshot handed to the renderer on every animation tick and
// after every item list change.
type Frame struct {
	Wheel    string
	Sectors  []Sector
	Rotation float64
	// Progress is the eased animation progress in [0, 1].
	Progress float64
	Spinning bool
}

// PointerLabel returns the label of the sector currently under the pointer.
func (f Frame) PointerLabel() string {
	i := Resolve(f.Sectors, f.Rotation)
	if i < 0 {
		return ""
	}
	return f.Sectors[i].Label
}

// Renderer draws wheel frames. Wheels spinning concurrently call Render from
// different goroutines.
type Renderer interface {
	Render(f Frame)
}

type nopRenderer struct{}

func (nopRenderer) Render(Frame) {}
