// Package touch reads a raw evdev touch panel for devices where SDL does not
// report touch input, and turns it into pointer events in window pixels.
package touch

// Kind is the type of a pointer event.
type Kind int

const (
	Down Kind = iota
	Move
	Up
)

func (k Kind) String() string {
	switch k {
	case Down:
		return "down"
	case Move:
		return "move"
	default:
		return "up"
	}
}

// Event is a pointer event in window coordinates.
type Event struct {
	Kind Kind
	X, Y float64
}

// Axis is the raw value range of one panel axis.
type Axis struct {
	Min, Max int32
}

// Scale maps a raw panel value onto [0, size).
func (a Axis) Scale(raw int32, size float64) float64 {
	span := float64(a.Max - a.Min)
	if span <= 0 {
		return 0
	}
	v := float64(raw-a.Min) / span * size
	switch {
	case v < 0:
		return 0
	case v > size:
		return size
	}
	return v
}

// frame accumulates one SYN_REPORT worth of panel state.
type frame struct {
	rawX, rawY int32
	touching   bool
	wasDown    bool
	moved      bool
	changed    bool
}

// assembler converts a stream of axis/key updates into pointer events. It is
// kept apart from the device so it can be driven directly.
type assembler struct {
	x, y          Axis
	width, height float64
	f             frame
}

func (a *assembler) setX(raw int32) {
	a.f.rawX = raw
	a.f.moved = true
}

func (a *assembler) setY(raw int32) {
	a.f.rawY = raw
	a.f.moved = true
}

func (a *assembler) setTouch(down bool) {
	a.f.touching = down
	a.f.changed = true
}

// sync closes the current report and returns the event it produced, if any.
func (a *assembler) sync() (Event, bool) {
	defer func() {
		a.f.moved = false
		a.f.changed = false
	}()

	ev := Event{
		X: a.x.Scale(a.f.rawX, a.width),
		Y: a.y.Scale(a.f.rawY, a.height),
	}

	switch {
	case a.f.changed && a.f.touching && !a.f.wasDown:
		a.f.wasDown = true
		ev.Kind = Down
	case a.f.changed && !a.f.touching && a.f.wasDown:
		a.f.wasDown = false
		ev.Kind = Up
	case a.f.moved && a.f.wasDown:
		ev.Kind = Move
	default:
		return Event{}, false
	}
	return ev, true
}
