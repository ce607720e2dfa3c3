package deck

// Release is reported when a drag session ends.
type Release struct {
	DX, DY float64
	// Direction is the sign of DX: -1, 0 or 1.
	Direction int
}

// GestureTracker turns raw pointer positions into a cumulative displacement
// for a single drag session. Embed it in a controller, it needs no setup.
type GestureTracker struct {
	active           bool
	originX, originY float64
	dx, dy           float64
}

// Begin starts a new session at (x, y). Any session already in progress is
// dropped.
func (g *GestureTracker) Begin(x, y float64) {
	g.active = true
	g.originX, g.originY = x, y
	g.dx, g.dy = 0, 0
}

// Move records a pointer position and returns the displacement since Begin.
// ok is false when no session is active.
func (g *GestureTracker) Move(x, y float64) (dx, dy float64, ok bool) {
	if !g.active {
		return 0, 0, false
	}
	g.dx = x - g.originX
	g.dy = y - g.originY
	return g.dx, g.dy, true
}

// End closes the session at (x, y) and reports the net displacement.
// ok is false when no session is active.
func (g *GestureTracker) End(x, y float64) (Release, bool) {
	if !g.active {
		return Release{}, false
	}
	g.Move(x, y)
	g.active = false

	r := Release{DX: g.dx, DY: g.dy}
	switch {
	case g.dx > 0:
		r.Direction = 1
	case g.dx < 0:
		r.Direction = -1
	}
	return r, true
}

// Active reports whether a session is in progress.
func (g *GestureTracker) Active() bool {
	return g.active
}

// Reset drops the current session without reporting a release.
func (g *GestureTracker) Reset() {
	*g = GestureTracker{}
}
