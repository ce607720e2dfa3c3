package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGestureTracker_Session(t *testing.T) {
	var g GestureTracker

	_, _, ok := g.Move(10, 10)
	assert.False(t, ok, "move without a session")

	g.Begin(100, 200)
	require.True(t, g.Active())

	dx, dy, ok := g.Move(130, 190)
	require.True(t, ok)
	assert.Equal(t, 30.0, dx)
	assert.Equal(t, -10.0, dy)

	dx, dy, ok = g.Move(50, 260)
	require.True(t, ok)
	assert.Equal(t, -50.0, dx, "displacement is cumulative from the session origin")
	assert.Equal(t, 60.0, dy)

	r, ok := g.End(40, 250)
	require.True(t, ok)
	assert.Equal(t, Release{DX: -60, DY: 50, Direction: -1}, r)
	assert.False(t, g.Active())

	_, ok = g.End(0, 0)
	assert.False(t, ok, "second release of the same session")
}

func TestGestureTracker_BeginResets(t *testing.T) {
	var g GestureTracker

	g.Begin(0, 0)
	g.Move(300, 40)

	g.Begin(500, 500)
	r, ok := g.End(510, 500)
	require.True(t, ok)
	assert.Equal(t, 10.0, r.DX)
	assert.Equal(t, 0.0, r.DY)
	assert.Equal(t, 1, r.Direction)
}

func TestGestureTracker_ZeroDirection(t *testing.T) {
	var g GestureTracker

	g.Begin(5, 5)
	r, ok := g.End(5, 90)
	require.True(t, ok)
	assert.Equal(t, 0, r.Direction)
}

func TestGestureTracker_Reset(t *testing.T) {
	var g GestureTracker

	g.Begin(5, 5)
	g.Reset()
	assert.False(t, g.Active())
	_, ok := g.End(10, 10)
	assert.False(t, ok)
}
