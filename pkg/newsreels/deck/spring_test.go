package deck

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// maxFrames bounds every settle loop; a 60fps spring that needs more than
// this is broken.
const maxFrames = 600

func stepUntilIdle(t *testing.T, a *Animator) int {
	t.Helper()
	for frame := 1; frame <= maxFrames; frame++ {
		a.Step()
		if !a.Animating() {
			return frame
		}
	}
	t.Fatalf("animator did not settle within %d frames", maxFrames)
	return 0
}

func TestSpringConfig_Defaults(t *testing.T) {
	cfg := DefaultSpringConfig()
	assert.InDelta(t, math.Sqrt(500), cfg.AngularFrequency(), 1e-9)
	assert.Greater(t, cfg.DampingRatio(), 1.0, "default spring must not oscillate")

	filled := SpringConfig{Tension: 300}.withDefaults()
	assert.Equal(t, 300.0, filled.Tension)
	assert.Equal(t, cfg.Friction, filled.Friction)
	assert.Equal(t, cfg.FPS, filled.FPS)
}

func TestAnimator_FollowFinger(t *testing.T) {
	a := NewAnimator(DefaultSpringConfig())

	a.FollowFinger(40, 10)
	assert.Equal(t, Offset{}, a.Offset(), "ignored outside a drag")

	a.BeginDrag()
	a.FollowFinger(40, 10)

	st := a.State()
	assert.True(t, st.Dragging)
	assert.Equal(t, 40.0, st.OffsetX)
	assert.Equal(t, 10.0, st.OffsetY)
	assert.Equal(t, 2.0, st.Rotation)
	assert.Equal(t, PhaseDragging, a.Phase())
}

func TestAnimator_SettlesOnceAtTarget(t *testing.T) {
	a := NewAnimator(DefaultSpringConfig())

	var got []SettleOutcome
	a.OnSettle(func(o SettleOutcome) { got = append(got, o) })

	a.BeginDrag()
	a.FollowFinger(150, 20)
	target := Offset{X: 400, Rotation: FlyOffRotation}
	require.True(t, a.MoveTo(target, Advance()))
	assert.Equal(t, PhaseFlyingRight, a.Phase())

	frames := stepUntilIdle(t, a)
	assert.Less(t, frames, 60, "settle should take well under a second at 60fps")

	require.Len(t, got, 1)
	assert.Equal(t, OutcomeAdvance, got[0].Kind)
	assert.Equal(t, target, a.Offset())
	assert.Equal(t, PhaseIdle, a.Phase())

	for i := 0; i < 10; i++ {
		a.Step()
	}
	assert.Len(t, got, 1, "no further settles once idle")
}

func TestAnimator_NoOvershoot(t *testing.T) {
	a := NewAnimator(DefaultSpringConfig())
	a.BeginDrag()
	a.FollowFinger(120, 0)
	a.MoveTo(Offset{}, SnapBack())

	for a.Animating() {
		a.Step()
		assert.GreaterOrEqual(t, a.Offset().X, -0.5, "snap back crossed the rest position")
	}
}

func TestAnimator_MoveToSameTargetIsIdempotent(t *testing.T) {
	a := NewAnimator(DefaultSpringConfig())

	settles := 0
	a.OnSettle(func(SettleOutcome) { settles++ })

	a.BeginDrag()
	a.FollowFinger(-200, 0)
	target := Offset{X: -400, Rotation: -FlyOffRotation}
	assert.True(t, a.MoveTo(target, Open(Item{ID: "1"})))
	a.Step()
	assert.False(t, a.MoveTo(target, Open(Item{ID: "1"})))

	stepUntilIdle(t, a)
	assert.Equal(t, 1, settles)
}

func TestAnimator_BeginDragDiscardsMotion(t *testing.T) {
	a := NewAnimator(DefaultSpringConfig())

	var got []SettleOutcome
	a.OnSettle(func(o SettleOutcome) { got = append(got, o) })

	a.BeginDrag()
	a.FollowFinger(300, 0)
	a.MoveTo(Offset{X: 400, Rotation: FlyOffRotation}, Advance())
	a.Step()

	a.BeginDrag()
	assert.False(t, a.Animating())
	for i := 0; i < maxFrames; i++ {
		a.Step()
	}
	assert.Empty(t, got, "stale motion must never settle")

	a.FollowFinger(0, 0)
	a.MoveTo(Offset{}, SnapBack())
	stepUntilIdle(t, a)
	require.Len(t, got, 1)
	assert.Equal(t, OutcomeSnapBack, got[0].Kind)
}

func TestAnimator_Reset(t *testing.T) {
	a := NewAnimator(DefaultSpringConfig())
	a.BeginDrag()
	a.FollowFinger(80, 80)
	a.MoveTo(Offset{}, SnapBack())

	a.Reset()
	assert.Equal(t, DragState{}, a.State())
	assert.False(t, a.Animating())
	_, ok := a.Target()
	assert.False(t, ok)
}

func TestOutcomePhases(t *testing.T) {
	assert.Equal(t, PhaseSnappingBack, SnapBack().phase())
	assert.Equal(t, PhaseFlyingRight, Advance().phase())
	assert.Equal(t, PhaseFlyingLeft, Open(Item{}).phase())
}
