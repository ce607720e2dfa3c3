package deck

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

const (
	// TiltDivisor converts horizontal drag distance into card tilt in degrees.
	TiltDivisor = 20.0
	// FlyOffRotation is the tilt in degrees a dismissed card ends at.
	FlyOffRotation = 20.0
)

// Offset is the visual transform of the active card.
type Offset struct {
	X, Y     float64
	Rotation float64 // degrees
}

// Phase is the animator state of the active card.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseDragging
	PhaseSnappingBack
	PhaseFlyingRight
	PhaseFlyingLeft
)

func (p Phase) String() string {
	switch p {
	case PhaseDragging:
		return "dragging"
	case PhaseSnappingBack:
		return "snapping-back"
	case PhaseFlyingRight:
		return "flying-right"
	case PhaseFlyingLeft:
		return "flying-left"
	default:
		return "idle"
	}
}

// OutcomeKind tags a SettleOutcome.
type OutcomeKind int

const (
	OutcomeSnapBack OutcomeKind = iota
	OutcomeAdvance
	OutcomeOpen
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeAdvance:
		return "advance"
	case OutcomeOpen:
		return "open"
	default:
		return "snap-back"
	}
}

// SettleOutcome is what happens once a motion comes to rest. Item is only
// set for OutcomeOpen.
type SettleOutcome struct {
	Kind OutcomeKind
	Item Item
}

// SnapBack returns the card to rest without changing the deck.
func SnapBack() SettleOutcome {
	return SettleOutcome{Kind: OutcomeSnapBack}
}

// Advance moves the deck to the next item.
func Advance() SettleOutcome {
	return SettleOutcome{Kind: OutcomeAdvance}
}

// Open hands item to the navigator.
func Open(item Item) SettleOutcome {
	return SettleOutcome{Kind: OutcomeOpen, Item: item}
}

func (o SettleOutcome) phase() Phase {
	return outcomePhases[o.Kind]
}

var outcomePhases = map[OutcomeKind]Phase{
	OutcomeSnapBack: PhaseSnappingBack,
	OutcomeAdvance:  PhaseFlyingRight,
	OutcomeOpen:     PhaseFlyingLeft,
}

// DragState is the live transform handed to the renderer.
type DragState struct {
	OffsetX, OffsetY float64
	Rotation         float64
	Dragging         bool
}

// SpringConfig describes the settle spring in tension/friction terms.
type SpringConfig struct {
	Tension  float64
	Friction float64
	Mass     float64
	FPS      int
	// Epsilon is the distance and speed under which a channel counts as
	// settled.
	Epsilon float64
}

// DefaultSpringConfig is a stiff, slightly overdamped spring that lands a
// fly-off in a few hundred milliseconds without overshoot.
func DefaultSpringConfig() SpringConfig {
	return SpringConfig{
		Tension:  500,
		Friction: 50,
		Mass:     1,
		FPS:      60,
		Epsilon:  0.5,
	}
}

func (c SpringConfig) withDefaults() SpringConfig {
	def := DefaultSpringConfig()
	if c.Tension <= 0 {
		c.Tension = def.Tension
	}
	if c.Friction <= 0 {
		c.Friction = def.Friction
	}
	if c.Mass <= 0 {
		c.Mass = def.Mass
	}
	if c.FPS <= 0 {
		c.FPS = def.FPS
	}
	if c.Epsilon <= 0 {
		c.Epsilon = def.Epsilon
	}
	return c
}

// AngularFrequency and DampingRatio translate tension/friction into the
// parameters harmonica expects.
func (c SpringConfig) AngularFrequency() float64 {
	return math.Sqrt(c.Tension / c.Mass)
}

func (c SpringConfig) DampingRatio() float64 {
	return c.Friction / (2 * math.Sqrt(c.Tension*c.Mass))
}

type motion struct {
	target  Offset
	outcome SettleOutcome
}

// Animator drives the active card toward a target one frame at a time and
// reports exactly one settle per motion.
type Animator struct {
	spring   harmonica.Spring
	epsilon  float64
	pos      Offset
	vel      Offset
	phase    Phase
	motion   *motion
	onSettle func(SettleOutcome)
}

// NewAnimator creates an idle animator at rest.
func NewAnimator(cfg SpringConfig) *Animator {
	cfg = cfg.withDefaults()
	return &Animator{
		spring:  harmonica.NewSpring(harmonica.FPS(cfg.FPS), cfg.AngularFrequency(), cfg.DampingRatio()),
		epsilon: cfg.Epsilon,
	}
}

// OnSettle registers the settle handler, replacing any previous one.
func (a *Animator) OnSettle(fn func(SettleOutcome)) {
	a.onSettle = fn
}

// BeginDrag hands the card to the finger. A motion still in flight is
// dropped and will never settle.
func (a *Animator) BeginDrag() {
	a.motion = nil
	a.vel = Offset{}
	a.phase = PhaseDragging
}

// FollowFinger pins the card to the pointer displacement. It does nothing
// unless a drag is in progress.
func (a *Animator) FollowFinger(dx, dy float64) {
	if a.phase != PhaseDragging {
		return
	}
	a.pos = Offset{X: dx, Y: dy, Rotation: dx / TiltDivisor}
}

// MoveTo starts a motion toward target. The outcome is delivered to the
// settle handler when the card comes to rest. Calling MoveTo again with the
// same target before it settles is a no-op and returns false.
func (a *Animator) MoveTo(target Offset, outcome SettleOutcome) bool {
	if a.motion != nil && a.motion.target == target {
		return false
	}
	a.motion = &motion{target: target, outcome: outcome}
	a.phase = outcome.phase()
	return true
}

// Step advances the simulation by one frame.
func (a *Animator) Step() {
	if a.motion == nil {
		return
	}
	t := a.motion.target

	a.pos.X, a.vel.X = a.spring.Update(a.pos.X, a.vel.X, t.X)
	a.pos.Y, a.vel.Y = a.spring.Update(a.pos.Y, a.vel.Y, t.Y)
	a.pos.Rotation, a.vel.Rotation = a.spring.Update(a.pos.Rotation, a.vel.Rotation, t.Rotation)

	if !a.converged(t) {
		return
	}

	outcome := a.motion.outcome
	a.pos = t
	a.vel = Offset{}
	a.motion = nil
	a.phase = PhaseIdle

	if a.onSettle != nil {
		a.onSettle(outcome)
	}
}

func (a *Animator) converged(t Offset) bool {
	near := func(p, v, target float64) bool {
		return math.Abs(p-target) < a.epsilon && math.Abs(v) < a.epsilon
	}
	return near(a.pos.X, a.vel.X, t.X) &&
		near(a.pos.Y, a.vel.Y, t.Y) &&
		near(a.pos.Rotation, a.vel.Rotation, t.Rotation)
}

// Reset puts the card back at rest with no motion pending.
func (a *Animator) Reset() {
	a.pos = Offset{}
	a.vel = Offset{}
	a.motion = nil
	a.phase = PhaseIdle
}

func (a *Animator) Phase() Phase {
	return a.phase
}

// Animating reports whether a motion is waiting to settle.
func (a *Animator) Animating() bool {
	return a.motion != nil
}

// Target returns the pending motion target, if any.
func (a *Animator) Target() (Offset, bool) {
	if a.motion == nil {
		return Offset{}, false
	}
	return a.motion.target, true
}

func (a *Animator) Offset() Offset {
	return a.pos
}

func (a *Animator) State() DragState {
	return DragState{
		OffsetX:  a.pos.X,
		OffsetY:  a.pos.Y,
		Rotation: a.pos.Rotation,
		Dragging: a.phase == PhaseDragging,
	}
}
