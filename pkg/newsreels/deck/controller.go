package deck

import (
	"context"
	"log/slog"

	"github.com/newsai/newsreels/pkg/newsreels/constants"
)

// DefaultViewportWidth is used until the host reports its real width.
const DefaultViewportWidth = 400.0

// Controller is the deck state machine. It owns the current index and is the
// only thing that changes it. All methods must be called from one goroutine,
// the host's event loop.
type Controller struct {
	items         []Item
	index         int
	viewportWidth float64
	triggerRatio  float64
	blurbLength   int

	tracker  GestureTracker
	animator *Animator
	resolver ImageResolver
	nav      Navigator
	logger   *slog.Logger
}

// Option configures a Controller.
type Option func(*Controller)

func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}

func WithSpring(cfg SpringConfig) Option {
	return func(c *Controller) {
		c.animator = NewAnimator(cfg)
	}
}

func WithViewportWidth(width float64) Option {
	return func(c *Controller) {
		c.SetViewportWidth(width)
	}
}

// WithTriggerRatio overrides SwipeTriggerRatio.
func WithTriggerRatio(ratio float64) Option {
	return func(c *Controller) {
		if ratio > 0 {
			c.triggerRatio = ratio
		}
	}
}

func WithImageResolver(r ImageResolver) Option {
	return func(c *Controller) {
		c.resolver = r
	}
}

func WithBlurbLength(n int) Option {
	return func(c *Controller) {
		if n > 0 {
			c.blurbLength = n
		}
	}
}

// NewController creates an empty deck that reports opened items to nav.
func NewController(nav Navigator, opts ...Option) *Controller {
	c := &Controller{
		viewportWidth: DefaultViewportWidth,
		triggerRatio:  SwipeTriggerRatio,
		blurbLength:   constants.DefaultBlurbLength,
		nav:           nav,
		logger:        slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.animator == nil {
		c.animator = NewAnimator(DefaultSpringConfig())
	}
	c.animator.OnSettle(c.settle)
	return c
}

// Load reads the deck from src. A failing source leaves the deck empty.
func (c *Controller) Load(ctx context.Context, src Source) {
	items, err := src.FetchItems(ctx)
	if err != nil {
		c.logger.Error("Failed to load reels", "error", err)
		items = nil
	}
	c.SetItems(items)
}

// SetItems replaces the deck. The current index is kept when it is still in
// range and wrapped otherwise. An empty deck cancels any gesture in progress.
func (c *Controller) SetItems(items []Item) {
	c.items = make([]Item, len(items))
	copy(c.items, items)

	if len(c.items) == 0 {
		c.index = 0
		c.tracker.Reset()
		c.animator.Reset()
		return
	}
	c.index %= len(c.items)
}

// SetViewportWidth updates the width used for classification and fly-off
// targets. Non-positive widths are ignored.
func (c *Controller) SetViewportWidth(width float64) {
	if width > 0 {
		c.viewportWidth = width
	}
}

func (c *Controller) ViewportWidth() float64 {
	return c.viewportWidth
}

func (c *Controller) Len() int {
	return len(c.items)
}

func (c *Controller) Empty() bool {
	return len(c.items) == 0
}

// Index returns the current position. It is 0 for an empty deck.
func (c *Controller) Index() int {
	return c.index
}

// Seek jumps to index, wrapped into range. The card is put back at rest.
func (c *Controller) Seek(index int) {
	if c.Empty() {
		return
	}
	n := len(c.items)
	c.index = ((index % n) + n) % n
	c.tracker.Reset()
	c.animator.Reset()
}

// Current returns the item on top of the deck.
func (c *Controller) Current() (Item, bool) {
	if c.Empty() {
		return Item{}, false
	}
	return c.items[c.index], true
}

// Items returns a copy of the deck.
func (c *Controller) Items() []Item {
	items := make([]Item, len(c.items))
	copy(items, c.items)
	return items
}

// Lookup finds an item by ID.
func (c *Controller) Lookup(id string) (Item, bool) {
	for _, item := range c.items {
		if item.ID == id {
			return item, true
		}
	}
	return Item{}, false
}

func (c *Controller) Phase() Phase {
	return c.animator.Phase()
}

func (c *Controller) DragState() DragState {
	return c.animator.State()
}

// Busy reports whether a drag or settle animation is in progress.
func (c *Controller) Busy() bool {
	return c.tracker.Active() || c.animator.Animating()
}

// PointerDown starts a drag session. It always starts fresh: a card still
// flying from an earlier release is caught and its outcome discarded.
func (c *Controller) PointerDown(x, y float64) {
	if c.Empty() {
		return
	}
	if c.animator.Animating() {
		c.logger.Debug("Drag interrupted settle", "phase", c.animator.Phase().String())
	}
	c.tracker.Begin(x, y)
	c.animator.BeginDrag()
}

// PointerMove drags the card with the pointer.
func (c *Controller) PointerMove(x, y float64) {
	if c.Empty() {
		return
	}
	dx, dy, ok := c.tracker.Move(x, y)
	if !ok {
		return
	}
	c.animator.FollowFinger(dx, dy)
}

// PointerUp releases the card. The release is classified here and its
// outcome is fixed until the card settles.
func (c *Controller) PointerUp(x, y float64) {
	if c.Empty() {
		return
	}
	release, ok := c.tracker.End(x, y)
	if !ok {
		return
	}
	c.animator.FollowFinger(release.DX, release.DY)

	intent := ClassifyWithRatio(release.DX, c.viewportWidth, c.triggerRatio)
	target, outcome := c.resolve(intent)

	c.logger.Debug("Card released",
		"dx", release.DX,
		"intent", intent.String(),
		"index", c.index,
	)
	c.animator.MoveTo(target, outcome)
}

// Cancel abandons a drag in progress and springs the card back.
func (c *Controller) Cancel() {
	if !c.tracker.Active() {
		return
	}
	c.tracker.Reset()
	c.animator.MoveTo(Offset{}, SnapBack())
}

func (c *Controller) resolve(intent Intent) (Offset, SettleOutcome) {
	w := c.viewportWidth
	switch intent {
	case IntentCommitRight:
		return Offset{X: w, Rotation: FlyOffRotation}, Advance()
	case IntentCommitLeft:
		item, _ := c.Current()
		return Offset{X: -w, Rotation: -FlyOffRotation}, Open(item)
	default:
		return Offset{}, SnapBack()
	}
}

// Tick advances the settle animation by one frame.
func (c *Controller) Tick() {
	if c.Empty() {
		return
	}
	c.animator.Step()
}

func (c *Controller) settle(outcome SettleOutcome) {
	c.logger.Debug("Card settled", "outcome", outcome.Kind.String(), "index", c.index)

	switch outcome.Kind {
	case OutcomeAdvance:
		if !c.Empty() {
			c.index = (c.index + 1) % len(c.items)
		}
		c.animator.Reset()
	case OutcomeOpen:
		c.animator.Reset()
		if c.nav != nil {
			c.nav.Navigate(outcome.Item.Category, outcome.Item.ID)
		}
	default:
		c.animator.Reset()
	}
}

// Card returns the render view of the current item, or false when there is
// nothing to draw.
func (c *Controller) Card() (Card, bool) {
	item, ok := c.Current()
	if !ok {
		return Card{}, false
	}
	return Card{
		Item:      item,
		ImageRefs: c.resolver.Candidates(item.Image, item.Category),
		Title:     item.Title,
		Blurb:     Blurb(item, c.blurbLength),
		Drag:      c.animator.State(),
	}, true
}
