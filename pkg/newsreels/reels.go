package newsreels

import (
	"context"
	"errors"

	"github.com/newsai/newsreels/pkg/newsreels/constants"
	"github.com/newsai/newsreels/pkg/newsreels/deck"
	"github.com/newsai/newsreels/pkg/newsreels/internal"
	"github.com/newsai/newsreels/pkg/newsreels/locale"
	"github.com/newsai/newsreels/pkg/newsreels/router"
	"github.com/newsai/newsreels/pkg/newsreels/touch"
	"github.com/veandco/go-sdl2/sdl"
	"golang.org/x/text/cases"
)

// ReelsOptions configures ReelsScreen.
type ReelsOptions struct {
	// Items is shown as is when non-empty. Otherwise the deck is fetched
	// from Source.
	Items  []deck.Item
	Source deck.Source

	// StartIndex is the card shown first, wrapped into range.
	StartIndex int

	ImageResolver deck.ImageResolver
	Spring        deck.SpringConfig // Zero fields use the default spring
	TriggerRatio  float64           // Zero uses deck.SwipeTriggerRatio
	BlurbLength   int

	// TouchDevice is an evdev node such as /dev/input/event1. When empty,
	// only SDL mouse and finger events are used.
	TouchDevice string
}

// ReelsResume is what the reels need to come back to the same card.
type ReelsResume struct {
	Index int
	Items []deck.Item
}

// ReelsResult is returned when a card was opened.
type ReelsResult struct {
	Action ReelsAction
	Route  router.Route
	Item   deck.Item
	Resume ReelsResume
}

type reelsScreen struct {
	window      *internal.Window
	renderer    *sdl.Renderer
	controller  *deck.Controller
	nav         *router.Navigator
	touch       *touch.Reader
	localizer   *locale.Localizer
	cardTexture *sdl.Texture
	footer      []FooterHelpItem
}

// ReelsScreen shows the news deck. Swiping a card right skips it, swiping
// it left opens it. Returns ErrCancelled when the user quits.
func ReelsScreen(ctx context.Context, options ReelsOptions) (*ReelsResult, error) {
	window := internal.GetWindow()
	if window == nil {
		return nil, NewInfrastructureError("reels_screen", errors.New("Init was not called"))
	}

	logger := internal.GetLogger()
	nav := &router.Navigator{}
	controller := deck.NewController(nav,
		deck.WithLogger(logger),
		deck.WithSpring(options.Spring),
		deck.WithTriggerRatio(options.TriggerRatio),
		deck.WithImageResolver(options.ImageResolver),
		deck.WithBlurbLength(options.BlurbLength),
		deck.WithViewportWidth(float64(window.GetWidth())),
	)

	switch {
	case len(options.Items) > 0:
		controller.SetItems(options.Items)
	case options.Source != nil:
		controller.Load(ctx, options.Source)
	}
	controller.Seek(options.StartIndex)

	loc := currentLocalizer()
	s := &reelsScreen{
		window:     window,
		renderer:   window.Renderer,
		controller: controller,
		nav:        nav,
		localizer:  loc,
		footer: []FooterHelpItem{
			{ButtonName: "←", HelpText: loc.T(locale.FooterOpen)},
			{ButtonName: "→", HelpText: loc.T(locale.FooterSkip)},
		},
	}
	defer s.destroy()

	if options.TouchDevice != "" {
		width, height := window.Size()
		reader, err := touch.Open(options.TouchDevice, float64(width), float64(height), internal.GetInternalLogger())
		if err != nil {
			logger.Warn("Touch panel unavailable", "device", options.TouchDevice, "error", err)
		} else {
			s.touch = reader
		}
	}

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !s.handleEvents() {
			break
		}

		controller.Tick()
		if route, ok := nav.Take(); ok {
			item, _ := controller.Lookup(route.ID)
			return &ReelsResult{
				Action: ReelsActionOpened,
				Route:  route,
				Item:   item,
				Resume: ReelsResume{Index: controller.Index(), Items: controller.Items()},
			}, nil
		}

		if images != nil {
			images.Drain(s.renderer)
		}
		s.render()
	}

	return nil, ErrCancelled
}

func (s *reelsScreen) handleEvents() bool {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			return false

		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN && e.Keysym.Sym == sdl.K_ESCAPE {
				return false
			}

		case *sdl.WindowEvent:
			switch e.Event {
			case sdl.WINDOWEVENT_FOCUS_LOST, sdl.WINDOWEVENT_LEAVE:
				s.controller.Cancel()
			case sdl.WINDOWEVENT_SIZE_CHANGED:
				s.controller.SetViewportWidth(float64(s.window.GetWidth()))
			}

		default:
			if pe, ok := s.window.PointerEvent(event); ok {
				s.dispatch(pe)
			}
		}
	}

	s.drainTouch()
	return true
}

func (s *reelsScreen) drainTouch() {
	if s.touch == nil {
		return
	}
	for {
		select {
		case pe, ok := <-s.touch.Events():
			if !ok {
				s.touch = nil
				return
			}
			s.dispatch(pe)
		default:
			return
		}
	}
}

func (s *reelsScreen) dispatch(pe touch.Event) {
	switch pe.Kind {
	case touch.Down:
		s.controller.PointerDown(pe.X, pe.Y)
	case touch.Move:
		s.controller.PointerMove(pe.X, pe.Y)
	case touch.Up:
		s.controller.PointerUp(pe.X, pe.Y)
	}
}

func (s *reelsScreen) render() {
	s.window.Clear()

	width, height := s.window.Size()
	margin := height / 40

	card, ok := s.controller.Card()
	if !ok {
		s.renderEmpty(width, height)
		s.window.Present()
		return
	}

	rect := cardRect(width, height, s.window)
	dst := sdl.Rect{
		X: rect.X + int32(card.Drag.OffsetX),
		Y: rect.Y + int32(card.Drag.OffsetY),
		W: rect.W,
		H: rect.H,
	}

	if tex := s.cardTarget(rect.W, rect.H); tex != nil {
		s.renderer.SetRenderTarget(tex)
		s.renderer.SetDrawColor(0, 0, 0, 0)
		s.renderer.Clear()
		s.renderCard(card, rect.W, rect.H)
		s.renderer.SetRenderTarget(nil)
		s.renderer.CopyEx(tex, nil, &dst, card.Drag.Rotation, nil, sdl.FLIP_NONE)
	} else {
		// No render targets: draw in place, without the tilt.
		s.renderer.SetViewport(&dst)
		s.renderCard(card, rect.W, rect.H)
		s.renderer.SetViewport(nil)
	}

	renderFooter(s.renderer, internal.Fonts.SmallFont, s.footer, margin)
	s.window.Present()
}

// cardRect centers a portrait card in the window.
func cardRect(width, height int32, window *internal.Window) sdl.Rect {
	sx, _ := window.PixelScale()

	w := int32(float64(width) * constants.DefaultCardWidthRatio)
	if maxW := int32(constants.DefaultCardMaxWidth * sx); w > maxW {
		w = maxW
	}
	h := int32(float64(height) * constants.DefaultCardHeightRatio)
	return sdl.Rect{X: (width - w) / 2, Y: (height - h) / 2, W: w, H: h}
}

func (s *reelsScreen) cardTarget(w, h int32) *sdl.Texture {
	if !s.renderer.RenderTargetSupported() {
		return nil
	}
	if s.cardTexture != nil {
		if _, _, tw, th, err := s.cardTexture.Query(); err == nil && tw == w && th == h {
			return s.cardTexture
		}
		s.cardTexture.Destroy()
		s.cardTexture = nil
	}

	tex, err := s.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_RGBA8888), sdl.TEXTUREACCESS_TARGET, w, h)
	if err != nil {
		internal.GetInternalLogger().Warn("Card texture unavailable", "error", err)
		return nil
	}
	tex.SetBlendMode(sdl.BLENDMODE_BLEND)
	s.cardTexture = tex
	return tex
}

// renderCard draws the card at the origin of the current target.
func (s *reelsScreen) renderCard(card deck.Card, w, h int32) {
	theme := internal.GetTheme()
	pad := w / 20

	internal.FillRect(s.renderer, &sdl.Rect{W: w, H: h}, theme.CardColor)

	imageRect := sdl.Rect{W: w, H: h * 55 / 100}
	if images != nil {
		if tex, ok := images.Texture(s.renderer, card.ImageRefs, imageRect.W, imageRect.H); ok {
			internal.CopyCover(s.renderer, tex, &imageRect)
		} else {
			internal.FillRect(s.renderer, &imageRect, theme.BackgroundColor)
		}
	}

	if card.Item.Category != "" {
		s.renderCategory(card.Item.Category, pad, pad)
	}

	y := imageRect.H + pad
	textWidth := w - 2*pad
	y += internal.RenderMultilineText(s.renderer, card.Title, internal.Fonts.MediumFont,
		textWidth, pad, y, theme.TitleColor, constants.TextAlignLeft, 0, h-pad)
	y += pad / 2
	internal.RenderMultilineText(s.renderer, card.Blurb, internal.Fonts.SmallFont,
		textWidth, pad, y, theme.TextColor, constants.TextAlignLeft, 0, h-pad)
}

func (s *reelsScreen) renderCategory(category string, x, y int32) {
	theme := internal.GetTheme()
	font := internal.Fonts.SmallFont
	label := cases.Upper(s.localizer.Tag()).String(category)

	padding := int32(font.Height()) / 3
	internal.FillRect(s.renderer, &sdl.Rect{
		X: x,
		Y: y,
		W: internal.TextWidth(font, label) + 2*padding,
		H: int32(font.Height()) + padding,
	}, theme.AccentColor)
	internal.RenderText(s.renderer, font, label, x+padding, y+padding/2, sdl.Color{R: 255, G: 255, B: 255, A: 255})
}

func (s *reelsScreen) renderEmpty(width, height int32) {
	theme := internal.GetTheme()
	internal.RenderMultilineText(s.renderer, s.localizer.T(locale.EmptyDeck), internal.Fonts.MediumFont,
		width*3/4, width/2, height/2, theme.HintColor, constants.TextAlignCenter, 0, height)
}

func (s *reelsScreen) destroy() {
	if s.cardTexture != nil {
		s.cardTexture.Destroy()
	}
	if s.touch != nil {
		s.touch.Close()
	}
}
