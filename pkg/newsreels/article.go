package newsreels

import (
	"context"
	"errors"
	"strings"

	"github.com/newsai/newsreels/pkg/newsreels/constants"
	"github.com/newsai/newsreels/pkg/newsreels/deck"
	"github.com/newsai/newsreels/pkg/newsreels/internal"
	"github.com/newsai/newsreels/pkg/newsreels/locale"
	"github.com/newsai/newsreels/pkg/newsreels/touch"
	"github.com/veandco/go-sdl2/sdl"
	"golang.org/x/text/cases"
)

const wordsPerMinute = 200

// ArticleOptions configures ArticleScreen.
type ArticleOptions struct {
	ImageResolver deck.ImageResolver
	TriggerRatio  float64 // Zero uses deck.SwipeTriggerRatio
}

// ArticleResult is returned when the user leaves the article.
type ArticleResult struct {
	Action ArticleAction
}

type articleScreen struct {
	window               *internal.Window
	renderer             *sdl.Renderer
	item                 deck.Item
	imageRefs            []string
	localizer            *locale.Localizer
	tracker              deck.GestureTracker
	triggerRatio         float64
	dragStartScroll      int32
	scrollY              int32
	targetScrollY        int32
	maxScrollY           int32
	scrollSpeed          int32
	scrollAnimationSpeed float32
	footer               []FooterHelpItem
	back                 bool
}

// ArticleScreen shows one news item in full. Escape, Backspace or a right
// swipe goes back; the wheel, arrow keys and vertical drags scroll.
// Returns ErrCancelled when the user quits.
func ArticleScreen(ctx context.Context, item deck.Item, options ArticleOptions) (*ArticleResult, error) {
	window := internal.GetWindow()
	if window == nil {
		return nil, NewInfrastructureError("article_screen", errors.New("Init was not called"))
	}

	ratio := options.TriggerRatio
	if ratio <= 0 {
		ratio = deck.SwipeTriggerRatio
	}

	loc := currentLocalizer()
	s := &articleScreen{
		window:               window,
		renderer:             window.Renderer,
		item:                 item,
		imageRefs:            options.ImageResolver.Candidates(item.Image, item.Category),
		localizer:            loc,
		triggerRatio:         ratio,
		scrollSpeed:          85,
		scrollAnimationSpeed: 0.15,
		footer: []FooterHelpItem{
			{ButtonName: "→", HelpText: loc.T(locale.FooterBack)},
		},
	}

	internal.GetLogger().Debug("Opening article", "category", item.Category, "id", item.ID)

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !s.handleEvents() {
			break
		}
		if s.back {
			return &ArticleResult{Action: ArticleActionBack}, nil
		}

		s.animateScroll()
		if images != nil {
			images.Drain(s.renderer)
		}
		s.render()
	}

	return nil, ErrCancelled
}

func (s *articleScreen) handleEvents() bool {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			return false

		case *sdl.KeyboardEvent:
			if e.Type != sdl.KEYDOWN {
				continue
			}
			switch e.Keysym.Sym {
			case sdl.K_ESCAPE, sdl.K_BACKSPACE:
				s.back = true
			case sdl.K_UP:
				s.scrollBy(-s.scrollSpeed)
			case sdl.K_DOWN:
				s.scrollBy(s.scrollSpeed)
			}

		case *sdl.MouseWheelEvent:
			s.scrollBy(-e.Y * s.scrollSpeed)

		default:
			if pe, ok := s.window.PointerEvent(event); ok {
				s.pointer(pe)
			}
		}
	}
	return true
}

func (s *articleScreen) pointer(pe touch.Event) {
	switch pe.Kind {
	case touch.Down:
		s.tracker.Begin(pe.X, pe.Y)
		s.dragStartScroll = s.targetScrollY
	case touch.Move:
		if _, dy, ok := s.tracker.Move(pe.X, pe.Y); ok {
			s.targetScrollY = clampScroll(s.dragStartScroll-int32(dy), s.maxScrollY)
			s.scrollY = s.targetScrollY
		}
	case touch.Up:
		release, ok := s.tracker.End(pe.X, pe.Y)
		if !ok {
			return
		}
		width := float64(s.window.GetWidth())
		if deck.ClassifyWithRatio(release.DX, width, s.triggerRatio) == deck.IntentCommitRight {
			s.back = true
		}
	}
}

func (s *articleScreen) animateScroll() {
	step := int32(float32(s.targetScrollY-s.scrollY) * s.scrollAnimationSpeed)
	if step == 0 {
		s.scrollY = s.targetScrollY
		return
	}
	s.scrollY += step
}

func (s *articleScreen) scrollBy(delta int32) {
	s.targetScrollY = clampScroll(s.targetScrollY+delta, s.maxScrollY)
}

func clampScroll(y, maxY int32) int32 {
	if y > maxY {
		y = maxY
	}
	if y < 0 {
		y = 0
	}
	return y
}

func (s *articleScreen) render() {
	s.window.Clear()

	theme := internal.GetTheme()
	width, height := s.window.Size()
	margin := width / 20
	if margin < 12 {
		margin = 12
	}
	contentWidth := width - 2*margin
	footerTop := height - 2*int32(internal.Fonts.SmallFont.Height()) - margin

	top := margin - s.scrollY
	y := top

	imageRect := sdl.Rect{X: margin, Y: y, W: contentWidth, H: contentWidth * 9 / 16}
	if images != nil {
		if tex, ok := images.Texture(s.renderer, s.imageRefs, imageRect.W, imageRect.H); ok {
			internal.CopyCover(s.renderer, tex, &imageRect)
		}
	}
	y += imageRect.H + margin/2

	if s.item.Category != "" {
		label := cases.Upper(s.localizer.Tag()).String(s.item.Category)
		_, h := internal.RenderText(s.renderer, internal.Fonts.SmallFont, label, margin, y, theme.AccentColor)
		y += h + margin/4
	}

	y += internal.RenderMultilineText(s.renderer, s.item.Title, internal.Fonts.LargeFont,
		contentWidth, margin, y, theme.TitleColor, constants.TextAlignLeft, 0, footerTop)

	minutes := readingMinutes(s.item.Content)
	_, h := internal.RenderText(s.renderer, internal.Fonts.SmallFont,
		s.localizer.Plural(locale.ReadingTime, minutes), margin, y, theme.HintColor)
	y += h + margin/2

	if s.item.Spot != "" {
		y += internal.RenderMultilineText(s.renderer, s.item.Spot, internal.Fonts.MediumFont,
			contentWidth, margin, y, theme.TitleColor, constants.TextAlignLeft, 0, footerTop)
		y += margin / 2
	}

	body := s.item.Content
	if body == "" {
		body = s.item.Summary
	}
	y += internal.RenderMultilineText(s.renderer, body, internal.Fonts.SmallFont,
		contentWidth, margin, y, theme.TextColor, constants.TextAlignLeft, 0, footerTop)

	contentHeight := y - top + margin
	s.maxScrollY = contentHeight - footerTop
	if s.maxScrollY < 0 {
		s.maxScrollY = 0
	}

	renderFooter(s.renderer, internal.Fonts.SmallFont, s.footer, margin)
	s.window.Present()
}

// readingMinutes estimates the reading time of text, at least one minute.
func readingMinutes(text string) int {
	words := len(strings.Fields(text))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}
