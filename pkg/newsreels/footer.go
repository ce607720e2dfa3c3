package newsreels

import (
	"github.com/newsai/newsreels/pkg/newsreels/internal"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// FooterHelpItem is one hint in the footer, e.g. {ButtonName: "←", HelpText: "Read"}.
type FooterHelpItem struct {
	ButtonName string
	HelpText   string
}

const (
	footerPillPadding = 10
	footerItemGap     = 16
)

// renderFooter draws the hints as pills. The first item sits at the left
// edge, the last at the right edge, any others are centered.
func renderFooter(renderer *sdl.Renderer, font *ttf.Font, items []FooterHelpItem, bottomMargin int32) {
	if len(items) == 0 || font == nil {
		return
	}

	window := internal.GetWindow()
	width, height := window.Size()
	theme := internal.GetTheme()

	pillHeight := int32(font.Height()) + footerPillPadding
	y := height - bottomMargin - pillHeight

	widths := make([]int32, len(items))
	var middle int32
	for i, item := range items {
		widths[i] = footerItemWidth(font, item)
		if i > 0 && i < len(items)-1 {
			middle += widths[i] + footerItemGap
		}
	}

	for i, item := range items {
		var x int32
		switch {
		case i == 0:
			x = bottomMargin
		case i == len(items)-1:
			x = width - bottomMargin - widths[i]
		default:
			x = (width-middle)/2 + sumWidths(widths[1:i], footerItemGap)
		}
		renderFooterItem(renderer, font, item, x, y, widths[i], pillHeight, theme)
	}
}

func footerItemWidth(font *ttf.Font, item FooterHelpItem) int32 {
	w := internal.TextWidth(font, item.HelpText) + 2*footerPillPadding
	if item.ButtonName != "" {
		w += internal.TextWidth(font, item.ButtonName) + footerPillPadding/2
	}
	return w
}

func sumWidths(widths []int32, gap int32) int32 {
	var total int32
	for _, w := range widths {
		total += w + gap
	}
	return total
}

func renderFooterItem(renderer *sdl.Renderer, font *ttf.Font, item FooterHelpItem, x, y, w, h int32, theme internal.Theme) {
	bg := theme.CardColor
	renderer.SetDrawColor(bg.R, bg.G, bg.B, 220)
	renderer.FillRect(&sdl.Rect{X: x, Y: y, W: w, H: h})

	textY := y + footerPillPadding/2
	textX := x + footerPillPadding
	if item.ButtonName != "" {
		bw, _ := internal.RenderText(renderer, font, item.ButtonName, textX, textY, theme.AccentColor)
		textX += bw + footerPillPadding/2
	}
	internal.RenderText(renderer, font, item.HelpText, textX, textY, theme.HintColor)
}
