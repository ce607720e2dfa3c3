package internal

import (
	"strings"

	"github.com/newsai/newsreels/pkg/newsreels/constants"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// RenderText draws a single line and returns its width and height.
func RenderText(renderer *sdl.Renderer, font *ttf.Font, text string, x, y int32, color sdl.Color) (int32, int32) {
	if text == "" {
		return 0, 0
	}
	surface, err := font.RenderUTF8Blended(text, color)
	if err != nil {
		GetInternalLogger().Debug("Failed to render text", "error", err)
		return 0, 0
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return 0, 0
	}
	defer texture.Destroy()

	renderer.Copy(texture, nil, &sdl.Rect{X: x, Y: y, W: surface.W, H: surface.H})
	return surface.W, surface.H
}

// TextWidth measures a single line.
func TextWidth(font *ttf.Font, text string) int32 {
	w, _, err := font.SizeUTF8(text)
	if err != nil {
		return 0
	}
	return int32(w)
}

// WrapLines breaks text into lines no wider than maxWidth. Explicit newlines
// are kept.
func WrapLines(font *ttf.Font, text string, maxWidth int32) []string {
	var lines []string

	for _, paragraph := range strings.Split(text, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}

		current := ""
		for _, word := range words {
			candidate := word
			if current != "" {
				candidate = current + " " + word
			}
			if current != "" && TextWidth(font, candidate) > maxWidth {
				lines = append(lines, current)
				current = word
				continue
			}
			current = candidate
		}
		lines = append(lines, current)
	}
	return lines
}

// LineHeight is the font height plus a fifth for spacing.
func LineHeight(font *ttf.Font) int32 {
	h := int32(font.Height())
	return h + h/5
}

// RenderMultilineText wraps and draws text starting at y. x is the left edge,
// center or right edge depending on align. Lines above clipTop or below
// clipBottom are skipped. It returns the total height of the block.
func RenderMultilineText(
	renderer *sdl.Renderer,
	text string,
	font *ttf.Font,
	maxWidth int32,
	x, y int32,
	color sdl.Color,
	align constants.TextAlign,
	clipTop, clipBottom int32,
) int32 {
	lineHeight := LineHeight(font)
	lines := WrapLines(font, text, maxWidth)

	for i, line := range lines {
		lineY := y + int32(i)*lineHeight
		if lineY+lineHeight < clipTop || lineY > clipBottom {
			continue
		}

		lineX := x
		switch align {
		case constants.TextAlignCenter:
			lineX = x - TextWidth(font, line)/2
		case constants.TextAlignRight:
			lineX = x - TextWidth(font, line)
		}
		RenderText(renderer, font, line, lineX, lineY, color)
	}
	return int32(len(lines)) * lineHeight
}
