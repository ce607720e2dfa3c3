package internal

import (
	"fmt"

	"github.com/veandco/go-sdl2/ttf"
)

// FontSet holds the three sizes every screen draws with.
type FontSet struct {
	LargeFont  *ttf.Font // Article titles
	MediumFont *ttf.Font // Card titles
	SmallFont  *ttf.Font // Body text, footer
}

var Fonts FontSet

func fontSize(windowHeight int32, divisor int32) int {
	size := int(windowHeight / divisor)
	if size < 12 {
		return 12
	}
	return size
}

func initFonts(path string, windowHeight int32) error {
	sizes := []struct {
		target  **ttf.Font
		divisor int32
	}{
		{&Fonts.LargeFont, 20},
		{&Fonts.MediumFont, 28},
		{&Fonts.SmallFont, 42},
	}

	for _, s := range sizes {
		font, err := ttf.OpenFont(path, fontSize(windowHeight, s.divisor))
		if err != nil {
			closeFonts()
			return fmt.Errorf("open font %s: %w", path, err)
		}
		*s.target = font
	}
	return nil
}

func closeFonts() {
	for _, f := range []**ttf.Font{&Fonts.LargeFont, &Fonts.MediumFont, &Fonts.SmallFont} {
		if *f != nil {
			(*f).Close()
			*f = nil
		}
	}
}
