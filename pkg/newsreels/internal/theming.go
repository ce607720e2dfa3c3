package internal

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Theme defines the colors and assets of the screens.
type Theme struct {
	AccentColor         sdl.Color // Footer pills, category label
	CardColor           sdl.Color // Card background
	TitleColor          sdl.Color // Card and article titles
	TextColor           sdl.Color // Body text
	HintColor           sdl.Color // Footer text, secondary labels
	BackgroundColor     sdl.Color // Screen background
	FontPath            string    // Path to the UI font
	BackgroundImagePath string    // Optional background image
}

var currentTheme Theme

func SetTheme(theme Theme) {
	currentTheme = theme
}

func GetTheme() Theme {
	return currentTheme
}

// DefaultTheme is a light reading theme close to a news site's reels page.
func DefaultTheme(fontPath string) Theme {
	return Theme{
		AccentColor:     HexToColor(0xE63946),
		CardColor:       HexToColor(0xFFFFFF),
		TitleColor:      HexToColor(0x333333),
		TextColor:       HexToColor(0x666666),
		HintColor:       HexToColor(0x888888),
		BackgroundColor: HexToColor(0xF5F5F5),
		FontPath:        fontPath,
	}
}

// HexToColor converts 0xRRGGBB to an opaque sdl.Color.
func HexToColor(hex uint32) sdl.Color {
	return sdl.Color{
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
		A: 255,
	}
}
