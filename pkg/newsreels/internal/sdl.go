package internal

import (
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// Init brings up SDL, the window and the fonts. The theme must be set first.
func Init(title string, opts WindowOptions) error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return err
	}

	if err := img.Init(img.INIT_PNG | img.INIT_JPG | img.INIT_WEBP); err != nil {
		GetInternalLogger().Warn("Some image formats are unavailable", "error", err)
	}

	if err := ttf.Init(); err != nil {
		return err
	}

	sdl.SetHint(sdl.HINT_RENDER_SCALE_QUALITY, "1")

	w, err := initWindow(title, opts)
	if err != nil {
		return err
	}
	window = w
	window.LoadBackground()

	return initFonts(GetTheme().FontPath, window.GetHeight())
}

// SDLCleanup releases everything Init created.
func SDLCleanup() {
	closeFonts()
	if window != nil {
		window.close()
		window = nil
	}
	ttf.Quit()
	img.Quit()
	sdl.Quit()
	CloseLogger()
}
