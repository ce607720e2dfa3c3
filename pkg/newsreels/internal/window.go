package internal

import (
	"os"
	"strconv"

	"github.com/newsai/newsreels/pkg/newsreels/constants"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
)

// WindowOptions selects SDL window flags.
type WindowOptions struct {
	Borderless bool // SDL_WINDOW_BORDERLESS
	Fullscreen bool // SDL_WINDOW_FULLSCREEN_DESKTOP
	Hidden     bool // Start hidden (omits SDL_WINDOW_SHOWN)
}

func (wo WindowOptions) sdlFlags() uint32 {
	flags := uint32(sdl.WINDOW_RESIZABLE | sdl.WINDOW_ALLOW_HIGHDPI)
	if !wo.Hidden {
		flags |= sdl.WINDOW_SHOWN
	}
	if wo.Borderless {
		flags |= sdl.WINDOW_BORDERLESS
	}
	if wo.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}
	return flags
}

// Window wraps the SDL window and renderer shared by all screens.
type Window struct {
	Window          *sdl.Window
	Renderer        *sdl.Renderer
	Title           string
	Background      *sdl.Texture
	hasVSync        bool
	lastPresentTime uint64
}

var window *Window

func GetWindow() *Window {
	return window
}

func initWindow(title string, opts WindowOptions) (*Window, error) {
	var width, height int32 = 480, 800

	if mode, err := sdl.GetCurrentDisplayMode(0); err == nil && !opts.Fullscreen {
		// Portrait card on a landscape desktop.
		height = mode.H * 8 / 10
		width = height * 9 / 16
	}

	x, y := int32(sdl.WINDOWPOS_CENTERED), int32(sdl.WINDOWPOS_CENTERED)
	if constants.IsDevMode() {
		opts.Borderless = false
		opts.Fullscreen = false
		x, y = 50, 50
		width = envDimension(constants.WindowWidthEnvVar, 1024)
		height = envDimension(constants.WindowHeightEnvVar, 768)
	}

	GetInternalLogger().Debug("Initializing SDL window", "width", width, "height", height)

	w, err := sdl.CreateWindow(title, x, y, width, height, opts.sdlFlags())
	if err != nil {
		return nil, err
	}

	renderer, err := sdl.CreateRenderer(w, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		GetInternalLogger().Warn("Accelerated renderer unavailable, falling back to software", "error", err)
		renderer, err = sdl.CreateRenderer(w, -1, sdl.RENDERER_SOFTWARE)
		if err != nil {
			w.Destroy()
			return nil, err
		}
	}
	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)

	info, err := renderer.GetInfo()
	vsync := err == nil && info.Flags&sdl.RENDERER_PRESENTVSYNC != 0

	return &Window{
		Window:   w,
		Renderer: renderer,
		Title:    title,
		hasVSync: vsync,
	}, nil
}

func envDimension(key string, fallback int32) int32 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil || n <= 0 {
		GetInternalLogger().Warn("Invalid window dimension; using default", "key", key, "value", v, "error", err)
		return fallback
	}
	return int32(n)
}

// LoadBackground loads the theme background image, if any.
func (w *Window) LoadBackground() {
	path := GetTheme().BackgroundImagePath
	if path == "" {
		return
	}
	tex, err := img.LoadTexture(w.Renderer, path)
	if err != nil {
		GetInternalLogger().Warn("Failed to load background", "path", path, "error", err)
		return
	}
	if w.Background != nil {
		w.Background.Destroy()
	}
	w.Background = tex
}

func (w *Window) close() {
	if w.Background != nil {
		w.Background.Destroy()
	}
	w.Renderer.Destroy()
	w.Window.Destroy()
}

// Size returns the drawable size in renderer pixels.
func (w *Window) Size() (int32, int32) {
	width, height, err := w.Renderer.GetOutputSize()
	if err != nil {
		return w.Window.GetSize()
	}
	return width, height
}

func (w *Window) GetWidth() int32 {
	width, _ := w.Size()
	return width
}

func (w *Window) GetHeight() int32 {
	_, height := w.Size()
	return height
}

// Clear fills the frame with the theme background.
func (w *Window) Clear() {
	bg := GetTheme().BackgroundColor
	w.Renderer.SetDrawColor(bg.R, bg.G, bg.B, bg.A)
	w.Renderer.Clear()

	if w.Background != nil {
		width, height := w.Size()
		w.Renderer.Copy(w.Background, nil, &sdl.Rect{X: 0, Y: 0, W: width, H: height})
	}
}

// PixelScale converts window (event) coordinates into renderer pixels. It is
// above 1 on high-DPI displays.
func (w *Window) PixelScale() (float64, float64) {
	ww, wh := w.Window.GetSize()
	rw, rh := w.Size()
	if ww == 0 || wh == 0 {
		return 1, 1
	}
	return float64(rw) / float64(ww), float64(rh) / float64(wh)
}

// Present swaps the render buffer and holds roughly 60fps when VSync is not
// available.
func (w *Window) Present() {
	w.Renderer.Present()
	if !w.hasVSync {
		frame := uint64(constants.FrameInterval.Milliseconds())
		now := sdl.GetTicks64()
		if elapsed := now - w.lastPresentTime; elapsed < frame {
			sdl.Delay(uint32(frame - elapsed))
		}
		w.lastPresentTime = sdl.GetTicks64()
	}
}
