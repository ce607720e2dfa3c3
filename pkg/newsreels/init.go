// Package newsreels runs the news reels screens: a swipeable card deck of
// news items and the article view a card opens into.
//
// The package handles SDL setup, theming, pointer and touch input, and image
// loading. The swipe state machine itself lives in the deck subpackage and
// has no SDL dependency.
package newsreels

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/newsai/newsreels/pkg/newsreels/constants"
	"github.com/newsai/newsreels/pkg/newsreels/internal"
	"github.com/newsai/newsreels/pkg/newsreels/locale"
)

// Options configures Init.
type Options struct {
	WindowTitle    string // Window title in windowed mode
	Fullscreen     bool   // Fill the display at desktop resolution
	Borderless     bool   // Remove window decorations
	FontPath       string // TTF font for all text (required)
	BackgroundPath string // Optional background image behind the cards
	AccentColorHex uint32 // Accent color as 0xRRGGBB; zero keeps the default
	LogPath        string // Log file path; parent directories are created
	LogLevel       string // "debug", "info", "warn" or "error"
	Language       string // UI language, e.g. "tr" or "en"
	HTTPClient     *http.Client
}

var (
	localizer *locale.Localizer
	images    *internal.ImageLoader
)

// Init sets up logging, the theme, SDL, the window and the fonts.
// Must be called before any screen is shown.
func Init(options Options) error {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}
	if options.LogLevel != "" {
		internal.SetRawLogLevel(options.LogLevel)
	}

	if constants.IsDevMode() {
		internal.SetInternalLogLevel(slog.LevelDebug)
	}

	theme := internal.DefaultTheme(options.FontPath)
	theme.BackgroundImagePath = options.BackgroundPath
	if options.AccentColorHex != 0 {
		theme.AccentColor = internal.HexToColor(options.AccentColorHex)
	}
	internal.SetTheme(theme)

	l, err := locale.New(options.Language, os.Getenv("LANG"))
	if err != nil {
		return NewInfrastructureError("load_locale", err)
	}
	localizer = l

	opts := internal.WindowOptions{
		Fullscreen: options.Fullscreen,
		Borderless: options.Borderless,
	}
	if err := internal.Init(options.WindowTitle, opts); err != nil {
		return NewInfrastructureError("init_sdl", err)
	}

	client := options.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	images = internal.NewImageLoader(client, 2)
	return nil
}

// Close releases all SDL resources. Call it before the program exits.
func Close() {
	if images != nil {
		images.Close()
		images = nil
	}
	internal.SDLCleanup()
}

func currentLocalizer() *locale.Localizer {
	if localizer == nil {
		localizer, _ = locale.New()
	}
	return localizer
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum level of the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string ("debug", "info", ...).
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// SetLogPath sets the log file path. Call before Init or GetLogger.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}
