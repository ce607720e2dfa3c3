// Package constants defines shared constants, environment variable names and
// default assets used throughout newsreels.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// Environment variables read outside of the config package.
const (
	EnvironmentEnvVar  = "ENVIRONMENT"
	WindowWidthEnvVar  = "WINDOW_WIDTH"
	WindowHeightEnvVar = "WINDOW_HEIGHT"
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv(EnvironmentEnvVar) == Development
}

// UploadsPrefix marks image paths served by the news API itself.
const UploadsPrefix = "/uploads/"

// PlaceholderImage is the last entry of every image chain. The renderer draws
// an embedded placeholder when it sees it.
const PlaceholderImage = "placeholder:card"

// CategoryImages maps a lowercased category slug to its default card image,
// relative to the assets directory.
var CategoryImages = map[string]string{
	"guncel":    "default-images/sondakika.jpg",
	"spor":      "default-images/spor.jpg",
	"ekonomi":   "default-images/ekonomi.jpg",
	"turkiye":   "default-images/turkiye.jpg",
	"dunya":     "default-images/dunya.jpg",
	"teknoloji": "default-images/teknoloji.jpg",
	"genel":     "default-images/genel.jpg",
}

// TextAlign specifies horizontal text alignment.
type TextAlign int

const (
	TextAlignLeft   TextAlign = iota // Align text to the left edge
	TextAlignCenter                  // Center text horizontally
	TextAlignRight                   // Align text to the right edge
)

// Default timing and layout constants.
const (
	FrameInterval          = 16 * time.Millisecond // Target frame time when VSync is unavailable
	DefaultBlurbLength     = 120                   // Runes of body text shown when an item has no spot or summary
	DefaultCardWidthRatio  = 0.9                   // Card width relative to the window
	DefaultCardHeightRatio = 0.7                   // Card height relative to the window
	DefaultCardMaxWidth    = 400                   // Card width cap in pixels
)
