package internal

import (
	"log/slog"
	"testing"

	"github.com/veandco/go-sdl2/sdl"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" DEBUG ": slog.LevelDebug,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for raw, want := range tests {
		if got := ParseLevel(raw); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", raw, got, want)
		}
	}
}

func TestHexToColor(t *testing.T) {
	got := HexToColor(0xE63946)
	want := sdl.Color{R: 0xE6, G: 0x39, B: 0x46, A: 255}
	if got != want {
		t.Errorf("HexToColor() = %+v, want %+v", got, want)
	}
}

func TestFontSize(t *testing.T) {
	if got := fontSize(800, 20); got != 40 {
		t.Errorf("fontSize(800, 20) = %d, want 40", got)
	}
	if got := fontSize(200, 42); got != 12 {
		t.Errorf("fontSize(200, 42) = %d, want minimum 12", got)
	}
}

func TestRasterizePlaceholder(t *testing.T) {
	rgba, err := RasterizePlaceholder(200, 150)
	if err != nil {
		t.Fatalf("RasterizePlaceholder() error = %v", err)
	}
	if b := rgba.Bounds(); b.Dx() != 200 || b.Dy() != 150 {
		t.Fatalf("bounds = %v, want 200x150", b)
	}

	// The background rect covers the center of the image.
	if _, _, _, a := rgba.At(100, 75).RGBA(); a == 0 {
		t.Error("placeholder center is transparent")
	}
}
