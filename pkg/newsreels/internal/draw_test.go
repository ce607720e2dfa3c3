package internal

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"
)

func TestCoverSource(t *testing.T) {
	tests := []struct {
		name           string
		tw, th, dw, dh int32
		want           sdl.Rect
	}{
		{"wide image into square", 200, 100, 50, 50, sdl.Rect{X: 50, Y: 0, W: 100, H: 100}},
		{"tall image into square", 100, 200, 50, 50, sdl.Rect{X: 0, Y: 50, W: 100, H: 100}},
		{"same aspect", 160, 90, 16, 9, sdl.Rect{X: 0, Y: 0, W: 160, H: 90}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := coverSource(tt.tw, tt.th, tt.dw, tt.dh)
			if *got != tt.want {
				t.Errorf("coverSource() = %+v, want %+v", *got, tt.want)
			}
		})
	}
}
