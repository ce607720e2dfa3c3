package internal

import (
	"github.com/newsai/newsreels/pkg/newsreels/touch"
	"github.com/veandco/go-sdl2/sdl"
)

// PointerEvent converts an SDL mouse or finger event into a pointer event in
// renderer pixels. Mouse events that SDL synthesizes from touches are
// dropped so a finger is not seen twice.
func (w *Window) PointerEvent(event sdl.Event) (touch.Event, bool) {
	sx, sy := w.PixelScale()

	switch e := event.(type) {
	case *sdl.MouseButtonEvent:
		if e.Which == sdl.TOUCH_MOUSEID || e.Button != sdl.BUTTON_LEFT {
			return touch.Event{}, false
		}
		kind := touch.Down
		if e.Type == sdl.MOUSEBUTTONUP {
			kind = touch.Up
		}
		return touch.Event{Kind: kind, X: float64(e.X) * sx, Y: float64(e.Y) * sy}, true

	case *sdl.MouseMotionEvent:
		if e.Which == sdl.TOUCH_MOUSEID || e.State&sdl.ButtonLMask() == 0 {
			return touch.Event{}, false
		}
		return touch.Event{Kind: touch.Move, X: float64(e.X) * sx, Y: float64(e.Y) * sy}, true

	case *sdl.TouchFingerEvent:
		width, height := w.Size()
		ev := touch.Event{X: float64(e.X) * float64(width), Y: float64(e.Y) * float64(height)}
		switch e.Type {
		case sdl.FINGERDOWN:
			ev.Kind = touch.Down
		case sdl.FINGERUP:
			ev.Kind = touch.Up
		default:
			ev.Kind = touch.Move
		}
		return ev, true
	}
	return touch.Event{}, false
}
