package internal

import "github.com/veandco/go-sdl2/sdl"

// CopyCover draws texture into dst, cropping it to fill dst without
// distortion.
func CopyCover(renderer *sdl.Renderer, texture *sdl.Texture, dst *sdl.Rect) {
	_, _, tw, th, err := texture.Query()
	if err != nil || tw == 0 || th == 0 || dst.W == 0 || dst.H == 0 {
		return
	}
	renderer.Copy(texture, coverSource(tw, th, dst.W, dst.H), dst)
}

// coverSource returns the centered region of a tw x th texture that has the
// aspect ratio of a dw x dh box.
func coverSource(tw, th, dw, dh int32) *sdl.Rect {
	if int64(tw)*int64(dh) > int64(th)*int64(dw) {
		w := int32(int64(th) * int64(dw) / int64(dh))
		return &sdl.Rect{X: (tw - w) / 2, Y: 0, W: w, H: th}
	}
	h := int32(int64(tw) * int64(dh) / int64(dw))
	return &sdl.Rect{X: 0, Y: (th - h) / 2, W: tw, H: h}
}

// FillRect fills r with color.
func FillRect(renderer *sdl.Renderer, r *sdl.Rect, color sdl.Color) {
	renderer.SetDrawColor(color.R, color.G, color.B, color.A)
	renderer.FillRect(r)
}
