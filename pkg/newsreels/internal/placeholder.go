package internal

import (
	"bytes"
	"fmt"
	"image"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"github.com/veandco/go-sdl2/sdl"
)

// placeholderSVG is drawn when a card has no usable image.
const placeholderSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 400 300">
  <rect width="400" height="300" rx="15" fill="#e9ecef"/>
  <rect x="120" y="80" width="160" height="120" rx="10" fill="none" stroke="#adb5bd" stroke-width="8"/>
  <circle cx="165" cy="120" r="14" fill="#adb5bd"/>
  <path d="M130 190 L185 140 L215 168 L240 150 L270 190 Z" fill="#adb5bd"/>
  <rect x="120" y="225" width="160" height="10" rx="5" fill="#ced4da"/>
</svg>`

// RasterizePlaceholder renders the placeholder art at w x h.
func RasterizePlaceholder(w, h int) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader([]byte(placeholderSVG)))
	if err != nil {
		return nil, fmt.Errorf("parse placeholder: %w", err)
	}
	icon.SetTarget(0, 0, float64(w), float64(h))

	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, rgba, rgba.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1)
	return rgba, nil
}

// PlaceholderTexture uploads the placeholder art as a texture.
func PlaceholderTexture(renderer *sdl.Renderer, w, h int32) (*sdl.Texture, error) {
	rgba, err := RasterizePlaceholder(int(w), int(h))
	if err != nil {
		return nil, err
	}
	return textureFromRGBA(renderer, rgba)
}

func textureFromRGBA(renderer *sdl.Renderer, rgba *image.RGBA) (*sdl.Texture, error) {
	b := rgba.Bounds()
	texture, err := renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888), sdl.TEXTUREACCESS_STREAMING, int32(b.Dx()), int32(b.Dy()))
	if err != nil {
		return nil, err
	}

	pixels, pitch, err := texture.Lock(nil)
	if err != nil {
		texture.Destroy()
		return nil, err
	}
	rowBytes := b.Dx() * 4
	for y := 0; y < b.Dy(); y++ {
		copy(pixels[y*pitch:y*pitch+rowBytes], rgba.Pix[y*rgba.Stride:y*rgba.Stride+rowBytes])
	}
	texture.Unlock()

	texture.SetBlendMode(sdl.BLENDMODE_BLEND)
	return texture, nil
}
