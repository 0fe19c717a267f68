package hal

import (
	"image"
	"image/draw"

	"skillnet/viz/canvas"
)

// overlayOffset is where overlays are placed on the frame.
var overlayOffset = image.Pt(8, 8)

func compositeOverlay(dst *image.RGBA, overlay *image.RGBA) {
	r := overlay.Bounds().Sub(overlay.Bounds().Min).Add(overlayOffset)
	draw.Draw(dst, r, overlay, overlay.Bounds().Min, draw.Over)
}

// premul converts a straight-alpha color to premultiplied float channels.
func premul(c canvas.Color) (r, g, b, a float32) {
	a = float32(c.A) / 0xff
	r = float32(c.R) / 0xff * a
	g = float32(c.G) / 0xff * a
	b = float32(c.B) / 0xff * a
	return r, g, b, a
}
