// Package hud draws a small bitmap-font status overlay.
package hud

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"skillnet/viz/loop"
)

const pad = 4

// HUD renders text lines with a tinyfont face.
type HUD struct {
	font tinyfont.Fonter
	fg   color.RGBA
	bg   color.RGBA
	yAdv int16
}

// New returns a HUD using the ProggyTiny font.
func New() *HUD {
	return NewWithFont(&proggy.TinySZ8pt7b)
}

func NewWithFont(f tinyfont.Fonter) *HUD {
	return &HUD{
		font: f,
		fg:   color.RGBA{R: 0x9e, G: 0xf6, B: 0xff, A: 0xff},
		bg:   color.RGBA{R: 0, G: 0, B: 0, A: 0xa0},
		yAdv: int16(f.GetYAdvance()),
	}
}

// Lines formats loop state for display. hoverLabel may be empty.
func Lines(build string, st loop.Stats, hoverLabel string) []string {
	lines := []string{
		fmt.Sprintf("skillnet %s", build),
		fmt.Sprintf("%s %dx%d t=%.1fs", st.Mode, st.Width, st.Height, st.T/1000),
		fmt.Sprintf("frames %d skipped %d", st.Rendered, st.Skipped),
	}
	if st.Hover >= 0 && hoverLabel != "" {
		lines = append(lines, "hover "+hoverLabel)
	}
	return lines
}

// Bounds returns the panel size needed for lines.
func (h *HUD) Bounds(lines []string) image.Rectangle {
	var w uint32
	for _, l := range lines {
		_, ow := tinyfont.LineWidth(h.font, l)
		if ow > w {
			w = ow
		}
	}
	if len(lines) == 0 {
		return image.Rectangle{}
	}
	return image.Rect(0, 0, int(w)+2*pad, len(lines)*int(h.yAdv)+2*pad)
}

// Image renders lines onto a fresh translucent panel.
func (h *HUD) Image(lines []string) *image.RGBA {
	img := image.NewRGBA(h.Bounds(lines))
	draw.Draw(img, img.Bounds(), image.NewUniform(h.bg), image.Point{}, draw.Src)
	h.write(&displayer{img: img}, 0, 0, lines)
	return img
}

// Draw composites the panel onto dst with its top-left corner at at.
func (h *HUD) Draw(dst draw.Image, at image.Point, lines []string) {
	if dst == nil || len(lines) == 0 {
		return
	}
	panel := h.Image(lines)
	r := panel.Bounds().Add(at)
	draw.Draw(dst, r, panel, image.Point{}, draw.Over)
}

func (h *HUD) write(d drivers.Displayer, x, y int16, lines []string) {
	for i, l := range lines {
		baseline := y + pad + h.yAdv*int16(i+1) - 3
		tinyfont.WriteLine(d, h.font, x+pad, baseline, l, h.fg)
	}
}

// displayer lets tinyfont draw into any draw.Image.
type displayer struct {
	img draw.Image
}

var _ drivers.Displayer = (*displayer)(nil)

func (d *displayer) Size() (x, y int16) {
	b := d.img.Bounds()
	return int16(b.Dx()), int16(b.Dy())
}

func (d *displayer) SetPixel(x, y int16, c color.RGBA) {
	b := d.img.Bounds()
	p := image.Pt(b.Min.X+int(x), b.Min.Y+int(y))
	if !p.In(b) {
		return
	}
	d.img.Set(p.X, p.Y, c)
}

func (d *displayer) Display() error { return nil }
