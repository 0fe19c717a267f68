package canvas

// Surface is a 2D immediate-mode drawing target.
//
// Coordinates are in pixels with the origin at the top-left corner.
// Implementations clip out-of-bounds drawing and must tolerate a zero size.
type Surface interface {
	Size() (w, h int)
	Clear(c Color)

	StrokeLine(x0, y0, x1, y1, width float64, p Paint)
	FillCircle(cx, cy, r float64, p Paint)
	FillRoundRect(x, y, w, h, r float64, p Paint)
	StrokeRoundRect(x, y, w, h, r, width float64, p Paint)

	// MeasureText returns the advance width of s at the given pixel size.
	MeasureText(s string, size float64) float64
	// FillText draws s centered on (cx, cy) both horizontally and vertically.
	FillText(s string, cx, cy, size float64, c Color)
}
