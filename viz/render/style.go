package render

import "skillnet/viz/canvas"

// ChipStyle sizes one node chip. Renderer keeps one for resting nodes and
// one for the hovered node.
type ChipStyle struct {
	FontSize float64 // before depth scaling
	PadX     float64
	Height   float64
	Corner   float64

	GlowRadius float64 // disc that is filled
	GlowReach  float64 // radius where the glow gradient reaches zero
	GlowColor  canvas.Color

	Border      canvas.Color
	BorderWidth float64
	Text        canvas.Color
}

// Style holds every color and size the renderer uses.
type Style struct {
	Background canvas.Color

	EdgeWidth float64
	EdgeFrom  canvas.Color
	EdgeTo    canvas.Color

	PulseRadius  float64
	PulseReach   float64
	PulseStops   []canvas.Stop
	PulseSpeed   float64 // phase units per ms
	PulseStagger float64 // phase offset per edge index

	ChipFrom canvas.Color
	ChipTo   canvas.Color
	GlowFade canvas.Color

	FontScaleFactor float64
	FontScaleMin    float64
	FontScaleMax    float64

	Node    ChipStyle
	Hovered ChipStyle
}

// DefaultStyle is the neon-on-dark look of the skill sphere.
func DefaultStyle() Style {
	cyan := canvas.RGB(78, 242, 255)
	return Style{
		Background: canvas.RGB(5, 6, 10),

		EdgeWidth: 2.4,
		EdgeFrom:  canvas.RGBAf(78, 242, 255, 0.6),
		EdgeTo:    canvas.RGBAf(255, 79, 216, 0.6),

		PulseRadius: 4,
		PulseReach:  26,
		PulseStops: []canvas.Stop{
			{Offset: 0, Color: canvas.RGB(255, 255, 255)},
			{Offset: 0.2, Color: canvas.RGB(200, 255, 255)},
			{Offset: 0.5, Color: canvas.RGB(140, 240, 255)},
			{Offset: 1, Color: cyan.WithAlpha(0)},
		},
		PulseSpeed:   0.003,
		PulseStagger: 0.22,

		ChipFrom: canvas.RGBAf(12, 14, 20, 0.95),
		ChipTo:   canvas.RGBAf(24, 26, 38, 0.92),
		GlowFade: canvas.RGBAf(255, 79, 216, 0),

		FontScaleFactor: 1.6,
		FontScaleMin:    0.95,
		FontScaleMax:    1.4,

		Node: ChipStyle{
			FontSize:    12.5,
			PadX:        13,
			Height:      22,
			Corner:      13,
			GlowRadius:  30,
			GlowReach:   36,
			GlowColor:   canvas.RGBAf(78, 242, 255, 0.24),
			Border:      canvas.RGBAf(255, 255, 255, 0.14),
			BorderWidth: 1.3,
			Text:        canvas.RGB(0xe8, 0xf1, 0xff),
		},
		Hovered: ChipStyle{
			FontSize:    13.5,
			PadX:        15,
			Height:      24,
			Corner:      15,
			GlowRadius:  34,
			GlowReach:   50,
			GlowColor:   canvas.RGBAf(78, 242, 255, 0.38),
			Border:      canvas.RGBAf(255, 255, 255, 0.28),
			BorderWidth: 1.8,
			Text:        canvas.RGB(255, 255, 255),
		},
	}
}
