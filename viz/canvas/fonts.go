package canvas

import (
	"fmt"
	"math"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/opentype"
)

// Fonts caches one face per pixel size for a single typeface.
type Fonts struct {
	f *opentype.Font

	mu    sync.Mutex
	faces map[int]font.Face
}

// DefaultFonts loads the bundled Go Medium typeface.
func DefaultFonts() (*Fonts, error) {
	return ParseFonts(gomedium.TTF)
}

// ParseFonts loads a TrueType/OpenType font.
func ParseFonts(ttf []byte) (*Fonts, error) {
	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return &Fonts{f: f, faces: make(map[int]font.Face)}, nil
}

// Face returns the face for a pixel size, rounded to a tenth of a pixel.
// It returns nil for non-positive sizes.
func (fs *Fonts) Face(size float64) font.Face {
	if fs == nil || !(size > 0) {
		return nil
	}
	key := int(math.Round(size * 10))
	if key <= 0 {
		return nil
	}

	fs.mu.Lock()
	defer fs.mu.Unlock()
	if face, ok := fs.faces[key]; ok {
		return face
	}
	face, err := opentype.NewFace(fs.f, &opentype.FaceOptions{
		Size:    float64(key) / 10,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil
	}
	fs.faces[key] = face
	return face
}
