package host

import (
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// FaceFont adapts an x/image font.Face to Font.
type FaceFont struct {
	face   font.Face
	height float32
}

// NewFaceFont wraps face. The line height is read once from its metrics.
func NewFaceFont(face font.Face) *FaceFont {
	return &FaceFont{
		face:   face,
		height: fixedToFloat(face.Metrics().Height),
	}
}

// Face returns the wrapped face.
func (f *FaceFont) Face() font.Face { return f.face }

// Height implements Font.
func (f *FaceFont) Height() float32 { return f.height }

// Width implements Font.
func (f *FaceFont) Width(text string) float32 {
	return fixedToFloat(font.MeasureString(f.face, text))
}

// Close releases the face.
func (f *FaceFont) Close() error {
	return f.face.Close()
}

// NewGoFont returns the Go Regular face at size pixels.
func NewGoFont(size float64) (*FaceFont, error) {
	return ParseFont(goregular.TTF, size)
}

// LoadFont reads a TrueType or OpenType file from path at size pixels.
func LoadFont(path string, size float64) (*FaceFont, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font: %w", err)
	}
	return ParseFont(data, size)
}

// ParseFont parses font data at size pixels.
func ParseFont(data []byte, size float64) (*FaceFont, error) {
	ft, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create font face: %w", err)
	}
	return NewFaceFont(face), nil
}

func fixedToFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64
}

// FixedFont is a monospace Font with constant metrics. Every rune advances
// by Advance pixels.
type FixedFont struct {
	LineHeight float32
	Advance    float32
}

// Height implements Font.
func (f *FixedFont) Height() float32 { return f.LineHeight }

// Width implements Font.
func (f *FixedFont) Width(text string) float32 {
	n := 0
	for range text {
		n++
	}
	return float32(n) * f.Advance
}
