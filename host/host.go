// Package host defines the resources the host program owns and lends to the
// UI core: fonts, images, the clipboard and the frame clock.
package host

import "time"

// Font is a host font. The UI core only ever sees its handle; metrics are
// queried through this interface when the font is registered and when the
// core measures text.
type Font interface {
	// Height returns the line height in pixels.
	Height() float32
	// Width returns the advance width of text in pixels.
	Width(text string) float32
}

// Image is a host image (texture, canvas, decoded picture).
type Image interface {
	// Dimensions returns the intrinsic pixel size.
	Dimensions() (w, h int)
}

// Clipboard is the host's system clipboard.
type Clipboard interface {
	GetText() string
	SetText(text string)
}

// Provider supplies the resources a bridge context needs from its host.
type Provider interface {
	// DefaultFont returns the font active when a context is created.
	DefaultFont() Font
	// Clipboard returns the clipboard used for copy and paste.
	Clipboard() Clipboard
	// Delta returns the time elapsed since the previous frame.
	Delta() time.Duration
}

// ============================================================================
// Basic Provider
// ============================================================================

// Basic is a Provider assembled from its parts.
type Basic struct {
	Font  Font
	Board Clipboard
	Clock *Timer
}

// NewBasic returns a Basic provider with an in-memory clipboard and a fresh
// timer.
func NewBasic(font Font) *Basic {
	return &Basic{
		Font:  font,
		Board: &MemoryClipboard{},
		Clock: NewTimer(),
	}
}

// DefaultFont implements Provider.
func (b *Basic) DefaultFont() Font { return b.Font }

// Clipboard implements Provider.
func (b *Basic) Clipboard() Clipboard { return b.Board }

// Delta implements Provider. A nil clock reports zero.
func (b *Basic) Delta() time.Duration {
	if b.Clock == nil {
		return 0
	}
	return b.Clock.Step()
}
