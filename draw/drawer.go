package draw

import (
	"github.com/keharriso/love-nuklear/handle"
	"github.com/keharriso/love-nuklear/host"
	"github.com/keharriso/love-nuklear/style"
	"github.com/keharriso/love-nuklear/transform"
)

// Drawer is the host drawing API. Every coordinate it receives is already
// in screen space. Point slices are only valid for the duration of the call.
type Drawer interface {
	// Scissor returns the host's current scissor, if one is set.
	Scissor() (transform.Rect, bool)
	SetScissor(r transform.Rect)
	ClearScissor()

	// Polyline strokes connected segments through pts.
	Polyline(pts []transform.Point, thickness float64, c style.Color)
	// Polygon fills the closed polygon pts.
	Polygon(pts []transform.Point, c style.Color)
	// Mesh fills the quad with a color per corner.
	Mesh(quad [4]transform.Point, colors [4]style.Color)
	// Text draws text with its top-left at origin. basis is the linear part
	// of the transform to apply to the glyphs.
	Text(font host.Font, text string, origin transform.Point, basis transform.Matrix, c style.Color)
	// Image draws region of img mapped onto quad (top-left, top-right,
	// bottom-right, bottom-left).
	Image(img host.Image, region style.Region, quad [4]transform.Point, tint style.Color)
}

// Resolver turns handles embedded in commands back into host objects.
type Resolver interface {
	ResolveFont(h handle.Handle) (host.Font, error)
	ResolveImage(h handle.Handle) (host.Image, error)
}
