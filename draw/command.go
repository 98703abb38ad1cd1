// Package draw defines the draw commands the UI core queues each frame and
// emits them, mapped to screen space, to a host drawing collaborator.
package draw

import (
	"github.com/keharriso/love-nuklear/style"
	"github.com/keharriso/love-nuklear/transform"
)

// Command is one queued draw command in the UI core's coordinate space.
type Command interface {
	command()
}

// Scissor restricts subsequent commands to Rect.
type Scissor struct {
	Rect transform.Rect
}

// Line is a straight line segment.
type Line struct {
	From, To  transform.Point
	Thickness float64
	Color     style.Color
}

// Curve is a cubic Bézier curve from Begin to End.
type Curve struct {
	Begin, CtrlA, CtrlB, End transform.Point
	Thickness                float64
	Color                    style.Color
}

// Rect is a rectangle, optionally rounded and filled.
type Rect struct {
	Rect      transform.Rect
	Rounding  float64
	Thickness float64
	Color     style.Color
	Filled    bool
}

// RectMultiColor is a filled rectangle with a color per corner: Left is
// the top-left corner, then clockwise Top, Right and Bottom.
type RectMultiColor struct {
	Rect                     transform.Rect
	Left, Top, Right, Bottom style.Color
}

// Circle is the ellipse inscribed in Rect.
type Circle struct {
	Rect      transform.Rect
	Thickness float64
	Color     style.Color
	Filled    bool
}

// Arc is a circular arc from angle A0 to A1 in radians. A filled arc is a
// pie slice.
type Arc struct {
	Center    transform.Point
	Radius    float64
	A0, A1    float64
	Thickness float64
	Color     style.Color
	Filled    bool
}

// Triangle is a triangle.
type Triangle struct {
	A, B, C   transform.Point
	Thickness float64
	Color     style.Color
	Filled    bool
}

// Polygon is a closed polygon.
type Polygon struct {
	Points    []transform.Point
	Thickness float64
	Color     style.Color
	Filled    bool
}

// Polyline is an open sequence of connected segments.
type Polyline struct {
	Points    []transform.Point
	Thickness float64
	Color     style.Color
}

// Text is a run of text drawn in Font at the top-left of Rect over a
// Background fill.
type Text struct {
	Rect       transform.Rect
	Font       style.Font
	Text       string
	Background style.Color
	Foreground style.Color
}

// Image draws Image stretched over Rect.
type Image struct {
	Rect  transform.Rect
	Image style.Image
	Tint  style.Color
}

func (Scissor) command()        {}
func (Line) command()           {}
func (Curve) command()          {}
func (Rect) command()           {}
func (RectMultiColor) command() {}
func (Circle) command()         {}
func (Arc) command()            {}
func (Triangle) command()       {}
func (Polygon) command()        {}
func (Polyline) command()       {}
func (Text) command()           {}
func (Image) command()          {}
