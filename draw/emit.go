package draw

import (
	"fmt"
	"math"

	"github.com/keharriso/love-nuklear/style"
	"github.com/keharriso/love-nuklear/transform"
)

// DefaultSegments is the number of segments used for curves and full
// circles.
const DefaultSegments = 22

// Emitter maps queued commands through a transform and hands them to a
// Drawer, tessellating shapes the drawer has no primitive for.
type Emitter struct {
	// CurveSegments is the number of segments per Bézier curve.
	CurveSegments int
	// CircleSegments is the number of segments per full circle.
	CircleSegments int
}

// NewEmitter returns an emitter with the default segment counts.
func NewEmitter() *Emitter {
	return &Emitter{CurveSegments: DefaultSegments, CircleSegments: DefaultSegments}
}

// Emit draws cmds through m. Scissor rectangles are mapped as the bounding
// box of their four transformed corners and intersected with the scissor
// the host had set when Emit began, which is restored afterwards.
func (e *Emitter) Emit(cmds []Command, m transform.Matrix, res Resolver, d Drawer) error {
	base, nested := d.Scissor()
	defer func() {
		if nested {
			d.SetScissor(base)
		} else {
			d.ClearScissor()
		}
	}()

	for i, cmd := range cmds {
		if err := e.emit(cmd, m, res, d, base, nested); err != nil {
			return fmt.Errorf("failed to draw command %d (%T): %w", i, cmd, err)
		}
	}
	return nil
}

func (e *Emitter) emit(cmd Command, m transform.Matrix, res Resolver, d Drawer, base transform.Rect, nested bool) error {
	switch c := cmd.(type) {
	case Scissor:
		r := m.BoundingBox(c.Rect)
		if nested {
			r = r.Intersect(base)
		}
		d.SetScissor(r)

	case Line:
		pts := acquirePoints(2)
		pts = append(pts, m.Apply(c.From), m.Apply(c.To))
		d.Polyline(pts, c.Thickness, c.Color)
		releasePoints(pts)

	case Curve:
		e.curve(c, m, d)

	case Rect:
		pts := e.roundedRect(acquirePoints(4+e.circleSegments()), c.Rect, c.Rounding, m)
		e.shape(d, pts, c.Filled, c.Thickness, c.Color)
		releasePoints(pts)

	case RectMultiColor:
		corners := c.Rect.Corners()
		var quad [4]transform.Point
		for i, p := range corners {
			quad[i] = m.Apply(p)
		}
		d.Mesh(quad, [4]style.Color{c.Left, c.Top, c.Right, c.Bottom})

	case Circle:
		r := c.Rect
		center := transform.Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
		pts := e.ellipse(acquirePoints(e.circleSegments()+1), center, r.W/2, r.H/2, 0, 2*math.Pi, e.circleSegments(), m)
		e.shape(d, pts, c.Filled, c.Thickness, c.Color)
		releasePoints(pts)

	case Arc:
		e.arc(c, m, d)

	case Triangle:
		pts := acquirePoints(3)
		pts = append(pts, m.Apply(c.A), m.Apply(c.B), m.Apply(c.C))
		e.shape(d, pts, c.Filled, c.Thickness, c.Color)
		releasePoints(pts)

	case Polygon:
		pts := acquirePoints(len(c.Points) + 1)
		for _, p := range c.Points {
			pts = append(pts, m.Apply(p))
		}
		e.shape(d, pts, c.Filled, c.Thickness, c.Color)
		releasePoints(pts)

	case Polyline:
		pts := acquirePoints(len(c.Points))
		for _, p := range c.Points {
			pts = append(pts, m.Apply(p))
		}
		d.Polyline(pts, c.Thickness, c.Color)
		releasePoints(pts)

	case Text:
		font, err := res.ResolveFont(c.Font.Handle)
		if err != nil {
			return err
		}
		if c.Background.A != 0 {
			pts := e.roundedRect(acquirePoints(4), c.Rect, 0, m)
			d.Polygon(pts, c.Background)
			releasePoints(pts)
		}
		basis := m
		basis[6], basis[7] = 0, 0
		d.Text(font, c.Text, m.Apply(transform.Point{X: c.Rect.X, Y: c.Rect.Y}), basis, c.Foreground)

	case Image:
		img, err := res.ResolveImage(c.Image.Handle)
		if err != nil {
			return err
		}
		corners := c.Rect.Corners()
		var quad [4]transform.Point
		for i, p := range corners {
			quad[i] = m.Apply(p)
		}
		d.Image(img, c.Image.Region, quad, c.Tint)

	default:
		return fmt.Errorf("unsupported draw command %T", cmd)
	}
	return nil
}

// shape fills pts or strokes it as a closed outline.
func (e *Emitter) shape(d Drawer, pts []transform.Point, filled bool, thickness float64, c style.Color) {
	if len(pts) == 0 {
		return
	}
	if filled {
		d.Polygon(pts, c)
		return
	}
	d.Polyline(append(pts, pts[0]), thickness, c)
}

func (e *Emitter) circleSegments() int {
	if e.CircleSegments < 3 {
		return DefaultSegments
	}
	return e.CircleSegments
}

func (e *Emitter) curveSegments() int {
	if e.CurveSegments < 1 {
		return 1
	}
	return e.CurveSegments
}

// curve samples the cubic Bézier at CurveSegments+1 evenly spaced
// parameters, endpoints included.
func (e *Emitter) curve(c Curve, m transform.Matrix, d Drawer) {
	n := e.curveSegments()
	pts := acquirePoints(n + 1)
	pts = append(pts, m.Apply(c.Begin))
	step := 1 / float64(n)
	for i := 1; i <= n; i++ {
		t := step * float64(i)
		u := 1 - t
		w1 := u * u * u
		w2 := 3 * u * u * t
		w3 := 3 * u * t * t
		w4 := t * t * t
		p := transform.Point{
			X: w1*c.Begin.X + w2*c.CtrlA.X + w3*c.CtrlB.X + w4*c.End.X,
			Y: w1*c.Begin.Y + w2*c.CtrlA.Y + w3*c.CtrlB.Y + w4*c.End.Y,
		}
		pts = append(pts, m.Apply(p))
	}
	d.Polyline(pts, c.Thickness, c.Color)
	releasePoints(pts)
}

func (e *Emitter) arc(c Arc, m transform.Matrix, d Drawer) {
	sweep := math.Abs(c.A1 - c.A0)
	n := int(math.Ceil(float64(e.circleSegments()) * sweep / (2 * math.Pi)))
	if n < 1 {
		n = 1
	}
	pts := acquirePoints(n + 2)
	if c.Filled {
		pts = append(pts, m.Apply(c.Center))
	}
	pts = e.ellipse(pts, c.Center, c.Radius, c.Radius, c.A0, c.A1, n, m)
	if c.Filled {
		d.Polygon(pts, c.Color)
	} else {
		d.Polyline(pts, c.Thickness, c.Color)
	}
	releasePoints(pts)
}

// ellipse appends n+1 points from angle a0 to a1 on the ellipse, or n
// points for a full turn so the outline is not doubled at the seam.
func (e *Emitter) ellipse(pts []transform.Point, center transform.Point, rx, ry, a0, a1 float64, n int, m transform.Matrix) []transform.Point {
	count := n + 1
	if math.Abs(a1-a0) >= 2*math.Pi {
		count = n
	}
	step := (a1 - a0) / float64(n)
	for i := 0; i < count; i++ {
		a := a0 + step*float64(i)
		p := transform.Point{X: center.X + rx*math.Cos(a), Y: center.Y + ry*math.Sin(a)}
		pts = append(pts, m.Apply(p))
	}
	return pts
}

// roundedRect appends the outline of r with corner radius rounding,
// clockwise from the top-left corner.
func (e *Emitter) roundedRect(pts []transform.Point, r transform.Rect, rounding float64, m transform.Matrix) []transform.Point {
	rounding = math.Min(rounding, math.Min(r.W, r.H)/2)
	if rounding <= 0 {
		for _, p := range r.Corners() {
			pts = append(pts, m.Apply(p))
		}
		return pts
	}

	n := e.circleSegments() / 4
	if n < 1 {
		n = 1
	}
	corners := []struct {
		center transform.Point
		start  float64
	}{
		{transform.Point{X: r.X + rounding, Y: r.Y + rounding}, math.Pi},
		{transform.Point{X: r.X + r.W - rounding, Y: r.Y + rounding}, 1.5 * math.Pi},
		{transform.Point{X: r.X + r.W - rounding, Y: r.Y + r.H - rounding}, 0},
		{transform.Point{X: r.X + rounding, Y: r.Y + r.H - rounding}, 0.5 * math.Pi},
	}
	for _, c := range corners {
		pts = e.ellipse(pts, c.center, rounding, rounding, c.start, c.start+math.Pi/2, n, m)
	}
	return pts
}
