// Package transform keeps the 2D affine transform applied to the UI core's
// output together with its inverse, which maps pointer input back into the
// core's coordinate space.
package transform

import "math"

// ============================================================================
// Geometry
// ============================================================================

// Point is a 2D point or vector.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y, W, H float64
}

// Intersect returns the overlap of r and o. Empty overlaps have zero size.
func (r Rect) Intersect(o Rect) Rect {
	x0 := math.Max(r.X, o.X)
	y0 := math.Max(r.Y, o.Y)
	x1 := math.Min(r.X+r.W, o.X+o.W)
	y1 := math.Min(r.Y+r.H, o.Y+o.H)
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Corners returns the four corners of r: top-left, top-right,
// bottom-right, bottom-left.
func (r Rect) Corners() [4]Point {
	return [4]Point{
		{r.X, r.Y},
		{r.X + r.W, r.Y},
		{r.X + r.W, r.Y + r.H},
		{r.X, r.Y + r.H},
	}
}

// ============================================================================
// Matrix
// ============================================================================

// Matrix is a 3x3 affine matrix stored column-major:
//
//	x' = m[0]*x + m[3]*y + m[6]
//	y' = m[1]*x + m[4]*y + m[7]
//
// The bottom row is always (0, 0, 1).
type Matrix [9]float64

// Identity is the identity matrix.
var Identity = Matrix{
	1, 0, 0,
	0, 1, 0,
	0, 0, 1,
}

// Rotation returns the matrix rotating counter-clockwise by angle radians in
// a y-up frame (clockwise on a y-down screen).
func Rotation(angle float64) Matrix {
	s, c := math.Sincos(angle)
	return Matrix{
		c, s, 0,
		-s, c, 0,
		0, 0, 1,
	}
}

// Scaling returns the matrix scaling by sx and sy.
func Scaling(sx, sy float64) Matrix {
	return Matrix{
		sx, 0, 0,
		0, sy, 0,
		0, 0, 1,
	}
}

// Shearing returns the matrix mapping (x, y) to (x + kx*y, ky*x + y).
func Shearing(kx, ky float64) Matrix {
	return Matrix{
		1, ky, 0,
		kx, 1, 0,
		0, 0, 1,
	}
}

// Translation returns the matrix translating by (dx, dy).
func Translation(dx, dy float64) Matrix {
	return Matrix{
		1, 0, 0,
		0, 1, 0,
		dx, dy, 1,
	}
}

// Mul returns m·o, the transform that applies o first and then m.
func (m Matrix) Mul(o Matrix) Matrix {
	var r Matrix
	for col := 0; col < 3; col++ {
		for row := 0; row < 3; row++ {
			r[col*3+row] = m[row]*o[col*3] + m[3+row]*o[col*3+1] + m[6+row]*o[col*3+2]
		}
	}
	return r
}

// Apply maps the point p through m.
func (m Matrix) Apply(p Point) Point {
	return Point{
		X: m[0]*p.X + m[3]*p.Y + m[6],
		Y: m[1]*p.X + m[4]*p.Y + m[7],
	}
}

// ApplyVector maps the direction v through m, ignoring translation.
func (m Matrix) ApplyVector(v Point) Point {
	return Point{
		X: m[0]*v.X + m[3]*v.Y,
		Y: m[1]*v.X + m[4]*v.Y,
	}
}

// BoundingBox returns the axis-aligned bounding box of r's four corners
// mapped through m.
func (m Matrix) BoundingBox(r Rect) Rect {
	corners := r.Corners()
	p := m.Apply(corners[0])
	minX, maxX, minY, maxY := p.X, p.X, p.Y, p.Y
	for _, c := range corners[1:] {
		p = m.Apply(c)
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// Near reports whether every entry of m is within eps of the matching entry
// of o.
func (m Matrix) Near(o Matrix, eps float64) bool {
	for i := range m {
		if math.Abs(m[i]-o[i]) > eps {
			return false
		}
	}
	return true
}
