package draw

import (
	"errors"
	"math"
	"testing"

	"github.com/keharriso/love-nuklear/handle"
	"github.com/keharriso/love-nuklear/host"
	"github.com/keharriso/love-nuklear/style"
	"github.com/keharriso/love-nuklear/transform"
)

type call struct {
	op     string
	pts    []transform.Point
	rect   transform.Rect
	text   string
	basis  transform.Matrix
	colors [4]style.Color
}

type recorder struct {
	scissor    transform.Rect
	hasScissor bool
	calls      []call
}

func (r *recorder) Scissor() (transform.Rect, bool) { return r.scissor, r.hasScissor }
func (r *recorder) SetScissor(s transform.Rect) {
	r.calls = append(r.calls, call{op: "scissor", rect: s})
}
func (r *recorder) ClearScissor() { r.calls = append(r.calls, call{op: "clear"}) }
func (r *recorder) Polyline(pts []transform.Point, _ float64, _ style.Color) {
	r.calls = append(r.calls, call{op: "polyline", pts: append([]transform.Point(nil), pts...)})
}
func (r *recorder) Polygon(pts []transform.Point, _ style.Color) {
	r.calls = append(r.calls, call{op: "polygon", pts: append([]transform.Point(nil), pts...)})
}
func (r *recorder) Mesh(quad [4]transform.Point, colors [4]style.Color) {
	r.calls = append(r.calls, call{op: "mesh", pts: quad[:], colors: colors})
}
func (r *recorder) Text(_ host.Font, text string, origin transform.Point, basis transform.Matrix, _ style.Color) {
	r.calls = append(r.calls, call{op: "text", text: text, pts: []transform.Point{origin}, basis: basis})
}
func (r *recorder) Image(_ host.Image, _ style.Region, quad [4]transform.Point, _ style.Color) {
	r.calls = append(r.calls, call{op: "image", pts: quad[:]})
}

type resolver struct {
	font  host.Font
	image host.Image
}

var errStale = errors.New("stale")

func (r resolver) ResolveFont(h handle.Handle) (host.Font, error) {
	if h == handle.None {
		return nil, errStale
	}
	return r.font, nil
}

func (r resolver) ResolveImage(h handle.Handle) (host.Image, error) {
	if h == handle.None {
		return nil, errStale
	}
	return r.image, nil
}

func testResolver() resolver {
	return resolver{font: &host.FixedFont{LineHeight: 10, Advance: 5}, image: &host.Blank{W: 4, H: 4}}
}

func nearPoint(a, b transform.Point) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

func TestEmitMapsLineThroughForward(t *testing.T) {
	m := transform.IdentityState.Rotate(math.Pi / 2).Translate(10, 0).Forward
	rec := &recorder{}
	err := NewEmitter().Emit([]Command{Line{From: transform.Point{}, To: transform.Point{X: 5}}}, m, testResolver(), rec)
	if err != nil {
		t.Fatalf("Emit error: %v", err)
	}
	if len(rec.calls) != 2 || rec.calls[0].op != "polyline" {
		t.Fatalf("calls = %+v, want polyline then clear", rec.calls)
	}
	got := rec.calls[0].pts
	if !nearPoint(got[0], transform.Point{X: 0, Y: 10}) || !nearPoint(got[1], transform.Point{X: 0, Y: 15}) {
		t.Errorf("line = %v, want (0,10)-(0,15)", got)
	}
}

func TestEmitScissor(t *testing.T) {
	rot := transform.Rotation(math.Pi / 4)
	tests := []struct {
		name   string
		m      transform.Matrix
		base   *transform.Rect
		rect   transform.Rect
		want   transform.Rect
		last   string
		lastTo transform.Rect
	}{
		{
			name: "identity",
			m:    transform.Identity,
			rect: transform.Rect{X: 1, Y: 2, W: 3, H: 4},
			want: transform.Rect{X: 1, Y: 2, W: 3, H: 4},
			last: "clear",
		},
		{
			name: "rotated uses all four corners",
			m:    rot,
			rect: transform.Rect{W: 10, H: 10},
			want: transform.Rect{X: -10 / math.Sqrt2, Y: 0, W: 20 / math.Sqrt2, H: 20 / math.Sqrt2},
			last: "clear",
		},
		{
			name:   "nested in host scissor",
			m:      transform.Translation(5, 5),
			base:   &transform.Rect{X: 0, Y: 0, W: 10, H: 10},
			rect:   transform.Rect{W: 10, H: 10},
			want:   transform.Rect{X: 5, Y: 5, W: 5, H: 5},
			last:   "scissor",
			lastTo: transform.Rect{W: 10, H: 10},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{}
			if tt.base != nil {
				rec.scissor, rec.hasScissor = *tt.base, true
			}
			if err := NewEmitter().Emit([]Command{Scissor{Rect: tt.rect}}, tt.m, testResolver(), rec); err != nil {
				t.Fatalf("Emit error: %v", err)
			}
			if len(rec.calls) != 2 {
				t.Fatalf("calls = %+v, want 2", rec.calls)
			}
			got := rec.calls[0].rect
			if math.Abs(got.X-tt.want.X) > 1e-9 || math.Abs(got.Y-tt.want.Y) > 1e-9 ||
				math.Abs(got.W-tt.want.W) > 1e-9 || math.Abs(got.H-tt.want.H) > 1e-9 {
				t.Errorf("scissor = %+v, want %+v", got, tt.want)
			}
			last := rec.calls[1]
			if last.op != tt.last || last.rect != tt.lastTo {
				t.Errorf("restore = %s %+v, want %s %+v", last.op, last.rect, tt.last, tt.lastTo)
			}
		})
	}
}

func TestEmitCurveSegments(t *testing.T) {
	rec := &recorder{}
	c := Curve{
		Begin: transform.Point{X: 0, Y: 0},
		CtrlA: transform.Point{X: 0, Y: 10},
		CtrlB: transform.Point{X: 10, Y: 10},
		End:   transform.Point{X: 10, Y: 0},
	}
	if err := NewEmitter().Emit([]Command{c}, transform.Identity, testResolver(), rec); err != nil {
		t.Fatal(err)
	}
	pts := rec.calls[0].pts
	if len(pts) != DefaultSegments+1 {
		t.Fatalf("len(points) = %d, want %d", len(pts), DefaultSegments+1)
	}
	if !nearPoint(pts[0], c.Begin) || !nearPoint(pts[len(pts)-1], c.End) {
		t.Errorf("curve endpoints = %v, %v", pts[0], pts[len(pts)-1])
	}
}

func TestEmitShapes(t *testing.T) {
	tests := []struct {
		name    string
		cmd     Command
		wantOp  string
		wantLen int
	}{
		{"rect outline", Rect{Rect: transform.Rect{W: 10, H: 10}}, "polyline", 5},
		{"rect filled", Rect{Rect: transform.Rect{W: 10, H: 10}, Filled: true}, "polygon", 4},
		{"rounded rect", Rect{Rect: transform.Rect{W: 10, H: 10}, Rounding: 2, Filled: true}, "polygon", 4 * (DefaultSegments/4 + 1)},
		{"circle", Circle{Rect: transform.Rect{W: 10, H: 10}, Filled: true}, "polygon", DefaultSegments},
		{"circle outline", Circle{Rect: transform.Rect{W: 10, H: 10}}, "polyline", DefaultSegments + 1},
		{"triangle", Triangle{A: transform.Point{}, B: transform.Point{X: 1}, C: transform.Point{Y: 1}, Filled: true}, "polygon", 3},
		{"polygon outline", Polygon{Points: []transform.Point{{}, {X: 1}, {X: 1, Y: 1}}}, "polyline", 4},
		{"polyline", Polyline{Points: []transform.Point{{}, {X: 1}, {X: 2}}}, "polyline", 3},
		{"pie", Arc{Radius: 5, A0: 0, A1: math.Pi / 2, Filled: true}, "polygon", 1 + 7},
		{"multi color", RectMultiColor{Rect: transform.Rect{W: 1, H: 1}}, "mesh", 4},
		{"image", Image{Rect: transform.Rect{W: 4, H: 4}, Image: style.Image{Handle: 1}}, "image", 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{}
			if err := NewEmitter().Emit([]Command{tt.cmd}, transform.Identity, testResolver(), rec); err != nil {
				t.Fatalf("Emit error: %v", err)
			}
			c := rec.calls[0]
			if c.op != tt.wantOp || len(c.pts) != tt.wantLen {
				t.Errorf("got %s with %d points, want %s with %d", c.op, len(c.pts), tt.wantOp, tt.wantLen)
			}
		})
	}
}

func TestEmitMultiColorCorners(t *testing.T) {
	rec := &recorder{}
	red, green, blue, white := style.RGB(255, 0, 0), style.RGB(0, 255, 0), style.RGB(0, 0, 255), style.RGB(255, 255, 255)
	cmd := RectMultiColor{Rect: transform.Rect{W: 2, H: 2}, Left: red, Top: green, Right: blue, Bottom: white}
	if err := NewEmitter().Emit([]Command{cmd}, transform.Identity, testResolver(), rec); err != nil {
		t.Fatal(err)
	}
	got := rec.calls[0]
	if got.colors != [4]style.Color{red, green, blue, white} {
		t.Errorf("colors = %v", got.colors)
	}
	if !nearPoint(got.pts[2], transform.Point{X: 2, Y: 2}) {
		t.Errorf("bottom-right = %v, want (2,2)", got.pts[2])
	}
}

func TestEmitText(t *testing.T) {
	rec := &recorder{}
	m := transform.Translation(3, 4).Mul(transform.Scaling(2, 2))
	cmd := Text{
		Rect:       transform.Rect{X: 1, Y: 1, W: 20, H: 10},
		Font:       style.Font{Handle: 1, Height: 10},
		Text:       "hi",
		Background: style.RGB(0, 0, 0),
	}
	if err := NewEmitter().Emit([]Command{cmd}, m, testResolver(), rec); err != nil {
		t.Fatal(err)
	}
	if rec.calls[0].op != "polygon" || rec.calls[1].op != "text" {
		t.Fatalf("calls = %v, want background polygon then text", rec.calls)
	}
	text := rec.calls[1]
	if !nearPoint(text.pts[0], transform.Point{X: 5, Y: 6}) {
		t.Errorf("origin = %v, want (5,6)", text.pts[0])
	}
	if text.basis != transform.Scaling(2, 2) {
		t.Errorf("basis = %v, want scale(2,2)", text.basis)
	}
}

func TestEmitStaleHandle(t *testing.T) {
	rec := &recorder{}
	err := NewEmitter().Emit([]Command{Text{Text: "x"}}, transform.Identity, testResolver(), rec)
	if !errors.Is(err, errStale) {
		t.Errorf("Emit error = %v, want stale", err)
	}
	if last := rec.calls[len(rec.calls)-1]; last.op != "clear" {
		t.Errorf("scissor not restored after error, last call %s", last.op)
	}
}

func TestPointPool(t *testing.T) {
	pts := acquirePoints(10)
	if len(pts) != 0 || cap(pts) < 10 {
		t.Errorf("acquirePoints(10) len=%d cap=%d", len(pts), cap(pts))
	}
	releasePoints(pts)
	big := acquirePoints(1000)
	if cap(big) < 1000 {
		t.Errorf("acquirePoints(1000) cap=%d", cap(big))
	}
	releasePoints(big)
}
