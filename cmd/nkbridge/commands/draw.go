package commands

import (
	"github.com/spf13/cobra"

	"github.com/keharriso/love-nuklear/core"
	"github.com/keharriso/love-nuklear/host"
	"github.com/keharriso/love-nuklear/style"
	"github.com/keharriso/love-nuklear/transform"
)

// DrawResult is the output of `draw`.
type DrawResult struct {
	Calls []DrawCall `yaml:"calls" json:"calls"`
}

// DrawCall is one call the bridge made on the drawer, in screen space.
type DrawCall struct {
	Op     string       `yaml:"op"               json:"op"`
	Points [][2]float64 `yaml:"points,omitempty" json:"points,omitempty"`
	Text   string       `yaml:"text,omitempty"   json:"text,omitempty"`
	Color  string       `yaml:"color,omitempty"  json:"color,omitempty"`
}

func newDrawCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "draw [OP...]",
		Short: "Draw a sample window through a transform and list the draw calls",
		Long: "Lay out a window with a label and a button on a headless core, apply the\n" +
			"transform OPs (see `nkbridge transform`) and print what a drawer would receive.",
		RunE: runDraw,
	}
	cmd.Flags().String("title", "Demo", "Window title")
	return cmd
}

func runDraw(cmd *cobra.Command, args []string) error {
	ops := make([]transform.Op, 0, len(args))
	for _, a := range args {
		op, err := parseOp(a)
		if err != nil {
			return err
		}
		ops = append(ops, op)
	}
	title, _ := cmd.Flags().GetString("title")

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	ctx, ui, err := newContext(cfg)
	if err != nil {
		return err
	}
	err = ctx.Frame(func() error {
		for _, op := range ops {
			if err := apply(ctx, op); err != nil {
				return err
			}
		}
		return ctx.Call(func(core.Core) error {
			ui.Window(transform.Rect{X: 0, Y: 0, W: 200, H: 120}, title)
			ui.Label(transform.Rect{X: 8, Y: 36, W: 184, H: 24}, "Hello", style.TextLeft)
			ui.Button(transform.Rect{X: 8, Y: 72, W: 184, H: 32}, "OK")
			return nil
		})
	})
	if err != nil {
		return err
	}

	rec := &listing{}
	if err := ctx.Draw(rec); err != nil {
		return err
	}
	return printResult(cmd, DrawResult{Calls: rec.calls})
}

// listing is a drawer that records calls for printing.
type listing struct {
	scissor    transform.Rect
	hasScissor bool
	calls      []DrawCall
}

func points(pts []transform.Point) [][2]float64 {
	out := make([][2]float64, len(pts))
	for i, p := range pts {
		out[i] = [2]float64{p.X, p.Y}
	}
	return out
}

func (l *listing) Scissor() (transform.Rect, bool) { return l.scissor, l.hasScissor }

func (l *listing) SetScissor(r transform.Rect) {
	l.scissor, l.hasScissor = r, true
	l.calls = append(l.calls, DrawCall{Op: "scissor", Points: points([]transform.Point{{X: r.X, Y: r.Y}, {X: r.X + r.W, Y: r.Y + r.H}})})
}

func (l *listing) ClearScissor() {
	l.hasScissor = false
	l.calls = append(l.calls, DrawCall{Op: "clear scissor"})
}

func (l *listing) Polyline(pts []transform.Point, _ float64, c style.Color) {
	l.calls = append(l.calls, DrawCall{Op: "polyline", Points: points(pts), Color: c.String()})
}

func (l *listing) Polygon(pts []transform.Point, c style.Color) {
	l.calls = append(l.calls, DrawCall{Op: "polygon", Points: points(pts), Color: c.String()})
}

func (l *listing) Mesh(quad [4]transform.Point, _ [4]style.Color) {
	l.calls = append(l.calls, DrawCall{Op: "mesh", Points: points(quad[:])})
}

func (l *listing) Text(_ host.Font, text string, origin transform.Point, _ transform.Matrix, c style.Color) {
	l.calls = append(l.calls, DrawCall{Op: "text", Points: points([]transform.Point{origin}), Text: text, Color: c.String()})
}

func (l *listing) Image(_ host.Image, _ style.Region, quad [4]transform.Point, c style.Color) {
	l.calls = append(l.calls, DrawCall{Op: "image", Points: points(quad[:]), Color: c.String()})
}
