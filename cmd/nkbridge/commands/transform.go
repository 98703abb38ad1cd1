package commands

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/keharriso/love-nuklear/transform"
)

// TransformResult is the output of `transform`.
type TransformResult struct {
	Ops     []string     `yaml:"ops"                json:"ops"`
	Forward [9]float64   `yaml:"forward,flow"       json:"forward"`
	Inverse [9]float64   `yaml:"inverse,flow"       json:"inverse"`
	Product [9]float64   `yaml:"product,flow"       json:"product"`
	Points  []PointTrace `yaml:"points,omitempty"   json:"points,omitempty"`
}

// PointTrace follows one point to screen space and back.
type PointTrace struct {
	Local  [2]float64 `yaml:"local,flow"  json:"local"`
	Screen [2]float64 `yaml:"screen,flow" json:"screen"`
	Back   [2]float64 `yaml:"back,flow"   json:"back"`
}

func newTransformCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transform OP...",
		Short: "Compose transform operations and print the matrices",
		Long: "Apply each OP in order at the start of a frame. OP is one of\n" +
			"  rotate:DEG  scale:SX,SY  shear:KX,KY  translate:DX,DY",
		Example: "  nkbridge transform rotate:90 translate:10,0 --point 0,0",
		Args:    cobra.MinimumNArgs(1),
		RunE:    runTransform,
	}
	cmd.Flags().StringArray("point", nil, "Local point X,Y to map (repeatable)")
	return cmd
}

func runTransform(cmd *cobra.Command, args []string) error {
	ops := make([]transform.Op, 0, len(args))
	for _, a := range args {
		op, err := parseOp(a)
		if err != nil {
			return err
		}
		ops = append(ops, op)
	}
	rawPoints, _ := cmd.Flags().GetStringArray("point")
	points := make([]transform.Point, 0, len(rawPoints))
	for _, s := range rawPoints {
		p, err := parsePair(s)
		if err != nil {
			return fmt.Errorf("invalid point %q: %w", s, err)
		}
		points = append(points, transform.Point{X: p[0], Y: p[1]})
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	ctx, _, err := newContext(cfg)
	if err != nil {
		return err
	}
	err = ctx.Frame(func() error {
		for _, op := range ops {
			if err := apply(ctx, op); err != nil {
				return fmt.Errorf("failed to %v: %w", op.Kind, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	st := ctx.Transform()
	res := TransformResult{
		Forward: st.Forward,
		Inverse: st.Inverse,
		Product: st.Forward.Mul(st.Inverse),
	}
	for _, op := range ctx.TransformOps() {
		res.Ops = append(res.Ops, formatOp(op))
	}
	for _, p := range points {
		s := st.Forward.Apply(p)
		b := st.Inverse.Apply(s)
		res.Points = append(res.Points, PointTrace{
			Local:  [2]float64{p.X, p.Y},
			Screen: [2]float64{s.X, s.Y},
			Back:   [2]float64{b.X, b.Y},
		})
	}
	return printResult(cmd, res)
}

type transformer interface {
	Rotate(angle float64)
	Scale(sx, sy float64) error
	Shear(kx, ky float64) error
	Translate(dx, dy float64)
}

func apply(t transformer, op transform.Op) error {
	switch op.Kind {
	case transform.OpRotate:
		t.Rotate(op.A)
	case transform.OpScale:
		return t.Scale(op.A, op.B)
	case transform.OpShear:
		return t.Shear(op.A, op.B)
	case transform.OpTranslate:
		t.Translate(op.A, op.B)
	}
	return nil
}

// parseOp parses NAME:ARGS. Rotation angles are in degrees.
func parseOp(s string) (transform.Op, error) {
	name, rest, ok := strings.Cut(s, ":")
	if !ok {
		return transform.Op{}, fmt.Errorf("invalid op %q: expected NAME:ARGS", s)
	}
	if name == "rotate" {
		deg, err := strconv.ParseFloat(rest, 64)
		if err != nil {
			return transform.Op{}, fmt.Errorf("invalid op %q: %w", s, err)
		}
		return transform.Op{Kind: transform.OpRotate, A: deg * math.Pi / 180}, nil
	}

	var kind transform.OpKind
	switch name {
	case "scale":
		kind = transform.OpScale
	case "shear":
		kind = transform.OpShear
	case "translate":
		kind = transform.OpTranslate
	default:
		return transform.Op{}, fmt.Errorf("invalid op %q: unknown operation %q", s, name)
	}
	p, err := parsePair(rest)
	if err != nil {
		return transform.Op{}, fmt.Errorf("invalid op %q: %w", s, err)
	}
	return transform.Op{Kind: kind, A: p[0], B: p[1]}, nil
}

func formatOp(op transform.Op) string {
	if op.Kind == transform.OpRotate {
		return fmt.Sprintf("rotate:%g", op.A*180/math.Pi)
	}
	return fmt.Sprintf("%v:%g,%g", op.Kind, op.A, op.B)
}

func parsePair(s string) ([2]float64, error) {
	var out [2]float64
	a, b, ok := strings.Cut(s, ",")
	if !ok {
		return out, fmt.Errorf("expected two comma-separated numbers")
	}
	var err error
	if out[0], err = strconv.ParseFloat(strings.TrimSpace(a), 64); err != nil {
		return out, err
	}
	if out[1], err = strconv.ParseFloat(strings.TrimSpace(b), 64); err != nil {
		return out, err
	}
	return out, nil
}
