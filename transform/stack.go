package transform

import (
	"errors"
	"fmt"
)

// ErrTransformOrder is returned when the transform is mutated outside the
// window between the start of a frame and the first UI call.
var ErrTransformOrder = errors.New("transform mutated after the first UI call of the frame")

// Phase is the frame-scoped mutability state of a Stack.
type Phase int

const (
	// Unarmed is the phase before the first frame begins.
	Unarmed Phase = iota
	// Armed allows mutation. Entered at the start of every frame.
	Armed
	// Locked forbids mutation until the next frame begins.
	Locked
)

func (p Phase) String() string {
	switch p {
	case Unarmed:
		return "unarmed"
	case Armed:
		return "armed"
	case Locked:
		return "locked"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// OpKind identifies a recorded transform operation.
type OpKind int

const (
	OpRotate OpKind = iota
	OpScale
	OpShear
	OpTranslate
)

func (k OpKind) String() string {
	switch k {
	case OpRotate:
		return "rotate"
	case OpScale:
		return "scale"
	case OpShear:
		return "shear"
	case OpTranslate:
		return "translate"
	default:
		return fmt.Sprintf("OpKind(%d)", int(k))
	}
}

// Op is one applied transform operation. Rotate uses only A.
type Op struct {
	Kind OpKind
	A, B float64
}

// Apply applies op to s.
func (op Op) Apply(s State) (State, error) {
	switch op.Kind {
	case OpRotate:
		return s.Rotate(op.A), nil
	case OpScale:
		return s.Scale(op.A, op.B)
	case OpShear:
		return s.Shear(op.A, op.B)
	case OpTranslate:
		return s.Translate(op.A, op.B), nil
	default:
		return s, fmt.Errorf("unknown transform op %v", op.Kind)
	}
}

// Stack is the per-frame transform with its mutability phase. It records
// the successful operations of the current frame so a renderer can replay
// them natively.
type Stack struct {
	state State
	phase Phase
	ops   []Op
}

// NewStack returns an unarmed stack holding the identity.
func NewStack() *Stack {
	return &Stack{state: IdentityState}
}

// State returns the current forward/inverse pair.
func (s *Stack) State() State { return s.state }

// Forward returns the current forward matrix.
func (s *Stack) Forward() Matrix { return s.state.Forward }

// Inverse returns the current inverse matrix.
func (s *Stack) Inverse() Matrix { return s.state.Inverse }

// Phase returns the current phase.
func (s *Stack) Phase() Phase { return s.phase }

// Ops returns the operations applied since the last Arm.
func (s *Stack) Ops() []Op {
	out := make([]Op, len(s.ops))
	copy(out, s.ops)
	return out
}

// Arm resets the transform to the identity and allows mutation.
func (s *Stack) Arm() {
	s.state = IdentityState
	s.ops = s.ops[:0]
	s.phase = Armed
}

// Lock forbids further mutation until the next Arm.
func (s *Stack) Lock() {
	if s.phase == Armed {
		s.phase = Locked
	}
}

// Apply applies op if the stack is armed. On error the state is unchanged.
func (s *Stack) Apply(op Op) error {
	if s.phase != Armed {
		return fmt.Errorf("%v while %v: %w", op.Kind, s.phase, ErrTransformOrder)
	}
	next, err := op.Apply(s.state)
	if err != nil {
		return err
	}
	s.state = next
	s.ops = append(s.ops, op)
	return nil
}

// Rotate appends a rotation by angle radians.
func (s *Stack) Rotate(angle float64) error {
	return s.Apply(Op{Kind: OpRotate, A: angle})
}

// Scale appends a scale by (sx, sy).
func (s *Stack) Scale(sx, sy float64) error {
	return s.Apply(Op{Kind: OpScale, A: sx, B: sy})
}

// Shear appends a shear by (kx, ky).
func (s *Stack) Shear(kx, ky float64) error {
	return s.Apply(Op{Kind: OpShear, A: kx, B: ky})
}

// Translate appends a translation by (dx, dy).
func (s *Stack) Translate(dx, dy float64) error {
	return s.Apply(Op{Kind: OpTranslate, A: dx, B: dy})
}

// ToScreen maps a point in the UI core's space to screen space.
func (s *Stack) ToScreen(p Point) Point {
	return s.state.Forward.Apply(p)
}

// ToLocal maps a screen point, such as the pointer, into the UI core's space.
func (s *Stack) ToLocal(p Point) Point {
	return s.state.Inverse.Apply(p)
}

// RectToScreen returns the screen-space bounding box of r.
func (s *Stack) RectToScreen(r Rect) Rect {
	return s.state.Forward.BoundingBox(r)
}
