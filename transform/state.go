package transform

import (
	"errors"
	"fmt"
)

var (
	// ErrDivideByZero is returned by Scale when a factor is zero.
	ErrDivideByZero = errors.New("divide by zero")

	// ErrDegenerateShear is returned by Shear when kx*ky == 1.
	ErrDegenerateShear = errors.New("degenerate shear")
)

// State is a forward transform paired with its inverse. Every operation
// updates both sides with the elementary matrix and its closed-form inverse,
// so Forward·Inverse stays the identity without ever inverting a general
// matrix.
type State struct {
	Forward Matrix
	Inverse Matrix
}

// IdentityState is the state with both sides set to the identity.
var IdentityState = State{Forward: Identity, Inverse: Identity}

// Rotate appends a rotation by angle radians.
func (s State) Rotate(angle float64) State {
	return State{
		Forward: s.Forward.Mul(Rotation(angle)),
		Inverse: Rotation(-angle).Mul(s.Inverse),
	}
}

// Scale appends a scale by (sx, sy). A zero factor has no inverse and
// leaves the state unchanged.
func (s State) Scale(sx, sy float64) (State, error) {
	if sx == 0 || sy == 0 {
		return s, fmt.Errorf("failed to scale by (%g, %g): %w", sx, sy, ErrDivideByZero)
	}
	return State{
		Forward: s.Forward.Mul(Scaling(sx, sy)),
		Inverse: Scaling(1/sx, 1/sy).Mul(s.Inverse),
	}, nil
}

// Shear appends a shear by (kx, ky). The shear is singular when kx*ky == 1,
// in which case the state is unchanged.
func (s State) Shear(kx, ky float64) (State, error) {
	det := 1 - kx*ky
	if det == 0 {
		return s, fmt.Errorf("failed to shear by (%g, %g): %w", kx, ky, ErrDegenerateShear)
	}
	inv := Matrix{
		1 / det, -ky / det, 0,
		-kx / det, 1 / det, 0,
		0, 0, 1,
	}
	return State{
		Forward: s.Forward.Mul(Shearing(kx, ky)),
		Inverse: inv.Mul(s.Inverse),
	}, nil
}

// Translate appends a translation by (dx, dy).
func (s State) Translate(dx, dy float64) State {
	return State{
		Forward: s.Forward.Mul(Translation(dx, dy)),
		Inverse: Translation(-dx, -dy).Mul(s.Inverse),
	}
}
