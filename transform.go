package nuklear

import (
	"errors"

	"github.com/keharriso/love-nuklear/transform"
)

// ============================================================================
// Transform
// ============================================================================

// Transform changes are only allowed after BeginFrame and before the first
// Call of the frame. Outside that window they panic with an *InvariantError
// wrapping transform.ErrTransformOrder. A zero scale factor or a singular
// shear returns an error and leaves the transform unchanged.

// Rotate rotates the UI by angle radians.
func (c *Context) Rotate(angle float64) {
	c.checkTransform("rotate", c.transform.Rotate(angle))
}

// Scale scales the UI by sx and sy.
func (c *Context) Scale(sx, sy float64) error {
	return c.checkTransform("scale", c.transform.Scale(sx, sy))
}

// Shear shears the UI by kx horizontally and ky vertically.
func (c *Context) Shear(kx, ky float64) error {
	return c.checkTransform("shear", c.transform.Shear(kx, ky))
}

// Translate moves the UI by dx and dy.
func (c *Context) Translate(dx, dy float64) {
	c.checkTransform("translate", c.transform.Translate(dx, dy))
}

// Transform returns the current forward and inverse matrices.
func (c *Context) Transform() transform.State { return c.transform.State() }

// TransformOps returns the operations applied this frame, in order.
func (c *Context) TransformOps() []transform.Op { return c.transform.Ops() }

// TransformPhase returns whether transform changes are currently allowed.
func (c *Context) TransformPhase() transform.Phase { return c.transform.Phase() }

func (c *Context) checkTransform(op string, err error) error {
	if errors.Is(err, transform.ErrTransformOrder) {
		c.invariant(op, err)
	}
	return err
}
