package nuklear

import (
	"slices"

	"github.com/keharriso/love-nuklear/core"
	"github.com/keharriso/love-nuklear/transform"
)

// ============================================================================
// Input
// ============================================================================

// Input events use the host's key names ("return", "lshift", "z", ...) and
// button numbers (1 left, 2 right, 3 middle). Each returns true when the UI
// consumed the event and the host should not act on it.

var plainKeys = map[string]core.Key{
	"lshift":    core.KeyShift,
	"rshift":    core.KeyShift,
	"delete":    core.KeyDel,
	"return":    core.KeyEnter,
	"tab":       core.KeyTab,
	"backspace": core.KeyBackspace,
	"home":      core.KeyTextLineStart,
	"end":       core.KeyTextLineEnd,
	"pagedown":  core.KeyScrollDown,
	"pageup":    core.KeyScrollUp,
	"up":        core.KeyUp,
	"down":      core.KeyDown,
}

// shortcutKeys only register as pressed while the shortcut modifier is held.
var shortcutKeys = map[string]core.Key{
	"z": core.KeyTextUndo,
	"r": core.KeyTextRedo,
	"c": core.KeyCopy,
	"v": core.KeyPaste,
	"x": core.KeyCut,
	"b": core.KeyTextLineStart,
	"e": core.KeyTextLineEnd,
}

// KeyPressed forwards a key press.
func (c *Context) KeyPressed(key string) bool {
	return c.keyEvent(key, true)
}

// KeyReleased forwards a key release.
func (c *Context) KeyReleased(key string) bool {
	return c.keyEvent(key, false)
}

func (c *Context) keyEvent(key string, down bool) bool {
	c.held[key] = down
	shortcut := c.shortcutHeld()

	if k, ok := plainKeys[key]; ok {
		c.ui.InputKey(k, down)
		return c.ui.AnyActive()
	}
	if k, ok := shortcutKeys[key]; ok {
		c.ui.InputKey(k, down && shortcut)
		return c.ui.AnyActive()
	}
	switch key {
	case "left":
		if shortcut {
			c.ui.InputKey(core.KeyTextWordLeft, down)
		} else {
			c.ui.InputKey(core.KeyLeft, down)
		}
	case "right":
		if shortcut {
			c.ui.InputKey(core.KeyTextWordRight, down)
		} else {
			c.ui.InputKey(core.KeyRight, down)
		}
	default:
		return false
	}
	return c.ui.AnyActive()
}

func (c *Context) shortcutHeld() bool {
	return slices.ContainsFunc(c.platform.ShortcutKeys(), func(k string) bool { return c.held[k] })
}

// MousePressed forwards a button press at screen position (x, y).
func (c *Context) MousePressed(x, y float64, button int) bool {
	return c.clickEvent(x, y, button, true)
}

// MouseReleased forwards a button release at screen position (x, y).
func (c *Context) MouseReleased(x, y float64, button int) bool {
	return c.clickEvent(x, y, button, false)
}

func (c *Context) clickEvent(x, y float64, button int, down bool) bool {
	lx, ly := c.toLocal(x, y)
	switch button {
	case 1:
		c.ui.InputButton(core.ButtonLeft, lx, ly, down)
	case 2:
		c.ui.InputButton(core.ButtonRight, lx, ly, down)
	case 3:
		c.ui.InputButton(core.ButtonMiddle, lx, ly, down)
	default:
		return false
	}
	return c.ui.AnyWindowHovered()
}

// MouseMoved forwards the pointer position.
func (c *Context) MouseMoved(x, y float64) bool {
	lx, ly := c.toLocal(x, y)
	c.ui.InputMotion(lx, ly)
	return c.ui.AnyWindowHovered()
}

// TextInput forwards typed text, one rune at a time.
func (c *Context) TextInput(text string) bool {
	for _, r := range text {
		c.ui.InputUnicode(r)
	}
	return c.ui.AnyActive()
}

// WheelMoved forwards a scroll wheel movement.
func (c *Context) WheelMoved(dx, dy float64) bool {
	c.ui.InputScroll(float32(dx), float32(dy))
	return c.ui.AnyWindowHovered()
}

// toLocal maps a screen position into the core's coordinate space,
// truncating toward zero: a local -0.5 becomes 0 and -5.5 becomes -5, not -6.
func (c *Context) toLocal(x, y float64) (int, int) {
	p := c.transform.ToLocal(transform.Point{X: x, Y: y})
	return int(p.X), int(p.Y)
}
