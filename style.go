package nuklear

import (
	"fmt"
	"strings"

	"github.com/keharriso/love-nuklear/host"
	"github.com/keharriso/love-nuklear/style"
)

// ============================================================================
// Style
// ============================================================================

// StylePush applies the overrides in t to the core's style tree as one
// logical push. Keys missing from t are left alone. Fields whose stack is
// full keep their value and are skipped; the result lists how many fields
// were pushed. A value of the wrong shape fails the whole push and nothing
// is applied.
func (c *Context) StylePush(t style.Table) (int, error) {
	p, err := c.styles.Push(c.ui.Style(), t)
	if err != nil {
		return 0, fmt.Errorf("failed to push style: %w", err)
	}
	if dropped := p.Dropped(); len(dropped) > 0 && c.cfg.Debug {
		c.logger.Printf("style push dropped %d fields: %s", len(dropped), strings.Join(dropped, ", "))
	}
	return len(p.Kinds()), nil
}

// StylePop reverts the most recent StylePush. Popping with nothing pushed
// panics with an *InvariantError.
func (c *Context) StylePop() {
	if _, err := c.styles.Pop(); err != nil {
		c.invariant("style pop", err)
	}
}

// Style runs fn with the overrides in t applied and reverts them afterwards.
func (c *Context) Style(t style.Table, fn func() error) error {
	if _, err := c.StylePush(t); err != nil {
		return err
	}
	defer c.StylePop()
	return fn()
}

// StyleDepth returns the number of logical pushes in effect.
func (c *Context) StyleDepth() int { return c.styles.Depth() }

// SetFont makes font the active font. It reports false when the font table
// is full, in which case the active font is unchanged.
func (c *Context) SetFont(font host.Font) bool {
	f, ok := c.RegisterFont(font)
	if !ok {
		return false
	}
	c.ui.SetFont(f)
	return true
}

// StyleDefault restores the stock style. Outstanding pushes stay on the
// stack; popping one restores the value it saved.
func (c *Context) StyleDefault() {
	c.ui.StyleDefault()
}

// StyleLoadColors rebuilds the style from a theme color table keyed by
// style.ColorNames. Every color must be present. Outstanding pushes stay
// on the stack.
func (c *Context) StyleLoadColors(t style.Table) error {
	colors, err := style.LoadColors(t)
	if err != nil {
		return fmt.Errorf("failed to load colors: %w", err)
	}
	c.ui.StyleFromTable(colors)
	return nil
}

// UnknownStyleKeys lists the keys of t that name no style field.
func (c *Context) UnknownStyleKeys(t style.Table) []string {
	return style.UnknownKeys(c.ui.Style(), t)
}
