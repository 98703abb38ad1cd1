// Package headless is an in-memory UI core. It keeps a real style tree and
// bounded style stacks, records the input it is fed and queues whatever
// draw commands its caller adds. It runs no layout.
package headless

import (
	"github.com/keharriso/love-nuklear/core"
	"github.com/keharriso/love-nuklear/draw"
	"github.com/keharriso/love-nuklear/style"
)

// EventKind identifies a recorded input event.
type EventKind int

const (
	EventMotion EventKind = iota
	EventButton
	EventScroll
	EventKey
	EventUnicode
)

func (k EventKind) String() string {
	switch k {
	case EventMotion:
		return "motion"
	case EventButton:
		return "button"
	case EventScroll:
		return "scroll"
	case EventKey:
		return "key"
	case EventUnicode:
		return "unicode"
	default:
		return "unknown"
	}
}

// Event is one input call as the core received it.
type Event struct {
	Kind   EventKind
	X, Y   int
	DX, DY float32
	Button core.Button
	Key    core.Key
	Down   bool
	Rune   rune
}

// Core implements core.Core in memory.
type Core struct {
	style  style.Style
	stacks *style.ConfigStacks

	// Hovered and Active drive AnyWindowHovered and AnyActive.
	Hovered bool
	Active  bool

	collecting bool
	delta      float32
	events     []Event
	commands   []draw.Command

	textWidth core.TextWidthFunc
	copyFn    func(string)
	pasteFn   func() string
}

var _ core.Core = (*Core)(nil)

// New returns a core with the stock style and stacks bounded by caps.
// Input collection starts open, as it does before the first frame.
func New(caps style.Capacities) *Core {
	return &Core{
		style:      style.Default(style.Font{}),
		stacks:     style.NewConfigStacks(caps),
		collecting: true,
	}
}

// Style implements core.Core.
func (c *Core) Style() *style.Style { return &c.style }

// Stacks implements core.Core.
func (c *Core) Stacks() style.Stacks { return c.stacks }

// StyleDefault implements core.Core. Saved stack entries are kept, so a
// later pop restores the value from before the push.
func (c *Core) StyleDefault() {
	c.style = style.Default(c.style.Font)
}

// StyleFromTable implements core.Core. Saved stack entries are kept.
func (c *Core) StyleFromTable(colors [style.ColorCount]style.Color) {
	c.style = style.FromTable(colors, c.style.Font)
}

// SetFont implements core.Core.
func (c *Core) SetFont(font style.Font) { c.style.Font = font }

// SetDeltaTime implements core.Core.
func (c *Core) SetDeltaTime(seconds float32) { c.delta = seconds }

// DeltaTime returns the last reported frame delta in seconds.
func (c *Core) DeltaTime() float32 { return c.delta }

// InputBegin implements core.Core. Events of the previous frame are dropped.
func (c *Core) InputBegin() {
	c.collecting = true
	c.events = c.events[:0]
}

// InputEnd implements core.Core.
func (c *Core) InputEnd() { c.collecting = false }

// Collecting reports whether the core is between InputBegin and InputEnd.
func (c *Core) Collecting() bool { return c.collecting }

// Events returns the input recorded since the last InputBegin.
func (c *Core) Events() []Event { return c.events }

func (c *Core) record(e Event) {
	if c.collecting {
		c.events = append(c.events, e)
	}
}

// InputMotion implements core.Core.
func (c *Core) InputMotion(x, y int) {
	c.record(Event{Kind: EventMotion, X: x, Y: y})
}

// InputButton implements core.Core.
func (c *Core) InputButton(b core.Button, x, y int, down bool) {
	c.record(Event{Kind: EventButton, Button: b, X: x, Y: y, Down: down})
}

// InputScroll implements core.Core.
func (c *Core) InputScroll(dx, dy float32) {
	c.record(Event{Kind: EventScroll, DX: dx, DY: dy})
}

// InputKey implements core.Core.
func (c *Core) InputKey(k core.Key, down bool) {
	c.record(Event{Kind: EventKey, Key: k, Down: down})
}

// InputUnicode implements core.Core.
func (c *Core) InputUnicode(r rune) {
	c.record(Event{Kind: EventUnicode, Rune: r})
}

// AnyWindowHovered implements core.Core.
func (c *Core) AnyWindowHovered() bool { return c.Hovered }

// AnyActive implements core.Core.
func (c *Core) AnyActive() bool { return c.Hovered || c.Active }

// Queue appends draw commands for the current frame.
func (c *Core) Queue(cmds ...draw.Command) {
	c.commands = append(c.commands, cmds...)
}

// Commands implements core.Core.
func (c *Core) Commands() []draw.Command { return c.commands }

// Clear implements core.Core.
func (c *Core) Clear() { c.commands = c.commands[:0] }

// SetTextWidth implements core.Core.
func (c *Core) SetTextWidth(fn core.TextWidthFunc) { c.textWidth = fn }

// SetClipboard implements core.Core.
func (c *Core) SetClipboard(copy func(string), paste func() string) {
	c.copyFn = copy
	c.pasteFn = paste
}

// MeasureText measures text through the installed callback, or returns 0.
func (c *Core) MeasureText(font style.Font, text string) float32 {
	if c.textWidth == nil {
		return 0
	}
	return c.textWidth(font, text)
}

// Copy hands text to the installed copy callback.
func (c *Core) Copy(text string) {
	if c.copyFn != nil {
		c.copyFn(text)
	}
}

// Paste returns the installed paste callback's text.
func (c *Core) Paste() string {
	if c.pasteFn == nil {
		return ""
	}
	return c.pasteFn()
}
