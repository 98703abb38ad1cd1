// Package core defines the contract of the immediate-mode UI core the bridge
// drives: style state and its bounded stacks, per-frame input, and the
// queue of draw commands it produces.
package core

import (
	"github.com/keharriso/love-nuklear/draw"
	"github.com/keharriso/love-nuklear/style"
)

// TextWidthFunc measures text in font. The core calls it while laying out
// widgets.
type TextWidthFunc func(font style.Font, text string) float32

// Core is the immediate-mode UI engine. It never sees host objects; fonts
// and images are referenced by handle only.
type Core interface {
	// Style returns the live style tree. Fields passed to Stacks point
	// into it.
	Style() *style.Style
	// Stacks returns the per-kind style stacks.
	Stacks() style.Stacks
	// StyleDefault resets the style tree to the stock theme, keeping the
	// active font and the stacks' saved entries.
	StyleDefault()
	// StyleFromTable rebuilds the style tree from a theme color table,
	// keeping the active font.
	StyleFromTable(colors [style.ColorCount]style.Color)
	// SetFont makes font the active font.
	SetFont(font style.Font)

	// SetDeltaTime reports the seconds elapsed since the previous frame.
	SetDeltaTime(seconds float32)

	// InputBegin starts collecting input for the next frame.
	InputBegin()
	// InputEnd stops collecting input so the frame can run.
	InputEnd()
	InputMotion(x, y int)
	InputButton(b Button, x, y int, down bool)
	InputScroll(dx, dy float32)
	InputKey(k Key, down bool)
	InputUnicode(r rune)

	// AnyWindowHovered reports whether the pointer is over any window.
	AnyWindowHovered() bool
	// AnyActive reports whether the pointer is over a window or popup, or
	// an edit field has keyboard focus.
	AnyActive() bool

	// Commands returns the draw commands queued this frame.
	Commands() []draw.Command
	// Clear drops the queued draw commands.
	Clear()

	// SetTextWidth installs the text measurement callback.
	SetTextWidth(fn TextWidthFunc)
	// SetClipboard installs the clipboard callbacks used by edit fields.
	SetClipboard(copy func(text string), paste func() string)
}
