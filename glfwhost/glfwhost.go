// Package glfwhost feeds GLFW window input into a bridge context and
// exposes the window's clipboard to it.
package glfwhost

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/keharriso/love-nuklear/host"
)

// Input receives host input events and reports whether the UI consumed
// them. *nuklear.Context implements it.
type Input interface {
	KeyPressed(key string) bool
	KeyReleased(key string) bool
	MousePressed(x, y float64, button int) bool
	MouseReleased(x, y float64, button int) bool
	MouseMoved(x, y float64) bool
	TextInput(text string) bool
	WheelMoved(dx, dy float64) bool
}

// Host forwards a window's callbacks to an Input. Callbacks that were
// installed before Attach still run for events the UI did not consume.
type Host struct {
	win *glfw.Window
	in  Input

	prevCursor glfw.CursorPosCallback
	prevButton glfw.MouseButtonCallback
	prevScroll glfw.ScrollCallback
	prevKey    glfw.KeyCallback
	prevChar   glfw.CharCallback
}

// Attach installs input callbacks on win. It must be called on the main
// thread.
func Attach(win *glfw.Window, in Input) *Host {
	h := &Host{win: win, in: in}
	h.prevCursor = win.SetCursorPosCallback(h.onCursor)
	h.prevButton = win.SetMouseButtonCallback(h.onButton)
	h.prevScroll = win.SetScrollCallback(h.onScroll)
	h.prevKey = win.SetKeyCallback(h.onKey)
	h.prevChar = win.SetCharCallback(h.onChar)
	return h
}

// Detach restores the callbacks that were installed before Attach.
func (h *Host) Detach() {
	h.win.SetCursorPosCallback(h.prevCursor)
	h.win.SetMouseButtonCallback(h.prevButton)
	h.win.SetScrollCallback(h.prevScroll)
	h.win.SetKeyCallback(h.prevKey)
	h.win.SetCharCallback(h.prevChar)
}

func (h *Host) onCursor(w *glfw.Window, x, y float64) {
	if !h.in.MouseMoved(x, y) && h.prevCursor != nil {
		h.prevCursor(w, x, y)
	}
}

func (h *Host) onButton(w *glfw.Window, b glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	x, y := w.GetCursorPos()
	n := buttonNumber(b)
	var consumed bool
	if action == glfw.Press {
		consumed = h.in.MousePressed(x, y, n)
	} else {
		consumed = h.in.MouseReleased(x, y, n)
	}
	if !consumed && h.prevButton != nil {
		h.prevButton(w, b, action, mods)
	}
}

func (h *Host) onScroll(w *glfw.Window, xoff, yoff float64) {
	if !h.in.WheelMoved(xoff, yoff) && h.prevScroll != nil {
		h.prevScroll(w, xoff, yoff)
	}
}

func (h *Host) onKey(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	consumed := false
	if name := KeyName(key); name != "" {
		if action == glfw.Release {
			consumed = h.in.KeyReleased(name)
		} else {
			consumed = h.in.KeyPressed(name)
		}
	}
	if !consumed && h.prevKey != nil {
		h.prevKey(w, key, scancode, action, mods)
	}
}

func (h *Host) onChar(w *glfw.Window, r rune) {
	if !h.in.TextInput(string(r)) && h.prevChar != nil {
		h.prevChar(w, r)
	}
}

// buttonNumber maps GLFW buttons to host button numbers: 1 left, 2 right,
// 3 middle, then 4 and up for extra buttons.
func buttonNumber(b glfw.MouseButton) int {
	switch b {
	case glfw.MouseButtonLeft:
		return 1
	case glfw.MouseButtonRight:
		return 2
	case glfw.MouseButtonMiddle:
		return 3
	default:
		return int(b) + 1
	}
}

var keyNames = map[glfw.Key]string{
	glfw.KeyLeftShift:    "lshift",
	glfw.KeyRightShift:   "rshift",
	glfw.KeyLeftControl:  "lctrl",
	glfw.KeyRightControl: "rctrl",
	glfw.KeyLeftSuper:    "lgui",
	glfw.KeyRightSuper:   "rgui",
	glfw.KeyLeftAlt:      "lalt",
	glfw.KeyRightAlt:     "ralt",
	glfw.KeyDelete:       "delete",
	glfw.KeyEnter:        "return",
	glfw.KeyKPEnter:      "kpenter",
	glfw.KeyTab:          "tab",
	glfw.KeyBackspace:    "backspace",
	glfw.KeyHome:         "home",
	glfw.KeyEnd:          "end",
	glfw.KeyPageDown:     "pagedown",
	glfw.KeyPageUp:       "pageup",
	glfw.KeyUp:           "up",
	glfw.KeyDown:         "down",
	glfw.KeyLeft:         "left",
	glfw.KeyRight:        "right",
	glfw.KeyEscape:       "escape",
	glfw.KeySpace:        "space",
}

// KeyName returns the host key name for k, or "" for keys the bridge has
// no name for.
func KeyName(k glfw.Key) string {
	if k >= glfw.KeyA && k <= glfw.KeyZ {
		return string(rune('a' + (k - glfw.KeyA)))
	}
	return keyNames[k]
}

// ============================================================================
// Clipboard
// ============================================================================

// Clipboard is the system clipboard as GLFW sees it. GLFW must be
// initialized and it must only be used from the main thread.
type Clipboard struct{}

var _ host.Clipboard = Clipboard{}

// GetText implements host.Clipboard.
func (Clipboard) GetText() string { return glfw.GetClipboardString() }

// SetText implements host.Clipboard.
func (Clipboard) SetText(text string) { glfw.SetClipboardString(text) }

// NewProvider returns a provider with font as the default font, the GLFW
// clipboard and a wall-clock frame timer.
func NewProvider(font host.Font) *host.Basic {
	return &host.Basic{
		Font:  font,
		Board: Clipboard{},
		Clock: host.NewTimer(),
	}
}
