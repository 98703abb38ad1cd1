package nuklear

import (
	"testing"

	"github.com/keharriso/love-nuklear/core"
	"github.com/keharriso/love-nuklear/headless"
)

func lastKey(t *testing.T, ui *headless.Core) headless.Event {
	t.Helper()
	events := ui.Events()
	for i := len(events) - 1; i >= 0; i-- {
		if events[i].Kind == headless.EventKey {
			return events[i]
		}
	}
	t.Fatal("no key event recorded")
	return headless.Event{}
}

func TestKeyMapping(t *testing.T) {
	tests := []struct {
		key      string
		ctrl     bool
		wantKey  core.Key
		wantDown bool
	}{
		{"lshift", false, core.KeyShift, true},
		{"rshift", false, core.KeyShift, true},
		{"delete", false, core.KeyDel, true},
		{"return", false, core.KeyEnter, true},
		{"tab", false, core.KeyTab, true},
		{"backspace", false, core.KeyBackspace, true},
		{"home", false, core.KeyTextLineStart, true},
		{"end", false, core.KeyTextLineEnd, true},
		{"pagedown", false, core.KeyScrollDown, true},
		{"pageup", false, core.KeyScrollUp, true},
		{"up", false, core.KeyUp, true},
		{"down", false, core.KeyDown, true},
		{"left", false, core.KeyLeft, true},
		{"right", false, core.KeyRight, true},
		{"left", true, core.KeyTextWordLeft, true},
		{"right", true, core.KeyTextWordRight, true},
		{"z", true, core.KeyTextUndo, true},
		{"r", true, core.KeyTextRedo, true},
		{"c", true, core.KeyCopy, true},
		{"v", true, core.KeyPaste, true},
		{"x", true, core.KeyCut, true},
		{"b", true, core.KeyTextLineStart, true},
		{"e", true, core.KeyTextLineEnd, true},
		{"c", false, core.KeyCopy, false},
		{"v", false, core.KeyPaste, false},
	}
	for _, tt := range tests {
		name := tt.key
		if tt.ctrl {
			name = "ctrl+" + name
		}
		t.Run(name, func(t *testing.T) {
			ctx, ui, _ := newTestContext(t)
			ctx.platform = PlatformLinux
			if tt.ctrl {
				ctx.KeyPressed("lctrl")
			}
			ctx.KeyPressed(tt.key)
			e := lastKey(t, ui)
			if e.Key != tt.wantKey || e.Down != tt.wantDown {
				t.Errorf("KeyPressed(%q) sent %v down=%v, want %v down=%v", tt.key, e.Key, e.Down, tt.wantKey, tt.wantDown)
			}
		})
	}
}

func TestShortcutModifierPerPlatform(t *testing.T) {
	tests := []struct {
		platform Platform
		modifier string
		want     bool
	}{
		{PlatformLinux, "lctrl", true},
		{PlatformLinux, "lgui", false},
		{PlatformWindows, "rctrl", false},
		{PlatformMacOS, "lgui", true},
		{PlatformMacOS, "rgui", true},
		{PlatformMacOS, "lctrl", false},
	}
	for _, tt := range tests {
		t.Run(string(tt.platform)+"/"+tt.modifier, func(t *testing.T) {
			ctx, ui, _ := newTestContext(t)
			ctx.platform = tt.platform
			ctx.KeyPressed(tt.modifier)
			ctx.KeyPressed("z")
			if got := lastKey(t, ui).Down; got != tt.want {
				t.Errorf("undo down = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestShortcutReleased(t *testing.T) {
	ctx, ui, _ := newTestContext(t)
	ctx.platform = PlatformLinux
	ctx.KeyPressed("lctrl")
	ctx.KeyReleased("lctrl")
	ctx.KeyPressed("left")
	if got := lastKey(t, ui).Key; got != core.KeyLeft {
		t.Errorf("left after releasing ctrl sent %v, want %v", got, core.KeyLeft)
	}
}

func TestUnknownKeyNotConsumed(t *testing.T) {
	ctx, ui, _ := newTestContext(t)
	ui.Hovered = true
	if ctx.KeyPressed("f5") {
		t.Error("KeyPressed(f5) consumed")
	}
	if len(ui.Events()) != 0 {
		t.Errorf("unknown key recorded %d events", len(ui.Events()))
	}
	if !ctx.KeyPressed("return") {
		t.Error("KeyPressed(return) over a window not consumed")
	}
}

func TestKeyConsumedWhileEditing(t *testing.T) {
	ctx, ui, _ := newTestContext(t)
	if ctx.KeyPressed("tab") {
		t.Error("tab consumed with nothing active")
	}
	ui.Active = true
	if !ctx.KeyPressed("tab") {
		t.Error("tab not consumed while editing")
	}
	if !ctx.TextInput("a") {
		t.Error("text not consumed while editing")
	}
	if ctx.MouseMoved(1, 1) {
		t.Error("motion consumed while only editing")
	}
}

func TestMouseMappedThroughInverse(t *testing.T) {
	ctx, ui, _ := newTestContext(t)
	err := ctx.Frame(func() error {
		ctx.Translate(10, 20)
		return ctx.Scale(2, 2)
	})
	if err != nil {
		t.Fatal(err)
	}
	ui.Hovered = true

	tests := []struct {
		name   string
		button int
		want   core.Button
	}{
		{"left", 1, core.ButtonLeft},
		{"right", 2, core.ButtonRight},
		{"middle", 3, core.ButtonMiddle},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui.InputBegin()
			if !ctx.MousePressed(30, 41, tt.button) {
				t.Error("press over a window not consumed")
			}
			e := ui.Events()[0]
			if e.Button != tt.want || e.X != 10 || e.Y != 10 || !e.Down {
				t.Errorf("event = %+v, want %v at (10, 10) down", e, tt.want)
			}
		})
	}

	ui.InputBegin()
	if ctx.MouseReleased(0, 0, 4) {
		t.Error("unknown button consumed")
	}
	if len(ui.Events()) != 0 {
		t.Error("unknown button recorded")
	}

	ctx.MouseMoved(12, 24)
	if e := ui.Events()[0]; e.Kind != headless.EventMotion || e.X != 1 || e.Y != 2 {
		t.Errorf("motion = %+v, want (1, 2)", e)
	}
}

func TestMouseLocalTruncatesTowardZero(t *testing.T) {
	ctx, ui, _ := newTestContext(t)
	err := ctx.Frame(func() error {
		ctx.Translate(10, 10)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name         string
		x, y         float64
		wantX, wantY int
	}{
		{"negative fraction", 4.5, 10, -5, 0},
		{"just below zero", 9.5, 9.25, 0, 0},
		{"positive fraction", 12.75, 13.5, 2, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui.InputBegin()
			ctx.MouseMoved(tt.x, tt.y)
			e := ui.Events()[0]
			if e.X != tt.wantX || e.Y != tt.wantY {
				t.Errorf("MouseMoved(%v, %v) local = (%d, %d), want (%d, %d)", tt.x, tt.y, e.X, e.Y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestTextInputRunes(t *testing.T) {
	ctx, ui, _ := newTestContext(t)
	ctx.TextInput("hé")
	events := ui.Events()
	if len(events) != 2 || events[0].Rune != 'h' || events[1].Rune != 'é' {
		t.Errorf("events = %+v, want runes h and é", events)
	}
}

func TestWheelMoved(t *testing.T) {
	ctx, ui, _ := newTestContext(t)
	if ctx.WheelMoved(0, -3) {
		t.Error("wheel consumed with nothing hovered")
	}
	if e := ui.Events()[0]; e.Kind != headless.EventScroll || e.DY != -3 {
		t.Errorf("scroll = %+v, want dy -3", e)
	}
}
