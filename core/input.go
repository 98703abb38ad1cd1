package core

import "fmt"

// ============================================================================
// Input Types
// ============================================================================

// Button identifies a mouse button.
type Button uint8

const (
	ButtonLeft Button = iota
	ButtonMiddle
	ButtonRight
)

func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonMiddle:
		return "middle"
	case ButtonRight:
		return "right"
	default:
		return fmt.Sprintf("Button(%d)", int(b))
	}
}

// Key identifies a logical key the core reacts to: editing commands and
// navigation, not physical keys.
type Key uint8

const (
	KeyNone Key = iota
	KeyShift
	KeyCtrl
	KeyDel
	KeyEnter
	KeyTab
	KeyBackspace
	KeyCopy
	KeyCut
	KeyPaste
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyTextInsertMode
	KeyTextReplaceMode
	KeyTextResetMode
	KeyTextLineStart
	KeyTextLineEnd
	KeyTextStart
	KeyTextEnd
	KeyTextUndo
	KeyTextRedo
	KeyTextSelectAll
	KeyTextWordLeft
	KeyTextWordRight
	KeyScrollStart
	KeyScrollEnd
	KeyScrollDown
	KeyScrollUp

	KeyCount
)

var keyNames = [KeyCount]string{
	KeyNone:            "none",
	KeyShift:           "shift",
	KeyCtrl:            "ctrl",
	KeyDel:             "del",
	KeyEnter:           "enter",
	KeyTab:             "tab",
	KeyBackspace:       "backspace",
	KeyCopy:            "copy",
	KeyCut:             "cut",
	KeyPaste:           "paste",
	KeyUp:              "up",
	KeyDown:            "down",
	KeyLeft:            "left",
	KeyRight:           "right",
	KeyTextInsertMode:  "text insert mode",
	KeyTextReplaceMode: "text replace mode",
	KeyTextResetMode:   "text reset mode",
	KeyTextLineStart:   "text line start",
	KeyTextLineEnd:     "text line end",
	KeyTextStart:       "text start",
	KeyTextEnd:         "text end",
	KeyTextUndo:        "text undo",
	KeyTextRedo:        "text redo",
	KeyTextSelectAll:   "text select all",
	KeyTextWordLeft:    "text word left",
	KeyTextWordRight:   "text word right",
	KeyScrollStart:     "scroll start",
	KeyScrollEnd:       "scroll end",
	KeyScrollDown:      "scroll down",
	KeyScrollUp:        "scroll up",
}

func (k Key) String() string {
	if k < KeyCount {
		return keyNames[k]
	}
	return fmt.Sprintf("Key(%d)", int(k))
}
