// Package style holds the UI core's style tree and the stack that applies
// and reverts nested override tables against it.
package style

import "fmt"

// Kind is one of the primitive style value types. The UI core keeps one
// bounded stack per kind.
type Kind int

const (
	KindColor Kind = iota
	KindVec2
	KindItem
	KindFlags
	KindFloat
	KindFont
)

// Kinds lists every Kind in declaration order.
var Kinds = [...]Kind{KindColor, KindVec2, KindItem, KindFlags, KindFloat, KindFont}

func (k Kind) String() string {
	switch k {
	case KindColor:
		return "color"
	case KindVec2:
		return "vec2"
	case KindItem:
		return "item"
	case KindFlags:
		return "flags"
	case KindFloat:
		return "float"
	case KindFont:
		return "font"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// MarshalText renders the kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}
