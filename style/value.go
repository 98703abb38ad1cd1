package style

import (
	"errors"
	"fmt"

	"github.com/keharriso/love-nuklear/handle"
)

// ============================================================================
// Color
// ============================================================================

// Color is an 8-bit straight-alpha RGBA color.
type Color struct {
	R, G, B, A uint8
}

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// RGBA implements image/color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	a = uint32(c.A) * 0x101
	r = uint32(c.R) * 0x101 * a / 0xffff
	g = uint32(c.G) * 0x101 * a / 0xffff
	b = uint32(c.B) * 0x101 * a / 0xffff
	return
}

// String formats the color as "#rrggbb", or "#rrggbbaa" when not opaque.
func (c Color) String() string {
	if c.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// ErrBadColor is returned for strings that are not "#rrggbb" or "#rrggbbaa".
var ErrBadColor = errors.New("bad color string")

// ParseColor parses "#rrggbb" or "#rrggbbaa".
func ParseColor(s string) (Color, error) {
	if (len(s) != 7 && len(s) != 9) || s[0] != '#' {
		return Color{}, fmt.Errorf("%w %q", ErrBadColor, s)
	}
	for i := 1; i < len(s); i++ {
		if !isHex(s[i]) {
			return Color{}, fmt.Errorf("%w %q", ErrBadColor, s)
		}
	}

	c := Color{A: 255}
	if _, err := fmt.Sscanf(s[1:7], "%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return Color{}, fmt.Errorf("%w %q: %v", ErrBadColor, s, err)
	}
	if len(s) == 9 {
		if _, err := fmt.Sscanf(s[7:], "%02x", &c.A); err != nil {
			return Color{}, fmt.Errorf("%w %q: %v", ErrBadColor, s, err)
		}
	}
	return c, nil
}

func isHex(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

// ============================================================================
// Vec2, Flags, Font
// ============================================================================

// Vec2 is a 2D size or offset.
type Vec2 struct {
	X, Y float32
}

// Flags holds text alignment bits.
type Flags uint32

const (
	AlignLeft     Flags = 0x01
	AlignCentered Flags = 0x02
	AlignRight    Flags = 0x04
	AlignTop      Flags = 0x08
	AlignMiddle   Flags = 0x10
	AlignBottom   Flags = 0x20

	TextLeft     = AlignMiddle | AlignLeft
	TextCentered = AlignMiddle | AlignCentered
	TextRight    = AlignMiddle | AlignRight
)

var alignNames = []struct {
	name  string
	flags Flags
}{
	{"left", TextLeft},
	{"centered", TextCentered},
	{"right", TextRight},
	{"top left", AlignTop | AlignLeft},
	{"top centered", AlignTop | AlignCentered},
	{"top right", AlignTop | AlignRight},
	{"bottom left", AlignBottom | AlignLeft},
	{"bottom centered", AlignBottom | AlignCentered},
	{"bottom right", AlignBottom | AlignRight},
}

// ParseAlign maps an alignment name such as "left" or "bottom centered" to
// its flags.
func ParseAlign(s string) (Flags, error) {
	for _, a := range alignNames {
		if a.name == s {
			return a.flags, nil
		}
	}
	return 0, fmt.Errorf("unrecognized alignment %q", s)
}

func (f Flags) String() string {
	for _, a := range alignNames {
		if a.flags == f {
			return a.name
		}
	}
	return fmt.Sprintf("Flags(%#x)", uint32(f))
}

// Font is the UI core's reference to a registered host font.
type Font struct {
	Handle handle.Handle
	Height float32
}

// ============================================================================
// Style Items
// ============================================================================

// Region is a sub-rectangle of an image in pixels.
type Region struct {
	X, Y, W, H int
}

// Image is the UI core's reference to a registered host image and the part
// of it to draw.
type Image struct {
	Handle handle.Handle
	W, H   int
	Region Region
}

// NineSlice is an image drawn with fixed-size borders and a stretched
// center. L, T, R and B are the border insets in pixels.
type NineSlice struct {
	Image      Image
	L, T, R, B int
}

// ItemType selects the variant held by an Item.
type ItemType int

const (
	ItemColor ItemType = iota
	ItemImage
	ItemNineSlice
)

func (t ItemType) String() string {
	switch t {
	case ItemColor:
		return "color"
	case ItemImage:
		return "image"
	case ItemNineSlice:
		return "nine slice"
	default:
		return fmt.Sprintf("ItemType(%d)", int(t))
	}
}

// Item is a widget background: a flat color, an image or a nine-slice.
type Item struct {
	Type  ItemType
	Color Color
	Image Image
	Slice NineSlice
}

// ColorItem returns a flat color item.
func ColorItem(c Color) Item {
	return Item{Type: ItemColor, Color: c}
}

// ImageItem returns an image item.
func ImageItem(img Image) Item {
	return Item{Type: ItemImage, Image: img}
}

// SliceItem returns a nine-slice item.
func SliceItem(s NineSlice) Item {
	return Item{Type: ItemNineSlice, Slice: s}
}

// ImageRef returns the image the item draws, or nil for color items.
func (it *Item) ImageRef() *Image {
	switch it.Type {
	case ItemImage:
		return &it.Image
	case ItemNineSlice:
		return &it.Slice.Image
	default:
		return nil
	}
}

func (it Item) String() string {
	switch it.Type {
	case ItemColor:
		return it.Color.String()
	case ItemImage:
		return fmt.Sprintf("image(%v)", it.Image.Handle)
	case ItemNineSlice:
		s := it.Slice
		return fmt.Sprintf("nine slice(%v %d %d %d %d)", s.Image.Handle, s.L, s.T, s.R, s.B)
	default:
		return it.Type.String()
	}
}
