package style

import (
	"errors"
	"fmt"

	"github.com/keharriso/love-nuklear/host"
)

// ErrBadValue is returned when an override value has the wrong shape for
// the field it targets.
var ErrBadValue = errors.New("bad style value")

// Table is a nested set of style overrides keyed by field name. Values are
// Tables (or map[string]any) for sub-styles and primitive values for
// fields:
//
//	color   "#rrggbb" / "#rrggbbaa" string or Color
//	vec2    Vec2 or a table with numeric "x" and "y"
//	item    a color, host.Image, ImageRegion, NineSliceSpec, Item, or a list
//	        [image, l, t, r, b] / [image, region, l, t, r, b]
//	flags   alignment name such as "left" or "top right", or Flags
//	float   any number
//	font    host.Font or Font
type Table map[string]any

// ImageRegion selects part of a host image.
type ImageRegion struct {
	Image  host.Image
	Region Region
}

// NineSliceSpec is a nine-slice override. Source is a host.Image or an
// ImageRegion.
type NineSliceSpec struct {
	Source     any
	L, T, R, B int
}

// Resources registers host objects so embedded style values carry valid
// handles. The second result is false when the registry is full.
type Resources interface {
	RegisterImage(img host.Image, region *Region) (Image, bool)
	RegisterFont(font host.Font) (Font, bool)
}

func badValue(name string, kind string, v any) error {
	return fmt.Errorf("%w: %s: expected %s, got %T (%v)", ErrBadValue, name, kind, v, v)
}

func asTable(v any) (Table, bool) {
	switch t := v.(type) {
	case Table:
		return t, true
	case map[string]any:
		return Table(t), true
	default:
		return nil, false
	}
}

func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}

func decodeColor(name string, v any) (Color, error) {
	switch c := v.(type) {
	case Color:
		return c, nil
	case string:
		col, err := ParseColor(c)
		if err != nil {
			return Color{}, fmt.Errorf("%w: %s: %v", ErrBadValue, name, err)
		}
		return col, nil
	default:
		return Color{}, badValue(name, "color string", v)
	}
}

func decodeVec2(name string, v any) (Vec2, error) {
	if vec, ok := v.(Vec2); ok {
		return vec, nil
	}
	t, ok := asTable(v)
	if !ok {
		return Vec2{}, fmt.Errorf("%w: %s: vec2 fields must have x and y components", ErrBadValue, name)
	}
	x, okx := asNumber(t["x"])
	y, oky := asNumber(t["y"])
	if !okx || !oky {
		return Vec2{}, fmt.Errorf("%w: %s: vec2 fields must have x and y components", ErrBadValue, name)
	}
	return Vec2{X: float32(x), Y: float32(y)}, nil
}

func decodeFlags(name string, v any) (Flags, error) {
	switch f := v.(type) {
	case Flags:
		return f, nil
	case string:
		flags, err := ParseAlign(f)
		if err != nil {
			return 0, fmt.Errorf("%w: %s: %v", ErrBadValue, name, err)
		}
		return flags, nil
	default:
		return 0, badValue(name, "alignment name", v)
	}
}

func decodeFloat(name string, v any) (float32, error) {
	n, ok := asNumber(v)
	if !ok {
		return 0, badValue(name, "number", v)
	}
	return float32(n), nil
}

// decodeFont returns false without error when the font table is full.
func decodeFont(name string, v any, res Resources) (Font, bool, error) {
	switch f := v.(type) {
	case Font:
		return f, true, nil
	case host.Font:
		font, ok := res.RegisterFont(f)
		return font, ok, nil
	default:
		return Font{}, false, badValue(name, "font", v)
	}
}

// decodeItem returns false without error when the image table is full.
func decodeItem(name string, v any, res Resources) (Item, bool, error) {
	switch it := v.(type) {
	case Item:
		return it, true, nil
	case Color:
		return ColorItem(it), true, nil
	case string:
		c, err := decodeColor(name, it)
		if err != nil {
			return Item{}, false, err
		}
		return ColorItem(c), true, nil
	case NineSliceSpec:
		img, ok, err := decodeImage(name, it.Source, res)
		if err != nil || !ok {
			return Item{}, ok, err
		}
		return SliceItem(NineSlice{Image: img, L: it.L, T: it.T, R: it.R, B: it.B}), true, nil
	case []any:
		return decodeList(name, it, res)
	default:
		img, ok, err := decodeImage(name, v, res)
		if err != nil || !ok {
			return Item{}, ok, err
		}
		return ImageItem(img), true, nil
	}
}

// decodeList handles [image, region] and the nine-slice list forms whose
// last four entries are numeric insets.
func decodeList(name string, list []any, res Resources) (Item, bool, error) {
	switch len(list) {
	case 2:
		region, ok := list[1].(Region)
		if !ok {
			return Item{}, false, badValue(name, "[image, region]", list)
		}
		img, ok := list[0].(host.Image)
		if !ok {
			return Item{}, false, badValue(name, "[image, region]", list)
		}
		out, ok, err := decodeImage(name, ImageRegion{Image: img, Region: region}, res)
		if err != nil || !ok {
			return Item{}, ok, err
		}
		return ImageItem(out), true, nil
	case 5, 6:
		var insets [4]int
		for i, v := range list[len(list)-4:] {
			n, ok := asNumber(v)
			if !ok {
				return Item{}, false, badValue(name, "numeric nine-slice inset", v)
			}
			insets[i] = int(n)
		}
		var src any = list[0]
		if len(list) == 6 {
			img, okImg := list[0].(host.Image)
			region, okRegion := list[1].(Region)
			if !okImg || !okRegion {
				return Item{}, false, badValue(name, "[image, region, l, t, r, b]", list)
			}
			src = ImageRegion{Image: img, Region: region}
		}
		img, ok, err := decodeImage(name, src, res)
		if err != nil || !ok {
			return Item{}, ok, err
		}
		return SliceItem(NineSlice{Image: img, L: insets[0], T: insets[1], R: insets[2], B: insets[3]}), true, nil
	default:
		return Item{}, false, badValue(name, "style item list", list)
	}
}

func decodeImage(name string, v any, res Resources) (Image, bool, error) {
	switch src := v.(type) {
	case ImageRegion:
		if src.Image == nil {
			return Image{}, false, badValue(name, "image", v)
		}
		w, h := src.Image.Dimensions()
		r := src.Region
		if r.X < 0 || r.Y < 0 || r.W < 0 || r.H < 0 || r.X+r.W > w || r.Y+r.H > h {
			return Image{}, false, fmt.Errorf("%w: %s: region %+v outside %dx%d image", ErrBadValue, name, r, w, h)
		}
		img, ok := res.RegisterImage(src.Image, &r)
		return img, ok, nil
	case host.Image:
		img, ok := res.RegisterImage(src, nil)
		return img, ok, nil
	default:
		return Image{}, false, badValue(name, "color string or image", v)
	}
}
