// Package theme loads style themes from TOML files. A theme is an optional
// complete color table plus a nested table of style overrides in which
// images and fonts are named by file and resolved through Assets.
//
//	name = "ocean"
//
//	[colors]
//	text = "#d0e0f0"
//	window = "#102030"
//	# ... every style.ColorNames entry
//
//	[style.button]
//	normal = { image = "button.png", slice = [4, 4, 4, 4] }
//	hover = { image = "atlas.png", region = [0, 16, 64, 16] }
//	border = 1
//	padding = { x = 4, y = 2 }
//
//	[style]
//	font = { font = "go", size = 14 }
package theme

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/keharriso/love-nuklear/host"
	"github.com/keharriso/love-nuklear/style"
)

// ErrBadTheme is returned for a theme file with a malformed entry.
var ErrBadTheme = errors.New("bad theme")

// Theme is a parsed theme file.
type Theme struct {
	Name string
	// Colors is the complete color table, or nil when the file has none.
	Colors style.Table
	// Style holds the overrides with assets already resolved.
	Style style.Table
}

// Assets resolves the image and font names used in a theme.
type Assets interface {
	Image(name string) (host.Image, error)
	Font(name string, size float64) (host.Font, error)
}

// Target is what a theme is applied to. *nuklear.Context implements it.
type Target interface {
	StyleDepth() int
	StylePop()
	StyleDefault()
	StyleLoadColors(t style.Table) error
	StylePush(t style.Table) (int, error)
}

// Load reads and parses the theme at path.
func Load(path string, assets Assets) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	t, err := Parse(data, assets)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return t, nil
}

// Parse parses a theme document.
func Parse(data []byte, assets Assets) (*Theme, error) {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse theme: %w", err)
	}

	t := &Theme{Style: style.Table{}}
	if v, ok := raw["name"]; ok {
		name, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("%w: name must be a string", ErrBadTheme)
		}
		t.Name = name
	}
	if v, ok := raw["colors"]; ok {
		m, ok := v.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: colors must be a table", ErrBadTheme)
		}
		t.Colors = style.Table(m)
	}
	if v, ok := raw["style"]; ok {
		m, ok := v.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: style must be a table", ErrBadTheme)
		}
		r := resolver{assets: assets}
		tbl, err := r.table("style", m)
		if err != nil {
			return nil, err
		}
		t.Style = tbl
	}
	return t, nil
}

// Apply replaces the target's style with the theme: outstanding pushes are
// popped, then the color table (or the stock style when there is none) is
// loaded and the overrides are pushed once. It returns the number of fields
// pushed.
func (t *Theme) Apply(target Target) (int, error) {
	for target.StyleDepth() > 0 {
		target.StylePop()
	}
	if t.Colors != nil {
		if err := target.StyleLoadColors(t.Colors); err != nil {
			return 0, err
		}
	} else {
		target.StyleDefault()
	}
	if len(t.Style) == 0 {
		return 0, nil
	}
	return target.StylePush(t.Style)
}

// Check returns the dotted paths of entries that name no field of root and
// no theme color. They would be ignored on Apply.
func (t *Theme) Check(root style.Compound) []string {
	out := style.UnknownKeys(root, t.Style)
	for i := range out {
		out[i] = "style." + out[i]
	}
	known := make(map[string]bool, len(style.ColorNames))
	for _, name := range style.ColorNames {
		known[name] = true
	}
	for name := range t.Colors {
		if !known[name] {
			out = append(out, "colors."+name)
		}
	}
	sort.Strings(out)
	return out
}

// ============================================================================
// Asset References
// ============================================================================

type resolver struct {
	assets Assets
}

func (r resolver) table(path string, m map[string]any) (style.Table, error) {
	out := make(style.Table, len(m))
	for k, v := range m {
		rv, err := r.value(path+"."+k, v)
		if err != nil {
			return nil, err
		}
		out[k] = rv
	}
	return out, nil
}

func (r resolver) value(path string, v any) (any, error) {
	switch t := v.(type) {
	case map[string]any:
		if _, ok := t["image"]; ok {
			return r.image(path, t)
		}
		if _, ok := t["font"]; ok {
			return r.font(path, t)
		}
		return r.table(path, t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			rv, err := r.value(fmt.Sprintf("%s[%d]", path, i), e)
			if err != nil {
				return nil, err
			}
			out[i] = rv
		}
		return out, nil
	default:
		return v, nil
	}
}

// image resolves {image = name, region = [x, y, w, h], slice = [l, t, r, b]}.
func (r resolver) image(path string, m map[string]any) (any, error) {
	if err := onlyKeys(path, m, "image", "region", "slice"); err != nil {
		return nil, err
	}
	name, ok := m["image"].(string)
	if !ok {
		return nil, fmt.Errorf("%w: %s: image must be a file name", ErrBadTheme, path)
	}
	if r.assets == nil {
		return nil, fmt.Errorf("%w: %s: no assets to resolve image %q", ErrBadTheme, path, name)
	}
	img, err := r.assets.Image(name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	var src any = img
	if v, ok := m["region"]; ok {
		n, err := ints(path+".region", v)
		if err != nil {
			return nil, err
		}
		src = style.ImageRegion{Image: img, Region: style.Region{X: n[0], Y: n[1], W: n[2], H: n[3]}}
	}
	if v, ok := m["slice"]; ok {
		n, err := ints(path+".slice", v)
		if err != nil {
			return nil, err
		}
		return style.NineSliceSpec{Source: src, L: n[0], T: n[1], R: n[2], B: n[3]}, nil
	}
	return src, nil
}

// font resolves {font = name, size = n}.
func (r resolver) font(path string, m map[string]any) (any, error) {
	if err := onlyKeys(path, m, "font", "size"); err != nil {
		return nil, err
	}
	name, ok := m["font"].(string)
	if !ok {
		return nil, fmt.Errorf("%w: %s: font must be a name", ErrBadTheme, path)
	}
	size, ok := number(m["size"])
	if !ok || size <= 0 {
		return nil, fmt.Errorf("%w: %s: font size must be a positive number", ErrBadTheme, path)
	}
	if r.assets == nil {
		return nil, fmt.Errorf("%w: %s: no assets to resolve font %q", ErrBadTheme, path, name)
	}
	f, err := r.assets.Font(name, size)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

func onlyKeys(path string, m map[string]any, keys ...string) error {
	for k := range m {
		known := false
		for _, want := range keys {
			if k == want {
				known = true
				break
			}
		}
		if !known {
			return fmt.Errorf("%w: %s: unexpected key %q", ErrBadTheme, path, k)
		}
	}
	return nil
}

func ints(path string, v any) ([4]int, error) {
	var out [4]int
	list, ok := v.([]any)
	if !ok || len(list) != 4 {
		return out, fmt.Errorf("%w: %s: expected four numbers", ErrBadTheme, path)
	}
	for i, e := range list {
		n, ok := number(e)
		if !ok {
			return out, fmt.Errorf("%w: %s: expected four numbers", ErrBadTheme, path)
		}
		out[i] = int(n)
	}
	return out, nil
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case int64:
		return float64(n), true
	case float64:
		return n, true
	case int:
		return float64(n), true
	default:
		return 0, false
	}
}

// ============================================================================
// Directory Assets
// ============================================================================

// Dir resolves asset names as files under Root. Each file is loaded once;
// later lookups return the same object so the bridge registers it under a
// single handle. The font name "go" selects the built-in Go font.
type Dir struct {
	Root string

	mu     sync.Mutex
	images map[string]host.Image
	fonts  map[fontKey]host.Font
}

type fontKey struct {
	name string
	size float64
}

// NewDir returns assets rooted at root.
func NewDir(root string) *Dir {
	return &Dir{
		Root:   root,
		images: make(map[string]host.Image),
		fonts:  make(map[fontKey]host.Font),
	}
}

// Image implements Assets.
func (d *Dir) Image(name string) (host.Image, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if img, ok := d.images[name]; ok {
		return img, nil
	}
	img, err := host.LoadPicture(filepath.Join(d.Root, name))
	if err != nil {
		return nil, err
	}
	d.images[name] = img
	return img, nil
}

// Font implements Assets.
func (d *Dir) Font(name string, size float64) (host.Font, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	key := fontKey{name, size}
	if f, ok := d.fonts[key]; ok {
		return f, nil
	}
	var (
		f   *host.FaceFont
		err error
	)
	if name == "go" {
		f, err = host.NewGoFont(size)
	} else {
		f, err = host.LoadFont(filepath.Join(d.Root, name), size)
	}
	if err != nil {
		return nil, err
	}
	d.fonts[key] = f
	return f, nil
}
