package style

// Stacks are the UI core's per-kind style stacks. A push saves the field's
// current value and overwrites it; a pop restores the most recently saved
// value of that kind. Each stack is bounded: a push onto a full stack
// returns false and leaves the field unchanged.
type Stacks interface {
	PushColor(field *Color, v Color) bool
	PushVec2(field *Vec2, v Vec2) bool
	PushItem(field *Item, v Item) bool
	PushFlags(field *Flags, v Flags) bool
	PushFloat(field *float32, v float32) bool
	PushFont(field *Font, v Font) bool

	// Pop restores the top entry of the stack for kind. It returns false
	// if that stack is empty.
	Pop(kind Kind) bool

	// Depth returns the number of entries on the stack for kind.
	Depth(kind Kind) int

	// SavedItems calls fn with every item value saved on the item stack.
	SavedItems(fn func(*Item))

	// SavedFonts calls fn with every font value saved on the font stack.
	SavedFonts(fn func(*Font))
}

// Capacities bounds each per-kind stack.
type Capacities struct {
	Color int `toml:"color" yaml:"color" json:"color"`
	Vec2  int `toml:"vec2" yaml:"vec2" json:"vec2"`
	Item  int `toml:"item" yaml:"item" json:"item"`
	Flags int `toml:"flags" yaml:"flags" json:"flags"`
	Float int `toml:"float" yaml:"float" json:"float"`
	Font  int `toml:"font" yaml:"font" json:"font"`
}

// DefaultCapacities are the stock stack depths.
func DefaultCapacities() Capacities {
	return Capacities{
		Color: 256,
		Vec2:  128,
		Item:  256,
		Flags: 64,
		Float: 256,
		Font:  32,
	}
}

// Of returns the capacity configured for kind.
func (c Capacities) Of(kind Kind) int {
	switch kind {
	case KindColor:
		return c.Color
	case KindVec2:
		return c.Vec2
	case KindItem:
		return c.Item
	case KindFlags:
		return c.Flags
	case KindFloat:
		return c.Float
	case KindFont:
		return c.Font
	default:
		return 0
	}
}

// ============================================================================
// Config Stacks
// ============================================================================

type saved[T any] struct {
	field *T
	old   T
}

type configStack[T any] struct {
	elems []saved[T]
	limit int
}

func newConfigStack[T any](limit int) configStack[T] {
	return configStack[T]{elems: make([]saved[T], 0, max(limit, 0)), limit: limit}
}

func (s *configStack[T]) push(field *T, v T) bool {
	if len(s.elems) >= s.limit {
		return false
	}
	s.elems = append(s.elems, saved[T]{field: field, old: *field})
	*field = v
	return true
}

func (s *configStack[T]) pop() bool {
	n := len(s.elems)
	if n == 0 {
		return false
	}
	e := s.elems[n-1]
	*e.field = e.old
	s.elems[n-1] = saved[T]{}
	s.elems = s.elems[:n-1]
	return true
}

// ConfigStacks is an in-memory Stacks implementation.
type ConfigStacks struct {
	colors configStack[Color]
	vec2s  configStack[Vec2]
	items  configStack[Item]
	flags  configStack[Flags]
	floats configStack[float32]
	fonts  configStack[Font]
}

// NewConfigStacks returns stacks bounded by caps.
func NewConfigStacks(caps Capacities) *ConfigStacks {
	return &ConfigStacks{
		colors: newConfigStack[Color](caps.Color),
		vec2s:  newConfigStack[Vec2](caps.Vec2),
		items:  newConfigStack[Item](caps.Item),
		flags:  newConfigStack[Flags](caps.Flags),
		floats: newConfigStack[float32](caps.Float),
		fonts:  newConfigStack[Font](caps.Font),
	}
}

func (s *ConfigStacks) PushColor(field *Color, v Color) bool     { return s.colors.push(field, v) }
func (s *ConfigStacks) PushVec2(field *Vec2, v Vec2) bool        { return s.vec2s.push(field, v) }
func (s *ConfigStacks) PushItem(field *Item, v Item) bool        { return s.items.push(field, v) }
func (s *ConfigStacks) PushFlags(field *Flags, v Flags) bool     { return s.flags.push(field, v) }
func (s *ConfigStacks) PushFloat(field *float32, v float32) bool { return s.floats.push(field, v) }
func (s *ConfigStacks) PushFont(field *Font, v Font) bool        { return s.fonts.push(field, v) }

// Pop implements Stacks.
func (s *ConfigStacks) Pop(kind Kind) bool {
	switch kind {
	case KindColor:
		return s.colors.pop()
	case KindVec2:
		return s.vec2s.pop()
	case KindItem:
		return s.items.pop()
	case KindFlags:
		return s.flags.pop()
	case KindFloat:
		return s.floats.pop()
	case KindFont:
		return s.fonts.pop()
	default:
		return false
	}
}

// Depth implements Stacks.
func (s *ConfigStacks) Depth(kind Kind) int {
	switch kind {
	case KindColor:
		return len(s.colors.elems)
	case KindVec2:
		return len(s.vec2s.elems)
	case KindItem:
		return len(s.items.elems)
	case KindFlags:
		return len(s.flags.elems)
	case KindFloat:
		return len(s.floats.elems)
	case KindFont:
		return len(s.fonts.elems)
	default:
		return 0
	}
}

// SavedItems implements Stacks.
func (s *ConfigStacks) SavedItems(fn func(*Item)) {
	for i := range s.items.elems {
		fn(&s.items.elems[i].old)
	}
}

// SavedFonts implements Stacks.
func (s *ConfigStacks) SavedFonts(fn func(*Font)) {
	for i := range s.fonts.elems {
		fn(&s.fonts.elems[i].old)
	}
}
