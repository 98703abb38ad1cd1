package style

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyStack is returned by Pop when no logical push is outstanding.
	ErrEmptyStack = errors.New("style pop without matching push")

	// ErrStackMismatch is returned when a recorded kind has no entry left on
	// the UI core's stack, meaning the core stacks were popped behind the
	// Stack's back.
	ErrStackMismatch = errors.New("style stacks out of sync")
)

// Stack records, for every logical push of an override table, the ordered
// kinds it actually pushed onto the UI core's Stacks, so that Pop can undo
// them in exact reverse order.
type Stack struct {
	stacks Stacks
	res    Resources
	meta   [][]Kind
}

// NewStack returns an empty stack over the core's stacks. Image and font
// values are registered through res before they are pushed.
func NewStack(stacks Stacks, res Resources) *Stack {
	return &Stack{stacks: stacks, res: res}
}

// Depth returns the number of outstanding logical pushes.
func (s *Stack) Depth() int {
	return len(s.meta)
}

// Top returns the kind-list of the most recent logical push, or nil.
func (s *Stack) Top() []Kind {
	if len(s.meta) == 0 {
		return nil
	}
	return append([]Kind(nil), s.meta[len(s.meta)-1]...)
}

// Push applies t to root as one logical push and returns the kinds it
// pushed. If t holds a malformed value the pushes already made are undone
// and nothing is recorded.
func (s *Stack) Push(root Compound, t Table) (*Push, error) {
	p := s.Begin()
	if err := p.Compound(root, t); err != nil {
		p.Abort()
		return nil, err
	}
	p.Commit()
	return p, nil
}

// Pop undoes the most recent logical push and returns the kinds it
// popped, in pop order.
func (s *Stack) Pop() ([]Kind, error) {
	n := len(s.meta)
	if n == 0 {
		return nil, ErrEmptyStack
	}
	kinds := s.meta[n-1]
	s.meta[n-1] = nil
	s.meta = s.meta[:n-1]

	popped := make([]Kind, 0, len(kinds))
	for i := len(kinds) - 1; i >= 0; i-- {
		if !s.stacks.Pop(kinds[i]) {
			return popped, fmt.Errorf("%w: %v stack empty", ErrStackMismatch, kinds[i])
		}
		popped = append(popped, kinds[i])
	}
	return popped, nil
}

// ============================================================================
// Push
// ============================================================================

// Push accumulates one logical push. It must be committed or aborted
// before the next logical push begins.
type Push struct {
	stack   *Stack
	kinds   []Kind
	dropped []string
	done    bool
}

// Begin starts a logical push.
func (s *Stack) Begin() *Push {
	return &Push{stack: s}
}

// Kinds returns the kinds pushed so far, in push order.
func (p *Push) Kinds() []Kind {
	return append([]Kind(nil), p.kinds...)
}

// Dropped returns the paths of fields whose push hit a full stack or a full
// resource table and kept their old value.
func (p *Push) Dropped() []string {
	return append([]string(nil), p.dropped...)
}

// Commit records the accumulated kind-list on the meta-stack. An empty
// kind-list is recorded too so every Push is matched by one Pop.
func (p *Push) Commit() {
	if p.done {
		return
	}
	p.done = true
	p.stack.meta = append(p.stack.meta, p.kinds)
}

// Abort pops everything pushed so far in reverse order and records nothing.
func (p *Push) Abort() {
	if p.done {
		return
	}
	p.done = true
	for i := len(p.kinds) - 1; i >= 0; i-- {
		p.stack.stacks.Pop(p.kinds[i])
	}
	p.kinds = nil
}

// Field pushes v onto f. It returns false, recording nothing, when the
// kind's stack or the resource table is full.
func (p *Push) Field(f Field, v any) (bool, error) {
	return p.field(f.Name, f, v)
}

// Compound walks c's fields in declaration order and pushes every one
// present in t. Nested sub-styles recurse. Keys of t that name no field are
// ignored.
func (p *Push) Compound(c Compound, t Table) error {
	return p.compound("", c, t)
}

func (p *Push) compound(prefix string, c Compound, t Table) error {
	for _, f := range c.Fields() {
		v, ok := t[f.Name]
		if !ok || v == nil {
			continue
		}
		path := joinPath(prefix, f.Name)
		if f.Nested != nil {
			sub, ok := asTable(v)
			if !ok {
				return fmt.Errorf("%w: %s field must be a table", ErrBadValue, path)
			}
			if err := p.compound(path, f.Nested, sub); err != nil {
				return err
			}
			continue
		}
		if _, err := p.field(path, f, v); err != nil {
			return err
		}
	}
	return nil
}

func (p *Push) field(path string, f Field, v any) (bool, error) {
	if p.done {
		return false, fmt.Errorf("push of %s after commit", path)
	}
	kind, ok := f.Kind()
	if !ok {
		return false, fmt.Errorf("%w: %s is not a primitive field", ErrBadValue, path)
	}

	st := p.stack.stacks
	var pushed bool
	switch kind {
	case KindColor:
		c, err := decodeColor(path, v)
		if err != nil {
			return false, err
		}
		pushed = st.PushColor(f.Color, c)
	case KindVec2:
		vec, err := decodeVec2(path, v)
		if err != nil {
			return false, err
		}
		pushed = st.PushVec2(f.Vec2, vec)
	case KindItem:
		it, ok, err := decodeItem(path, v, p.stack.res)
		if err != nil {
			return false, err
		}
		pushed = ok && st.PushItem(f.Item, it)
	case KindFlags:
		flags, err := decodeFlags(path, v)
		if err != nil {
			return false, err
		}
		pushed = st.PushFlags(f.Flags, flags)
	case KindFloat:
		n, err := decodeFloat(path, v)
		if err != nil {
			return false, err
		}
		pushed = st.PushFloat(f.Float, n)
	case KindFont:
		font, ok, err := decodeFont(path, v, p.stack.res)
		if err != nil {
			return false, err
		}
		pushed = ok && st.PushFont(f.Font, font)
	}

	if !pushed {
		p.dropped = append(p.dropped, path)
		return false, nil
	}
	p.kinds = append(p.kinds, kind)
	return true, nil
}

func joinPath(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}
