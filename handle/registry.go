// Package handle implements the per-frame table that maps small integer
// handles to host-owned objects handed to the UI core.
package handle

import (
	"errors"
	"fmt"
)

// Handle is an opaque identifier for a host object registered with a
// Registry. The high 32 bits carry the epoch of the table that issued it and
// the low 32 bits carry the slot index plus one, so the zero Handle is never
// issued.
type Handle uint64

// None is the zero Handle. It never resolves.
const None Handle = 0

// ErrUnknownHandle is returned when a handle does not resolve in the table
// it is looked up in.
var ErrUnknownHandle = errors.New("unknown handle")

// ErrNotRebuilding is returned by Preserve outside BeginRebuild/EndRebuild.
var ErrNotRebuilding = errors.New("registry is not rebuilding")

func makeHandle(epoch uint32, index int) Handle {
	return Handle(uint64(epoch)<<32 | uint64(index+1))
}

// Epoch returns the epoch this handle was issued in.
func (h Handle) Epoch() uint32 {
	return uint32(h >> 32)
}

// index returns the slot index, or -1 for None.
func (h Handle) index() int {
	return int(uint32(h)) - 1
}

func (h Handle) String() string {
	if h == None {
		return "handle(none)"
	}
	return fmt.Sprintf("handle(%d:%d)", h.Epoch(), h.index())
}

type entry[K comparable, V any] struct {
	key  K
	meta V
}

type table[K comparable, V any] struct {
	epoch   uint32
	entries []entry[K, V]
	index   map[K]int
}

func newTable[K comparable, V any](epoch uint32) *table[K, V] {
	return &table[K, V]{
		epoch: epoch,
		index: make(map[K]int),
	}
}

func (t *table[K, V]) lookup(h Handle) (entry[K, V], bool) {
	if t == nil || h == None || h.Epoch() != t.epoch {
		return entry[K, V]{}, false
	}
	i := h.index()
	if i < 0 || i >= len(t.entries) {
		return entry[K, V]{}, false
	}
	return t.entries[i], true
}

// Registry is a bounded, epoch-tagged table of host objects of key type K
// with per-object metadata V. Each registration cycle (one frame) gets a new
// epoch; handles issued in an earlier cycle are unusable unless carried over
// with Preserve during the rebuild.
//
// A Registry is not safe for concurrent use.
type Registry[K comparable, V any] struct {
	limit   int
	epoch   uint32
	current *table[K, V]
	prev    *table[K, V]
}

// New creates a registry that holds at most limit objects per cycle.
// A limit <= 0 means unbounded.
func New[K comparable, V any](limit int) *Registry[K, V] {
	return &Registry[K, V]{
		limit:   limit,
		epoch:   1,
		current: newTable[K, V](1),
	}
}

// Register adds key to the current table and returns its handle. Registering
// the same key twice in one cycle returns the existing handle without calling
// meta again. The second result is false when the table is full, in which case
// the returned handle is None.
func (r *Registry[K, V]) Register(key K, meta func(K) V) (Handle, bool) {
	if i, ok := r.current.index[key]; ok {
		return makeHandle(r.current.epoch, i), true
	}
	if r.limit > 0 && len(r.current.entries) >= r.limit {
		return None, false
	}
	var m V
	if meta != nil {
		m = meta(key)
	}
	i := len(r.current.entries)
	r.current.entries = append(r.current.entries, entry[K, V]{key: key, meta: m})
	r.current.index[key] = i
	return makeHandle(r.current.epoch, i), true
}

// Resolve returns the object and metadata for h in the current table.
func (r *Registry[K, V]) Resolve(h Handle) (K, V, error) {
	e, ok := r.current.lookup(h)
	if !ok {
		var k K
		var v V
		return k, v, fmt.Errorf("%w: %v (epoch %d)", ErrUnknownHandle, h, r.current.epoch)
	}
	return e.key, e.meta, nil
}

// BeginRebuild starts a new cycle. The current table becomes the previous
// one and a fresh, empty table with the next epoch takes its place.
func (r *Registry[K, V]) BeginRebuild() {
	r.epoch++
	r.prev = r.current
	r.current = newTable[K, V](r.epoch)
}

// Preserve re-registers the object behind old, a handle from the previous
// cycle, into the current table and returns its new handle. Metadata is
// carried over as recorded in the previous cycle. It is only valid between
// BeginRebuild and EndRebuild.
func (r *Registry[K, V]) Preserve(old Handle) (Handle, error) {
	if r.prev == nil {
		return None, ErrNotRebuilding
	}
	e, ok := r.prev.lookup(old)
	if !ok {
		return None, fmt.Errorf("failed to preserve %v: %w", old, ErrUnknownHandle)
	}
	if i, ok := r.current.index[e.key]; ok {
		return makeHandle(r.current.epoch, i), nil
	}
	h, ok := r.Register(e.key, func(K) V { return e.meta })
	if !ok {
		return None, fmt.Errorf("failed to preserve %v: registry full (%d)", old, r.limit)
	}
	return h, nil
}

// EndRebuild finishes the cycle started by BeginRebuild and drops the
// previous table.
func (r *Registry[K, V]) EndRebuild() {
	r.prev = nil
}

// Rebuilding reports whether a rebuild is in progress.
func (r *Registry[K, V]) Rebuilding() bool {
	return r.prev != nil
}

// Len returns the number of objects in the current table.
func (r *Registry[K, V]) Len() int {
	return len(r.current.entries)
}

// Limit returns the per-cycle capacity, or 0 when unbounded.
func (r *Registry[K, V]) Limit() int {
	if r.limit < 0 {
		return 0
	}
	return r.limit
}

// Epoch returns the epoch of the current table.
func (r *Registry[K, V]) Epoch() uint32 {
	return r.current.epoch
}
