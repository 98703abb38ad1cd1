package draw

import (
	"sync"

	"github.com/keharriso/love-nuklear/transform"
)

// ============================================================================
// Point Slice Pooling
// ============================================================================
//
// Every tessellated shape needs a scratch buffer of screen-space points.
// Buffers are pooled so a frame's emission does not allocate per command.
//
// Usage:
//   pts := acquirePoints(n)
//   ... fill and hand pts to the drawer ...
//   releasePoints(pts)

var pointPool = sync.Pool{
	New: func() any {
		return make([]transform.Point, 0, 64)
	},
}

// acquirePoints returns an empty point slice with capacity for at least n.
func acquirePoints(n int) []transform.Point {
	pts := pointPool.Get().([]transform.Point)
	if cap(pts) < n {
		pointPool.Put(pts[:0])
		return make([]transform.Point, 0, n*2)
	}
	return pts[:0]
}

// releasePoints returns pts to the pool. Oversized buffers are dropped.
func releasePoints(pts []transform.Point) {
	if pts == nil || cap(pts) > 4096 {
		return
	}
	pointPool.Put(pts[:0])
}
