package ipq

import "errors"

// ErrNegativeSize indicates New was called with a negative vertex universe.
var ErrNegativeSize = errors.New("ipq: negative size")

// ErrVertexOutOfRange indicates Push referenced a vertex outside [0, size).
var ErrVertexOutOfRange = errors.New("ipq: vertex out of range")

// absent marks a vertex that is not currently in the heap.
const absent = -1

// Item is one heap entry: a vertex carried at a given weight.
type Item struct {
	Weight int64
	Vertex int
}

// Sentinel is returned by Pop and Peek on an empty queue.
var Sentinel = Item{Weight: -1, Vertex: -1}
