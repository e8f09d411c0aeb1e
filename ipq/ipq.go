package ipq

import "fmt"

// IndexedPQ is a binary min-heap of Items keyed by Weight, with a vertex → slot
// index supporting membership tests and decrease-key.
//
// Invariants after every exported call:
//   - heap[i].Weight >= heap[(i-1)/2].Weight for every i > 0.
//   - pos[heap[i].Vertex] == i for every slot i.
//   - pos[v] == -1 for every vertex v not in heap.
type IndexedPQ struct {
	heap []Item
	pos  []int
}

// New returns an empty queue able to hold vertices 0..size-1.
// Complexity: O(size).
func New(size int) (*IndexedPQ, error) {
	if size < 0 {
		return nil, ErrNegativeSize
	}

	pos := make([]int, size)
	for v := range pos {
		pos[v] = absent
	}

	return &IndexedPQ{
		heap: make([]Item, 0, size),
		pos:  pos,
	}, nil
}

// Push queues vertex at weight.
//
// If vertex is absent it is appended and percolated up. If it is already
// queued, Push behaves as decrease-key: the stored weight is overwritten only
// when weight is strictly smaller, otherwise the call is a no-op.
//
// Errors:
//   - ErrVertexOutOfRange if vertex is outside [0, size).
//
// Complexity: O(log n).
func (pq *IndexedPQ) Push(vertex int, weight int64) error {
	if vertex < 0 || vertex >= len(pq.pos) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrVertexOutOfRange, vertex, len(pq.pos))
	}

	if pq.pos[vertex] != absent {
		pq.decreaseKey(vertex, weight)

		return nil
	}

	pq.heap = append(pq.heap, Item{Weight: weight, Vertex: vertex})
	last := len(pq.heap) - 1
	pq.pos[vertex] = last
	pq.up(last)

	return nil
}

// Pop removes and returns the minimum-weight Item.
// On an empty queue it returns Sentinel; check IsEmpty first to tell the cases apart.
// Complexity: O(log n).
func (pq *IndexedPQ) Pop() Item {
	if len(pq.heap) == 0 {
		return Sentinel
	}

	top := pq.heap[0]
	pq.pos[top.Vertex] = absent

	last := len(pq.heap) - 1
	pq.heap[0] = pq.heap[last]
	pq.heap = pq.heap[:last]

	if len(pq.heap) > 0 {
		pq.pos[pq.heap[0].Vertex] = 0
		pq.down(0)
	}

	return top
}

// Peek returns the minimum Item without removing it, or Sentinel when empty.
func (pq *IndexedPQ) Peek() Item {
	if len(pq.heap) == 0 {
		return Sentinel
	}

	return pq.heap[0]
}

// IsEmpty reports whether the queue holds no items.
func (pq *IndexedPQ) IsEmpty() bool { return len(pq.heap) == 0 }

// Len returns the number of queued items.
func (pq *IndexedPQ) Len() int { return len(pq.heap) }

// Contains reports whether vertex is currently queued.
// Out-of-range vertices are never queued.
func (pq *IndexedPQ) Contains(vertex int) bool {
	return vertex >= 0 && vertex < len(pq.pos) && pq.pos[vertex] != absent
}

// WeightOf returns the queued weight of vertex, or false when it is not queued.
func (pq *IndexedPQ) WeightOf(vertex int) (int64, bool) {
	if !pq.Contains(vertex) {
		return 0, false
	}

	return pq.heap[pq.pos[vertex]].Weight, true
}

// decreaseKey lowers the weight of a queued vertex and restores heap order.
// A weight that is not strictly smaller is ignored.
func (pq *IndexedPQ) decreaseKey(vertex int, weight int64) {
	i := pq.pos[vertex]
	if weight >= pq.heap[i].Weight {
		return
	}
	pq.heap[i].Weight = weight
	pq.up(i)
}

// up moves the entry at i toward the root while it is strictly lighter than its parent.
func (pq *IndexedPQ) up(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if pq.heap[i].Weight >= pq.heap[parent].Weight {
			break
		}
		pq.swap(i, parent)
		i = parent
	}
}

// down moves the entry at i toward the leaves while a child is strictly lighter.
func (pq *IndexedPQ) down(i int) {
	n := len(pq.heap)
	for {
		left := 2*i + 1
		right := left + 1
		smallest := i
		if left < n && pq.heap[left].Weight < pq.heap[smallest].Weight {
			smallest = left
		}
		if right < n && pq.heap[right].Weight < pq.heap[smallest].Weight {
			smallest = right
		}
		if smallest == i {
			return
		}
		pq.swap(i, smallest)
		i = smallest
	}
}

// swap exchanges slots i and j and keeps pos in step with both moved vertices.
func (pq *IndexedPQ) swap(i, j int) {
	pq.heap[i], pq.heap[j] = pq.heap[j], pq.heap[i]
	pq.pos[pq.heap[i].Vertex] = i
	pq.pos[pq.heap[j].Vertex] = j
}
