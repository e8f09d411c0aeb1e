package ipq

import "fmt"

// CheckInvariants verifies heap order and the position-index bijection.
// It is compiled only into tests.
func (pq *IndexedPQ) CheckInvariants() error {
	for i, it := range pq.heap {
		if i > 0 {
			parent := (i - 1) / 2
			if it.Weight < pq.heap[parent].Weight {
				return fmt.Errorf("heap order: slot %d weight %d < parent %d weight %d",
					i, it.Weight, parent, pq.heap[parent].Weight)
			}
		}
		if it.Vertex < 0 || it.Vertex >= len(pq.pos) {
			return fmt.Errorf("slot %d holds out-of-range vertex %d", i, it.Vertex)
		}
		if pq.pos[it.Vertex] != i {
			return fmt.Errorf("pos[%d] = %d, want %d", it.Vertex, pq.pos[it.Vertex], i)
		}
	}

	queued := 0
	for v, p := range pq.pos {
		if p == absent {
			continue
		}
		queued++
		if p < 0 || p >= len(pq.heap) || pq.heap[p].Vertex != v {
			return fmt.Errorf("pos[%d] = %d does not point back at vertex %d", v, p, v)
		}
	}
	if queued != len(pq.heap) {
		return fmt.Errorf("%d vertices indexed, %d in heap", queued, len(pq.heap))
	}

	return nil
}

// Items returns a copy of the raw heap slice in slot order.
func (pq *IndexedPQ) Items() []Item {
	out := make([]Item, len(pq.heap))
	copy(out, pq.heap)

	return out
}
