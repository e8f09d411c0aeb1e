// Package ipq implements an indexed binary min-heap: a priority queue of
// (weight, vertex) pairs that can find any queued vertex in O(1) and lower
// its key in O(log n).
//
// What & Why
//
//   - The heap lives in a dense slice: index 0 is the root, the children of
//     slot i sit at 2i+1 and 2i+2.
//   - A side table pos[v] records the slot currently holding vertex v, or -1
//     when v is not queued. Every swap, append and remove-last updates it.
//   - Without pos, decreasing a vertex's key needs an O(n) scan. With it,
//     Push on a queued vertex becomes an in-place decrease-key plus percolate-up.
//
// Operations
//
//   - New(size)           O(size)    all vertices absent.
//   - Push(v, w)          O(log n)   insert, or decrease-key when v is queued and w is smaller.
//   - Pop()               O(log n)   remove the minimum; Sentinel when empty.
//   - IsEmpty(), Len()    O(1)
//   - Contains(v), WeightOf(v), Peek()  O(1)
//
// Push never raises a key: pushing a queued vertex with a weight that is not
// strictly smaller leaves the heap untouched.
//
// Ties: percolation only moves an entry when a strictly smaller neighbour is
// found, so equal weights keep their current slots.
//
// The queue is not safe for concurrent use.
package ipq
