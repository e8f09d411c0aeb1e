// Package prim_kruskal defines configuration options, results and sentinel errors for MST computation.
// It supports selecting between Prim and Kruskal via MSTOptions.
package prim_kruskal

import (
	"errors"

	"github.com/katalvlaran/mstweight/core"
)

// ErrNilGraph indicates that a nil *core.Graph was passed to a solver.
var ErrNilGraph = errors.New("prim_kruskal: graph is nil")

// ErrDisconnected indicates the graph does not span every vertex from the root.
// It is returned only when MSTOptions.RequireConnected is set; by default a
// disconnected graph yields the weight of the reachable component.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// ErrUnknownMethod indicates MSTOptions.Method names no known algorithm.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown method")

// MethodPrim selects Prim's algorithm (grow from a root using an indexed min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// Result describes one MST computation.
type Result struct {
	// Weight is the total weight of the tree (Prim: the root's component;
	// Kruskal: the whole spanning forest).
	Weight int64

	// Spanned is the number of vertices covered by the tree (Prim) or forest
	// (Kruskal, where it is always |V|).
	Spanned int

	// TreeEdges is the number of edges accepted into the tree or forest.
	TreeEdges int

	// Relaxations counts queue pushes issued for neighbours (Prim only).
	Relaxations int

	// StalePops counts popped entries discarded because their vertex was already final (Prim only).
	StalePops int
}

// Connected reports whether the result spans a single tree over all n vertices.
// The empty graph counts as connected.
func (r Result) Connected(n int) bool {
	if n == 0 {
		return true
	}

	return r.Spanned == n && r.TreeEdges == n-1
}

// MSTOptions configures which MST algorithm to run and how.
// Use DefaultOptions() to get a default setup (Prim from vertex 0).
//
// Fields:
//
//	Method           string — one of MethodPrim or MethodKruskal.
//	Root             int    — start vertex for Prim; ignored by Kruskal.
//	RequireConnected bool   — return ErrDisconnected instead of a partial result.
type MSTOptions struct {
	Method           string
	Root             int
	RequireConnected bool
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
// Allowed values: MethodPrim, MethodKruskal.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the starting vertex for Prim's algorithm.
// Panics on a negative root; an id beyond the graph is reported by Prim as core.ErrVertexOutOfRange.
func WithRoot(root int) Option {
	if root < 0 {
		panic("prim_kruskal: WithRoot(root<0)")
	}

	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// WithRequireConnected makes solvers fail with ErrDisconnected when the result
// does not span every vertex.
func WithRequireConnected() Option {
	return func(opts *MSTOptions) {
		opts.RequireConnected = true
	}
}

// DefaultOptions returns MSTOptions initialized for Prim:
//
//	– Method           = MethodPrim
//	– Root             = 0
//	– RequireConnected = false (partial results are returned silently).
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method:           MethodPrim,
		Root:             0,
		RequireConnected: false,
	}
}

// Compute selects and runs the MST algorithm based on the resolved options.
//
//	– MethodPrim:    calls Prim(graph, opts...).
//	– MethodKruskal: calls Kruskal(graph, opts...).
//	– Otherwise:     returns ErrUnknownMethod.
func Compute(graph *core.Graph, opts ...Option) (Result, error) {
	cfg := resolve(opts)

	switch cfg.Method {
	case MethodPrim:
		return Prim(graph, opts...)
	case MethodKruskal:
		return Kruskal(graph, opts...)
	default:
		return Result{}, ErrUnknownMethod
	}
}

// resolve applies opts over DefaultOptions in order.
func resolve(opts []Option) MSTOptions {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
