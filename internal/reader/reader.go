// Package reader turns the whitespace-separated text input of the mstweight
// command into a *core.Graph.
//
// Format, read in order:
//
//	numVertices numEdges
//	u v weight     (numEdges times)
//
// Tokens may be separated by any whitespace, including newlines.
package reader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/mstweight/core"
)

// ErrMalformedInput indicates a missing or non-integer token.
var ErrMalformedInput = errors.New("reader: malformed input")

// ErrNegativeEdgeCount indicates the header declared fewer than zero edges.
var ErrNegativeEdgeCount = errors.New("reader: negative edge count")

// Header is the first line of the input.
type Header struct {
	Vertices int
	Edges    int
}

// ReadGraph parses the header and the edge triples from r and returns the
// populated graph together with the header it declared.
//
// Trailing input after the last triple is ignored.
//
// Errors:
//   - ErrMalformedInput: stream ended early or a token is not an integer.
//   - ErrNegativeEdgeCount, core.ErrNegativeVertexCount, core.ErrTooManyVertices:
//     invalid header.
//   - core.ErrVertexOutOfRange: an edge endpoint is outside [0, numVertices).
func ReadGraph(r io.Reader) (*core.Graph, Header, error) {
	s := &scanner{sc: bufio.NewScanner(r)}
	s.sc.Split(bufio.ScanWords)

	var h Header
	var err error
	if h.Vertices, err = s.readInt("numVertices"); err != nil {
		return nil, h, err
	}
	if h.Edges, err = s.readInt("numEdges"); err != nil {
		return nil, h, err
	}
	if h.Edges < 0 {
		return nil, h, fmt.Errorf("%w: %d", ErrNegativeEdgeCount, h.Edges)
	}

	g, err := core.NewGraph(h.Vertices)
	if err != nil {
		return nil, h, fmt.Errorf("reader: %w", err)
	}

	for i := 0; i < h.Edges; i++ {
		u, err := s.readInt("u")
		if err != nil {
			return nil, h, fmt.Errorf("edge %d: %w", i, err)
		}
		v, err := s.readInt("v")
		if err != nil {
			return nil, h, fmt.Errorf("edge %d: %w", i, err)
		}
		w, err := s.readInt64("weight")
		if err != nil {
			return nil, h, fmt.Errorf("edge %d: %w", i, err)
		}
		if err = g.AddEdge(u, v, w); err != nil {
			return nil, h, fmt.Errorf("reader: edge %d: %w", i, err)
		}
	}

	return g, h, nil
}

// scanner pulls whitespace-separated integer tokens and counts them for error context.
type scanner struct {
	sc    *bufio.Scanner
	token int
}

func (s *scanner) readInt64(what string) (int64, error) {
	if !s.sc.Scan() {
		if err := s.sc.Err(); err != nil {
			return 0, fmt.Errorf("reader: %s: %w", what, err)
		}

		return 0, fmt.Errorf("%w: token %d (%s): unexpected end of input", ErrMalformedInput, s.token, what)
	}
	s.token++
	n, err := strconv.ParseInt(s.sc.Text(), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: token %d (%s): %q is not an integer", ErrMalformedInput, s.token, what, s.sc.Text())
	}

	return n, nil
}

func (s *scanner) readInt(what string) (int, error) {
	n, err := s.readInt64(what)
	if err != nil {
		return 0, err
	}
	if int64(int(n)) != n {
		return 0, fmt.Errorf("%w: token %d (%s): %d overflows int", ErrMalformedInput, s.token, what, n)
	}

	return int(n), nil
}
