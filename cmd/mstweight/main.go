// Command mstweight reads a weighted undirected graph from stdin and prints
// the total weight of its minimum spanning tree.
//
// Input: "numVertices numEdges" followed by numEdges "u v weight" triples,
// all whitespace separated. Output: the weight and a newline.
//
// Behaviour is tuned through MSTWEIGHT_* environment variables or a .env file
// in the working directory; see internal/config.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/mstweight/internal/config"
	"github.com/katalvlaran/mstweight/internal/logging"
	"github.com/katalvlaran/mstweight/internal/metrics"
	"github.com/katalvlaran/mstweight/internal/reader"
	"github.com/katalvlaran/mstweight/prim_kruskal"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "mstweight:", err)
		os.Exit(1)
	}

	logger, err := logging.NewLogger(logging.Config{
		Format: cfg.LogFormat,
		Level:  cfg.LogLevel,
		Output: os.Stderr,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "mstweight:", err)
		os.Exit(1)
	}

	if err := run(os.Stdin, os.Stdout, cfg, logger); err != nil {
		logger.Error().Err(err).Msg("mstweight failed")
		os.Exit(1)
	}
}

// run executes one read-solve-print cycle.
func run(in io.Reader, out io.Writer, cfg config.Config, logger zerolog.Logger) error {
	// 1) Parse the graph.
	graph, header, err := reader.ReadGraph(in)
	if err != nil {
		return err
	}
	logger.Debug().
		Int("vertices", header.Vertices).
		Int("edges", header.Edges).
		Msg("graph loaded")

	// 2) Solve.
	opts := []prim_kruskal.Option{
		prim_kruskal.WithMethod(cfg.Method),
		prim_kruskal.WithRoot(cfg.Root),
	}
	if cfg.RequireConnected {
		opts = append(opts, prim_kruskal.WithRequireConnected())
	}
	start := time.Now()
	res, err := prim_kruskal.Compute(graph, opts...)
	elapsed := time.Since(start)
	if err != nil {
		return err
	}
	if !res.Connected(graph.VertexCount()) {
		logger.Warn().
			Int("spanned", res.Spanned).
			Int("vertices", graph.VertexCount()).
			Msg("graph is disconnected, weight covers a partial result")
	}

	// 3) Report.
	if _, err = fmt.Fprintln(out, res.Weight); err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	logger.Info().
		Str("method", cfg.Method).
		Int64("weight", res.Weight).
		Int("spanned", res.Spanned).
		Dur("elapsed", elapsed).
		Msg("mst computed")

	// 4) Optional metrics dump.
	if cfg.MetricsFile == "" {
		return nil
	}
	rec := metrics.NewRecorder()
	rec.Observe(metrics.Run{
		Method:      cfg.Method,
		Weight:      res.Weight,
		Vertices:    graph.VertexCount(),
		Edges:       graph.EdgeCount(),
		Spanned:     res.Spanned,
		Relaxations: res.Relaxations,
		Duration:    elapsed,
	})

	return rec.WriteTextfile(cfg.MetricsFile)
}
