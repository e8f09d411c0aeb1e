package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mstweight/core"
	"github.com/katalvlaran/mstweight/internal/config"
	"github.com/katalvlaran/mstweight/internal/logging"
	"github.com/katalvlaran/mstweight/internal/reader"
	"github.com/katalvlaran/mstweight/prim_kruskal"
)

func runString(t *testing.T, input string, cfg config.Config) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := run(strings.NewReader(input), &out, cfg, logging.DiscardLogger())
	return out.String(), err
}

func TestRun_Scenarios(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"four vertices five edges", "4 5\n0 1 1\n0 2 4\n1 2 2\n1 3 6\n2 3 3\n", "6\n"},
		{"square with diagonal", "4 5\n0 1 1\n1 2 2\n2 3 3\n3 0 4\n0 2 5\n", "6\n"},
		{"single edge", "2 1\n0 1 5\n", "5\n"},
		{"isolated vertex", "3 1\n0 1 2\n", "2\n"},
		{"no vertices", "0 0\n", "0\n"},
		{"single vertex", "1 0", "0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, method := range []string{prim_kruskal.MethodPrim, prim_kruskal.MethodKruskal} {
				cfg := config.DefaultConfig()
				cfg.Method = method
				got, err := runString(t, tt.input, cfg)
				require.NoError(t, err, method)
				assert.Equal(t, tt.want, got, method)
			}
		})
	}
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"empty", "", reader.ErrMalformedInput},
		{"truncated", "2 1\n0 1", reader.ErrMalformedInput},
		{"bad token", "2 1\n0 x 3", reader.ErrMalformedInput},
		{"out of range", "2 1\n0 2 3", core.ErrVertexOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := runString(t, tt.input, config.DefaultConfig())
			assert.ErrorIs(t, err, tt.want)
			assert.Empty(t, got)
		})
	}
}

func TestRun_RequireConnected(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.RequireConnected = true

	got, err := runString(t, "3 1\n0 1 2\n", cfg)
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
	assert.Empty(t, got)
}

func TestRun_RootOutOfRange(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Root = 5

	_, err := runString(t, "2 1\n0 1 5\n", cfg)
	assert.ErrorIs(t, err, core.ErrVertexOutOfRange)
}

func TestRun_LogsToLogger(t *testing.T) {
	var logs, out bytes.Buffer
	logger, err := logging.NewLogger(logging.Config{Format: "json", Level: "debug", Output: &logs})
	require.NoError(t, err)

	require.NoError(t, run(strings.NewReader("3 1\n0 1 2\n"), &out, config.DefaultConfig(), logger))
	assert.Equal(t, "2\n", out.String())
	assert.Contains(t, logs.String(), "graph loaded")
	assert.Contains(t, logs.String(), "disconnected")
	assert.Contains(t, logs.String(), "mst computed")
}

func TestRun_MetricsFile(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.MetricsFile = filepath.Join(t.TempDir(), "mstweight.prom")

	got, err := runString(t, "4 5\n0 1 1\n1 2 2\n2 3 3\n3 0 4\n0 2 5\n", cfg)
	require.NoError(t, err)
	assert.Equal(t, "6\n", got)

	data, err := os.ReadFile(cfg.MetricsFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `mstweight_runs_total{method="prim"} 1`)
	assert.Contains(t, string(data), "mstweight_total_weight 6")
	assert.Contains(t, string(data), "mstweight_vertices 4")
}
