package metrics

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_Observe(t *testing.T) {
	r := NewRecorder()

	r.Observe(Run{Method: "prim", Weight: 6, Vertices: 4, Edges: 5, Spanned: 4, Relaxations: 5, Duration: time.Millisecond})
	r.Observe(Run{Method: "kruskal", Weight: 6, Vertices: 4, Edges: 5, Spanned: 4, Duration: time.Millisecond})

	assert.Equal(t, 1.0, testutil.ToFloat64(r.runsTotal.WithLabelValues("prim")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.runsTotal.WithLabelValues("kruskal")))
	assert.Equal(t, 6.0, testutil.ToFloat64(r.totalWeight))
	assert.Equal(t, 4.0, testutil.ToFloat64(r.vertices))
	assert.Equal(t, 5.0, testutil.ToFloat64(r.edges))
	assert.Equal(t, 4.0, testutil.ToFloat64(r.spanned))
	assert.Equal(t, 5.0, testutil.ToFloat64(r.relaxationsTotal))
	assert.Equal(t, 1, testutil.CollectAndCount(r.runDuration))
}

func TestRecorder_NegativeWeight(t *testing.T) {
	r := NewRecorder()
	r.Observe(Run{Method: "prim", Weight: -7})
	assert.Equal(t, -7.0, testutil.ToFloat64(r.totalWeight))
}

func TestRecorder_RegistryIsPrivate(t *testing.T) {
	a, b := NewRecorder(), NewRecorder()
	a.Observe(Run{Method: "prim", Weight: 1})

	assert.NotSame(t, a.Registry(), b.Registry())
	assert.Equal(t, 0.0, testutil.ToFloat64(b.totalWeight))
}

func TestRecorder_WriteTextfile(t *testing.T) {
	r := NewRecorder()
	r.Observe(Run{Method: "prim", Weight: 6, Vertices: 4, Edges: 5, Spanned: 4, Relaxations: 5})

	path := filepath.Join(t.TempDir(), "mstweight.prom")
	require.NoError(t, r.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, `mstweight_runs_total{method="prim"} 1`)
	assert.Contains(t, out, "mstweight_total_weight 6")
	assert.Contains(t, out, "mstweight_run_duration_seconds_count 1")
}

func TestRecorder_WriteTextfileBadDir(t *testing.T) {
	r := NewRecorder()
	path := filepath.Join(t.TempDir(), "missing", "mstweight.prom")
	assert.Error(t, r.WriteTextfile(path))
}
