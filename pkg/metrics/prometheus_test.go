package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecorderCountsSnapshotReads(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := New(reg)

	r.RecordSnapshotRead("portfolio", OutcomeFound)
	r.RecordSnapshotRead("portfolio", OutcomeFound)
	r.RecordSnapshotRead("portfolio", OutcomeAbsent)

	if got := testutil.ToFloat64(r.snapshotReads.WithLabelValues("portfolio", OutcomeFound)); got != 2 {
		t.Fatalf("found reads: got %v, want 2", got)
	}
	if got := testutil.ToFloat64(r.snapshotReads.WithLabelValues("portfolio", OutcomeAbsent)); got != 1 {
		t.Fatalf("absent reads: got %v, want 1", got)
	}
}

func TestRecorderIsolatedRegistries(t *testing.T) {
	// Two recorders on separate registries must not collide.
	New(prometheus.NewRegistry())
	New(prometheus.NewRegistry())
}
