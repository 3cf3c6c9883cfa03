package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/tracker/streak", "200"))

	RecordAPIRequest("GET", "/api/tracker/streak", 200, 15*time.Millisecond)

	after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/tracker/streak", "200"))
	if after-before != 1 {
		t.Fatalf("expected counter to increase by 1, got %v", after-before)
	}
}

func TestRecordSync(t *testing.T) {
	beforeEvents := testutil.ToFloat64(SyncEventsTotal.WithLabelValues("updated"))
	beforeSeconds := testutil.ToFloat64(StudySecondsTotal)

	RecordSync("updated", 4.5)
	RecordSync("updated", 0)

	if got := testutil.ToFloat64(SyncEventsTotal.WithLabelValues("updated")) - beforeEvents; got != 2 {
		t.Fatalf("expected 2 sync events, got %v", got)
	}
	if got := testutil.ToFloat64(StudySecondsTotal) - beforeSeconds; got != 4.5 {
		t.Fatalf("expected 4.5 study seconds, got %v", got)
	}
}

func TestRecordDistraction(t *testing.T) {
	before := testutil.ToFloat64(DistractionsTotal.WithLabelValues("vlog"))
	RecordDistraction("vlog")
	if got := testutil.ToFloat64(DistractionsTotal.WithLabelValues("vlog")) - before; got != 1 {
		t.Fatalf("expected 1 distraction, got %v", got)
	}
}
