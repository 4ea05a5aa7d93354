package observability

import (
	"testing"
	"time"
)

func TestMetricsSnapshot(t *testing.T) {
	m := NewMetrics()
	m.RecordRequest("/applicant/jobs", "GET", 200, 10*time.Millisecond)
	m.RecordRequest("/applicant/jobs", "GET", 200, 30*time.Millisecond)
	m.RecordError("/auth/login", "POST", "UNAUTHORIZED")
	m.RecordEvent("application_submitted")

	snap := m.Snapshot()
	key := "/applicant/jobs|GET|200"
	if snap.Requests[key] != 2 {
		t.Fatalf("expected 2 requests, got %d", snap.Requests[key])
	}
	if snap.AvgLatencyMsec[key] != 20 {
		t.Fatalf("expected 20ms average, got %d", snap.AvgLatencyMsec[key])
	}
	if snap.Errors["/auth/login|POST|UNAUTHORIZED"] != 1 {
		t.Fatalf("unexpected error counters %v", snap.Errors)
	}
	if snap.Events["application_submitted"] != 1 {
		t.Fatalf("unexpected event counters %v", snap.Events)
	}
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	m.RecordRequest("/", "GET", 200, time.Millisecond)
	m.RecordEvent("x")
	if got := m.Snapshot(); len(got.Requests) != 0 {
		t.Fatalf("expected empty snapshot, got %v", got)
	}
}
