package prometheus

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/flatecat/flatecat/internal/stats"
)

func gatherValue(t *testing.T, reg *prometheus.Registry, name string) float64 {
	t.Helper()

	metrics, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather() error = %v", err)
	}

	for _, m := range metrics {
		if m.GetName() != name {
			continue
		}
		if len(m.GetMetric()) == 0 {
			t.Fatalf("metric %s has no samples", name)
		}
		return m.GetMetric()[0].GetCounter().GetValue()
	}

	t.Fatalf("metric %s not found in registry", name)
	return 0
}

func TestNew_RegistersMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := New(reg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if c == nil {
		t.Fatal("New() returned nil collector")
	}

	c.IncCounter(stats.MetricMembers, 1)
	if got := gatherValue(t, reg, stats.MetricMembers); got != 1 {
		t.Errorf("members counter = %v, want 1", got)
	}
}

func TestCollector_IncCounter(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := New(reg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	c.IncCounter(stats.MetricBytesWritten, 5)
	c.IncCounter(stats.MetricBytesWritten, 3)

	if got := gatherValue(t, reg, stats.MetricBytesWritten); got != 8 {
		t.Errorf("counter value = %v, want 8", got)
	}
}

func TestCollector_IncCounter_UnknownName(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := New(reg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	// Unknown names are dropped, not registered on the fly.
	c.IncCounter("flatecat_unrelated_total", 1)

	metrics, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather() error = %v", err)
	}
	for _, m := range metrics {
		if m.GetName() == "flatecat_unrelated_total" {
			t.Error("unknown counter was registered")
		}
	}
}

func TestCollector_ObserveHistogram(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := New(reg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	c.ObserveHistogram(stats.MetricMemberSeconds, 0.5)
	c.ObserveHistogram(stats.MetricMemberSeconds, 1.5)
	c.ObserveHistogram(stats.MetricMemberSeconds, 2.5)

	metrics, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather() error = %v", err)
	}

	found := false
	for _, m := range metrics {
		if m.GetName() == stats.MetricMemberSeconds {
			found = true
			count := m.GetMetric()[0].GetHistogram().GetSampleCount()
			if count != 3 {
				t.Errorf("histogram count = %v, want 3", count)
			}
		}
	}
	if !found {
		t.Errorf("histogram %s not found in registry", stats.MetricMemberSeconds)
	}
}

func TestNew_AlreadyRegistered(t *testing.T) {
	reg := prometheus.NewRegistry()
	if _, err := New(reg); err != nil {
		t.Fatalf("New() error = %v", err)
	}

	// A second collector on the same registry collides.
	if _, err := New(reg); err == nil {
		t.Error("New() expected error for duplicate registration, got nil")
	}
}
