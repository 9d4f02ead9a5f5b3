package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNew_RegistersWithRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.IncBootstrap(OutcomeDefaulted)
	m.IncBootstrap(OutcomeLoaded)
	m.IncBootstrap(OutcomeLoaded)
	m.ObserveBootstrap(0.002)

	if got := testutil.ToFloat64(m.BootstrapTotal.WithLabelValues(OutcomeLoaded)); got != 2 {
		t.Errorf("loaded = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.BootstrapTotal.WithLabelValues(OutcomeDefaulted)); got != 1 {
		t.Errorf("defaulted = %v, want 1", got)
	}

	n, err := testutil.GatherAndCount(reg, "carto_config_bootstrap_total", "carto_config_bootstrap_duration_seconds")
	if err != nil {
		t.Fatalf("GatherAndCount: %v", err)
	}
	// Two outcome series plus one histogram.
	if n != 3 {
		t.Errorf("gathered %d series, want 3", n)
	}
}

func TestNew_SeparateRegistries(t *testing.T) {
	// Each registry gets its own collectors, so building twice must not panic.
	New(prometheus.NewRegistry())
	New(prometheus.NewRegistry())
}
