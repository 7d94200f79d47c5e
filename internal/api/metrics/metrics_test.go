package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestRegister(t *testing.T) {
	reg := prometheus.NewRegistry()

	if err := Register(reg); err != nil {
		t.Fatalf("register: %v", err)
	}
	// Registering twice on the same registry is a no-op.
	if err := Register(reg); err != nil {
		t.Fatalf("second register: %v", err)
	}

	LeadsCreatedTotal.WithLabelValues("Website").Inc()

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	names := make(map[string]bool, len(families))
	for _, mf := range families {
		names[mf.GetName()] = true
	}
	for _, want := range []string{"anvaya_leads_created_total", "anvaya_agents_created_total", "anvaya_pipeline_leads"} {
		if !names[want] {
			t.Fatalf("expected %s in %v", want, names)
		}
	}
}
