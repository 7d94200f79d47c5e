// Package metrics defines the business Prometheus metrics for the lead
// tracking API. HTTP request metrics come from the echoprometheus middleware;
// the counters here track domain events and are exposed once Register has
// added them to a registry.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "anvaya"

// ── Agent metrics ─────────────────────────────────────────────────────────────

// AgentsCreatedTotal counts sales agents created.
var AgentsCreatedTotal = prometheus.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "agents_created_total",
		Help:      "Total number of sales agents created.",
	},
)

// ── Lead metrics ──────────────────────────────────────────────────────────────

// LeadsCreatedTotal counts newly created leads.
// Label:
//   - source: lead source (e.g. "Website", "Cold Call")
var LeadsCreatedTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "leads_created_total",
		Help:      "Total number of leads created, by source.",
	},
	[]string{"source"},
)

// LeadsUpdatedTotal counts lead updates.
// Label:
//   - status: the lead status after the update
var LeadsUpdatedTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "leads_updated_total",
		Help:      "Total number of lead updates, by resulting status.",
	},
	[]string{"status"},
)

// LeadsDeletedTotal counts deleted leads.
var LeadsDeletedTotal = prometheus.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "leads_deleted_total",
		Help:      "Total number of leads deleted.",
	},
)

// ── Comment and tag metrics ───────────────────────────────────────────────────

var CommentsCreatedTotal = prometheus.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "comments_created_total",
		Help:      "Total number of comments added to leads.",
	},
)

var TagsCreatedTotal = prometheus.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tags_created_total",
		Help:      "Total number of tags created.",
	},
)

// ── Report metrics ────────────────────────────────────────────────────────────

// PipelineLeads is the open-lead count observed by the last pipeline report.
var PipelineLeads = prometheus.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "pipeline_leads",
		Help:      "Number of leads not yet Closed, as of the last pipeline report.",
	},
)

// Register adds every business metric to reg. Collectors already present in
// reg are left as they are.
func Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{
		AgentsCreatedTotal,
		LeadsCreatedTotal,
		LeadsUpdatedTotal,
		LeadsDeletedTotal,
		CommentsCreatedTotal,
		TagsCreatedTotal,
		PipelineLeads,
	} {
		if err := reg.Register(c); err != nil {
			var are prometheus.AlreadyRegisteredError
			if errors.As(err, &are) {
				continue
			}
			return err
		}
	}
	return nil
}
