package ports

import (
	"context"
	"time"
)

// ClosedLeadItem is one row of the closed-leads report.
type ClosedLeadItem struct {
	ID         string
	Name       string
	SalesAgent string // empty when the agent cannot be resolved
	ClosedAt   *time.Time
}

// AgentClosedCount is the number of closed leads owned by one agent.
type AgentClosedCount struct {
	AgentName string
	Count     int
}

// ReportService exposes read-only aggregations over leads.
type ReportService interface {
	ClosedLeads(ctx context.Context) ([]ClosedLeadItem, error)
	PipelineCount(ctx context.Context) (int64, error)
	ClosedByAgent(ctx context.Context) ([]AgentClosedCount, error)
}
