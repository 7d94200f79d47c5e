package service

import (
	"context"
	"fmt"

	"github.com/anvaya/crm-backend/internal/core/domain"
	"github.com/anvaya/crm-backend/internal/core/ports"
)

// ReportService aggregates lead data in memory. Result sets are small so no
// server-side aggregation is used.
type ReportService struct {
	leads  ports.LeadRepository
	agents ports.AgentRepository
}

func NewReportService(leads ports.LeadRepository, agents ports.AgentRepository) *ReportService {
	return &ReportService{leads: leads, agents: agents}
}

// ClosedLeads returns every lead in Closed status. No date window is applied.
func (s *ReportService) ClosedLeads(ctx context.Context) ([]ports.ClosedLeadItem, error) {
	leads, agents, err := s.closedWithAgents(ctx)
	if err != nil {
		return nil, err
	}
	if len(leads) == 0 {
		return nil, domain.NotFound("No closed leads found.")
	}

	items := make([]ports.ClosedLeadItem, 0, len(leads))
	for _, l := range leads {
		item := ports.ClosedLeadItem{ID: l.ID, Name: l.Name, ClosedAt: l.ClosedAt}
		if a, ok := agents[l.SalesAgentID]; ok {
			item.SalesAgent = a.Name
		}
		items = append(items, item)
	}
	return items, nil
}

// PipelineCount returns the number of leads not yet Closed.
func (s *ReportService) PipelineCount(ctx context.Context) (int64, error) {
	n, err := s.leads.Count(ctx, ports.LeadFilter{ExcludeStatus: domain.StatusClosed})
	if err != nil {
		return 0, fmt.Errorf("pipeline count: %w", err)
	}
	return n, nil
}

// ClosedByAgent counts closed leads per agent, in the order agents are first
// seen. Leads whose agent cannot be resolved are skipped.
func (s *ReportService) ClosedByAgent(ctx context.Context) ([]ports.AgentClosedCount, error) {
	leads, agents, err := s.closedWithAgents(ctx)
	if err != nil {
		return nil, err
	}

	index := make(map[string]int)
	result := []ports.AgentClosedCount{}
	for _, l := range leads {
		agent, ok := agents[l.SalesAgentID]
		if !ok {
			continue
		}
		if i, seen := index[agent.ID]; seen {
			result[i].Count++
			continue
		}
		index[agent.ID] = len(result)
		result = append(result, ports.AgentClosedCount{AgentName: agent.Name, Count: 1})
	}
	return result, nil
}

func (s *ReportService) closedWithAgents(ctx context.Context) ([]*domain.Lead, map[string]*domain.SalesAgent, error) {
	leads, err := s.leads.Find(ctx, ports.LeadFilter{Status: domain.StatusClosed})
	if err != nil {
		return nil, nil, fmt.Errorf("find closed leads: %w", err)
	}
	agents, err := s.agents.FindByIDs(ctx, agentIDs(leads))
	if err != nil {
		return nil, nil, fmt.Errorf("find closed lead agents: %w", err)
	}
	return leads, agents, nil
}
