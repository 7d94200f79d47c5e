package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/anvaya/crm-backend/internal/core/domain"
	"github.com/anvaya/crm-backend/internal/core/ports"
)

type LeadService struct {
	leads  ports.LeadRepository
	agents ports.AgentRepository
	logger zerolog.Logger
}

func NewLeadService(leads ports.LeadRepository, agents ports.AgentRepository, logger zerolog.Logger) *LeadService {
	return &LeadService{leads: leads, agents: agents, logger: logger}
}

// CreateLead stores a new lead after confirming its agent exists, then
// re-reads it so persistence-owned fields are reflected in the result.
func (s *LeadService) CreateLead(ctx context.Context, input ports.SaveLeadInput) (*ports.LeadView, error) {
	if _, err := s.agents.FindByID(ctx, input.SalesAgentID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NotFound(fmt.Sprintf("Sales agent with ID %s not found.", input.SalesAgentID))
		}
		return nil, fmt.Errorf("create lead: find agent: %w", err)
	}

	lead := &domain.Lead{
		Name:         input.Name,
		Source:       domain.LeadSource(input.Source),
		SalesAgentID: input.SalesAgentID,
		Status:       domain.LeadStatus(input.Status),
		TimeToClose:  input.TimeToClose,
		Priority:     input.Priority,
		Tags:         []string{},
	}
	if input.Tags != nil {
		lead.Tags = *input.Tags
	}

	if err := s.leads.Create(ctx, lead); err != nil {
		s.logger.Error().Err(err).Msg("failed to create lead")
		return nil, fmt.Errorf("create lead: %w", err)
	}

	stored, err := s.leads.FindByID(ctx, lead.ID)
	if err != nil {
		return nil, fmt.Errorf("create lead: reload: %w", err)
	}

	s.logger.Info().
		Str("lead_id", stored.ID).
		Str("agent_id", stored.SalesAgentID).
		Str("status", string(stored.Status)).
		Msg("lead created")

	return s.populate(ctx, stored)
}

// ListLeads returns leads matching every supplied filter. Zero matches is
// reported as not found.
func (s *LeadService) ListLeads(ctx context.Context, input ports.ListLeadsInput) ([]*ports.LeadView, error) {
	var filter ports.LeadFilter

	if input.Status != "" {
		status := domain.LeadStatus(input.Status)
		if !status.Valid() {
			return nil, domain.InvalidInput(fmt.Sprintf("Invalid input: 'status' must be one of %s.", domain.StatusValues()))
		}
		filter.Status = status
	}
	if input.Source != "" {
		source := domain.LeadSource(input.Source)
		if !source.Valid() {
			return nil, domain.InvalidInput(fmt.Sprintf("Invalid input: 'source' must be one of %s.", domain.SourceValues()))
		}
		filter.Source = source
	}
	filter.Tags = splitTags(input.Tags)

	if input.SalesAgentName != "" {
		agent, err := s.agents.FindByName(ctx, input.SalesAgentName)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, domain.NotFound("Agent not found.")
			}
			return nil, fmt.Errorf("list leads: find agent: %w", err)
		}
		filter.SalesAgentID = agent.ID
	}

	leads, err := s.leads.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	if len(leads) == 0 {
		return nil, domain.NotFound("No leads found.")
	}
	return s.populateAll(ctx, leads)
}

func (s *LeadService) GetLead(ctx context.Context, id string) (*ports.LeadView, error) {
	lead, err := s.leads.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NotFound("No lead found")
		}
		return nil, fmt.Errorf("get lead: %w", err)
	}
	return s.populate(ctx, lead)
}

// UpdateLead replaces the lead's fields. The agent reference is stored as
// given and is not checked for existence.
func (s *LeadService) UpdateLead(ctx context.Context, id string, input ports.SaveLeadInput) (*ports.LeadView, error) {
	updated, err := s.leads.Replace(ctx, id, ports.LeadUpdate{
		Name:         input.Name,
		Source:       domain.LeadSource(input.Source),
		SalesAgentID: input.SalesAgentID,
		Status:       domain.LeadStatus(input.Status),
		TimeToClose:  input.TimeToClose,
		Priority:     input.Priority,
		Tags:         input.Tags,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return nil, leadNotFound(id)
		case errors.Is(err, domain.ErrInvalidID):
			// A missing lead wins over a malformed agent reference.
			if _, ferr := s.leads.FindByID(ctx, id); errors.Is(ferr, domain.ErrNotFound) {
				return nil, leadNotFound(id)
			}
			return nil, domain.InvalidInput("Invalid input: 'salesAgent' must be a valid ID.")
		}
		s.logger.Error().Err(err).Str("lead_id", id).Msg("failed to update lead")
		return nil, fmt.Errorf("update lead: %w", err)
	}

	s.logger.Info().Str("lead_id", id).Str("status", string(updated.Status)).Msg("lead updated")
	return s.populate(ctx, updated)
}

func (s *LeadService) DeleteLead(ctx context.Context, id string) error {
	if err := s.leads.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return leadNotFound(id)
		}
		return fmt.Errorf("delete lead: %w", err)
	}
	s.logger.Info().Str("lead_id", id).Msg("lead deleted")
	return nil
}

// populate resolves the lead's agent reference to {id, name}.
func (s *LeadService) populate(ctx context.Context, lead *domain.Lead) (*ports.LeadView, error) {
	agent, err := s.agents.FindByID(ctx, lead.SalesAgentID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("populate agent: %w", err)
	}
	return toLeadView(lead, agent), nil
}

// populateAll resolves agent references for many leads with a single lookup.
func (s *LeadService) populateAll(ctx context.Context, leads []*domain.Lead) ([]*ports.LeadView, error) {
	agents, err := s.agents.FindByIDs(ctx, agentIDs(leads))
	if err != nil {
		return nil, fmt.Errorf("populate agents: %w", err)
	}
	views := make([]*ports.LeadView, 0, len(leads))
	for _, l := range leads {
		views = append(views, toLeadView(l, agents[l.SalesAgentID]))
	}
	return views, nil
}

func toLeadView(l *domain.Lead, agent *domain.SalesAgent) *ports.LeadView {
	v := &ports.LeadView{
		ID:          l.ID,
		Name:        l.Name,
		Source:      string(l.Source),
		Status:      string(l.Status),
		Tags:        l.Tags,
		TimeToClose: l.TimeToClose,
		Priority:    l.Priority,
		ClosedAt:    l.ClosedAt,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
	if v.Tags == nil {
		v.Tags = []string{}
	}
	if agent != nil {
		v.SalesAgent = &ports.AgentRef{ID: agent.ID, Name: agent.Name}
	}
	return v
}

// agentIDs returns the distinct agent ids referenced by leads, in first-seen order.
func agentIDs(leads []*domain.Lead) []string {
	seen := make(map[string]struct{}, len(leads))
	ids := make([]string, 0, len(leads))
	for _, l := range leads {
		if _, ok := seen[l.SalesAgentID]; ok {
			continue
		}
		seen[l.SalesAgentID] = struct{}{}
		ids = append(ids, l.SalesAgentID)
	}
	return ids
}

// splitTags parses the comma-separated tags query parameter.
func splitTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var tags []string
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

func leadNotFound(id string) error {
	return domain.NotFound(fmt.Sprintf("Lead with ID %s not found.", id))
}
