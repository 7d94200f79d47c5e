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

type AgentService struct {
	repo   ports.AgentRepository
	logger zerolog.Logger
}

func NewAgentService(repo ports.AgentRepository, logger zerolog.Logger) *AgentService {
	return &AgentService{repo: repo, logger: logger}
}

// CreateAgent registers a new sales agent. Emails must pass the loose format
// check and be unique across agents.
func (s *AgentService) CreateAgent(ctx context.Context, input ports.CreateAgentInput) (*domain.SalesAgent, error) {
	if !domain.IsValidEmail(input.Email) {
		return nil, domain.InvalidInput("Please enter a valid email address")
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, domain.RequiredField("name")
	}

	existing, err := s.repo.FindByEmail(ctx, input.Email)
	switch {
	case err == nil && existing != nil:
		return nil, emailTaken(input.Email)
	case err != nil && !errors.Is(err, domain.ErrNotFound):
		return nil, fmt.Errorf("find agent by email: %w", err)
	}

	agent := &domain.SalesAgent{Name: input.Name, Email: input.Email}
	if err := s.repo.Create(ctx, agent); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, emailTaken(input.Email)
		}
		s.logger.Error().Err(err).Str("email", input.Email).Msg("failed to create sales agent")
		return nil, fmt.Errorf("create agent: %w", err)
	}

	s.logger.Info().Str("agent_id", agent.ID).Str("email", agent.Email).Msg("sales agent created")
	return agent, nil
}

// ListAgents returns every agent. An empty collection is reported as not found.
func (s *AgentService) ListAgents(ctx context.Context) ([]*domain.SalesAgent, error) {
	agents, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list agents: %w", err)
	}
	if len(agents) == 0 {
		return nil, domain.NotFound("No sales agents found.")
	}
	return agents, nil
}

func emailTaken(email string) error {
	return domain.Conflict(fmt.Sprintf("Sales agent with email %s already exists.", email))
}
