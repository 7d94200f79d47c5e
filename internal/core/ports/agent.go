package ports

import (
	"context"

	"github.com/anvaya/crm-backend/internal/core/domain"
)

// AgentRepository defines persistence operations for sales agents.
type AgentRepository interface {
	// Create inserts the agent and fills in its generated ID and timestamps.
	Create(ctx context.Context, agent *domain.SalesAgent) error
	FindAll(ctx context.Context) ([]*domain.SalesAgent, error)
	FindByID(ctx context.Context, id string) (*domain.SalesAgent, error)
	// FindByIDs returns the agents that exist among ids, keyed by ID.
	FindByIDs(ctx context.Context, ids []string) (map[string]*domain.SalesAgent, error)
	FindByEmail(ctx context.Context, email string) (*domain.SalesAgent, error)
	FindByName(ctx context.Context, name string) (*domain.SalesAgent, error)
}

// CreateAgentInput carries the fields accepted by the agent-creation endpoint.
type CreateAgentInput struct {
	Name  string
	Email string
}

// AgentService defines use-case operations for sales agents.
type AgentService interface {
	CreateAgent(ctx context.Context, input CreateAgentInput) (*domain.SalesAgent, error)
	ListAgents(ctx context.Context) ([]*domain.SalesAgent, error)
}
