package ports

import (
	"context"
	"time"

	"github.com/anvaya/crm-backend/internal/core/domain"
)

// LeadFilter carries equality and membership filters for lead queries.
// Zero values mean "no filter". All set fields are combined with AND.
type LeadFilter struct {
	SalesAgentID  string
	Status        domain.LeadStatus
	ExcludeStatus domain.LeadStatus // status != ExcludeStatus
	Source        domain.LeadSource
	Tags          []string // lead must carry every tag listed
}

// LeadUpdate is the full-replace payload for an existing lead.
// A nil Tags leaves the stored tags untouched.
type LeadUpdate struct {
	Name         string
	Source       domain.LeadSource
	SalesAgentID string
	Status       domain.LeadStatus
	TimeToClose  int
	Priority     string
	Tags         *[]string
}

// LeadRepository defines persistence operations for leads.
type LeadRepository interface {
	// Create inserts the lead and fills in its generated ID and timestamps.
	Create(ctx context.Context, lead *domain.Lead) error
	FindByID(ctx context.Context, id string) (*domain.Lead, error)
	Find(ctx context.Context, filter LeadFilter) ([]*domain.Lead, error)
	Count(ctx context.Context, filter LeadFilter) (int64, error)
	// Replace applies update and returns the stored lead after the write.
	Replace(ctx context.Context, id string, update LeadUpdate) (*domain.Lead, error)
	Delete(ctx context.Context, id string) error
}

// AgentRef is the populated form of a lead's salesAgent reference.
type AgentRef struct {
	ID   string
	Name string
}

// LeadView is a lead with its agent reference resolved. SalesAgent is nil
// when the referenced agent no longer exists.
type LeadView struct {
	ID          string
	Name        string
	Source      string
	SalesAgent  *AgentRef
	Status      string
	Tags        []string
	TimeToClose int
	Priority    string
	ClosedAt    *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// SaveLeadInput carries the fields accepted by lead create and update.
type SaveLeadInput struct {
	Name         string
	Source       string
	SalesAgentID string
	Status       string
	TimeToClose  int
	Priority     string
	Tags         *[]string
}

// ListLeadsInput carries the raw query parameters of the lead list endpoint.
type ListLeadsInput struct {
	SalesAgentName string
	Status         string
	Source         string
	Tags           string // comma-separated
}

// LeadService defines use-case operations for leads.
type LeadService interface {
	CreateLead(ctx context.Context, input SaveLeadInput) (*LeadView, error)
	ListLeads(ctx context.Context, input ListLeadsInput) ([]*LeadView, error)
	GetLead(ctx context.Context, id string) (*LeadView, error)
	UpdateLead(ctx context.Context, id string, input SaveLeadInput) (*LeadView, error)
	DeleteLead(ctx context.Context, id string) error
}
