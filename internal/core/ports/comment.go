package ports

import (
	"context"
	"time"

	"github.com/anvaya/crm-backend/internal/core/domain"
)

// CommentRepository defines persistence operations for lead comments.
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	// FindByLead returns the lead's comments in insertion order.
	FindByLead(ctx context.Context, leadID string) ([]*domain.Comment, error)
}

// CommentView is a comment with its author resolved to a name.
// Author is empty when the author agent cannot be found.
type CommentView struct {
	ID          string
	CommentText string
	Author      string
	CreatedAt   time.Time
}

// CommentService defines use-case operations for comments on a lead.
type CommentService interface {
	AddComment(ctx context.Context, leadID, commentText string) (*CommentView, error)
	ListComments(ctx context.Context, leadID string) ([]*CommentView, error)
}
