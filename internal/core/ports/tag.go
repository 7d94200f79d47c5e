package ports

import (
	"context"

	"github.com/anvaya/crm-backend/internal/core/domain"
)

// TagRepository defines persistence operations for tags.
type TagRepository interface {
	Create(ctx context.Context, tag *domain.Tag) error
	FindAll(ctx context.Context) ([]*domain.Tag, error)
	FindByName(ctx context.Context, name string) (*domain.Tag, error)
}

type TagService interface {
	CreateTag(ctx context.Context, name string) (*domain.Tag, error)
	ListTags(ctx context.Context) ([]*domain.Tag, error)
}
