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

type TagService struct {
	repo   ports.TagRepository
	logger zerolog.Logger
}

func NewTagService(repo ports.TagRepository, logger zerolog.Logger) *TagService {
	return &TagService{repo: repo, logger: logger}
}

// CreateTag stores a new tag. Tag names are unique.
func (s *TagService) CreateTag(ctx context.Context, name string) (*domain.Tag, error) {
	if strings.TrimSpace(name) == "" {
		return nil, domain.RequiredField("name")
	}

	existing, err := s.repo.FindByName(ctx, name)
	switch {
	case err == nil && existing != nil:
		return nil, tagExists(name)
	case err != nil && !errors.Is(err, domain.ErrNotFound):
		return nil, fmt.Errorf("find tag: %w", err)
	}

	tag := &domain.Tag{Name: name}
	if err := s.repo.Create(ctx, tag); err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, tagExists(name)
		}
		s.logger.Error().Err(err).Str("tag", name).Msg("failed to create tag")
		return nil, fmt.Errorf("create tag: %w", err)
	}

	s.logger.Info().Str("tag_id", tag.ID).Str("tag", tag.Name).Msg("tag created")
	return tag, nil
}

// ListTags returns every tag. An empty collection is reported as not found.
func (s *TagService) ListTags(ctx context.Context) ([]*domain.Tag, error) {
	tags, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	if len(tags) == 0 {
		return nil, domain.NotFound("No Tags found")
	}
	return tags, nil
}

func tagExists(name string) error {
	return domain.AlreadyExists(name + " already exists.")
}
