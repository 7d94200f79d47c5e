package service

import (
	"context"
	"testing"

	"github.com/anvaya/crm-backend/internal/core/domain"
)

func TestTagService_Create_Duplicate(t *testing.T) {
	repo := &stubTagRepo{}
	svc := NewTagService(repo, discardLogger)

	tag, err := svc.CreateTag(context.Background(), "VIP")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tag.Name != "VIP" || tag.ID == "" {
		t.Fatalf("unexpected tag: %+v", tag)
	}

	_, err = svc.CreateTag(context.Background(), "VIP")
	expectDomainError(t, err, domain.ErrAlreadyExists, "VIP already exists.")
	if len(repo.tags) != 1 {
		t.Fatalf("expected 1 stored tag, got %d", len(repo.tags))
	}
}

func TestTagService_Create_UniqueIndexViolation(t *testing.T) {
	svc := NewTagService(&stubTagRepo{createErr: domain.ErrAlreadyExists}, discardLogger)

	_, err := svc.CreateTag(context.Background(), "VIP")
	expectDomainError(t, err, domain.ErrAlreadyExists, "VIP already exists.")
}

func TestTagService_Create_MissingName(t *testing.T) {
	svc := NewTagService(&stubTagRepo{}, discardLogger)

	_, err := svc.CreateTag(context.Background(), "")
	expectDomainError(t, err, domain.ErrInvalidInput, "Invalid input: 'name' is required.")
}

func TestTagService_List(t *testing.T) {
	repo := &stubTagRepo{}
	svc := NewTagService(repo, discardLogger)

	_, err := svc.ListTags(context.Background())
	expectDomainError(t, err, domain.ErrNotFound, "No Tags found")

	_, _ = svc.CreateTag(context.Background(), "VIP")
	_, _ = svc.CreateTag(context.Background(), "Cold")
	tags, err := svc.ListTags(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tags) != 2 {
		t.Fatalf("expected 2 tags, got %d", len(tags))
	}
}
