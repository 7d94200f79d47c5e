package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/anvaya/crm-backend/internal/core/domain"
	"github.com/anvaya/crm-backend/internal/core/ports"
)

type CommentService struct {
	comments ports.CommentRepository
	leads    ports.LeadRepository
	agents   ports.AgentRepository
	logger   zerolog.Logger
	now      func() time.Time
}

func NewCommentService(
	comments ports.CommentRepository,
	leads ports.LeadRepository,
	agents ports.AgentRepository,
	logger zerolog.Logger,
) *CommentService {
	return &CommentService{
		comments: comments,
		leads:    leads,
		agents:   agents,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// AddComment attaches a comment to a lead. The author is always the lead's
// currently assigned agent.
func (s *CommentService) AddComment(ctx context.Context, leadID, commentText string) (*ports.CommentView, error) {
	text := strings.TrimSpace(commentText)
	if text == "" {
		return nil, domain.RequiredField("commentText")
	}

	lead, err := s.leads.FindByID(ctx, leadID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, leadNotFound(leadID)
		}
		return nil, fmt.Errorf("add comment: find lead: %w", err)
	}

	comment := &domain.Comment{
		LeadID:      lead.ID,
		AuthorID:    lead.SalesAgentID,
		CommentText: text,
		CreatedAt:   s.now(),
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		s.logger.Error().Err(err).Str("lead_id", leadID).Msg("failed to create comment")
		return nil, fmt.Errorf("add comment: %w", err)
	}

	view := &ports.CommentView{
		ID:          comment.ID,
		CommentText: comment.CommentText,
		CreatedAt:   comment.CreatedAt,
	}
	author, err := s.agents.FindByID(ctx, comment.AuthorID)
	switch {
	case err == nil:
		view.Author = author.Name
	case !errors.Is(err, domain.ErrNotFound):
		return nil, fmt.Errorf("add comment: find author: %w", err)
	}

	s.logger.Info().Str("lead_id", leadID).Str("comment_id", comment.ID).Msg("comment added")
	return view, nil
}

// ListComments returns the lead's comments in the order they were written.
func (s *CommentService) ListComments(ctx context.Context, leadID string) ([]*ports.CommentView, error) {
	if _, err := s.leads.FindByID(ctx, leadID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, leadNotFound(leadID)
		}
		return nil, fmt.Errorf("list comments: find lead: %w", err)
	}

	comments, err := s.comments.FindByLead(ctx, leadID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	ids := make([]string, 0, len(comments))
	for _, c := range comments {
		ids = append(ids, c.AuthorID)
	}
	authors, err := s.agents.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("list comments: find authors: %w", err)
	}

	views := make([]*ports.CommentView, 0, len(comments))
	for _, c := range comments {
		v := &ports.CommentView{ID: c.ID, CommentText: c.CommentText, CreatedAt: c.CreatedAt}
		if a, ok := authors[c.AuthorID]; ok {
			v.Author = a.Name
		}
		views = append(views, v)
	}
	return views, nil
}
