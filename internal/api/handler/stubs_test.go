package handler

import (
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/anvaya/crm-backend/internal/core/domain"
	"github.com/anvaya/crm-backend/internal/core/ports"
)

type stubAgentService struct {
	createFn func(ctx context.Context, input ports.CreateAgentInput) (*domain.SalesAgent, error)
	listFn   func(ctx context.Context) ([]*domain.SalesAgent, error)
}

func (s *stubAgentService) CreateAgent(ctx context.Context, input ports.CreateAgentInput) (*domain.SalesAgent, error) {
	return s.createFn(ctx, input)
}

func (s *stubAgentService) ListAgents(ctx context.Context) ([]*domain.SalesAgent, error) {
	return s.listFn(ctx)
}

type stubLeadService struct {
	createFn func(ctx context.Context, input ports.SaveLeadInput) (*ports.LeadView, error)
	listFn   func(ctx context.Context, input ports.ListLeadsInput) ([]*ports.LeadView, error)
	getFn    func(ctx context.Context, id string) (*ports.LeadView, error)
	updateFn func(ctx context.Context, id string, input ports.SaveLeadInput) (*ports.LeadView, error)
	deleteFn func(ctx context.Context, id string) error
}

func (s *stubLeadService) CreateLead(ctx context.Context, input ports.SaveLeadInput) (*ports.LeadView, error) {
	return s.createFn(ctx, input)
}

func (s *stubLeadService) ListLeads(ctx context.Context, input ports.ListLeadsInput) ([]*ports.LeadView, error) {
	return s.listFn(ctx, input)
}

func (s *stubLeadService) GetLead(ctx context.Context, id string) (*ports.LeadView, error) {
	return s.getFn(ctx, id)
}

func (s *stubLeadService) UpdateLead(ctx context.Context, id string, input ports.SaveLeadInput) (*ports.LeadView, error) {
	return s.updateFn(ctx, id, input)
}

func (s *stubLeadService) DeleteLead(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

type stubCommentService struct {
	addFn  func(ctx context.Context, leadID, text string) (*ports.CommentView, error)
	listFn func(ctx context.Context, leadID string) ([]*ports.CommentView, error)
}

func (s *stubCommentService) AddComment(ctx context.Context, leadID, text string) (*ports.CommentView, error) {
	return s.addFn(ctx, leadID, text)
}

func (s *stubCommentService) ListComments(ctx context.Context, leadID string) ([]*ports.CommentView, error) {
	return s.listFn(ctx, leadID)
}

type stubTagService struct {
	createFn func(ctx context.Context, name string) (*domain.Tag, error)
	listFn   func(ctx context.Context) ([]*domain.Tag, error)
}

func (s *stubTagService) CreateTag(ctx context.Context, name string) (*domain.Tag, error) {
	return s.createFn(ctx, name)
}

func (s *stubTagService) ListTags(ctx context.Context) ([]*domain.Tag, error) {
	return s.listFn(ctx)
}

type stubReportService struct {
	closedFn   func(ctx context.Context) ([]ports.ClosedLeadItem, error)
	pipelineFn func(ctx context.Context) (int64, error)
	byAgentFn  func(ctx context.Context) ([]ports.AgentClosedCount, error)
}

func (s *stubReportService) ClosedLeads(ctx context.Context) ([]ports.ClosedLeadItem, error) {
	return s.closedFn(ctx)
}

func (s *stubReportService) PipelineCount(ctx context.Context) (int64, error) {
	return s.pipelineFn(ctx)
}

func (s *stubReportService) ClosedByAgent(ctx context.Context) ([]ports.AgentClosedCount, error) {
	return s.byAgentFn(ctx)
}

// newTestContext builds an echo context with the package validator installed.
func newTestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// expectInvalidInput asserts err is an InvalidInput domain error with msg.
func expectInvalidInput(t *testing.T, err error, msg string) {
	t.Helper()
	var de *domain.Error
	if !errors.As(err, &de) || !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected invalid input error, got %v", err)
	}
	if de.Msg != msg {
		t.Fatalf("expected message %q, got %q", msg, de.Msg)
	}
}

// expectFailure asserts err carries the route failure message.
func expectFailure(t *testing.T, err error, msg string) {
	t.Helper()
	var fe *FailureError
	if !errors.As(err, &fe) {
		t.Fatalf("expected FailureError, got %v", err)
	}
	if fe.Message != msg {
		t.Fatalf("expected failure message %q, got %q", msg, fe.Message)
	}
}
