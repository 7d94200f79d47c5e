package service

import (
	"context"
	"errors"
	"testing"

	"github.com/anvaya/crm-backend/internal/core/domain"
	"github.com/anvaya/crm-backend/internal/core/ports"
)

// expectDomainError asserts err is a domain error of the given kind and message.
func expectDomainError(t *testing.T, err error, kind error, msg string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %v error, got nil", kind)
	}
	if !errors.Is(err, kind) {
		t.Fatalf("expected kind %v, got %v", kind, err)
	}
	if msg != "" && err.Error() != msg {
		t.Fatalf("expected message %q, got %q", msg, err.Error())
	}
}

func TestAgentService_Create_Success(t *testing.T) {
	repo := &stubAgentRepo{}
	svc := NewAgentService(repo, discardLogger)

	agent, err := svc.CreateAgent(context.Background(), ports.CreateAgentInput{Name: "Ravi", Email: "ravi@example.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if agent.ID == "" {
		t.Error("expected generated id")
	}
	if len(repo.agents) != 1 {
		t.Fatalf("expected 1 stored agent, got %d", len(repo.agents))
	}
}

func TestAgentService_Create_InvalidEmail(t *testing.T) {
	for _, email := range []string{"", "ravi", "ravi@example", "ravi.example.com"} {
		repo := &stubAgentRepo{}
		svc := NewAgentService(repo, discardLogger)

		_, err := svc.CreateAgent(context.Background(), ports.CreateAgentInput{Name: "Ravi", Email: email})
		expectDomainError(t, err, domain.ErrInvalidInput, "Please enter a valid email address")
		if len(repo.agents) != 0 {
			t.Errorf("email %q: agent must not be persisted", email)
		}
	}
}

func TestAgentService_Create_MissingName(t *testing.T) {
	svc := NewAgentService(&stubAgentRepo{}, discardLogger)

	_, err := svc.CreateAgent(context.Background(), ports.CreateAgentInput{Name: "  ", Email: "ravi@example.com"})
	expectDomainError(t, err, domain.ErrInvalidInput, "Invalid input: 'name' is required.")
}

func TestAgentService_Create_DuplicateEmail(t *testing.T) {
	repo := &stubAgentRepo{}
	first := repo.seed("Ravi", "ravi@example.com")
	svc := NewAgentService(repo, discardLogger)

	_, err := svc.CreateAgent(context.Background(), ports.CreateAgentInput{Name: "Other", Email: "ravi@example.com"})
	expectDomainError(t, err, domain.ErrConflict, "Sales agent with email ravi@example.com already exists.")

	if len(repo.agents) != 1 || repo.agents[0].Name != first.Name {
		t.Fatal("first agent must remain unchanged")
	}
}

func TestAgentService_Create_UniqueIndexViolation(t *testing.T) {
	repo := &stubAgentRepo{createErr: domain.ErrConflict}
	svc := NewAgentService(repo, discardLogger)

	_, err := svc.CreateAgent(context.Background(), ports.CreateAgentInput{Name: "Ravi", Email: "ravi@example.com"})
	expectDomainError(t, err, domain.ErrConflict, "Sales agent with email ravi@example.com already exists.")
}

func TestAgentService_Create_RepoError(t *testing.T) {
	dbErr := errors.New("connection reset")
	svc := NewAgentService(&stubAgentRepo{findErr: dbErr}, discardLogger)

	_, err := svc.CreateAgent(context.Background(), ports.CreateAgentInput{Name: "Ravi", Email: "ravi@example.com"})
	if !errors.Is(err, dbErr) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
	var de *domain.Error
	if errors.As(err, &de) {
		t.Fatal("persistence failures must not surface as domain errors")
	}
}

func TestAgentService_List_Empty(t *testing.T) {
	svc := NewAgentService(&stubAgentRepo{}, discardLogger)

	_, err := svc.ListAgents(context.Background())
	expectDomainError(t, err, domain.ErrNotFound, "No sales agents found.")
}

func TestAgentService_List(t *testing.T) {
	repo := &stubAgentRepo{}
	repo.seed("Ravi", "ravi@example.com")
	repo.seed("Meera", "meera@example.com")
	svc := NewAgentService(repo, discardLogger)

	agents, err := svc.ListAgents(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(agents) != 2 {
		t.Fatalf("expected 2 agents, got %d", len(agents))
	}
}
