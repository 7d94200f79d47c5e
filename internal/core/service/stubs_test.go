package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/anvaya/crm-backend/internal/core/domain"
	"github.com/anvaya/crm-backend/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories
// ---------------------------------------------------------------------------

var discardLogger = zerolog.Nop()

type idSeq struct{ n int }

func (s *idSeq) next(prefix string) string {
	s.n++
	return fmt.Sprintf("%s_%d", prefix, s.n)
}

type stubAgentRepo struct {
	ids       idSeq
	agents    []*domain.SalesAgent
	findErr   error // if set, every lookup returns this error
	createErr error
}

func (r *stubAgentRepo) seed(name, email string) *domain.SalesAgent {
	a := &domain.SalesAgent{ID: r.ids.next("agent"), Name: name, Email: email}
	r.agents = append(r.agents, a)
	return a
}

func (r *stubAgentRepo) Create(_ context.Context, a *domain.SalesAgent) error {
	if r.createErr != nil {
		return r.createErr
	}
	a.ID = r.ids.next("agent")
	clone := *a
	r.agents = append(r.agents, &clone)
	return nil
}

func (r *stubAgentRepo) FindAll(_ context.Context) ([]*domain.SalesAgent, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	out := make([]*domain.SalesAgent, 0, len(r.agents))
	for _, a := range r.agents {
		clone := *a
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubAgentRepo) find(match func(*domain.SalesAgent) bool) (*domain.SalesAgent, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, a := range r.agents {
		if match(a) {
			clone := *a
			return &clone, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *stubAgentRepo) FindByID(_ context.Context, id string) (*domain.SalesAgent, error) {
	return r.find(func(a *domain.SalesAgent) bool { return a.ID == id })
}

func (r *stubAgentRepo) FindByEmail(_ context.Context, email string) (*domain.SalesAgent, error) {
	return r.find(func(a *domain.SalesAgent) bool { return a.Email == email })
}

func (r *stubAgentRepo) FindByName(_ context.Context, name string) (*domain.SalesAgent, error) {
	return r.find(func(a *domain.SalesAgent) bool { return a.Name == name })
}

func (r *stubAgentRepo) FindByIDs(_ context.Context, ids []string) (map[string]*domain.SalesAgent, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	out := make(map[string]*domain.SalesAgent)
	for _, id := range ids {
		for _, a := range r.agents {
			if a.ID == id {
				clone := *a
				out[id] = &clone
			}
		}
	}
	return out, nil
}

// stubLeadRepo mirrors the Mongo repository's filter and closedAt semantics.
type stubLeadRepo struct {
	ids       idSeq
	leads     []*domain.Lead
	createErr error
	findErr   error
	now       time.Time
}

func newStubLeadRepo() *stubLeadRepo {
	return &stubLeadRepo{now: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
}

func (r *stubLeadRepo) seed(name, agentID string, status domain.LeadStatus, tags ...string) *domain.Lead {
	l := &domain.Lead{
		ID:           r.ids.next("lead"),
		Name:         name,
		Source:       domain.SourceWebsite,
		SalesAgentID: agentID,
		Status:       status,
		Tags:         tags,
		TimeToClose:  10,
		Priority:     "High",
	}
	if status == domain.StatusClosed {
		ts := r.now
		l.ClosedAt = &ts
	}
	r.leads = append(r.leads, l)
	return l
}

func (r *stubLeadRepo) Create(_ context.Context, l *domain.Lead) error {
	if r.createErr != nil {
		return r.createErr
	}
	l.ID = r.ids.next("lead")
	l.CreatedAt, l.UpdatedAt = r.now, r.now
	clone := *l
	if clone.IsClosed() {
		ts := r.now
		clone.ClosedAt = &ts
	}
	r.leads = append(r.leads, &clone)
	return nil
}

func (r *stubLeadRepo) FindByID(_ context.Context, id string) (*domain.Lead, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, l := range r.leads {
		if l.ID == id {
			clone := *l
			return &clone, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *stubLeadRepo) matches(l *domain.Lead, f ports.LeadFilter) bool {
	if f.SalesAgentID != "" && l.SalesAgentID != f.SalesAgentID {
		return false
	}
	if f.Status != "" && l.Status != f.Status {
		return false
	}
	if f.ExcludeStatus != "" && l.Status == f.ExcludeStatus {
		return false
	}
	if f.Source != "" && l.Source != f.Source {
		return false
	}
	for _, want := range f.Tags {
		found := false
		for _, t := range l.Tags {
			if t == want {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func (r *stubLeadRepo) Find(_ context.Context, f ports.LeadFilter) ([]*domain.Lead, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	var out []*domain.Lead
	for _, l := range r.leads {
		if r.matches(l, f) {
			clone := *l
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubLeadRepo) Count(ctx context.Context, f ports.LeadFilter) (int64, error) {
	leads, err := r.Find(ctx, f)
	return int64(len(leads)), err
}

// malformedAgentID is rejected by stubLeadRepo.Replace before the lead
// lookup, the same order the mongo adapter parses ids in.
const malformedAgentID = "not-an-object-id"

func (r *stubLeadRepo) Replace(_ context.Context, id string, u ports.LeadUpdate) (*domain.Lead, error) {
	if u.SalesAgentID == malformedAgentID {
		return nil, domain.ErrInvalidID
	}
	for _, l := range r.leads {
		if l.ID != id {
			continue
		}
		l.Name, l.Source, l.SalesAgentID = u.Name, u.Source, u.SalesAgentID
		l.TimeToClose, l.Priority = u.TimeToClose, u.Priority
		if u.Tags != nil {
			l.Tags = *u.Tags
		}
		switch {
		case u.Status == domain.StatusClosed && l.ClosedAt == nil:
			ts := r.now
			l.ClosedAt = &ts
		case u.Status != domain.StatusClosed:
			l.ClosedAt = nil
		}
		l.Status = u.Status
		clone := *l
		return &clone, nil
	}
	return nil, domain.ErrNotFound
}

func (r *stubLeadRepo) Delete(_ context.Context, id string) error {
	for i, l := range r.leads {
		if l.ID == id {
			r.leads = append(r.leads[:i], r.leads[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

type stubCommentRepo struct {
	ids       idSeq
	comments  []*domain.Comment
	createErr error
}

func (r *stubCommentRepo) Create(_ context.Context, c *domain.Comment) error {
	if r.createErr != nil {
		return r.createErr
	}
	c.ID = r.ids.next("comment")
	clone := *c
	r.comments = append(r.comments, &clone)
	return nil
}

func (r *stubCommentRepo) FindByLead(_ context.Context, leadID string) ([]*domain.Comment, error) {
	var out []*domain.Comment
	for _, c := range r.comments {
		if c.LeadID == leadID {
			clone := *c
			out = append(out, &clone)
		}
	}
	return out, nil
}

type stubTagRepo struct {
	ids       idSeq
	tags      []*domain.Tag
	createErr error
}

func (r *stubTagRepo) Create(_ context.Context, t *domain.Tag) error {
	if r.createErr != nil {
		return r.createErr
	}
	t.ID = r.ids.next("tag")
	clone := *t
	r.tags = append(r.tags, &clone)
	return nil
}

func (r *stubTagRepo) FindAll(_ context.Context) ([]*domain.Tag, error) {
	return append([]*domain.Tag(nil), r.tags...), nil
}

func (r *stubTagRepo) FindByName(_ context.Context, name string) (*domain.Tag, error) {
	for _, t := range r.tags {
		if t.Name == name {
			clone := *t
			return &clone, nil
		}
	}
	return nil, domain.ErrNotFound
}
