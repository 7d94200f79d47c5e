package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/anvaya/crm-backend/internal/core/domain"
	"github.com/anvaya/crm-backend/internal/core/ports"
)

func TestCommentHandler_Create_IgnoresAuthor(t *testing.T) {
	stub := &stubCommentService{
		addFn: func(ctx context.Context, leadID, text string) (*ports.CommentView, error) {
			if leadID != "l1" || text != "Called, no answer" {
				t.Fatalf("unexpected args: %s %q", leadID, text)
			}
			return &ports.CommentView{ID: "c1", CommentText: text, Author: "Asha", CreatedAt: time.Now()}, nil
		},
	}
	c, rec := newTestContext(http.MethodPost, "/leads/l1/comments", `{"commentText":"Called, no answer","author":"someone-else"}`)
	c.SetParamNames("id")
	c.SetParamValues("l1")

	if err := NewCommentHandler(stub).Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["author"] != "Asha" {
		t.Fatalf("expected derived author, got %v", resp["author"])
	}
}

func TestCommentHandler_Create_LeadNotFound(t *testing.T) {
	stub := &stubCommentService{
		addFn: func(ctx context.Context, leadID, text string) (*ports.CommentView, error) {
			return nil, domain.NotFound("Lead with ID l9 not found.")
		},
	}
	c, _ := newTestContext(http.MethodPost, "/leads/l9/comments", `{"commentText":"hi"}`)
	c.SetParamNames("id")
	c.SetParamValues("l9")

	err := NewCommentHandler(stub).Create(c)

	expectFailure(t, err, "Failed to create a comment.")
}

func TestCommentHandler_List_Empty(t *testing.T) {
	stub := &stubCommentService{
		listFn: func(ctx context.Context, leadID string) ([]*ports.CommentView, error) {
			return []*ports.CommentView{}, nil
		},
	}
	c, rec := newTestContext(http.MethodGet, "/leads/l1/comments", "")
	c.SetParamNames("id")
	c.SetParamValues("l1")

	if err := NewCommentHandler(stub).List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK || rec.Body.String() != "[]\n" {
		t.Fatalf("expected 200 [], got %d %s", rec.Code, rec.Body.String())
	}
}

func TestCommentHandler_List_OmitsUnresolvedAuthor(t *testing.T) {
	stub := &stubCommentService{
		listFn: func(ctx context.Context, leadID string) ([]*ports.CommentView, error) {
			return []*ports.CommentView{{ID: "c1", CommentText: "x", CreatedAt: time.Now()}}, nil
		},
	}
	c, rec := newTestContext(http.MethodGet, "/leads/l1/comments", "")

	if err := NewCommentHandler(stub).List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if _, present := resp[0]["author"]; present {
		t.Fatalf("author should be omitted, got %+v", resp[0])
	}
}
