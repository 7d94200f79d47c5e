package handler

import (
	"github.com/anvaya/crm-backend/internal/core/ports"
)

// --- Request → Service input ---

func toSaveLeadInput(r leadRequest) ports.SaveLeadInput {
	return ports.SaveLeadInput{
		Name:         r.Name,
		Source:       r.Source,
		SalesAgentID: r.SalesAgent,
		Status:       r.Status,
		TimeToClose:  r.TimeToClose,
		Priority:     r.Priority,
		Tags:         r.Tags,
	}
}

// --- Service result → HTTP response ---

func toLeadResponse(v *ports.LeadView) leadResponse {
	resp := leadResponse{
		ID:          v.ID,
		Name:        v.Name,
		Source:      v.Source,
		Status:      v.Status,
		Tags:        v.Tags,
		TimeToClose: v.TimeToClose,
		Priority:    v.Priority,
		CreatedAt:   v.CreatedAt.UTC(),
		UpdatedAt:   v.UpdatedAt.UTC(),
	}
	if resp.Tags == nil {
		resp.Tags = []string{}
	}
	if v.SalesAgent != nil {
		resp.SalesAgent = &agentRefResponse{ID: v.SalesAgent.ID, Name: v.SalesAgent.Name}
	}
	if v.ClosedAt != nil {
		t := v.ClosedAt.UTC()
		resp.ClosedAt = &t
	}
	return resp
}

func toLeadResponses(views []*ports.LeadView) []leadResponse {
	out := make([]leadResponse, 0, len(views))
	for _, v := range views {
		out = append(out, toLeadResponse(v))
	}
	return out
}

func toCommentResponse(v *ports.CommentView) commentResponse {
	return commentResponse{
		ID:          v.ID,
		CommentText: v.CommentText,
		Author:      v.Author,
		CreatedAt:   v.CreatedAt.UTC(),
	}
}

func toClosedLeadResponse(item ports.ClosedLeadItem) closedLeadResponse {
	resp := closedLeadResponse{ID: item.ID, Name: item.Name, SalesAgent: item.SalesAgent}
	if item.ClosedAt != nil {
		t := item.ClosedAt.UTC()
		resp.ClosedAt = &t
	}
	return resp
}
