package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// --- Agents ---

type createAgentRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// --- Leads ---

// leadRequest is shared by create and update; both require the same six fields.
type leadRequest struct {
	Name        string    `json:"name"        validate:"required"`
	Source      string    `json:"source"      validate:"required,leadsource"`
	SalesAgent  string    `json:"salesAgent"  validate:"required"`
	Status      string    `json:"status"      validate:"required,leadstatus"`
	TimeToClose int       `json:"timeToClose" validate:"required,min=1"`
	Priority    string    `json:"priority"    validate:"required"`
	Tags        *[]string `json:"tags"`
}

type agentRefResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type leadResponse struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Source      string            `json:"source"`
	SalesAgent  *agentRefResponse `json:"salesAgent"`
	Status      string            `json:"status"`
	Tags        []string          `json:"tags"`
	TimeToClose int               `json:"timeToClose"`
	Priority    string            `json:"priority"`
	ClosedAt    *time.Time        `json:"closedAt,omitempty"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

// --- Comments ---

// createCommentRequest deliberately has no author field; authorship is derived.
type createCommentRequest struct {
	CommentText string `json:"commentText"`
}

type commentResponse struct {
	ID          string    `json:"id"`
	CommentText string    `json:"commentText"`
	Author      string    `json:"author,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// --- Tags ---

type createTagRequest struct {
	Name string `json:"name" validate:"required"`
}

// --- Reports ---

type closedLeadResponse struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	SalesAgent string     `json:"salesAgent,omitempty"`
	ClosedAt   *time.Time `json:"closedAt,omitempty"`
}

type pipelineResponse struct {
	TotalLeadsInPipeline int64 `json:"totalLeadsInPipeline"`
}

type agentClosedCountResponse struct {
	AgentName string `json:"agentName"`
	Count     int    `json:"count"`
}
