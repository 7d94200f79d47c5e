package domain

import "time"

// Comment is a note left on a lead. AuthorID always mirrors the lead's
// assigned agent at the time the comment was written.
type Comment struct {
	ID          string
	LeadID      string
	AuthorID    string
	CommentText string
	CreatedAt   time.Time
}
