package domain

import "time"

// Tag is a unique label that can be attached to leads by name.
type Tag struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}
