package domain

import (
	"strings"
	"time"
)

// SalesAgent is the person leads are assigned to. Agents are immutable once created.
type SalesAgent struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// IsValidEmail applies the loose address check used for agents: the value must
// contain both an "@" and a ".".
func IsValidEmail(email string) bool {
	return email != "" && strings.Contains(email, "@") && strings.Contains(email, ".")
}
