package request

import (
	"strings"

	"funilaria_autocolor/internal/domain/entities"
)

// LoginRequest is the single login payload for every role. Identifier means
// username for admins and e-mail for clients; the superadmin constants match
// regardless of the role hint.
type LoginRequest struct {
	Role       string `json:"role" binding:"required"`
	Identifier string `json:"identifier" binding:"required"`
	Secret     string `json:"secret" binding:"required"`
}

func (r LoginRequest) ResolveRole() entities.UserRole {
	return entities.UserRole(strings.ToLower(strings.TrimSpace(r.Role)))
}
