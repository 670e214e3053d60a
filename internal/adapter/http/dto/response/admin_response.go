package response

import "funilaria_autocolor/internal/domain/entities"

// AdminResponse omits the stored password.
type AdminResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
}

func FromAdmin(a entities.AdminUser) AdminResponse {
	return AdminResponse{ID: a.ID, Name: a.Name, Username: a.Username}
}

func FromAdmins(admins []entities.AdminUser) []AdminResponse {
	out := make([]AdminResponse, 0, len(admins))
	for _, a := range admins {
		out = append(out, FromAdmin(a))
	}
	return out
}
