package entities

// AdminUser is a workshop operator login, independent from Client identities.
// Username uniqueness is only checked by the login-time linear scan, never
// enforced by a storage constraint.
type AdminUser struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Password string `json:"password"`
}
