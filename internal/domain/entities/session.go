package entities

// UserRole identifies the authenticated actor class.

type UserRole string

const (
	RoleSuperAdmin UserRole = "superadmin"
	RoleAdmin      UserRole = "admin"
	RoleClient     UserRole = "client"
)

// UserSession is the ephemeral in-memory descriptor of the authenticated
// actor. There is no token and no expiry: its lifetime is the lifetime of the
// consuming UI session.
type UserSession struct {
	Role   UserRole `json:"role"`
	UserID string   `json:"userId,omitempty"` // set for clients only
	Name   string   `json:"name"`
}
