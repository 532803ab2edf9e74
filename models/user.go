package models

// Role enum
type Role string

const (
	RoleCitizen Role = "citizen"
	RoleAdmin   Role = "admin"
)

// ParseRole validates a raw role string.
func ParseRole(raw string) (Role, bool) {
	switch Role(raw) {
	case RoleCitizen, RoleAdmin:
		return Role(raw), true
	}
	return "", false
}

// Reporter is the identity attached to a complaint or to the active
// session. Immutable value once attached.
type Reporter struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Built-in identities for role switching. Arbitrary reporters may still
// appear on seeded complaints.
var (
	CitizenReporter = Reporter{ID: "citizen-123", Name: "Jane Doe", Email: "jane.doe@example.com"}
	AdminReporter   = Reporter{ID: "admin-456", Name: "Admin User", Email: "admin@example.com"}
)

// ReporterForRole returns the built-in identity for a role.
func ReporterForRole(role Role) Reporter {
	if role == RoleAdmin {
		return AdminReporter
	}
	return CitizenReporter
}
