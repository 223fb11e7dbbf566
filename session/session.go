// Package session supplies the acting user's identity to the rest of the
// system. It holds no credentials and performs no authentication; a real
// auth integration replaces the Source.
package session

// Role categorizes a user's standing within the team.
type Role string

const (
	// RoleAdmin can manage everything.
	RoleAdmin Role = "admin"

	// RoleManager can manage projects and tasks.
	RoleManager Role = "manager"

	// RoleMember works on assigned tasks.
	RoleMember Role = "member"
)

// ValidRoles returns all valid role values.
func ValidRoles() []Role {
	return []Role{RoleAdmin, RoleManager, RoleMember}
}

// IsValid returns true if the role is a known valid value.
func (r Role) IsValid() bool {
	for _, valid := range ValidRoles() {
		if r == valid {
			return true
		}
	}
	return false
}

// User identifies a team member.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
	Role  Role   `json:"role,omitempty"`
}

// Source supplies the acting user id.
type Source interface {
	CurrentUserID() string
}

// Static is a Source backed by a fixed user, typically loaded from
// configuration.
type Static struct {
	User User
}

// CurrentUserID implements Source.
func (s Static) CurrentUserID() string {
	return s.User.ID
}
