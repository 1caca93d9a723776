package entity

// Role represents the type of role an identity can have in the system.
type Role string

const (
	// RoleStudent indicates a learner who browses the catalog and enrolls.
	RoleStudent Role = "Student"
	// RoleAuthor indicates a course author.
	RoleAuthor Role = "Author"
	// RoleAdmin indicates a platform administrator.
	RoleAdmin Role = "Admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleStudent, RoleAuthor, RoleAdmin:
		return true
	default:
		return false
	}
}

// RoleFromString converts a string to a Role, reporting whether it is a
// member of the closed role set.
func RoleFromString(s string) (Role, bool) {
	role := Role(s)

	return role, role.IsValid()
}
