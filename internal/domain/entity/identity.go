// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// Identity is the core entity of the system, representing a unique account
// held by the external identity provider. The provider owns the credential;
// this service only ever sees the attributes below.
type Identity struct {
	ID       string `json:"id"`       // Opaque identifier assigned by the identity provider.
	Email    string `json:"email"`    // Primary contact email, unique at the provider.
	FullName string `json:"fullName"` // Display name chosen at signup.
	Role     Role   `json:"role"`     // One of the closed role set; stored at the provider.
}

// Profile holds the optional attributes collected at signup. They pass
// through to the provider's metadata unmodified.
type Profile struct {
	FullName    string
	Mobile      string
	Country     string
	DateOfBirth string
	Role        Role
}
