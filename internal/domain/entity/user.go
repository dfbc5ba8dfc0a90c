// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is an account in the storefront. The email address is the immutable
// identity key; the role is the only attribute expected to change after
// creation.
type User struct {
	ID        string    `json:"_id,omitempty"` // Store-assigned identifier (ObjectID hex).
	Email     string    `json:"email"`         // Unique login/contact email, the identity key.
	Name      string    `json:"name"`          // Display name.
	Role      Role      `json:"role"`          // Account role, defaults to RoleCustomer at creation.
	CreatedAt time.Time `json:"createdAt"`     // Timestamp of account creation.
}
