package entity

// Role enumerates the account roles known to the storefront.
type Role string

const (
	// RoleCustomer is the default role assigned at registration.
	RoleCustomer Role = "customer"
	// RoleSeller marks accounts that list and sell medicines.
	RoleSeller Role = "seller"
	// RoleAdmin marks accounts with administrative privileges.
	RoleAdmin Role = "admin"
)

// Valid reports whether the role belongs to the known set.
func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleSeller, RoleAdmin:
		return true
	default:
		return false
	}
}
