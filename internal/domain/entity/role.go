// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleAdmin indicates a platform administrator.
	RoleAdmin Role = "ADMIN"
	// RoleShopOwner indicates a print-shop tenant operator.
	RoleShopOwner Role = "SHOP_OWNER"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleShopOwner:
		return true
	default:
		return false
	}
}
