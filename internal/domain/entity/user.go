// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity in the system. A user with the SHOP_OWNER role
// carries a ShopProfile; an ADMIN does not.
type User struct {
	ID           uuid.UUID    `json:"id"`
	Name         string       `json:"name"`
	Email        string       `json:"email"`
	PhoneNumber  string       `json:"phoneNumber,omitempty"`
	Role         Role         `json:"role"`
	PasswordHash string       `json:"-"` // bcrypt hash, never serialized.
	ShopProfile  *ShopProfile `json:"shopProfile,omitempty"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

// ShopProfile holds data specific to the SHOP_OWNER role. The shop is
// identified by the owning user's ID everywhere in the system ("shopOwnerId"
// on the wire).
type ShopProfile struct {
	UserID    uuid.UUID `json:"shopOwnerId"`
	ShopName  string    `json:"shopName"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ShopOwnerID returns the shop identifier for a shop owner, or uuid.Nil for
// any other role.
func (u *User) ShopOwnerID() uuid.UUID {
	if u.ShopProfile == nil {
		return uuid.Nil
	}

	return u.ShopProfile.UserID
}
