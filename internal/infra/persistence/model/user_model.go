// Package model holds the GORM persistence models mirroring the database schema.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	Name         string    `gorm:"type:varchar(100)"`
	PhoneNumber  string    `gorm:"type:varchar(32)"`
	Role         string    `gorm:"type:varchar(32);not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time `gorm:"index"`

	ShopProfile *ShopProfileModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// ShopProfileModel mirrors the 'shop_profiles' table. UserID references users.id (UUID)
// and doubles as the shop identifier on the wire.
type ShopProfileModel struct {
	UserID    uuid.UUID `gorm:"primaryKey"`
	ShopName  string    `gorm:"type:varchar(100);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ShopProfileModel) TableName() string {
	return "shop_profiles"
}
