package model

import (
	"time"

	"github.com/google/uuid"
)

// PrintJobModel mirrors the 'print_jobs' table. Version is bumped on every
// status transition so receivers can discard stale updates.
type PrintJobModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ShopOwnerID   uuid.UUID `gorm:"type:uuid;not null;index"`
	TokenNumber   string    `gorm:"type:varchar(16);not null"`
	Status        string    `gorm:"type:varchar(32);not null;index"`
	CustomerName  string    `gorm:"type:varchar(100)"`
	CustomerEmail string    `gorm:"type:varchar(255)"`
	CustomerPhone string    `gorm:"type:varchar(32)"`
	NoofCopies    int       `gorm:"not null"`
	PrintType     string    `gorm:"type:varchar(32);not null"`
	PaperType     string    `gorm:"type:varchar(32);not null"`
	PrintSide     string    `gorm:"type:varchar(32);not null"`
	SpecificPages string    `gorm:"type:varchar(255)"`
	TotalPages    int       `gorm:"not null"`
	TotalCost     float64   `gorm:"not null"`
	Version       int64     `gorm:"not null;default:1"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Files []*PrintFileModel `gorm:"foreignKey:PrintJobID"`
}

// TableName explicitly sets the table name for GORM.
func (PrintJobModel) TableName() string {
	return "print_jobs"
}

// PrintFileModel mirrors the 'print_files' table.
type PrintFileModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	PrintJobID  uuid.UUID `gorm:"type:uuid;not null;index"`
	FileName    string    `gorm:"type:varchar(255);not null"`
	FileURL     string    `gorm:"type:text;not null"`
	ContentType string    `gorm:"type:varchar(128)"`
	Size        int64
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (PrintFileModel) TableName() string {
	return "print_files"
}
