package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation.
type QRCodeService interface {
	// GenerateUploadQR renders a PNG QR code pointing at the public upload
	// page for a shop. Customers scan it to submit print jobs.
	GenerateUploadQR(shopOwnerID uuid.UUID) ([]byte, error)

	// UploadURL returns the plain URL the QR code encodes.
	UploadURL(shopOwnerID uuid.UUID) string
}
