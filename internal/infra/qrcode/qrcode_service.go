// Package qrcode implements QR code generation for shop upload pages.
package qrcode

import (
	"strings"

	"printdesk/config"
	"printdesk/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	qrcodeLib "github.com/skip2/go-qrcode"
)

const defaultQRSize = 256

type qrcodeService struct {
	size          int
	level         qrcodeLib.RecoveryLevel
	uploadBaseURL string
}

// NewQRCodeService is the constructor for qrcodeService.
func NewQRCodeService(cfg *config.Config) (service.QRCodeService, error) {
	size := defaultQRSize
	level := qrcodeLib.Medium
	baseURL := ""

	if cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}

		var err error
		level, err = parseRecoveryLevel(cfg.QRCode.ErrorCorrectionLevel)
		if err != nil {
			return nil, err
		}

		baseURL = strings.TrimRight(cfg.QRCode.UploadBaseURL, "/")
	}

	if baseURL == "" {
		return nil, errors.New("qrcode upload base url must be provided")
	}

	return &qrcodeService{
		size:          size,
		level:         level,
		uploadBaseURL: baseURL,
	}, nil
}

// GenerateUploadQR renders a PNG QR code encoding the shop's public upload URL.
func (s *qrcodeService) GenerateUploadQR(shopOwnerID uuid.UUID) ([]byte, error) {
	png, err := qrcodeLib.Encode(s.UploadURL(shopOwnerID), s.level, s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode QR code")
	}

	return png, nil
}

// UploadURL returns the URL the QR code encodes.
func (s *qrcodeService) UploadURL(shopOwnerID uuid.UUID) string {
	return s.uploadBaseURL + "/" + shopOwnerID.String()
}

func parseRecoveryLevel(level string) (qrcodeLib.RecoveryLevel, error) {
	switch strings.ToUpper(level) {
	case "", "M", "MEDIUM":
		return qrcodeLib.Medium, nil
	case "L", "LOW":
		return qrcodeLib.Low, nil
	case "Q", "HIGH":
		return qrcodeLib.High, nil
	case "H", "HIGHEST":
		return qrcodeLib.Highest, nil
	default:
		return qrcodeLib.Medium, errors.Errorf("unknown QR error correction level: %s", level)
	}
}
