package qrcode

import (
	"bytes"
	"testing"

	"printdesk/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pngMagic is the fixed eight byte signature every PNG file starts with.
var pngMagic = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

func qrConfig() *config.Config {
	return &config.Config{
		QRCode: &config.QRCodeConfig{
			Size:                 256,
			ErrorCorrectionLevel: "M",
			UploadBaseURL:        "https://printdesk.example.com/upload/",
		},
	}
}

func TestQRCodeService_UploadURL(t *testing.T) {
	svc, err := NewQRCodeService(qrConfig())
	require.NoError(t, err)

	shopID := uuid.New()
	url := svc.UploadURL(shopID)
	assert.Equal(t, "https://printdesk.example.com/upload/"+shopID.String(), url)
}

func TestQRCodeService_GenerateUploadQR(t *testing.T) {
	svc, err := NewQRCodeService(qrConfig())
	require.NoError(t, err)

	png, err := svc.GenerateUploadQR(uuid.New())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, pngMagic), "generated image should be a PNG")
}

func TestQRCodeService_MissingBaseURL(t *testing.T) {
	cfg := &config.Config{QRCode: &config.QRCodeConfig{}}

	svc, err := NewQRCodeService(cfg)
	assert.Error(t, err)
	assert.Nil(t, svc)
}

func TestQRCodeService_UnknownRecoveryLevel(t *testing.T) {
	cfg := qrConfig()
	cfg.QRCode.ErrorCorrectionLevel = "ultra"

	svc, err := NewQRCodeService(cfg)
	assert.Error(t, err)
	assert.Nil(t, svc)
}
