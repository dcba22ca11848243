// Package qrcode renders QR codes for invoices.
package qrcode

import (
	"encoding/base64"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

const defaultSize = 160

// New builds the service from the invoice settings.
func New(cfg *config.Config) service.QRCodeService {
	size := defaultSize
	if cfg.Invoice != nil && cfg.Invoice.QRSize > 0 {
		size = cfg.Invoice.QRSize
	}

	return NewQRCodeService(size, "M")
}

// NewQRCodeService creates a new QR code service instance. Level is one of
// L, M, Q or H; anything else means M.
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

func (s *qrcodeService) EncodePNG(content string) ([]byte, error) {
	if content == "" {
		return nil, errors.New("qr content is empty")
	}

	qrCode, err := qrcode.New(content, s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

func (s *qrcodeService) EncodeDataURI(content string) (string, error) {
	pngBytes, err := s.EncodePNG(content)
	if err != nil {
		return "", err
	}

	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(pngBytes), nil
}
