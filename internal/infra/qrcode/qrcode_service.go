// Package qrcode renders gateway redirect URLs as PNG QR codes so buyers can
// continue the hosted payment flow on another device.
package qrcode

import (
	"fmt"

	"gemmarket/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
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

// GeneratePaymentQR encodes the hosted payment page URL as a PNG QR code.
func (s *qrcodeService) GeneratePaymentQR(redirectURL string) ([]byte, error) {
	if redirectURL == "" {
		return nil, fmt.Errorf("redirect URL is empty")
	}

	qrCode, err := qrcode.New(redirectURL, s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}
