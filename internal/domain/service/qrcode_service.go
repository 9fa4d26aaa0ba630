package service

// QRCodeService defines the interface for QR code generation services
type QRCodeService interface {
	// GeneratePaymentQR encodes a gateway redirect URL as a PNG QR code so a
	// buyer can continue the hosted payment flow on another device.
	GeneratePaymentQR(redirectURL string) ([]byte, error)
}
