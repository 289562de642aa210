package service

// QRCodeService defines the interface for QR code generation.
type QRCodeService interface {
	// GeneratePNG renders the given content as a PNG QR code.
	GeneratePNG(content string) ([]byte, error)
}
