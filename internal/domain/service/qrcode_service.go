package service

// QRCodeService defines the interface for QR code generation
type QRCodeService interface {
	// GenerateURLQR renders a PNG QR code that opens url when scanned
	GenerateURLQR(url string) ([]byte, error)
}
