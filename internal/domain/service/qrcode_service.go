package service

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateProfileQR generates a shareable QR code for a profile
	GenerateProfileQR(profileID int64) ([]byte, error)

	// ParseProfileQR parses QR code data and returns the profile ID
	ParseProfileQR(qrData string) (int64, error)
}
