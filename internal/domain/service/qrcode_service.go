package service

// QRCodeService generates the code a parent scans to link their device to a student.
type QRCodeService interface {
	// GenerateRegistrationQR renders a PNG QR code for the student's registration link
	GenerateRegistrationQR(recipientID string) ([]byte, error)

	// ParseRegistrationQR extracts the student code from scanned QR data
	ParseRegistrationQR(qrData string) (string, error)
}
