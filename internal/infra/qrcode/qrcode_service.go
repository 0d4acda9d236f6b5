package qrcode

import (
	"net/url"
	"strings"

	"rollcall/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const (
	defaultBaseURL = "rollcall://register"
	studentParam   = "student"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a QR code service that encodes parent registration links under baseURL
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
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

	if size <= 0 {
		size = 256
	}
	if strings.TrimSpace(baseURL) == "" {
		baseURL = defaultBaseURL
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              baseURL,
	}
}

// RegistrationLink builds the link a parent opens to register their device for a student.
func RegistrationLink(baseURL, recipientID string) (string, error) {
	link, err := url.Parse(baseURL)
	if err != nil {
		return "", errors.Wrap(err, "parse registration base url")
	}

	query := link.Query()
	query.Set(studentParam, recipientID)
	link.RawQuery = query.Encode()

	return link.String(), nil
}

// GenerateRegistrationQR renders the registration link for recipientID as a PNG
func (s *qrcodeService) GenerateRegistrationQR(recipientID string) ([]byte, error) {
	if strings.TrimSpace(recipientID) == "" {
		return nil, errors.New("recipient id is required")
	}

	link, err := RegistrationLink(s.baseURL, recipientID)
	if err != nil {
		return nil, err
	}

	qrCode, err := qrcode.New(link, s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseRegistrationQR returns the student code from a scanned registration link
func (s *qrcodeService) ParseRegistrationQR(qrData string) (string, error) {
	link, err := url.Parse(strings.TrimSpace(qrData))
	if err != nil {
		return "", errors.Wrap(err, "failed to parse QR code data")
	}

	expected, err := url.Parse(s.baseURL)
	if err != nil {
		return "", errors.Wrap(err, "parse registration base url")
	}
	if link.Scheme != expected.Scheme || link.Host != expected.Host || link.Path != expected.Path {
		return "", errors.Errorf("invalid registration QR code: %s", qrData)
	}

	recipientID := link.Query().Get(studentParam)
	if recipientID == "" {
		return "", errors.New("registration QR code has no student code")
	}

	return recipientID, nil
}
