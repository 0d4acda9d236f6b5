package usecase

import (
	"context"

	"rollcall/internal/domain/entity"
)

// RosterUsecase covers attendance marking and parent device registration.
type RosterUsecase interface {
	// ListRecipients lists students matching filter.
	ListRecipients(ctx context.Context, filter entity.RecipientFilter) ([]*entity.Recipient, error)

	// ListEligible lists students who are absent or late and not yet notified today.
	ListEligible(ctx context.Context, filter entity.RecipientFilter) ([]*entity.Recipient, error)

	// MarkAttendance records today's state for a student.
	MarkAttendance(ctx context.Context, recipientID string, state entity.AttendanceState) (*entity.Recipient, error)

	// RegisterDeviceAddress stores the push token a parent's device reported for a student.
	RegisterDeviceAddress(ctx context.Context, recipientID, address string) error

	// RegistrationQR renders the QR code a parent scans to register for a student.
	RegistrationQR(ctx context.Context, recipientID string) ([]byte, error)
}
