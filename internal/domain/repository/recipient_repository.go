// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"rollcall/internal/domain/entity"
)

// ErrRecipientNotFound is returned when no student matches the given code.
var ErrRecipientNotFound = errors.New("recipient not found")

// RecipientRepository is the roster store. Adapters decide their own storage schema.
type RecipientRepository interface {
	// FindRecipients lists students matching filter, ordered by student code.
	FindRecipients(ctx context.Context, filter entity.RecipientFilter) ([]*entity.Recipient, error)

	// FindRecipientsByIDs loads the given students. Unknown codes are omitted from the result.
	FindRecipientsByIDs(ctx context.Context, ids []string) ([]*entity.Recipient, error)

	// FindRecipientByID returns ErrRecipientNotFound when the code is unknown.
	FindRecipientByID(ctx context.Context, id string) (*entity.Recipient, error)

	// MarkNotified sets AlreadyNotifiedToday for the student.
	MarkNotified(ctx context.Context, id string) error

	// UpdateAttendance sets today's mark. Returning to present clears AlreadyNotifiedToday.
	UpdateAttendance(ctx context.Context, id string, state entity.AttendanceState) (*entity.Recipient, error)

	// UpdateDeviceAddress stores the parent's push token for the student.
	UpdateDeviceAddress(ctx context.Context, id, address string) error
}
