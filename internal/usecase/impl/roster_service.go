package impl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	deliverycontext "rollcall/internal/delivery/context"
	"rollcall/internal/domain/entity"
	domainerrors "rollcall/internal/domain/errors"
	"rollcall/internal/domain/repository"
	"rollcall/internal/domain/service"
	"rollcall/internal/usecase"

	"go.uber.org/fx"
)

type rosterService struct {
	recipientRepo repository.RecipientRepository
	qrcodeService service.QRCodeService
	logger        *slog.Logger
}

// RosterServiceParams holds dependencies for the roster service, injected by Fx.
type RosterServiceParams struct {
	fx.In

	RecipientRepo repository.RecipientRepository
	QRCodeService service.QRCodeService
	Logger        *slog.Logger
}

// NewRosterService creates a new roster service instance
func NewRosterService(params RosterServiceParams) usecase.RosterUsecase {
	return &rosterService{
		recipientRepo: params.RecipientRepo,
		qrcodeService: params.QRCodeService,
		logger:        params.Logger,
	}
}

// ListRecipients lists students matching the filter
func (s *rosterService) ListRecipients(ctx context.Context, filter entity.RecipientFilter) ([]*entity.Recipient, error) {
	recipients, err := s.recipientRepo.FindRecipients(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to find recipients: %w", errors.Join(domainerrors.ErrRosterUnavailable, err))
	}

	return recipients, nil
}

// ListEligible lists students who still need an alert today
func (s *rosterService) ListEligible(ctx context.Context, filter entity.RecipientFilter) ([]*entity.Recipient, error) {
	filter.EligibleOnly = true

	return s.ListRecipients(ctx, filter)
}

// MarkAttendance records today's attendance state
func (s *rosterService) MarkAttendance(ctx context.Context, recipientID string, state entity.AttendanceState) (*entity.Recipient, error) {
	if strings.TrimSpace(recipientID) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("recipient id is required")
	}
	if _, err := entity.ParseAttendanceState(string(state)); err != nil {
		return nil, domainerrors.ErrInvalidAttendanceState.WithDetails(err.Error())
	}

	recipient, err := s.recipientRepo.UpdateAttendance(ctx, recipientID, state)
	if err != nil {
		if errors.Is(err, repository.ErrRecipientNotFound) {
			return nil, domainerrors.ErrRecipientNotFound.WithDetails(recipientID)
		}

		return nil, fmt.Errorf("failed to update attendance: %w", err)
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Attendance marked",
		slog.String("recipient_id", recipientID),
		slog.String("state", string(state)),
	)

	return recipient, nil
}

// RegisterDeviceAddress stores the parent's push token for a student
func (s *rosterService) RegisterDeviceAddress(ctx context.Context, recipientID, address string) error {
	address = strings.TrimSpace(address)
	if strings.TrimSpace(recipientID) == "" || address == "" {
		return domainerrors.ErrValidationFailed.WithDetails("recipient id and device address are required")
	}

	if err := s.recipientRepo.UpdateDeviceAddress(ctx, recipientID, address); err != nil {
		if errors.Is(err, repository.ErrRecipientNotFound) {
			return domainerrors.ErrRecipientNotFound.WithDetails(recipientID)
		}

		return fmt.Errorf("failed to update device address: %w", err)
	}

	return nil
}

// RegistrationQR renders the registration code for an existing student
func (s *rosterService) RegistrationQR(ctx context.Context, recipientID string) ([]byte, error) {
	if _, err := s.recipientRepo.FindRecipientByID(ctx, recipientID); err != nil {
		if errors.Is(err, repository.ErrRecipientNotFound) {
			return nil, domainerrors.ErrRecipientNotFound.WithDetails(recipientID)
		}

		return nil, fmt.Errorf("failed to find recipient: %w", err)
	}

	png, err := s.qrcodeService.GenerateRegistrationQR(recipientID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate registration QR: %w", err)
	}

	return png, nil
}
