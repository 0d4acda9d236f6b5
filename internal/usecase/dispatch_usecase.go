package usecase

import (
	"context"

	"rollcall/internal/domain/entity"
)

// DispatchUsecase delivers one alert to one recipient.
type DispatchUsecase interface {
	// ResolveTransport picks the dialect and candidate routes once for a batch.
	ResolveTransport(ctx context.Context) (*entity.Transport, error)

	// Send dispatches to recipient and always returns a finished record; it never fails.
	Send(ctx context.Context, transport *entity.Transport, recipient *entity.Recipient) *entity.DeliveryRecord
}
