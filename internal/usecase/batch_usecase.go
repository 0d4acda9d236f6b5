package usecase

import (
	"context"

	"rollcall/internal/domain/entity"
)

// BatchRequest selects recipients for one dispatch batch.
type BatchRequest struct {
	// BatchID is generated when empty.
	BatchID      string
	RecipientIDs []string
}

// BatchUsecase runs dispatch batches and exposes their reports.
type BatchUsecase interface {
	// RunBatch dispatches to every recipient and returns a report with one record each.
	RunBatch(ctx context.Context, batchID string, recipients []*entity.Recipient) *entity.BatchReport

	// DispatchRecipients loads the selected students from the roster and runs a batch.
	// Unknown or ineligible codes are listed in the report's Skipped field.
	DispatchRecipients(ctx context.Context, req *BatchRequest) (*entity.BatchReport, error)

	// GetReport returns a finished batch report.
	GetReport(ctx context.Context, batchID string) (*entity.BatchReport, error)

	// GetDeliveryHistory pages through the delivery log, newest first.
	GetDeliveryHistory(ctx context.Context, limit, offset int) ([]*entity.DeliveryRecord, error)

	// GetRecipientHistory returns the newest records for one student.
	GetRecipientHistory(ctx context.Context, recipientID string, limit int) ([]*entity.DeliveryRecord, error)
}
