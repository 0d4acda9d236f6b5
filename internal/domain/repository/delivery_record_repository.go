package repository

import (
	"context"
	"errors"

	"rollcall/internal/domain/entity"
)

// ErrReportNotFound is returned when neither the report store nor the delivery log knows a batch.
var ErrReportNotFound = errors.New("batch report not found")

// ErrDuplicateRecord is returned when a delivery record id is already in the log.
var ErrDuplicateRecord = errors.New("delivery record already exists")

// DeliveryRecordRepository is the append-only delivery log.
type DeliveryRecordRepository interface {
	// AppendRecords persists records in one round trip. Records are never updated afterwards.
	AppendRecords(ctx context.Context, records []*entity.DeliveryRecord) error

	// FindRecentRecords pages through the log, newest first.
	FindRecentRecords(ctx context.Context, limit, offset int) ([]*entity.DeliveryRecord, error)

	// FindRecordsByRecipient returns the newest records for one student.
	FindRecordsByRecipient(ctx context.Context, recipientID string, limit int) ([]*entity.DeliveryRecord, error)

	// FindRecordsByBatch returns a batch's records in dispatch order.
	FindRecordsByBatch(ctx context.Context, batchID string) ([]*entity.DeliveryRecord, error)
}

// BatchReportRepository keeps recent batch reports for quick lookup.
type BatchReportRepository interface {
	SaveReport(ctx context.Context, report *entity.BatchReport) error

	// FindReport returns ErrReportNotFound when the report is not held.
	FindReport(ctx context.Context, batchID string) (*entity.BatchReport, error)
}
