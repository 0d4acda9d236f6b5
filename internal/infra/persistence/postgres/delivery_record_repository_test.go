package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"rollcall/internal/domain/entity"
	"rollcall/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var deliveryRecordColumns = []string{
	"id", "batch_id", "student_code", "student_name", "kind", "outcome",
	"reason", "detail", "route", "attempts", "seq", "sent_at", "created_at",
}

func newRecord(recipientID string, outcome entity.DeliveryOutcome) *entity.DeliveryRecord {
	return &entity.DeliveryRecord{
		ID:            uuid.New(),
		BatchID:       "batch-1",
		RecipientID:   recipientID,
		RecipientName: "Student " + recipientID,
		Kind:          entity.AlertAbsent,
		Timestamp:     time.Now(),
		Outcome:       outcome,
		Reason:        entity.ReasonDelivered,
		Detail:        "delivered",
		Route:         entity.RouteDirect,
		Attempts:      1,
	}
}

func TestDeliveryRecordRepository_AppendRecords(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDeliveryRecordRepository(db)

	first := newRecord("S1", entity.OutcomeSent)
	second := newRecord("S2", entity.OutcomeFailed)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "delivery_records"`)).
		WithArgs(
			first.ID, "batch-1", "S1", "Student S1", "absent", "sent", "delivered", "delivered", "direct", 1, 0, sqlmock.AnyArg(), sqlmock.AnyArg(),
			second.ID, "batch-1", "S2", "Student S2", "absent", "failed", "delivered", "delivered", "direct", 1, 2, sqlmock.AnyArg(), sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(0, 2))

	err := repo.AppendRecords(context.Background(), []*entity.DeliveryRecord{first, nil, second})
	assert.NoError(t, err)
}

func TestDeliveryRecordRepository_AppendRecords_Empty(t *testing.T) {
	db, _ := newMockDB(t)
	repo := NewDeliveryRecordRepository(db)

	assert.NoError(t, repo.AppendRecords(context.Background(), nil))
}

func TestDeliveryRecordRepository_AppendRecords_Duplicate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDeliveryRecordRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "delivery_records"`)).
		WillReturnError(errors.New(`ERROR: duplicate key value violates unique constraint "delivery_records_pkey" (SQLSTATE 23505)`))

	err := repo.AppendRecords(context.Background(), []*entity.DeliveryRecord{newRecord("S1", entity.OutcomeSent)})
	assert.ErrorIs(t, err, repository.ErrDuplicateRecord)
}

func TestDeliveryRecordRepository_FindRecentRecords(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDeliveryRecordRepository(db)
	id := uuid.New()
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "delivery_records" ORDER BY sent_at DESC,seq DESC LIMIT $1 OFFSET $2`)).
		WithArgs(50, 10).
		WillReturnRows(sqlmock.NewRows(deliveryRecordColumns).
			AddRow(id, "batch-1", "S1", "Ana", "late", "failed", "no_address", "no device address registered", "", 0, 0, now, now))

	records, err := repo.FindRecentRecords(context.Background(), 50, 10)
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, id, records[0].ID)
	assert.Equal(t, entity.AlertLate, records[0].Kind)
	assert.Equal(t, entity.OutcomeFailed, records[0].Outcome)
	assert.Equal(t, entity.ReasonNoAddress, records[0].Reason)
	assert.Equal(t, now, records[0].Timestamp)
}

func TestDeliveryRecordRepository_FindRecordsByRecipient(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDeliveryRecordRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "delivery_records" WHERE student_code = $1 ORDER BY sent_at DESC LIMIT $2`)).
		WithArgs("S1", 5).
		WillReturnRows(sqlmock.NewRows(deliveryRecordColumns))

	records, err := repo.FindRecordsByRecipient(context.Background(), "S1", 5)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestDeliveryRecordRepository_FindRecordsByBatch(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDeliveryRecordRepository(db)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "delivery_records" WHERE batch_id = $1 ORDER BY seq ASC`)).
		WithArgs("batch-1").
		WillReturnRows(sqlmock.NewRows(deliveryRecordColumns).
			AddRow(uuid.New(), "batch-1", "S1", "Ana", "absent", "sent", "delivered", "delivered", "direct", 1, 0, now, now).
			AddRow(uuid.New(), "batch-1", "S2", "Ben", "absent", "sent", "simulated", "simulated delivery", "", 0, 1, now, now))

	records, err := repo.FindRecordsByBatch(context.Background(), "batch-1")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "S1", records[0].RecipientID)
	assert.Equal(t, "S2", records[1].RecipientID)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "delivery_records" WHERE batch_id = $1`)).
		WillReturnError(errors.New("timeout"))

	_, err = repo.FindRecordsByBatch(context.Background(), "batch-2")
	assert.ErrorContains(t, err, "timeout")
}
