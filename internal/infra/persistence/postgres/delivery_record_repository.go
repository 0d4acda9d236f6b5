package postgres

import (
	"context"
	"time"

	"rollcall/internal/domain/entity"
	domainerrors "rollcall/internal/domain/errors"
	"rollcall/internal/domain/repository"
	"rollcall/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const appendBatchSize = 200

// deliveryRecordRepository implements the repository.DeliveryRecordRepository interface.
type deliveryRecordRepository struct {
	db *gorm.DB
}

// NewDeliveryRecordRepository is the constructor for deliveryRecordRepository.
func NewDeliveryRecordRepository(db *gorm.DB) repository.DeliveryRecordRepository {
	return &deliveryRecordRepository{
		db: db,
	}
}

// AppendRecords inserts the records of one batch, keeping their order in Seq.
func (repo *deliveryRecordRepository) AppendRecords(ctx context.Context, records []*entity.DeliveryRecord) error {
	recordModels := make([]*model.DeliveryRecordModel, 0, len(records))
	for i, record := range records {
		if record == nil {
			continue
		}
		recordModels = append(recordModels, fromDeliveryRecordDomain(record, i))
	}
	if len(recordModels) == 0 {
		return nil
	}

	if err := repo.db.WithContext(ctx).CreateInBatches(recordModels, appendBatchSize).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateRecord
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to append delivery records")
	}

	return nil
}

// FindRecentRecords pages through the log, newest first.
func (repo *deliveryRecordRepository) FindRecentRecords(ctx context.Context, limit, offset int) ([]*entity.DeliveryRecord, error) {
	var recordModels []*model.DeliveryRecordModel

	if err := repo.db.WithContext(ctx).
		Order("sent_at DESC").
		Order("seq DESC").
		Limit(limit).
		Offset(offset).
		Find(&recordModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find recent delivery records")
	}

	return toDeliveryRecordDomains(recordModels), nil
}

// FindRecordsByRecipient returns the newest records for one student.
func (repo *deliveryRecordRepository) FindRecordsByRecipient(ctx context.Context, recipientID string, limit int) ([]*entity.DeliveryRecord, error) {
	var recordModels []*model.DeliveryRecordModel

	if err := repo.db.WithContext(ctx).
		Where("student_code = ?", recipientID).
		Order("sent_at DESC").
		Limit(limit).
		Find(&recordModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find delivery records by recipient")
	}

	return toDeliveryRecordDomains(recordModels), nil
}

// FindRecordsByBatch returns a batch's records in dispatch order.
func (repo *deliveryRecordRepository) FindRecordsByBatch(ctx context.Context, batchID string) ([]*entity.DeliveryRecord, error) {
	var recordModels []*model.DeliveryRecordModel

	if err := repo.db.WithContext(ctx).
		Where("batch_id = ?", batchID).
		Order("seq ASC").
		Find(&recordModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find delivery records by batch")
	}

	return toDeliveryRecordDomains(recordModels), nil
}

// --- Mapper Functions ---

// toDeliveryRecordDomain converts a GORM DeliveryRecordModel to a domain DeliveryRecord entity.
func toDeliveryRecordDomain(data *model.DeliveryRecordModel) *entity.DeliveryRecord {
	if data == nil {
		return nil
	}

	return &entity.DeliveryRecord{
		ID:            data.ID,
		BatchID:       data.BatchID,
		RecipientID:   data.StudentCode,
		RecipientName: data.StudentName,
		Kind:          entity.AlertKind(data.Kind),
		Timestamp:     data.SentAt,
		Outcome:       entity.DeliveryOutcome(data.Outcome),
		Reason:        entity.DeliveryReason(data.Reason),
		Detail:        data.Detail,
		Route:         data.Route,
		Attempts:      data.Attempts,
	}
}

func toDeliveryRecordDomains(models []*model.DeliveryRecordModel) []*entity.DeliveryRecord {
	records := make([]*entity.DeliveryRecord, 0, len(models))
	for _, recordM := range models {
		records = append(records, toDeliveryRecordDomain(recordM))
	}

	return records
}

// fromDeliveryRecordDomain converts a domain DeliveryRecord entity to a GORM DeliveryRecordModel.
func fromDeliveryRecordDomain(data *entity.DeliveryRecord, seq int) *model.DeliveryRecordModel {
	sentAt := data.Timestamp
	if sentAt.IsZero() {
		sentAt = time.Now()
	}

	return &model.DeliveryRecordModel{
		ID:          data.ID,
		BatchID:     data.BatchID,
		StudentCode: data.RecipientID,
		StudentName: data.RecipientName,
		Kind:        string(data.Kind),
		Outcome:     string(data.Outcome),
		Reason:      string(data.Reason),
		Detail:      data.Detail,
		Route:       data.Route,
		Attempts:    data.Attempts,
		Seq:         seq,
		SentAt:      sentAt,
	}
}
