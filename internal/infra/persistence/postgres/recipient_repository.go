// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"rollcall/internal/domain/entity"
	domainerrors "rollcall/internal/domain/errors"
	"rollcall/internal/domain/repository"
	"rollcall/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// recipientRepository implements the repository.RecipientRepository interface.
type recipientRepository struct {
	db *gorm.DB
}

// NewRecipientRepository is the constructor for recipientRepository.
func NewRecipientRepository(db *gorm.DB) repository.RecipientRepository {
	return &recipientRepository{
		db: db,
	}
}

// FindRecipients lists students matching the filter, ordered by student code.
func (repo *recipientRepository) FindRecipients(ctx context.Context, filter entity.RecipientFilter) ([]*entity.Recipient, error) {
	var recipientModels []*model.RecipientModel

	query := repo.db.WithContext(ctx).Model(&model.RecipientModel{})
	if filter.Grade != "" {
		query = query.Where("grade = ?", filter.Grade)
	}
	if filter.ClassName != "" {
		query = query.Where("class_name = ?", filter.ClassName)
	}
	if filter.EligibleOnly {
		query = query.
			Where("status IN ?", []string{string(entity.AttendanceAbsent), string(entity.AttendanceLate)}).
			Where("notification_sent = ?", false)
	}

	if err := query.Order("student_code ASC").Find(&recipientModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find recipients")
	}

	return toRecipientDomains(recipientModels), nil
}

// FindRecipientsByIDs loads the given students; unknown codes are left out.
func (repo *recipientRepository) FindRecipientsByIDs(ctx context.Context, ids []string) ([]*entity.Recipient, error) {
	if len(ids) == 0 {
		return []*entity.Recipient{}, nil
	}

	var recipientModels []*model.RecipientModel
	if err := repo.db.WithContext(ctx).
		Where("student_code IN ?", ids).
		Order("student_code ASC").
		Find(&recipientModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find recipients by ids")
	}

	return toRecipientDomains(recipientModels), nil
}

// FindRecipientByID retrieves one student by code.
func (repo *recipientRepository) FindRecipientByID(ctx context.Context, id string) (*entity.Recipient, error) {
	return findRecipient(ctx, repo.db, id)
}

func findRecipient(ctx context.Context, db *gorm.DB, id string) (*entity.Recipient, error) {
	var recipientM model.RecipientModel

	if err := db.WithContext(ctx).
		Where("student_code = ?", id).
		First(&recipientM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRecipientNotFound
		}

		return nil, errors.Wrap(err, "failed to find recipient by id")
	}

	return toRecipientDomain(&recipientM), nil
}

// MarkNotified flags the student as alerted today.
func (repo *recipientRepository) MarkNotified(ctx context.Context, id string) error {
	return repo.updateColumns(ctx, repo.db, id, map[string]any{"notification_sent": true}, "failed to mark recipient notified")
}

// UpdateAttendance sets today's mark and returns the stored student.
func (repo *recipientRepository) UpdateAttendance(ctx context.Context, id string, state entity.AttendanceState) (*entity.Recipient, error) {
	columns := map[string]any{"status": string(state)}
	if state == entity.AttendancePresent {
		columns["notification_sent"] = false
	}

	var recipient *entity.Recipient
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := repo.updateColumns(ctx, tx, id, columns, "failed to update attendance"); err != nil {
			return err
		}

		var err error
		recipient, err = findRecipient(ctx, tx, id)

		return err
	})
	if err != nil {
		return nil, err
	}

	return recipient, nil
}

// UpdateDeviceAddress stores the parent's push token.
func (repo *recipientRepository) UpdateDeviceAddress(ctx context.Context, id, address string) error {
	return repo.updateColumns(ctx, repo.db, id, map[string]any{"fcm_token": address}, "failed to update device address")
}

func (repo *recipientRepository) updateColumns(ctx context.Context, db *gorm.DB, id string, columns map[string]any, msg string) error {
	result := db.WithContext(ctx).
		Model(&model.RecipientModel{}).
		Where("student_code = ?", id).
		Updates(columns)

	if result.Error != nil {
		if isNotNullConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage(msg)
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, msg)
	}

	if result.RowsAffected == 0 {
		return repository.ErrRecipientNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toRecipientDomain converts a GORM RecipientModel to a domain Recipient entity.
func toRecipientDomain(data *model.RecipientModel) *entity.Recipient {
	if data == nil {
		return nil
	}

	state, err := entity.ParseAttendanceState(data.Status)
	if err != nil {
		state = entity.AttendancePresent
	}

	return &entity.Recipient{
		ID:                   data.StudentCode,
		DisplayName:          data.StudentName,
		Grade:                data.Grade,
		ClassName:            data.ClassName,
		ParentName:           data.ParentName,
		ParentPhone:          data.ParentPhone,
		AttendanceState:      state,
		DeviceAddress:        data.FCMToken,
		AlreadyNotifiedToday: data.NotificationSent,
		UpdatedAt:            data.UpdatedAt,
	}
}

func toRecipientDomains(models []*model.RecipientModel) []*entity.Recipient {
	recipients := make([]*entity.Recipient, 0, len(models))
	for _, recipientM := range models {
		recipients = append(recipients, toRecipientDomain(recipientM))
	}

	return recipients
}
