package model

import (
	"time"

	"github.com/google/uuid"
)

// DeliveryRecordModel is the GORM-specific struct for the 'delivery_records' table.
// Rows are only ever inserted.
type DeliveryRecordModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	BatchID     string    `gorm:"type:varchar(64);not null;index"`
	StudentCode string    `gorm:"type:varchar(64);not null;index:idx_delivery_records_student_sent_at"`
	StudentName string    `gorm:"type:text;not null"`
	Kind        string    `gorm:"type:varchar(16)"`
	Outcome     string    `gorm:"type:varchar(16);not null"`
	Reason      string    `gorm:"type:varchar(32);not null"`
	Detail      string    `gorm:"type:text"`
	Route       string    `gorm:"type:varchar(64)"`
	Attempts    int       `gorm:"not null;default:0"`
	Seq         int       `gorm:"not null;default:0"` // Position within the batch.
	SentAt      time.Time `gorm:"not null;index;index:idx_delivery_records_student_sent_at"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeliveryRecordModel) TableName() string {
	return "delivery_records"
}
