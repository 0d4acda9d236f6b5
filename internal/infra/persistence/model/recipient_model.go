// Package model holds the GORM-specific structs for the roster tables.
package model

import "time"

// RecipientModel is the GORM-specific struct for the 'students' table.
// A row is one student together with today's attendance mark and the parent's push token.
type RecipientModel struct {
	StudentCode      string `gorm:"type:varchar(64);primary_key"`
	StudentName      string `gorm:"type:text;not null"`
	Grade            string `gorm:"type:varchar(32);not null;index:idx_students_grade_class"`
	ClassName        string `gorm:"type:varchar(32);not null;index:idx_students_grade_class"`
	ParentName       string `gorm:"type:text"`
	ParentPhone      string `gorm:"type:varchar(32)"`
	Status           string `gorm:"type:varchar(16);not null;default:'present'"`
	FCMToken         string `gorm:"type:text"`
	NotificationSent bool   `gorm:"not null;default:false"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (RecipientModel) TableName() string {
	return "students"
}
