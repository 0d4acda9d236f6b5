package firestore

import (
	"testing"
	"time"

	"rollcall/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestToRecipientDomain(t *testing.T) {
	updatedAt := time.Date(2026, 3, 2, 8, 15, 0, 0, time.UTC)

	recipient := toRecipientDomain("S1001", &studentDocument{
		StudentCode:      "legacy-1001",
		StudentName:      "Ana",
		Grade:            "5",
		ClassName:        "A",
		ParentName:       "Maria",
		ParentPhone:      "555-0101",
		FCMToken:         "token-abcdefghij",
		Status:           "Absent",
		NotificationSent: true,
		UpdatedAt:        updatedAt,
	})

	assert.Equal(t, &entity.Recipient{
		ID:                   "S1001",
		DisplayName:          "Ana",
		Grade:                "5",
		ClassName:            "A",
		ParentName:           "Maria",
		ParentPhone:          "555-0101",
		AttendanceState:      entity.AttendanceAbsent,
		DeviceAddress:        "token-abcdefghij",
		AlreadyNotifiedToday: true,
		UpdatedAt:            updatedAt,
	}, recipient)
}

func TestToRecipientDomain_Fallbacks(t *testing.T) {
	recipient := toRecipientDomain("", &studentDocument{StudentCode: "S2002", StudentName: "Ben", Status: "on leave"})

	assert.Equal(t, "S2002", recipient.ID)
	assert.Equal(t, entity.AttendancePresent, recipient.AttendanceState)
	assert.False(t, recipient.IsEligible())
}

func TestSortByCode(t *testing.T) {
	recipients := []*entity.Recipient{{ID: "S3"}, {ID: "S1"}, {ID: "S2"}}

	sortByCode(recipients)

	assert.Equal(t, "S1", recipients[0].ID)
	assert.Equal(t, "S2", recipients[1].ID)
	assert.Equal(t, "S3", recipients[2].ID)
}
