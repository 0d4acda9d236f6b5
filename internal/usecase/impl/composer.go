package impl

import (
	"fmt"
	"strings"

	"rollcall/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrNotAlertable is returned when composing for a student who is present.
var ErrNotAlertable = errors.New("attendance state does not warrant an alert")

// NotificationComposer turns a recipient into the outbound message.
type NotificationComposer struct {
	schoolName string
}

func NewNotificationComposer(schoolName string) *NotificationComposer {
	return &NotificationComposer{schoolName: strings.TrimSpace(schoolName)}
}

// Compose builds a fresh message for an absent or late recipient.
func (c *NotificationComposer) Compose(recipient *entity.Recipient) (*entity.OutboundMessage, error) {
	if recipient == nil {
		return nil, errors.New("recipient is required")
	}

	var body string
	switch recipient.AttendanceState {
	case entity.AttendanceAbsent:
		body = fmt.Sprintf("Notice: %s is absent today.", recipient.DisplayName)
	case entity.AttendanceLate:
		body = fmt.Sprintf("Notice: %s arrived late today.", recipient.DisplayName)
	default:
		return nil, errors.Wrapf(ErrNotAlertable, "recipient %s is %s", recipient.ID, recipient.AttendanceState)
	}

	title := "Attendance alert"
	if c.schoolName != "" {
		title += " - " + c.schoolName
	}

	return &entity.OutboundMessage{
		Title: title,
		Body:  body,
		Data: map[string]string{
			entity.DataKeyRecipientID: recipient.ID,
			entity.DataKeyState:       strings.ToLower(string(recipient.AttendanceState)),
			entity.DataKeyClickAction: entity.ClickActionOpenApp,
		},
	}, nil
}
