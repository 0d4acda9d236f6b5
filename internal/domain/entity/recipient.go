// Package entity contains the core business objects of the project.
package entity

import (
	"strings"
	"time"

	"github.com/pkg/errors"
)

// AttendanceState is the attendance mark a staff member set for today.
type AttendanceState string

const (
	AttendancePresent AttendanceState = "present"
	AttendanceAbsent  AttendanceState = "absent"
	AttendanceLate    AttendanceState = "late"
)

// ErrUnknownAttendanceState is returned when a state string cannot be parsed.
var ErrUnknownAttendanceState = errors.New("unknown attendance state")

// ParseAttendanceState accepts any casing of present, absent or late.
func ParseAttendanceState(s string) (AttendanceState, error) {
	switch AttendanceState(strings.ToLower(strings.TrimSpace(s))) {
	case AttendancePresent:
		return AttendancePresent, nil
	case AttendanceAbsent:
		return AttendanceAbsent, nil
	case AttendanceLate:
		return AttendanceLate, nil
	default:
		return "", errors.Wrapf(ErrUnknownAttendanceState, "%q", s)
	}
}

// Alertable reports whether the state warrants a notification to the parent.
func (s AttendanceState) Alertable() bool {
	return s == AttendanceAbsent || s == AttendanceLate
}

// Recipient is a student on the roster together with the parent's device address.
type Recipient struct {
	ID                   string          `json:"id"`                     // Student code, immutable.
	DisplayName          string          `json:"display_name"`           // Student name used in message bodies.
	Grade                string          `json:"grade"`                  // Grade label, e.g. "5".
	ClassName            string          `json:"class_name"`             // Class label within the grade.
	ParentName           string          `json:"parent_name"`            // Guardian to notify.
	ParentPhone          string          `json:"parent_phone"`           // Guardian phone, informational only.
	AttendanceState      AttendanceState `json:"attendance_state"`       // Today's mark.
	DeviceAddress        string          `json:"-"`                      // Push token of the parent's device; may be empty.
	AlreadyNotifiedToday bool            `json:"already_notified_today"` // Set after a successful dispatch.
	UpdatedAt            time.Time       `json:"updated_at"`
}

// IsEligible reports whether the recipient should be included in a dispatch batch.
func (r *Recipient) IsEligible() bool {
	return r != nil && r.AttendanceState.Alertable() && !r.AlreadyNotifiedToday
}

// HasDeviceAddress is true when any address is registered, deliverable or not.
func (r *Recipient) HasDeviceAddress() bool {
	return r != nil && strings.TrimSpace(r.DeviceAddress) != ""
}

// RecipientFilter narrows roster queries. Empty fields match everything.
type RecipientFilter struct {
	Grade     string
	ClassName string
	// EligibleOnly keeps recipients that are absent or late and not yet notified.
	EligibleOnly bool
}

// Matches applies the filter to an in-memory recipient.
func (f RecipientFilter) Matches(r *Recipient) bool {
	if r == nil {
		return false
	}
	if f.Grade != "" && f.Grade != r.Grade {
		return false
	}
	if f.ClassName != "" && f.ClassName != r.ClassName {
		return false
	}
	if f.EligibleOnly && !r.IsEligible() {
		return false
	}

	return true
}
