package entity

// Data keys every outbound message carries.
const (
	DataKeyRecipientID = "recipientId"
	DataKeyState       = "state"
	DataKeyClickAction = "click_action"

	// ClickActionOpenApp opens the parent app when the notification is tapped.
	ClickActionOpenApp = "FLUTTER_NOTIFICATION_CLICK"
)

// AlertKind is the kind of alert sent to a parent.
type AlertKind string

const (
	AlertAbsent AlertKind = "absent"
	AlertLate   AlertKind = "late"
)

// AlertKindFor maps an alertable state to its alert kind; Present yields "".
func AlertKindFor(state AttendanceState) AlertKind {
	switch state {
	case AttendanceAbsent:
		return AlertAbsent
	case AttendanceLate:
		return AlertLate
	default:
		return ""
	}
}

// OutboundMessage is the provider-neutral push payload. It is never mutated after composition.
type OutboundMessage struct {
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data"`
}
