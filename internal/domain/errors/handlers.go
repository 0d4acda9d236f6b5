package errors

// ErrorInfo is the error half of the response envelope.
type ErrorInfo struct {
	Code    string `json:"code"`              // Business code, e.g. "ROSTER_UNAVAILABLE"
	Message string `json:"message"`           // Text shown to staff
	Details any    `json:"details,omitempty"` // Field errors or hints; dropped for 5xx, 401 and 403
}

// MetaInfo carries the request id so staff can quote it when a dispatch fails.
type MetaInfo struct {
	RequestID string `json:"request_id"`
}

// SuccessResponse wraps recipients, reports and delivery records.
type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

// ErrorResponse is written by the API error middleware.
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}
