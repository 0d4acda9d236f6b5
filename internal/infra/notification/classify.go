package notification

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"rollcall/internal/domain/entity"
)

// Legacy result error codes.
var (
	legacyRecipientErrors = map[string]struct{}{
		"NotRegistered":       {},
		"InvalidRegistration": {},
		"MissingRegistration": {},
		"MismatchSenderId":    {},
		"InvalidPackageName":  {},
	}
	legacyTransientErrors = map[string]struct{}{
		"Unavailable":               {},
		"InternalServerError":       {},
		"DeviceMessageRateExceeded": {},
	}
)

// v1 error codes, matched against details[].errorCode and then error.status.
var (
	v1RecipientErrors = map[string]struct{}{
		"UNREGISTERED":       {},
		"INVALID_ARGUMENT":   {},
		"SENDER_ID_MISMATCH": {},
		"NOT_FOUND":          {},
	}
	v1AuthErrors = map[string]struct{}{
		"UNAUTHENTICATED":        {},
		"PERMISSION_DENIED":      {},
		"THIRD_PARTY_AUTH_ERROR": {},
	}
	v1TransientErrors = map[string]struct{}{
		"UNAVAILABLE":        {},
		"INTERNAL":           {},
		"QUOTA_EXCEEDED":     {},
		"RESOURCE_EXHAUSTED": {},
	}
)

type legacyResponse struct {
	Success int `json:"success"`
	Failure int `json:"failure"`
	Results []struct {
		MessageID string `json:"message_id"`
		Error     string `json:"error"`
	} `json:"results"`
}

type v1Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
	Details []struct {
		ErrorCode string `json:"errorCode"`
	} `json:"details"`
}

// classifyResponse turns one HTTP response into an attempt result. Only structured
// fields are inspected; the text of an error message never decides the class.
func classifyResponse(dialect entity.Dialect, route entity.Route, status int, contentType string, body []byte) *entity.AttemptResult {
	fields, ok := decodeObject(contentType, body)
	if !ok {
		return classifyNonJSON(route, status)
	}

	if route.TrustsStatus() {
		switch {
		case status == http.StatusUnauthorized || status == http.StatusForbidden:
			return &entity.AttemptResult{
				Class:      entity.AttemptAuthFailure,
				StatusCode: status,
				Detail:     fmt.Sprintf("HTTP %d", status),
			}
		case status == http.StatusTooManyRequests || status >= http.StatusInternalServerError:
			return &entity.AttemptResult{
				Class:      entity.AttemptTransportFailure,
				StatusCode: status,
				Detail:     fmt.Sprintf("provider unavailable (HTTP %d)", status),
			}
		}
	}

	var result *entity.AttemptResult
	switch dialect {
	case entity.DialectLegacyKeyed:
		result = classifyLegacy(body)
	case entity.DialectBearerTokenV1:
		result = classifyV1(fields)
	}

	if result == nil {
		result = &entity.AttemptResult{
			Class:  entity.AttemptTransportFailure,
			Detail: fmt.Sprintf("unrecognized response (HTTP %d)", status),
		}
	}
	result.StatusCode = status

	return result
}

// decodeObject reports whether body is a JSON object and returns its top-level fields.
func decodeObject(contentType string, body []byte) (map[string]json.RawMessage, bool) {
	if strings.Contains(strings.ToLower(contentType), "html") {
		return nil, false
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil || fields == nil {
		return nil, false
	}

	return fields, true
}

func classifyNonJSON(route entity.Route, status int) *entity.AttemptResult {
	if !route.IsDirect() {
		return &entity.AttemptResult{
			Class:      entity.AttemptTransportFailure,
			StatusCode: status,
			Detail:     "relay returned non-JSON response",
		}
	}

	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		return &entity.AttemptResult{
			Class:      entity.AttemptAuthFailure,
			StatusCode: status,
			Detail:     fmt.Sprintf("HTTP %d", status),
		}
	}

	return &entity.AttemptResult{
		Class:      entity.AttemptTransportFailure,
		StatusCode: status,
		Detail:     fmt.Sprintf("non-JSON response (HTTP %d)", status),
	}
}

func classifyLegacy(body []byte) *entity.AttemptResult {
	var resp legacyResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil
	}

	if resp.Failure > 0 {
		code := ""
		if len(resp.Results) > 0 {
			code = resp.Results[0].Error
		}
		if _, transient := legacyTransientErrors[code]; transient {
			return &entity.AttemptResult{
				Class:         entity.AttemptTransportFailure,
				ProviderError: code,
				Detail:        "provider error " + code,
			}
		}
		if code == "" {
			code = "unknown"
		}
		detail := code
		if _, known := legacyRecipientErrors[code]; !known {
			detail = "provider rejected message: " + code
		}

		return &entity.AttemptResult{
			Class:         entity.AttemptRecipientInvalid,
			ProviderError: code,
			Detail:        detail,
		}
	}

	if resp.Success >= 1 {
		result := &entity.AttemptResult{Class: entity.AttemptSuccess, Detail: "delivered"}
		if len(resp.Results) > 0 {
			result.MessageID = resp.Results[0].MessageID
		}

		return result
	}

	return nil
}

func classifyV1(fields map[string]json.RawMessage) *entity.AttemptResult {
	if raw, ok := fields["error"]; ok {
		var providerErr v1Error
		if err := json.Unmarshal(raw, &providerErr); err != nil {
			return nil
		}

		return classifyV1Error(&providerErr)
	}

	if raw, ok := fields["name"]; ok {
		var name string
		if err := json.Unmarshal(raw, &name); err == nil && name != "" {
			return &entity.AttemptResult{Class: entity.AttemptSuccess, MessageID: name, Detail: "delivered"}
		}
	}

	return nil
}

func classifyV1Error(providerErr *v1Error) *entity.AttemptResult {
	codes := make([]string, 0, len(providerErr.Details)+1)
	for _, detail := range providerErr.Details {
		if detail.ErrorCode != "" {
			codes = append(codes, detail.ErrorCode)
		}
	}
	if providerErr.Status != "" {
		codes = append(codes, providerErr.Status)
	}

	for _, code := range codes {
		if _, ok := v1AuthErrors[code]; ok {
			return &entity.AttemptResult{Class: entity.AttemptAuthFailure, ProviderError: code, Detail: code}
		}
		if _, ok := v1RecipientErrors[code]; ok {
			return &entity.AttemptResult{Class: entity.AttemptRecipientInvalid, ProviderError: code, Detail: code}
		}
		if _, ok := v1TransientErrors[code]; ok {
			return &entity.AttemptResult{Class: entity.AttemptTransportFailure, ProviderError: code, Detail: "provider error " + code}
		}
	}

	// An error object without any code did not come from the provider.
	if len(codes) == 0 {
		return nil
	}

	return &entity.AttemptResult{
		Class:         entity.AttemptRecipientInvalid,
		ProviderError: codes[0],
		Detail:        "provider rejected message: " + codes[0],
	}
}
