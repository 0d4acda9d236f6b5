package entity

import (
	"time"

	"github.com/google/uuid"
)

// DeliveryOutcome is the final result for one recipient in a batch.
type DeliveryOutcome string

const (
	OutcomeSent   DeliveryOutcome = "sent"
	OutcomeFailed DeliveryOutcome = "failed"
)

// DeliveryReason classifies why a record ended the way it did.
type DeliveryReason string

const (
	ReasonDelivered             DeliveryReason = "delivered"
	ReasonSimulated             DeliveryReason = "simulated"
	ReasonNoAddress             DeliveryReason = "no_address"
	ReasonNotEligible           DeliveryReason = "not_eligible"
	ReasonAuthFailure           DeliveryReason = "auth_failure"
	ReasonRecipientInvalid      DeliveryReason = "recipient_invalid"
	ReasonRoutesExhausted       DeliveryReason = "routes_exhausted"
	ReasonCredentialUnavailable DeliveryReason = "credential_unavailable"
	ReasonInternalError         DeliveryReason = "internal_error"
)

// DeliveryRecord is an append-only entry in the delivery log.
type DeliveryRecord struct {
	ID            uuid.UUID       `json:"id"`
	BatchID       string          `json:"batch_id"`
	RecipientID   string          `json:"recipient_id"`
	RecipientName string          `json:"recipient_name"`
	Kind          AlertKind       `json:"kind"`
	Timestamp     time.Time       `json:"timestamp"`
	Outcome       DeliveryOutcome `json:"outcome"`
	Reason        DeliveryReason  `json:"reason"`
	Detail        string          `json:"detail"`
	Route         string          `json:"route,omitempty"` // Route that produced the final outcome.
	Attempts      int             `json:"attempts"`        // Network attempts made.
}

// Sent reports whether the record counts as a successful delivery.
func (r *DeliveryRecord) Sent() bool {
	return r != nil && r.Outcome == OutcomeSent
}

// BatchReport summarises one batch run.
type BatchReport struct {
	ID             string            `json:"id"`
	StartedAt      time.Time         `json:"started_at"`
	FinishedAt     time.Time         `json:"finished_at"`
	Total          int               `json:"total"`
	Sent           int               `json:"sent"`
	Failed         int               `json:"failed"`
	Pending        int               `json:"pending"` // Not started because the batch was cancelled.
	Cancelled      bool              `json:"cancelled"`
	FailureReasons []string          `json:"failure_reasons"` // Distinct failure details, first seen first.
	Skipped        []string          `json:"skipped,omitempty"`
	Records        []*DeliveryRecord `json:"records"`
}

// NewBatchReport builds a report from finished records, keeping their order.
func NewBatchReport(id string, startedAt, finishedAt time.Time, records []*DeliveryRecord) *BatchReport {
	report := &BatchReport{
		ID:             id,
		StartedAt:      startedAt,
		FinishedAt:     finishedAt,
		FailureReasons: []string{},
		Records:        make([]*DeliveryRecord, 0, len(records)),
	}

	seen := make(map[string]struct{})
	for _, record := range records {
		if record == nil {
			continue
		}
		report.Records = append(report.Records, record)
		report.Total++

		if record.Sent() {
			report.Sent++

			continue
		}

		report.Failed++
		if _, ok := seen[record.Detail]; !ok {
			seen[record.Detail] = struct{}{}
			report.FailureReasons = append(report.FailureReasons, record.Detail)
		}
	}

	return report
}
