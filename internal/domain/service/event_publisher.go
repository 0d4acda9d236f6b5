package service

import (
	"context"
)

// BatchEvent asks the dispatch worker to run a batch in the background.
type BatchEvent struct {
	RequestID    string   `json:"request_id,omitempty"` // For distributed tracing
	BatchID      string   `json:"batch_id"`
	RecipientIDs []string `json:"recipient_ids"`
	RequestedBy  string   `json:"requested_by,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishBatchEvent queues a dispatch batch for the worker
	PublishBatchEvent(ctx context.Context, event *BatchEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
