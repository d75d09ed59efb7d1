package repository

import (
	"time"

	"iffy-moderation/internal/moderation"
)

// CreateRecordOptions holds parameters for storing a new Record.
// ID and CreatedAt are assigned by the repository.
type CreateRecordOptions struct {
	Content      []moderation.ContentInput
	Status       moderation.Status
	Flagged      bool
	Reasoning    string
	ErrorMessage string
	StatusCode   int
	Latency      time.Duration
}

// ListRecordsOptions holds filter and pagination parameters for listing Records.
// Results are ordered newest first.
type ListRecordsOptions struct {
	Status moderation.Status
	Limit  int
}
