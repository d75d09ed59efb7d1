package moderation

import "time"

// --- Record Domain Model ---

// Status is the outcome class of a moderation request.
type Status string

const (
	StatusClean          Status = "clean"
	StatusFlagged        Status = "flagged"
	StatusServerError    Status = "server_error"
	StatusTransportError Status = "transport_error"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusClean, StatusFlagged, StatusServerError, StatusTransportError:
		return true
	}
	return false
}

// Content item types.
const (
	ContentTypeText     = "text"
	ContentTypeImageURL = "image_url"
)

// ContentInput is one item submitted for moderation.
type ContentInput struct {
	Type string
	Text string // set when Type is text
	URL  string // set when Type is image_url
}

// Record is a stored moderation request and its outcome.
type Record struct {
	ID           string
	Content      []ContentInput
	Status       Status
	Flagged      bool
	Reasoning    string
	ErrorMessage string
	StatusCode   int // upstream HTTP status for server errors
	CreatedAt    time.Time
	Latency      time.Duration
}

// --- UseCase Inputs ---

type ModerateInput struct {
	Content []ContentInput
}

type ListInput struct {
	Status Status // empty means any
	Limit  int
}

// --- UseCase Outputs ---

type ModerateOutput struct {
	Record Record
}

type DetailOutput struct {
	Record Record
}

type ListOutput struct {
	Records []Record
	Total   int
	Limit   int
}
