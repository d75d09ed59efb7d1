package iffy

import "context"

// IIffy defines the interface for the Iffy moderation API.
// Implementations are safe for concurrent use.
type IIffy interface {
	// Moderate submits content and returns a Verdict, ServerError or TransportError.
	Moderate(ctx context.Context, content []Content) Result

	AuthHeaders() Headers
	DefaultHeaders() Headers
}

var _ IIffy = (*Client)(nil)
