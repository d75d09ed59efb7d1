package moderation

import "errors"

var (
	ErrInvalidContent      = errors.New("invalid content")
	ErrInvalidStatus       = errors.New("invalid status filter")
	ErrRecordNotFound      = errors.New("moderation record not found")
	ErrUpstreamRejected    = errors.New("moderation service rejected the request")
	ErrUpstreamUnavailable = errors.New("moderation service unavailable")
)
