package middleware

import (
	"iffy-moderation/pkg/log"
)

type Middleware struct {
	l         log.Logger
	authToken string
}

// New creates the middleware set. An empty authToken disables Auth.
func New(l log.Logger, authToken string) Middleware {
	return Middleware{
		l:         l,
		authToken: authToken,
	}
}

// AuthEnabled reports whether Auth enforces a token.
func (m Middleware) AuthEnabled() bool {
	return m.authToken != ""
}
