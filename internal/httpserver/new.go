package httpserver

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"iffy-moderation/internal/middleware"
	moderationHTTP "iffy-moderation/internal/moderation/delivery/http"
	"iffy-moderation/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	mw          middleware.Middleware
	upstream    string

	// Moderation domain
	moderationHandler moderationHTTP.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	AuthToken   string
	Upstream    string // moderation API base URL, reported by /ready

	// Moderation domain
	ModerationHandler moderationHTTP.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	switch cfg.Mode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		return nil, fmt.Errorf("invalid mode %q", cfg.Mode)
	}
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                 logger,
		gin:               gin.New(),
		port:              cfg.Port,
		mode:              cfg.Mode,
		environment:       cfg.Environment,
		mw:                middleware.New(logger, cfg.AuthToken),
		upstream:          cfg.Upstream,
		moderationHandler: cfg.ModerationHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.moderationHandler == nil {
		return errors.New("moderation handler is required")
	}
	return nil
}
