package http

import (
	"github.com/gin-gonic/gin"

	"iffy-moderation/internal/moderation"
	"iffy-moderation/pkg/log"
)

// Handler is the public interface for the moderation HTTP delivery layer.
type Handler interface {
	Moderate(c *gin.Context)
	List(c *gin.Context)
	Detail(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc moderation.UseCase
}

// New creates a new HTTP handler for the moderation domain.
func New(l log.Logger, uc moderation.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
