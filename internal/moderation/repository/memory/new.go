package memory

import (
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"iffy-moderation/internal/moderation"
	"iffy-moderation/internal/moderation/repository"
	"iffy-moderation/pkg/log"
)

const defaultSize = 1000

type implRepository struct {
	records *expirable.LRU[string, moderation.Record]
	now     func() time.Time
	l       log.Logger
}

// New creates an in-memory Repository holding at most size records, each for
// at most ttl. A ttl of zero keeps records until they are evicted by size.
func New(size int, ttl time.Duration, l log.Logger) repository.Repository {
	if size <= 0 {
		size = defaultSize
	}
	return &implRepository{
		records: expirable.NewLRU[string, moderation.Record](size, nil, ttl),
		now:     time.Now,
		l:       l,
	}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("moderation/repository/memory.%s", method)
}
