package usecase

import (
	"time"

	"iffy-moderation/internal/moderation/repository"
	"iffy-moderation/pkg/iffy"
	"iffy-moderation/pkg/log"
)

// implUseCase is the private implementation of moderation.UseCase.
type implUseCase struct {
	repo  repository.Repository
	iffy  iffy.IIffy
	l     log.Logger
	clock func() time.Time
}

// New creates a new moderation UseCase implementation.
func New(repo repository.Repository, iffyClient iffy.IIffy, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:  repo,
		iffy:  iffyClient,
		l:     l,
		clock: time.Now,
	}
}
