package usecase

import (
	"context"
	"errors"

	"iffy-moderation/internal/moderation"
	repo "iffy-moderation/internal/moderation/repository"
)

// Detail returns a stored record by ID.
func (uc *implUseCase) Detail(ctx context.Context, id string) (moderation.DetailOutput, error) {
	rec, err := uc.repo.GetRecord(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return moderation.DetailOutput{}, moderation.ErrRecordNotFound
		}
		uc.l.Errorf(ctx, "uc.Detail GetRecord: %v", err)
		return moderation.DetailOutput{}, err
	}
	return moderation.DetailOutput{Record: rec}, nil
}

// List returns the most recent records, optionally filtered by status.
func (uc *implUseCase) List(ctx context.Context, input moderation.ListInput) (moderation.ListOutput, error) {
	if input.Status != "" && !input.Status.Valid() {
		return moderation.ListOutput{}, moderation.ErrInvalidStatus
	}

	limit := normalizeLimit(input.Limit)

	recs, total, err := uc.repo.ListRecords(ctx, repo.ListRecordsOptions{
		Status: input.Status,
		Limit:  limit,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListRecords: %v", err)
		return moderation.ListOutput{}, err
	}

	return moderation.ListOutput{Records: recs, Total: total, Limit: limit}, nil
}
