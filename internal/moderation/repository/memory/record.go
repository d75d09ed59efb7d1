package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"iffy-moderation/internal/moderation"
	"iffy-moderation/internal/moderation/repository"
)

func (r *implRepository) CreateRecord(ctx context.Context, opt repository.CreateRecordOptions) (moderation.Record, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		r.l.Errorf(ctx, "%s: uuid.NewRandom: %v", r.dsn("CreateRecord"), err)
		return moderation.Record{}, fmt.Errorf("%w: %v", repository.ErrFailedToInsert, err)
	}

	content := make([]moderation.ContentInput, len(opt.Content))
	copy(content, opt.Content)

	rec := moderation.Record{
		ID:           id.String(),
		Content:      content,
		Status:       opt.Status,
		Flagged:      opt.Flagged,
		Reasoning:    opt.Reasoning,
		ErrorMessage: opt.ErrorMessage,
		StatusCode:   opt.StatusCode,
		CreatedAt:    r.now(),
		Latency:      opt.Latency,
	}

	if evicted := r.records.Add(rec.ID, rec); evicted {
		r.l.Debugf(ctx, "%s: history full, oldest record evicted", r.dsn("CreateRecord"))
	}

	return rec, nil
}

// GetRecord uses Peek so lookups do not disturb eviction order.
func (r *implRepository) GetRecord(ctx context.Context, id string) (moderation.Record, error) {
	rec, ok := r.records.Peek(id)
	if !ok {
		return moderation.Record{}, repository.ErrNotFound
	}
	return rec, nil
}

func (r *implRepository) ListRecords(ctx context.Context, opt repository.ListRecordsOptions) ([]moderation.Record, int, error) {
	all := r.records.Values()

	// Values is oldest first; walk it backwards so ties keep newest first.
	matched := make([]moderation.Record, 0, len(all))
	for i := len(all) - 1; i >= 0; i-- {
		rec := all[i]
		if opt.Status != "" && rec.Status != opt.Status {
			continue
		}
		matched = append(matched, rec)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := len(matched)
	if opt.Limit > 0 && len(matched) > opt.Limit {
		matched = matched[:opt.Limit]
	}

	return matched, total, nil
}
