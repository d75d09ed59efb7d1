package usecase

import (
	"context"

	"iffy-moderation/internal/moderation"
	repo "iffy-moderation/internal/moderation/repository"
)

// Moderate sends the content to Iffy once and stores the outcome.
func (uc *implUseCase) Moderate(ctx context.Context, input moderation.ModerateInput) (moderation.ModerateOutput, error) {
	content, err := toIffyContent(input.Content)
	if err != nil {
		return moderation.ModerateOutput{}, err
	}

	start := uc.clock()
	res := uc.iffy.Moderate(ctx, content)
	latency := uc.clock().Sub(start)

	o := classify(res)

	rec, err := uc.repo.CreateRecord(ctx, repo.CreateRecordOptions{
		Content:      input.Content,
		Status:       o.status,
		Flagged:      o.flagged,
		Reasoning:    o.reasoning,
		ErrorMessage: o.errMessage,
		StatusCode:   o.statusCode,
		Latency:      latency,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Moderate CreateRecord: %v", err)
		return moderation.ModerateOutput{}, err
	}

	if o.err != nil {
		uc.l.Warnf(ctx, "uc.Moderate: record=%s status=%s: %v", rec.ID, rec.Status, o.err)
		return moderation.ModerateOutput{Record: rec}, o.err
	}

	uc.l.Infof(ctx, "uc.Moderate: record=%s items=%d status=%s latency=%s", rec.ID, len(rec.Content), rec.Status, latency)
	return moderation.ModerateOutput{Record: rec}, nil
}
