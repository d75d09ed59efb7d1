package moderation

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Moderate submits content upstream and records the outcome. Upstream
	// failures are recorded too and returned alongside the record.
	Moderate(ctx context.Context, input ModerateInput) (ModerateOutput, error)
	Detail(ctx context.Context, id string) (DetailOutput, error)
	List(ctx context.Context, input ListInput) (ListOutput, error)
}
