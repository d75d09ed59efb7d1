package repository

import (
	"context"

	"iffy-moderation/internal/moderation"
)

// Repository is the composed interface for the moderation domain data store.
type Repository interface {
	RecordRepository
}

// RecordRepository defines all data access methods for the Record entity.
type RecordRepository interface {
	CreateRecord(ctx context.Context, opt CreateRecordOptions) (moderation.Record, error)
	GetRecord(ctx context.Context, id string) (moderation.Record, error)
	ListRecords(ctx context.Context, opt ListRecordsOptions) ([]moderation.Record, int, error)
}
