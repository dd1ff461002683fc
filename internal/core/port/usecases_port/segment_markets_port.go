package usecases_port

import (
	"context"
	"market-segmentation-service/internal/core/domain"
)

type SegmentMarketsUseCase interface {
	Segment(ctx context.Context, records []domain.PropertyRecord, opts domain.SegmentationOptions) (*domain.SegmentationResult, error)
}
