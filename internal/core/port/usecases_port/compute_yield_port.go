package usecases_port

import (
	"context"
	"market-segmentation-service/internal/core/domain"
)

type ComputeYieldUseCase interface {
	Segment(ctx context.Context, records []domain.YieldRecord, opts domain.SegmentationOptions) (*domain.YieldSegmentationResult, error)
}
