package usecases_port

import (
	"context"
	"market-segmentation-service/internal/core/domain"
)

type GeneratePropertiesUseCase interface {
	Generate(ctx context.Context, count int, seed int64) ([]domain.PropertyRecord, error)
}
