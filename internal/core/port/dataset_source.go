package port

import (
	"context"
	"market-segmentation-service/internal/core/domain"
)

// DatasetSourcePort — источник табличного датасета (файл или память).
// Реализация обязана вернуть SchemaValidationError, если в источнике
// нет обязательных колонок.
type DatasetSourcePort interface {
	ReadProperties(ctx context.Context, path string) ([]domain.PropertyRecord, error)
}

// ReportSinkPort — приёмник обогащённой таблицы (CSV-отчёт и т.п.).
type ReportSinkPort interface {
	WriteEnriched(ctx context.Context, path string, result *domain.SegmentationResult) error
}
