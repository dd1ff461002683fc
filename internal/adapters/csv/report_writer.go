package csv_adapter

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"market-segmentation-service/internal/core/domain"
	"market-segmentation-service/internal/core/port"
)

// Порядок колонок обогащённого отчёта. Производные колонки идут
// после исходных, строки уже отсортированы по pricing_gap_pct.
var enrichedHeader = []string{
	"micro_market",
	"latitude",
	"longitude",
	"carpet_area_sqft",
	"monthly_rent",
	"property_type",
	"furnishing",
	"rent_per_sqft",
	"cluster_median",
	"pricing_gap_pct",
	"pricing_label",
	"recommended_rent",
	"geohash",
}

// ReportWriter пишет обогащённую таблицу в CSV.
type ReportWriter struct {
	logger port.LoggerPort
}

func NewReportWriter(logger port.LoggerPort) *ReportWriter {
	return &ReportWriter{logger: logger}
}

func (w *ReportWriter) WriteEnriched(ctx context.Context, path string, result *domain.SegmentationResult) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(enrichedHeader); err != nil {
		return fmt.Errorf("failed to write report header: %w", err)
	}

	for _, p := range result.Properties {
		row := []string{
			strconv.Itoa(p.MicroMarket),
			formatFloat(p.Latitude),
			formatFloat(p.Longitude),
			formatFloat(p.CarpetAreaSqft),
			formatFloat(p.MonthlyRent),
			p.PropertyType,
			p.Furnishing,
			formatFloat(p.RentPerSqft),
			formatFloat(p.ClusterMedian),
			formatFloat(p.PricingGapPct),
			string(p.PricingLabel),
			formatFloat(p.RecommendedRent),
			p.Geohash,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write report row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush report: %w", err)
	}

	w.logger.Info("Enriched report written", port.Fields{"path": path, "records": len(result.Properties)})
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
