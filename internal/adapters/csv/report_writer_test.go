package csv_adapter

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"market-segmentation-service/internal/core/domain"
)

func TestWriteEnrichedReport(t *testing.T) {
	result := &domain.SegmentationResult{
		Properties: []domain.EnrichedProperty{
			{
				PropertyRecord: domain.PropertyRecord{
					Latitude: 19.05, Longitude: 72.90, CarpetAreaSqft: 500, MonthlyRent: 50000,
					PropertyType: "Budget", Furnishing: "Unfurnished",
				},
				RentPerSqft: 100, MicroMarket: 0, ClusterMedian: 120,
				PricingGapPct: -16.67, PricingLabel: domain.LabelUnderpriced,
				RecommendedRent: 60000, Geohash: "te7u1",
			},
		},
		Summary: domain.MarketSummary{TotalProperties: 1, UnderpricedCount: 1},
	}

	path := filepath.Join(t.TempDir(), "enriched.csv")
	writer := NewReportWriter(testLogger())
	if err := writer.WriteEnriched(context.Background(), path, result); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to open report: %v", err)
	}
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("failed to read report: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows: got %d, want header + 1", len(rows))
	}
	if rows[0][0] != "micro_market" || rows[0][len(rows[0])-1] != "geohash" {
		t.Errorf("unexpected header: %v", rows[0])
	}
	if rows[1][len(rows[1])-3] != "Underpriced" {
		t.Errorf("pricing_label column: got %v", rows[1])
	}
}
