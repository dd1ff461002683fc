package csv_adapter

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	logger_adapter "market-segmentation-service/internal/adapters/logger"
	"market-segmentation-service/internal/core/domain"
	"market-segmentation-service/internal/core/port"
)

// Адаптеры подключаются через порты ядра.
var (
	_ port.DatasetSourcePort = (*DatasetReader)(nil)
	_ port.ReportSinkPort    = (*ReportWriter)(nil)
)

func testLogger() port.LoggerPort {
	return logger_adapter.NewSlogAdapter(logger_adapter.SlogConfig{Writer: io.Discard})
}

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dataset.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}

func TestReadPropertiesParsesRows(t *testing.T) {
	path := writeTempCSV(t, `latitude,longitude,carpet_area_sqft,monthly_rent,amenities_count,building_age,property_type,furnishing
19.05,72.90,500,50000,3,12,budget,semi-furnished
19.10,72.95,1000,140000,,,LUXURY,fully-furnished
`)

	reader := NewDatasetReader(testLogger())
	records, err := reader.ReadProperties(context.Background(), path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("records: got %d, want 2", len(records))
	}

	first := records[0]
	if first.Latitude != 19.05 || first.CarpetAreaSqft != 500 || first.MonthlyRent != 50000 {
		t.Errorf("first record parsed incorrectly: %+v", first)
	}
	if first.AmenitiesCount == nil || *first.AmenitiesCount != 3 {
		t.Error("amenities_count not parsed")
	}
	// Категориальные значения приводятся к каноническому регистру.
	if first.PropertyType != "Budget" {
		t.Errorf("property_type: got %q, want Budget", first.PropertyType)
	}
	if first.Furnishing != "Semi-Furnished" {
		t.Errorf("furnishing: got %q, want Semi-Furnished", first.Furnishing)
	}

	second := records[1]
	// Пустые ячейки оставляют nil: значение по умолчанию подставит пайплайн.
	if second.AmenitiesCount != nil || second.BuildingAge != nil {
		t.Error("empty optional cells must stay nil")
	}
	if second.PropertyType != "Luxury" {
		t.Errorf("property_type: got %q, want Luxury", second.PropertyType)
	}
}

func TestReadPropertiesMissingRequiredColumn(t *testing.T) {
	path := writeTempCSV(t, `latitude,longitude,carpet_area_sqft
19.05,72.90,500
`)

	reader := NewDatasetReader(testLogger())
	_, err := reader.ReadProperties(context.Background(), path)

	var schemaErr *domain.SchemaValidationError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("got %v, want SchemaValidationError", err)
	}
	if len(schemaErr.MissingColumns) != 1 || schemaErr.MissingColumns[0] != "monthly_rent" {
		t.Errorf("missing columns: got %v, want [monthly_rent]", schemaErr.MissingColumns)
	}
}

func TestReadPropertiesMissingSeveralColumns(t *testing.T) {
	path := writeTempCSV(t, `latitude,carpet_area_sqft
19.05,500
`)

	reader := NewDatasetReader(testLogger())
	_, err := reader.ReadProperties(context.Background(), path)

	var schemaErr *domain.SchemaValidationError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("got %v, want SchemaValidationError", err)
	}
	want := []string{"longitude", "monthly_rent"}
	if len(schemaErr.MissingColumns) != len(want) {
		t.Fatalf("missing columns: got %v, want %v", schemaErr.MissingColumns, want)
	}
	for i := range want {
		if schemaErr.MissingColumns[i] != want[i] {
			t.Errorf("missing columns: got %v, want %v", schemaErr.MissingColumns, want)
		}
	}
}

func TestReadPropertiesUnparsableRequiredValue(t *testing.T) {
	path := writeTempCSV(t, `latitude,longitude,carpet_area_sqft,monthly_rent
19.05,72.90,not-a-number,50000
`)

	reader := NewDatasetReader(testLogger())
	if _, err := reader.ReadProperties(context.Background(), path); err == nil {
		t.Error("expected parse error for non-numeric area")
	}
}
