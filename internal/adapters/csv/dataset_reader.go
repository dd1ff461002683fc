package csv_adapter

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"market-segmentation-service/internal/core/domain"
	"market-segmentation-service/internal/core/port"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Обязательные колонки CSV-датасета.
var requiredColumns = []string{"latitude", "longitude", "carpet_area_sqft", "monthly_rent"}

// DatasetReader читает датасет объектов из CSV-файла.
// Отсутствие обязательных колонок в заголовке — SchemaValidationError
// с полным списком имён, до чтения строк.
type DatasetReader struct {
	logger port.LoggerPort
}

func NewDatasetReader(logger port.LoggerPort) *DatasetReader {
	return &DatasetReader{logger: logger}
}

func (r *DatasetReader) ReadProperties(ctx context.Context, path string) ([]domain.PropertyRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset header: %w", err)
	}

	columnIndex := make(map[string]int, len(header))
	for i, name := range header {
		columnIndex[strings.ToLower(strings.TrimSpace(name))] = i
	}

	var missing []string
	for _, col := range requiredColumns {
		if _, ok := columnIndex[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, &domain.SchemaValidationError{MissingColumns: missing}
	}

	var records []domain.PropertyRecord
	row := 0
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Битая строка отклоняет весь датасет: частичных результатов не возвращаем.
			return nil, fmt.Errorf("failed to read dataset row %d: %w", row, err)
		}

		rec, parseErr := r.parseRow(fields, columnIndex, row)
		if parseErr != nil {
			return nil, parseErr
		}
		records = append(records, rec)
		row++
	}

	r.logger.Info("Dataset loaded", port.Fields{"path": path, "records": len(records)})
	return records, nil
}

func (r *DatasetReader) parseRow(fields []string, columnIndex map[string]int, row int) (domain.PropertyRecord, error) {
	rec := domain.PropertyRecord{}

	readFloat := func(col string) (float64, error) {
		raw := strings.TrimSpace(fields[columnIndex[col]])
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return 0, fmt.Errorf("row %d: column %q: cannot parse %q as number", row, col, raw)
		}
		return v, nil
	}

	var err error
	if rec.Latitude, err = readFloat("latitude"); err != nil {
		return rec, err
	}
	if rec.Longitude, err = readFloat("longitude"); err != nil {
		return rec, err
	}
	if rec.CarpetAreaSqft, err = readFloat("carpet_area_sqft"); err != nil {
		return rec, err
	}
	if rec.MonthlyRent, err = readFloat("monthly_rent"); err != nil {
		return rec, err
	}

	// Необязательные колонки: пустая ячейка или отсутствие колонки
	// оставляют nil, значение по умолчанию подставит пайплайн.
	rec.AmenitiesCount = r.readOptionalInt(fields, columnIndex, "amenities_count")
	rec.BuildingAge = r.readOptionalInt(fields, columnIndex, "building_age")
	rec.FloorLevel = r.readOptionalInt(fields, columnIndex, "floor_level")

	rec.PropertyType = r.readCategory(fields, columnIndex, "property_type")
	rec.Furnishing = r.readCategory(fields, columnIndex, "furnishing")

	if idx, ok := columnIndex["parking"]; ok && idx < len(fields) {
		raw := strings.TrimSpace(fields[idx])
		if raw != "" {
			parked := raw == "1" || strings.EqualFold(raw, "true") || strings.EqualFold(raw, "yes")
			rec.Parking = &parked
		}
	}

	return rec, nil
}

func (r *DatasetReader) readOptionalInt(fields []string, columnIndex map[string]int, col string) *int {
	idx, ok := columnIndex[col]
	if !ok || idx >= len(fields) {
		return nil
	}
	raw := strings.TrimSpace(fields[idx])
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		r.logger.Warn("Skipping unparsable optional value", port.Fields{"column": col, "value": raw})
		return nil
	}
	return &v
}

// readCategory приводит категориальные значения к каноническому регистру
// ("budget" и "BUDGET" становятся "Budget").
func (r *DatasetReader) readCategory(fields []string, columnIndex map[string]int, col string) string {
	idx, ok := columnIndex[col]
	if !ok || idx >= len(fields) {
		return ""
	}
	raw := strings.TrimSpace(fields[idx])
	if raw == "" {
		return ""
	}
	caser := cases.Title(language.English)
	return caser.String(strings.ToLower(raw))
}
