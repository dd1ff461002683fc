package usecase

import (
	"market-segmentation-service/internal/constants"
	"market-segmentation-service/internal/core/domain"
)

// Порядок признаков фиксирован и обязан совпадать с порядком,
// на котором обучался нормализатор.
// {latitude, longitude, rent_per_sqft, carpet_area_sqft, amenities_count, building_age}
const rentFeatureCount = 6

// buildRentFeatureMatrix строит матрицу признаков N x 6 и вектор rent_per_sqft.
// Чистая функция: входные записи не изменяются.
// Неположительная площадь или аренда отклоняют весь батч — частичный расчёт
// мог бы исказить бенчмарк.
func buildRentFeatureMatrix(records []domain.PropertyRecord) ([][]float64, []float64, error) {
	matrix := make([][]float64, len(records))
	rentPerSqft := make([]float64, len(records))

	for i, rec := range records {
		if rec.CarpetAreaSqft <= 0 {
			return nil, nil, &domain.InvalidInputError{
				Row:    i,
				Field:  "carpet_area_sqft",
				Reason: "must be positive",
			}
		}
		if rec.MonthlyRent <= 0 {
			return nil, nil, &domain.InvalidInputError{
				Row:    i,
				Field:  "monthly_rent",
				Reason: "must be positive",
			}
		}

		rps := rec.MonthlyRent / rec.CarpetAreaSqft
		rentPerSqft[i] = rps

		matrix[i] = []float64{
			rec.Latitude,
			rec.Longitude,
			rps,
			rec.CarpetAreaSqft,
			float64(intOrDefault(rec.AmenitiesCount, constants.DefaultAmenitiesCount)),
			float64(intOrDefault(rec.BuildingAge, constants.DefaultBuildingAge)),
		}
	}

	return matrix, rentPerSqft, nil
}

// intOrDefault возвращает значение указателя или значение по умолчанию,
// если колонка отсутствовала в источнике.
func intOrDefault(v *int, def int) int {
	if v != nil {
		return *v
	}
	return def
}
