package usecase

import (
	"context"
	"fmt"
	"math"
	"math/rand"

	"market-segmentation-service/internal/contextkeys"
	"market-segmentation-service/internal/core/domain"
	"market-segmentation-service/internal/core/port"
)

// Границы синтетического датасета (bounding box Мумбаи, как в демо-наборе).
const (
	synthLatMin = 18.90
	synthLatMax = 19.30
	synthLonMin = 72.80
	synthLonMax = 72.98
)

var (
	propertyTypes      = []string{"Budget", "Mid", "Luxury"}
	propertyTypeProbs  = []float64{0.30, 0.45, 0.25}
	propertyTypeMults  = map[string]float64{"Budget": 0.85, "Mid": 1.0, "Luxury": 1.35}
	furnishingKinds    = []string{"Unfurnished", "Semi-Furnished", "Fully-Furnished"}
	furnishingProbs    = []float64{0.40, 0.35, 0.25}
	furnishingMults    = map[string]float64{"Unfurnished": 0.9, "Semi-Furnished": 1.0, "Fully-Furnished": 1.15}
	parkingProbability = 0.65
)

// GeneratePropertiesUseCase — сидированный генератор синтетических объектов.
// Аренда выводится из площади, базовой ставки и мультипликаторов типа,
// меблировки, количества удобств и этажа.
type GeneratePropertiesUseCase struct{}

func NewGeneratePropertiesUseCase() *GeneratePropertiesUseCase {
	return &GeneratePropertiesUseCase{}
}

func (uc *GeneratePropertiesUseCase) Generate(ctx context.Context, count int, seed int64) ([]domain.PropertyRecord, error) {
	logger := contextkeys.LoggerFromContext(ctx)

	if count < 1 {
		return nil, fmt.Errorf("synthetic dataset size must be positive, got %d", count)
	}

	rng := rand.New(rand.NewSource(seed))
	records := make([]domain.PropertyRecord, count)

	for i := range records {
		area := float64(350 + rng.Intn(1150))
		age := rng.Intn(40)
		floor := 1 + rng.Intn(34)
		amenities := 1 + rng.Intn(7)
		propertyType := weightedChoice(rng, propertyTypes, propertyTypeProbs)
		furnishing := weightedChoice(rng, furnishingKinds, furnishingProbs)
		parking := rng.Float64() < parkingProbability
		baseRate := float64(90 + rng.Intn(90))

		rent := area * baseRate *
			propertyTypeMults[propertyType] *
			furnishingMults[furnishing] *
			(1 + float64(amenities)*0.02) *
			(1 + float64(floor)/100)

		ageVal := age
		floorVal := floor
		amenitiesVal := amenities
		parkingVal := parking

		records[i] = domain.PropertyRecord{
			Latitude:       synthLatMin + rng.Float64()*(synthLatMax-synthLatMin),
			Longitude:      synthLonMin + rng.Float64()*(synthLonMax-synthLonMin),
			CarpetAreaSqft: area,
			MonthlyRent:    math.Round(rent),
			AmenitiesCount: &amenitiesVal,
			BuildingAge:    &ageVal,
			FloorLevel:     &floorVal,
			PropertyType:   propertyType,
			Furnishing:     furnishing,
			Parking:        &parkingVal,
		}
	}

	logger.Debug("Synthetic dataset generated", port.Fields{"count": count, "seed": seed})
	return records, nil
}

// weightedChoice выбирает значение с заданными вероятностями.
// Суммарный вес принимается равным 1; хвостовое значение страхует
// от накопленной погрешности float.
func weightedChoice(rng *rand.Rand, values []string, probs []float64) string {
	target := rng.Float64()
	var cum float64
	for i, p := range probs {
		cum += p
		if target < cum {
			return values[i]
		}
	}
	return values[len(values)-1]
}
