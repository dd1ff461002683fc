package usecase

import (
	"math"
	"sort"

	"market-segmentation-service/internal/constants"
	"market-segmentation-service/internal/core/domain"
)

// median — медиана набора значений: для нечётного количества средний элемент,
// для чётного — среднее двух средних. Кластер из одного элемента имеет
// корректную медиану, равную значению самого элемента.
func median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}

// clusterMedians считает медиану метрики по каждому кластеру [0, k).
func clusterMedians(metric []float64, assignments []int, k int) []float64 {
	grouped := make([][]float64, k)
	for i, c := range assignments {
		grouped[c] = append(grouped[c], metric[i])
	}

	medians := make([]float64, k)
	for c := 0; c < k; c++ {
		medians[c] = median(grouped[c])
	}
	return medians
}

// classifyGap — чистая классификация разрыва по закрытым границам:
// интервал [-10, 10] целиком Fair, Underpriced/Overpriced только строго за ним.
func classifyGap(gapPct float64) domain.PricingLabel {
	switch {
	case gapPct < constants.UnderpricedThresholdPct:
		return domain.LabelUnderpriced
	case gapPct > constants.OverpricedThresholdPct:
		return domain.LabelOverpriced
	default:
		return domain.LabelFair
	}
}

// pricingGapPct — процентное отклонение метрики от медианы кластера.
// Нулевая медиана означает вырожденный вход: разрыв считается нулевым,
// а не ошибкой деления.
func pricingGapPct(value, clusterMedian float64) float64 {
	if clusterMedian == 0 {
		return 0
	}
	return (value - clusterMedian) / clusterMedian * 100
}

// recommendedRent — медиана кластера, умноженная на площадь объекта,
// округлённая до целой денежной единицы (half away from zero).
func recommendedRent(clusterMedian, carpetAreaSqft float64) float64 {
	return math.Round(clusterMedian * carpetAreaSqft)
}
