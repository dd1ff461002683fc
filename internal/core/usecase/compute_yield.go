package usecase

import (
	"context"
	"sort"

	"market-segmentation-service/internal/contextkeys"
	"market-segmentation-service/internal/core/domain"
	"market-segmentation-service/internal/core/port"
)

// ComputeYieldUseCase — вариант пайплайна на доходности аренды:
// rental_yield = annual_rent / property_value * 100, вектор признаков
// {rental_yield, locality_score, amenities_score}, дальше та же связка
// нормализация -> k-means -> бенчмарк по медиане кластера.
type ComputeYieldUseCase struct{}

func NewComputeYieldUseCase() *ComputeYieldUseCase {
	return &ComputeYieldUseCase{}
}

func (uc *ComputeYieldUseCase) Segment(ctx context.Context, records []domain.YieldRecord, opts domain.SegmentationOptions) (*domain.YieldSegmentationResult, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	opts = normalizeOptions(opts)

	ucLogger := logger.WithFields(port.Fields{
		"use_case": "ComputeYield",
		"records":  len(records),
		"clusters": opts.Clusters,
		"seed":     *opts.Seed,
	})
	ucLogger.Info("Use case started", nil)

	if len(records) == 0 {
		err := &domain.InvalidClusterCountError{K: opts.Clusters, N: 0}
		ucLogger.Error("Empty dataset", err, nil)
		return nil, err
	}

	matrix := make([][]float64, len(records))
	yields := make([]float64, len(records))
	for i, rec := range records {
		if rec.PropertyValue <= 0 {
			err := &domain.InvalidInputError{
				Row:    i,
				Field:  "property_value",
				Reason: "must be positive",
			}
			ucLogger.Error("Feature building failed", err, nil)
			return nil, err
		}

		yields[i] = rec.AnnualRent / rec.PropertyValue * 100
		matrix[i] = []float64{yields[i], rec.LocalityScore, rec.AmenitiesScore}
	}

	scaler := fitScaler(matrix)
	scaled := scaler.transform(matrix)

	km, err := runKMeans(scaled, opts.Clusters, *opts.Seed, opts.MaxIterations)
	if err != nil {
		ucLogger.Error("Clustering failed", err, nil)
		return nil, err
	}

	medians := clusterMedians(yields, km.assignments, opts.Clusters)

	enriched := make([]domain.EnrichedYieldProperty, len(records))
	clusterSizes := make([]int, opts.Clusters)
	summary := domain.MarketSummary{TotalProperties: len(records)}

	for i, rec := range records {
		cluster := km.assignments[i]
		clusterSizes[cluster]++

		med := medians[cluster]
		gap := pricingGapPct(yields[i], med)
		label := classifyGap(gap)

		switch label {
		case domain.LabelUnderpriced:
			summary.UnderpricedCount++
		case domain.LabelOverpriced:
			summary.OverpricedCount++
		}

		enriched[i] = domain.EnrichedYieldProperty{
			YieldRecord:   rec,
			RentalYield:   yields[i],
			MicroMarket:   cluster,
			ClusterMedian: med,
			YieldGapPct:   gap,
			PricingLabel:  label,
		}
	}

	sort.SliceStable(enriched, func(i, j int) bool {
		return enriched[i].YieldGapPct < enriched[j].YieldGapPct
	})

	markets := make([]domain.MicroMarketStats, opts.Clusters)
	for c := 0; c < opts.Clusters; c++ {
		markets[c] = domain.MicroMarketStats{
			ID:     c,
			Size:   clusterSizes[c],
			Median: medians[c],
		}
	}

	ucLogger.Info("Use case finished successfully", port.Fields{
		"underpriced": summary.UnderpricedCount,
		"overpriced":  summary.OverpricedCount,
	})

	return &domain.YieldSegmentationResult{
		Properties: enriched,
		Markets:    markets,
		Summary:    summary,
	}, nil
}
