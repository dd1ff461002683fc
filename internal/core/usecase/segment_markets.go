package usecase

import (
	"context"
	"sort"

	"market-segmentation-service/internal/constants"
	"market-segmentation-service/internal/contextkeys"
	"market-segmentation-service/internal/core/domain"
	"market-segmentation-service/internal/core/port"

	"github.com/mmcloughlin/geohash"
)

// SegmentMarketsUseCase — основной пайплайн:
// признаки -> нормализация -> k-means -> бенчмарк по медиане кластера.
// Один запуск — чистая функция (records, k, seed) -> enriched records,
// без состояния между вызовами.
type SegmentMarketsUseCase struct{}

func NewSegmentMarketsUseCase() *SegmentMarketsUseCase {
	return &SegmentMarketsUseCase{}
}

func (uc *SegmentMarketsUseCase) Segment(ctx context.Context, records []domain.PropertyRecord, opts domain.SegmentationOptions) (*domain.SegmentationResult, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	opts = normalizeOptions(opts)

	ucLogger := logger.WithFields(port.Fields{
		"use_case": "SegmentMarkets",
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

	matrix, rentPerSqft, err := buildRentFeatureMatrix(records)
	if err != nil {
		ucLogger.Error("Feature building failed", err, nil)
		return nil, err
	}

	scaler := fitScaler(matrix)
	scaled := scaler.transform(matrix)

	km, err := runKMeans(scaled, opts.Clusters, *opts.Seed, opts.MaxIterations)
	if err != nil {
		ucLogger.Error("Clustering failed", err, nil)
		return nil, err
	}
	ucLogger.Debug("Clustering converged", port.Fields{"iterations": km.iterations})

	medians := clusterMedians(rentPerSqft, km.assignments, opts.Clusters)

	// Обогащение: исходные записи не мутируются, строится новый срез.
	enriched := make([]domain.EnrichedProperty, len(records))
	clusterSizes := make([]int, opts.Clusters)
	summary := domain.MarketSummary{TotalProperties: len(records)}

	for i, rec := range records {
		cluster := km.assignments[i]
		clusterSizes[cluster]++

		med := medians[cluster]
		gap := pricingGapPct(rentPerSqft[i], med)
		label := classifyGap(gap)

		switch label {
		case domain.LabelUnderpriced:
			summary.UnderpricedCount++
		case domain.LabelOverpriced:
			summary.OverpricedCount++
		}

		enriched[i] = domain.EnrichedProperty{
			PropertyRecord:  rec,
			RentPerSqft:     rentPerSqft[i],
			MicroMarket:     cluster,
			ClusterMedian:   med,
			PricingGapPct:   gap,
			PricingLabel:    label,
			RecommendedRent: recommendedRent(med, rec.CarpetAreaSqft),
			Geohash:         geohash.Encode(rec.Latitude, rec.Longitude)[:constants.GeohashPrecision],
		}
	}

	// Представлению таблица отдаётся отсортированной по разрыву по возрастанию.
	sort.SliceStable(enriched, func(i, j int) bool {
		return enriched[i].PricingGapPct < enriched[j].PricingGapPct
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

	return &domain.SegmentationResult{
		Properties: enriched,
		Markets:    markets,
		Summary:    summary,
	}, nil
}

// normalizeOptions подставляет значения по умолчанию вместо незаданных полей.
// Seed подменяется только при nil: явно переданный 0 остается нулем.
func normalizeOptions(opts domain.SegmentationOptions) domain.SegmentationOptions {
	if opts.Clusters == 0 {
		opts.Clusters = constants.DefaultClusters
	}
	if opts.Seed == nil {
		seed := int64(constants.DefaultSeed)
		opts.Seed = &seed
	}
	if opts.MaxIterations <= 0 {
		opts.MaxIterations = constants.KMeansMaxIterations
	}
	return opts
}
