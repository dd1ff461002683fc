package domain

// YieldRecord — строка датасета для варианта с доходностью аренды.
type YieldRecord struct {
	AnnualRent     float64
	PropertyValue  float64
	LocalityScore  float64
	AmenitiesScore float64
}

// EnrichedYieldProperty — запись с рассчитанной доходностью и бенчмарком
// относительно медианы своего кластера.
type EnrichedYieldProperty struct {
	YieldRecord

	RentalYield   float64
	MicroMarket   int
	ClusterMedian float64
	YieldGapPct   float64
	PricingLabel  PricingLabel
}

// YieldSegmentationResult — итог запуска yield-варианта пайплайна.
type YieldSegmentationResult struct {
	Properties []EnrichedYieldProperty
	Markets    []MicroMarketStats
	Summary    MarketSummary
}
