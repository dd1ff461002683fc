package domain

// PropertyRecord — одна строка входного датасета.
// Необязательные поля представлены указателями: nil означает, что колонка
// отсутствовала в источнике и будет заполнена значением по умолчанию.
type PropertyRecord struct {
	Latitude       float64
	Longitude      float64
	CarpetAreaSqft float64
	MonthlyRent    float64

	AmenitiesCount *int
	BuildingAge    *int
	FloorLevel     *int

	// Категориальные атрибуты. В кластеризации не участвуют,
	// используются только для генерации синтетики и отчётов.
	PropertyType string
	Furnishing   string
	Parking      *bool
}

// SegmentationOptions — параметры одного запуска пайплайна.
// Seed — указатель: nil означает "не задан", явный 0 — валидный seed.
type SegmentationOptions struct {
	Clusters      int
	Seed          *int64
	MaxIterations int
}

// EnrichedProperty — исходная запись плюс производные колонки.
// Исходные записи не мутируются: обогащение строит новый срез.
type EnrichedProperty struct {
	PropertyRecord

	RentPerSqft     float64
	MicroMarket     int
	ClusterMedian   float64
	PricingGapPct   float64
	PricingLabel    PricingLabel
	RecommendedRent float64

	// Geohash (точность 5) — ключ локации для группировки на карте.
	Geohash string
}

// MicroMarketStats — сводка по одному микро-рынку.
// Median — медиана метрики сравнения: rent_per_sqft в основном пайплайне,
// rental_yield в yield-варианте.
type MicroMarketStats struct {
	ID     int
	Size   int
	Median float64
}

// MarketSummary — счётчики для KPI-карточек.
type MarketSummary struct {
	TotalProperties  int
	UnderpricedCount int
	OverpricedCount  int
}

// SegmentationResult — итог одного запуска: обогащённые записи,
// отсортированные по PricingGapPct по возрастанию, статистика рынков и сводка.
type SegmentationResult struct {
	Properties []EnrichedProperty
	Markets    []MicroMarketStats
	Summary    MarketSummary
}
