package constants

// Параметры сегментации по умолчанию.
// Диапазон 3..8 — соглашение для UI-слайдера, сам алгоритм принимает 1..N.
const (
	DefaultClusters      = 5
	MinRecommendedK      = 3
	MaxRecommendedK      = 8
	DefaultSeed          = 42
	KMeansMaxIterations  = 300
)

// Значения по умолчанию для необязательных колонок датасета.
// Применяются при валидации, а не внутри расчёта признаков.
const (
	DefaultAmenitiesCount = 1
	DefaultBuildingAge    = 10
)

// Пороги классификации ценового разрыва (в процентах).
// Граничные значения ±10 трактуются как Fair.
const (
	UnderpricedThresholdPct = -10.0
	OverpricedThresholdPct  = 10.0
)

// Точность geohash для ключа локации (как в storage-service).
const GeohashPrecision = 5
