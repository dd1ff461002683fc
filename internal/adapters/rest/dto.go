package rest

import (
	"market-segmentation-service/internal/constants"
	"market-segmentation-service/internal/core/domain"
)

// Обязательные колонки входного датасета. Порядок фиксирован, чтобы список
// отсутствующих колонок в ошибке был стабильным.
var requiredPropertyColumns = []string{"latitude", "longitude", "carpet_area_sqft", "monthly_rent"}
var requiredYieldColumns = []string{"annual_rent", "property_value", "locality_score", "amenities_score"}

// PropertyRequest — одна запись входного датасета.
// Обязательные поля — указатели: nil отличает отсутствующую колонку от нуля.
type PropertyRequest struct {
	Latitude       *float64 `json:"latitude"`
	Longitude      *float64 `json:"longitude"`
	CarpetAreaSqft *float64 `json:"carpet_area_sqft"`
	MonthlyRent    *float64 `json:"monthly_rent"`
	AmenitiesCount *int     `json:"amenities_count,omitempty"`
	BuildingAge    *int     `json:"building_age,omitempty"`
	FloorLevel     *int     `json:"floor_level,omitempty"`
	PropertyType   string   `json:"property_type,omitempty"`
	Furnishing     string   `json:"furnishing,omitempty"`
	Parking        *bool    `json:"parking,omitempty"`
}

type SegmentRequest struct {
	Clusters   int               `json:"clusters"`
	Seed       *int64            `json:"seed,omitempty"`
	Properties []PropertyRequest `json:"properties"`
}

// toDomainRecords превращает DTO в доменные записи. Колонка считается
// отсутствующей, если хотя бы в одной записи её нет — тогда возвращается
// SchemaValidationError с полным списком имён.
func (req *SegmentRequest) toDomainRecords() ([]domain.PropertyRecord, error) {
	missing := map[string]bool{}
	for _, p := range req.Properties {
		if p.Latitude == nil {
			missing["latitude"] = true
		}
		if p.Longitude == nil {
			missing["longitude"] = true
		}
		if p.CarpetAreaSqft == nil {
			missing["carpet_area_sqft"] = true
		}
		if p.MonthlyRent == nil {
			missing["monthly_rent"] = true
		}
	}
	if len(missing) > 0 {
		var names []string
		for _, col := range requiredPropertyColumns {
			if missing[col] {
				names = append(names, col)
			}
		}
		return nil, &domain.SchemaValidationError{MissingColumns: names}
	}

	records := make([]domain.PropertyRecord, len(req.Properties))
	for i, p := range req.Properties {
		records[i] = domain.PropertyRecord{
			Latitude:       *p.Latitude,
			Longitude:      *p.Longitude,
			CarpetAreaSqft: *p.CarpetAreaSqft,
			MonthlyRent:    *p.MonthlyRent,
			AmenitiesCount: p.AmenitiesCount,
			BuildingAge:    p.BuildingAge,
			FloorLevel:     p.FloorLevel,
			PropertyType:   p.PropertyType,
			Furnishing:     p.Furnishing,
			Parking:        p.Parking,
		}
	}
	return records, nil
}

type YieldPropertyRequest struct {
	AnnualRent     *float64 `json:"annual_rent"`
	PropertyValue  *float64 `json:"property_value"`
	LocalityScore  *float64 `json:"locality_score"`
	AmenitiesScore *float64 `json:"amenities_score"`
}

type YieldSegmentRequest struct {
	Clusters   int                    `json:"clusters"`
	Seed       *int64                 `json:"seed,omitempty"`
	Properties []YieldPropertyRequest `json:"properties"`
}

func (req *YieldSegmentRequest) toDomainRecords() ([]domain.YieldRecord, error) {
	missing := map[string]bool{}
	for _, p := range req.Properties {
		if p.AnnualRent == nil {
			missing["annual_rent"] = true
		}
		if p.PropertyValue == nil {
			missing["property_value"] = true
		}
		if p.LocalityScore == nil {
			missing["locality_score"] = true
		}
		if p.AmenitiesScore == nil {
			missing["amenities_score"] = true
		}
	}
	if len(missing) > 0 {
		var names []string
		for _, col := range requiredYieldColumns {
			if missing[col] {
				names = append(names, col)
			}
		}
		return nil, &domain.SchemaValidationError{MissingColumns: names}
	}

	records := make([]domain.YieldRecord, len(req.Properties))
	for i, p := range req.Properties {
		records[i] = domain.YieldRecord{
			AnnualRent:     *p.AnnualRent,
			PropertyValue:  *p.PropertyValue,
			LocalityScore:  *p.LocalityScore,
			AmenitiesScore: *p.AmenitiesScore,
		}
	}
	return records, nil
}

// EnrichedPropertyResponse — строка обогащённой таблицы для представления.
type EnrichedPropertyResponse struct {
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	CarpetAreaSqft float64 `json:"carpet_area_sqft"`
	MonthlyRent    float64 `json:"monthly_rent"`
	AmenitiesCount int     `json:"amenities_count"`
	BuildingAge    int     `json:"building_age"`
	PropertyType   string  `json:"property_type,omitempty"`
	Furnishing     string  `json:"furnishing,omitempty"`

	RentPerSqft     float64             `json:"rent_per_sqft"`
	MicroMarket     int                 `json:"micro_market"`
	ClusterMedian   float64             `json:"cluster_median"`
	PricingGapPct   float64             `json:"pricing_gap_pct"`
	PricingLabel    domain.PricingLabel `json:"pricing_label"`
	RecommendedRent float64             `json:"recommended_rent"`
	Geohash         string              `json:"geohash"`
}

type MicroMarketResponse struct {
	MicroMarket   int     `json:"micro_market"`
	Size          int     `json:"size"`
	ClusterMedian float64 `json:"cluster_median"`
}

type MarketSummaryResponse struct {
	TotalProperties  int `json:"total_properties"`
	UnderpricedCount int `json:"underpriced_count"`
	OverpricedCount  int `json:"overpriced_count"`
}

type SegmentationResponse struct {
	Properties []EnrichedPropertyResponse `json:"properties"`
	Markets    []MicroMarketResponse      `json:"markets"`
	Summary    MarketSummaryResponse      `json:"summary"`
}

type YieldPropertyResponse struct {
	AnnualRent     float64 `json:"annual_rent"`
	PropertyValue  float64 `json:"property_value"`
	LocalityScore  float64 `json:"locality_score"`
	AmenitiesScore float64 `json:"amenities_score"`

	RentalYield   float64             `json:"rental_yield"`
	MicroMarket   int                 `json:"micro_market"`
	ClusterMedian float64             `json:"cluster_median"`
	YieldGapPct   float64             `json:"yield_gap_pct"`
	PricingLabel  domain.PricingLabel `json:"pricing_label"`
}

type YieldSegmentationResponse struct {
	Properties []YieldPropertyResponse `json:"properties"`
	Markets    []MicroMarketResponse   `json:"markets"`
	Summary    MarketSummaryResponse   `json:"summary"`
}

// Маппинг из доменной модели в DTO для ответа
func toSegmentationResponse(result *domain.SegmentationResult) SegmentationResponse {
	resp := SegmentationResponse{
		Properties: make([]EnrichedPropertyResponse, len(result.Properties)),
		Markets:    make([]MicroMarketResponse, len(result.Markets)),
		Summary: MarketSummaryResponse{
			TotalProperties:  result.Summary.TotalProperties,
			UnderpricedCount: result.Summary.UnderpricedCount,
			OverpricedCount:  result.Summary.OverpricedCount,
		},
	}

	for i, p := range result.Properties {
		// В ответе показываем те же значения по умолчанию,
		// что участвовали в расчёте признаков.
		amenities := constants.DefaultAmenitiesCount
		if p.AmenitiesCount != nil {
			amenities = *p.AmenitiesCount
		}
		age := constants.DefaultBuildingAge
		if p.BuildingAge != nil {
			age = *p.BuildingAge
		}
		resp.Properties[i] = EnrichedPropertyResponse{
			Latitude:        p.Latitude,
			Longitude:       p.Longitude,
			CarpetAreaSqft:  p.CarpetAreaSqft,
			MonthlyRent:     p.MonthlyRent,
			AmenitiesCount:  amenities,
			BuildingAge:     age,
			PropertyType:    p.PropertyType,
			Furnishing:      p.Furnishing,
			RentPerSqft:     p.RentPerSqft,
			MicroMarket:     p.MicroMarket,
			ClusterMedian:   p.ClusterMedian,
			PricingGapPct:   p.PricingGapPct,
			PricingLabel:    p.PricingLabel,
			RecommendedRent: p.RecommendedRent,
			Geohash:         p.Geohash,
		}
	}

	for i, m := range result.Markets {
		resp.Markets[i] = MicroMarketResponse{
			MicroMarket:   m.ID,
			Size:          m.Size,
			ClusterMedian: m.Median,
		}
	}

	return resp
}

func toYieldSegmentationResponse(result *domain.YieldSegmentationResult) YieldSegmentationResponse {
	resp := YieldSegmentationResponse{
		Properties: make([]YieldPropertyResponse, len(result.Properties)),
		Markets:    make([]MicroMarketResponse, len(result.Markets)),
		Summary: MarketSummaryResponse{
			TotalProperties:  result.Summary.TotalProperties,
			UnderpricedCount: result.Summary.UnderpricedCount,
			OverpricedCount:  result.Summary.OverpricedCount,
		},
	}

	for i, p := range result.Properties {
		resp.Properties[i] = YieldPropertyResponse{
			AnnualRent:     p.AnnualRent,
			PropertyValue:  p.PropertyValue,
			LocalityScore:  p.LocalityScore,
			AmenitiesScore: p.AmenitiesScore,
			RentalYield:    p.RentalYield,
			MicroMarket:    p.MicroMarket,
			ClusterMedian:  p.ClusterMedian,
			YieldGapPct:    p.YieldGapPct,
			PricingLabel:   p.PricingLabel,
		}
	}

	for i, m := range result.Markets {
		resp.Markets[i] = MicroMarketResponse{
			MicroMarket:   m.ID,
			Size:          m.Size,
			ClusterMedian: m.Median,
		}
	}

	return resp
}
