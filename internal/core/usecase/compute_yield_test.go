package usecase

import (
	"context"
	"errors"
	"testing"

	"market-segmentation-service/internal/core/domain"
)

func TestComputeYieldValue(t *testing.T) {
	records := []domain.YieldRecord{
		{AnnualRent: 120000, PropertyValue: 2400000, LocalityScore: 7, AmenitiesScore: 5},
		{AnnualRent: 90000, PropertyValue: 3000000, LocalityScore: 4, AmenitiesScore: 3},
	}

	uc := NewComputeYieldUseCase()
	result, err := uc.Segment(context.Background(), records, domain.SegmentationOptions{Clusters: 1, Seed: seedOf(42)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// rental_yield = annual_rent / property_value * 100
	yields := map[float64]float64{120000: 5, 90000: 3}
	for _, p := range result.Properties {
		if want := yields[p.AnnualRent]; !almostEqual(p.RentalYield, want) {
			t.Errorf("annual rent %f: yield got %f, want %f", p.AnnualRent, p.RentalYield, want)
		}
	}
}

func TestComputeYieldRejectsNonPositivePropertyValue(t *testing.T) {
	records := []domain.YieldRecord{
		{AnnualRent: 120000, PropertyValue: 0, LocalityScore: 7, AmenitiesScore: 5},
	}

	uc := NewComputeYieldUseCase()
	_, err := uc.Segment(context.Background(), records, domain.SegmentationOptions{Clusters: 1})

	var inputErr *domain.InvalidInputError
	if !errors.As(err, &inputErr) {
		t.Fatalf("got %v, want InvalidInputError", err)
	}
	if inputErr.Field != "property_value" {
		t.Errorf("field: got %q, want property_value", inputErr.Field)
	}
}

func TestComputeYieldBenchmarkContract(t *testing.T) {
	records := []domain.YieldRecord{
		{AnnualRent: 100000, PropertyValue: 2000000, LocalityScore: 8, AmenitiesScore: 6}, // 5%
		{AnnualRent: 110000, PropertyValue: 2000000, LocalityScore: 8, AmenitiesScore: 6}, // 5.5%
		{AnnualRent: 40000, PropertyValue: 2000000, LocalityScore: 2, AmenitiesScore: 1},  // 2%
		{AnnualRent: 44000, PropertyValue: 2000000, LocalityScore: 2, AmenitiesScore: 1},  // 2.2%
	}

	uc := NewComputeYieldUseCase()
	result, err := uc.Segment(context.Background(), records, domain.SegmentationOptions{Clusters: 2, Seed: seedOf(42)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	perCluster := make(map[int][]float64)
	for _, p := range result.Properties {
		perCluster[p.MicroMarket] = append(perCluster[p.MicroMarket], p.RentalYield)
	}

	for _, p := range result.Properties {
		wantMedian := median(perCluster[p.MicroMarket])
		if !almostEqual(p.ClusterMedian, wantMedian) {
			t.Errorf("cluster %d: median got %f, want %f", p.MicroMarket, p.ClusterMedian, wantMedian)
		}
		wantGap := pricingGapPct(p.RentalYield, wantMedian)
		if !almostEqual(p.YieldGapPct, wantGap) {
			t.Errorf("gap: got %f, want %f", p.YieldGapPct, wantGap)
		}
		if p.PricingLabel != classifyGap(wantGap) {
			t.Errorf("label: got %s, want %s", p.PricingLabel, classifyGap(wantGap))
		}
	}

	// Результат отсортирован по разрыву по возрастанию.
	for i := 1; i < len(result.Properties); i++ {
		if result.Properties[i-1].YieldGapPct > result.Properties[i].YieldGapPct {
			t.Fatalf("properties not sorted by yield_gap_pct at index %d", i)
		}
	}
}
