package usecase

import (
	"testing"

	"market-segmentation-service/internal/core/domain"
)

func TestMedianOddCount(t *testing.T) {
	if got := median([]float64{3, 1, 2}); got != 2 {
		t.Errorf("median: got %f, want 2", got)
	}
}

func TestMedianEvenCountAveragesMiddles(t *testing.T) {
	if got := median([]float64{4, 1, 3, 2}); got != 2.5 {
		t.Errorf("median: got %f, want 2.5", got)
	}
}

func TestMedianSingleValue(t *testing.T) {
	if got := median([]float64{140}); got != 140 {
		t.Errorf("median: got %f, want 140", got)
	}
}

func TestMedianDoesNotMutateInput(t *testing.T) {
	values := []float64{3, 1, 2}
	median(values)
	if values[0] != 3 || values[1] != 1 || values[2] != 2 {
		t.Error("median sorted the caller's slice")
	}
}

func TestClusterMedians(t *testing.T) {
	metric := []float64{100, 140, 100, 140}
	assignments := []int{0, 1, 0, 1}

	medians := clusterMedians(metric, assignments, 2)
	if medians[0] != 100 {
		t.Errorf("cluster 0 median: got %f, want 100", medians[0])
	}
	if medians[1] != 140 {
		t.Errorf("cluster 1 median: got %f, want 140", medians[1])
	}
}

// Границы: интервал [-10, 10] целиком Fair, за ним — Underpriced/Overpriced.
func TestClassifyGapBoundaries(t *testing.T) {
	cases := []struct {
		gap  float64
		want domain.PricingLabel
	}{
		{-25, domain.LabelUnderpriced},
		{-10.000001, domain.LabelUnderpriced},
		{-10, domain.LabelFair},
		{-9.999999, domain.LabelFair},
		{0, domain.LabelFair},
		{9.999999, domain.LabelFair},
		{10, domain.LabelFair},
		{10.000001, domain.LabelOverpriced},
		{25, domain.LabelOverpriced},
	}

	for _, c := range cases {
		if got := classifyGap(c.gap); got != c.want {
			t.Errorf("classifyGap(%f): got %s, want %s", c.gap, got, c.want)
		}
	}
}

func TestPricingGapPct(t *testing.T) {
	if got := pricingGapPct(110, 100); !almostEqual(got, 10) {
		t.Errorf("gap: got %f, want 10", got)
	}
	if got := pricingGapPct(90, 100); !almostEqual(got, -10) {
		t.Errorf("gap: got %f, want -10", got)
	}
}

// Нулевая медиана — вырожденный вход, а не ошибка деления.
func TestPricingGapZeroMedianIsZero(t *testing.T) {
	if got := pricingGapPct(50, 0); got != 0 {
		t.Errorf("gap with zero median: got %f, want 0", got)
	}
	if got := classifyGap(pricingGapPct(50, 0)); got != domain.LabelFair {
		t.Errorf("label with zero median: got %s, want Fair", got)
	}
}

// Округление half away from zero (math.Round).
func TestRecommendedRentRounding(t *testing.T) {
	cases := []struct {
		median float64
		area   float64
		want   float64
	}{
		{100, 500, 50000},
		{120.4, 1, 120},
		{2.5, 1, 3},   // 2.5 -> 3
		{3.5, 1, 4},   // 3.5 -> 4, не банковское округление
		{120.5, 1, 121},
	}

	for _, c := range cases {
		if got := recommendedRent(c.median, c.area); got != c.want {
			t.Errorf("recommendedRent(%f, %f): got %f, want %f", c.median, c.area, got, c.want)
		}
	}
}
