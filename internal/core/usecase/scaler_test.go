package usecase

import (
	"math"
	"testing"
)

const eps = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func TestScalerMeanAndStd(t *testing.T) {
	matrix := [][]float64{{1}, {2}, {3}}
	scaler := fitScaler(matrix)

	if !almostEqual(scaler.means[0], 2) {
		t.Errorf("mean: got %f, want 2", scaler.means[0])
	}
	// Популяционное отклонение: sqrt(((1)^2+(0)^2+(1)^2)/3)
	wantStd := math.Sqrt(2.0 / 3.0)
	if !almostEqual(scaler.stds[0], wantStd) {
		t.Errorf("std: got %f, want %f", scaler.stds[0], wantStd)
	}

	scaled := scaler.transform(matrix)
	if !almostEqual(scaled[0][0], (1-2)/wantStd) {
		t.Errorf("scaled[0][0]: got %f", scaled[0][0])
	}
	if !almostEqual(scaled[1][0], 0) {
		t.Errorf("scaled[1][0]: got %f, want 0", scaled[1][0])
	}
}

func TestScalerZeroVarianceColumnYieldsZeros(t *testing.T) {
	matrix := [][]float64{{5, 1}, {5, 2}, {5, 3}}
	scaler := fitScaler(matrix)
	scaled := scaler.transform(matrix)

	for i := range scaled {
		v := scaled[i][0]
		if v != 0 {
			t.Errorf("row %d: zero-variance column: got %f, want 0", i, v)
		}
		if math.IsNaN(scaled[i][1]) || math.IsInf(scaled[i][1], 0) {
			t.Errorf("row %d: NaN/Inf leaked into varying column", i)
		}
	}
}

func TestScalerSingleRowIsDegenerateZeroVector(t *testing.T) {
	matrix := [][]float64{{19.1, 72.9, 140, 800, 3, 12}}
	scaler := fitScaler(matrix)
	scaled := scaler.transform(matrix)

	for j, v := range scaled[0] {
		if v != 0 {
			t.Errorf("column %d: got %f, want 0", j, v)
		}
	}
}

func TestScalerDoesNotMutateInput(t *testing.T) {
	matrix := [][]float64{{1, 10}, {3, 30}}
	scaler := fitScaler(matrix)
	scaler.transform(matrix)

	if matrix[0][0] != 1 || matrix[1][1] != 30 {
		t.Error("transform mutated the input matrix")
	}
}
