package usecase

import (
	"errors"
	"testing"

	"market-segmentation-service/internal/core/domain"
)

// Две явно разделенные группы точек.
func twoBlobs() [][]float64 {
	return [][]float64{
		{0.0, 0.1}, {0.1, 0.0}, {0.1, 0.1},
		{10.0, 10.1}, {10.1, 10.0}, {10.1, 10.1},
	}
}

func TestKMeansRejectsInvalidK(t *testing.T) {
	points := twoBlobs()

	for _, k := range []int{0, -1, len(points) + 1} {
		_, err := runKMeans(points, k, 42, 300)
		var clusterErr *domain.InvalidClusterCountError
		if !errors.As(err, &clusterErr) {
			t.Errorf("k=%d: got %v, want InvalidClusterCountError", k, err)
		}
	}
}

func TestKMeansSeparatesObviousBlobs(t *testing.T) {
	points := twoBlobs()
	result, err := runKMeans(points, 2, 42, 300)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Точки одной группы обязаны попасть в один кластер
	// (номер кластера может быть любым).
	first := result.assignments[0]
	for i := 1; i < 3; i++ {
		if result.assignments[i] != first {
			t.Errorf("point %d: expected cluster %d, got %d", i, first, result.assignments[i])
		}
	}
	second := result.assignments[3]
	if second == first {
		t.Error("both blobs landed in the same cluster")
	}
	for i := 4; i < 6; i++ {
		if result.assignments[i] != second {
			t.Errorf("point %d: expected cluster %d, got %d", i, second, result.assignments[i])
		}
	}
}

func TestKMeansAssignmentsWithinRange(t *testing.T) {
	points := twoBlobs()
	result, err := runKMeans(points, 3, 7, 300)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i, c := range result.assignments {
		if c < 0 || c >= 3 {
			t.Errorf("point %d: cluster id %d out of [0, 3)", i, c)
		}
	}
}

func TestKMeansDeterministicForFixedSeed(t *testing.T) {
	points := twoBlobs()

	first, err := runKMeans(points, 3, 42, 300)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := runKMeans(points, 3, 42, 300)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := range first.assignments {
		if first.assignments[i] != second.assignments[i] {
			t.Fatalf("point %d: assignments differ between identical runs: %d vs %d",
				i, first.assignments[i], second.assignments[i])
		}
	}
}

func TestKMeansKEqualsNGivesSingletonClusters(t *testing.T) {
	points := [][]float64{{0, 0}, {5, 5}, {10, 0}, {0, 10}}
	result, err := runKMeans(points, len(points), 42, 300)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sizes := make([]int, len(points))
	for _, c := range result.assignments {
		sizes[c]++
	}
	for c, size := range sizes {
		if size != 1 {
			t.Errorf("cluster %d: size %d, want 1", c, size)
		}
	}
}

func TestKMeansSingleClusterTakesAll(t *testing.T) {
	points := twoBlobs()
	result, err := runKMeans(points, 1, 42, 300)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i, c := range result.assignments {
		if c != 0 {
			t.Errorf("point %d: got cluster %d, want 0", i, c)
		}
	}
}

func TestKMeansDoesNotMutatePoints(t *testing.T) {
	points := twoBlobs()
	if _, err := runKMeans(points, 2, 42, 300); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if points[0][0] != 0.0 || points[5][1] != 10.1 {
		t.Error("clustering mutated the input points")
	}
}
