package usecase

import (
	"math"
	"math/rand"

	"market-segmentation-service/internal/core/domain"
)

// kmeansResult — итог кластеризации: назначение кластера для каждой точки
// и финальные центроиды.
type kmeansResult struct {
	assignments []int
	centroids   [][]float64
	iterations  int
}

// runKMeans — итеративное перемещение центроидов (k-means++ инициализация,
// затем шаги Ллойда) над нормализованной матрицей признаков.
// Детерминизм на вызов: фиксированные вход, k и seed дают одинаковые
// назначения. При равных расстояниях точка уходит к центроиду
// с меньшим индексом.
func runKMeans(points [][]float64, k int, seed int64, maxIterations int) (*kmeansResult, error) {
	n := len(points)
	if k < 1 || k > n {
		return nil, &domain.InvalidClusterCountError{K: k, N: n}
	}

	rng := rand.New(rand.NewSource(seed))
	centroids := initCentroids(points, k, rng)
	assignments := make([]int, n)

	iterations := 0
	for ; iterations < maxIterations; iterations++ {
		next := make([]int, n)
		for i, p := range points {
			next[i] = nearestCentroid(p, centroids)
		}

		repairEmptyClusters(points, centroids, next, k)

		// Пересчёт центроидов как среднего по назначенным точкам.
		dims := len(points[0])
		sums := make([][]float64, k)
		counts := make([]int, k)
		for c := range sums {
			sums[c] = make([]float64, dims)
		}
		for i, c := range next {
			counts[c]++
			for j, v := range points[i] {
				sums[c][j] += v
			}
		}
		for c := 0; c < k; c++ {
			if counts[c] == 0 {
				continue // после repair пустых кластеров быть не должно
			}
			for j := 0; j < dims; j++ {
				centroids[c][j] = sums[c][j] / float64(counts[c])
			}
		}

		if equalAssignments(assignments, next) && iterations > 0 {
			assignments = next
			break
		}
		assignments = next
	}

	return &kmeansResult{
		assignments: assignments,
		centroids:   centroids,
		iterations:  iterations,
	}, nil
}

// initCentroids — выбор стартовых центроидов по схеме k-means++:
// первый равновероятно, каждый следующий с вероятностью, пропорциональной
// квадрату расстояния до ближайшего уже выбранного.
func initCentroids(points [][]float64, k int, rng *rand.Rand) [][]float64 {
	centroids := make([][]float64, 0, k)
	centroids = append(centroids, cloneVector(points[rng.Intn(len(points))]))

	dists := make([]float64, len(points))
	for len(centroids) < k {
		var total float64
		for i, p := range points {
			d := math.Inf(1)
			for _, c := range centroids {
				if sq := squaredDistance(p, c); sq < d {
					d = sq
				}
			}
			dists[i] = d
			total += d
		}

		if total == 0 {
			// Все точки совпадают с уже выбранными центроидами.
			centroids = append(centroids, cloneVector(points[rng.Intn(len(points))]))
			continue
		}

		target := rng.Float64() * total
		var cum float64
		chosen := len(points) - 1
		for i, d := range dists {
			cum += d
			if cum >= target {
				chosen = i
				break
			}
		}
		centroids = append(centroids, cloneVector(points[chosen]))
	}

	return centroids
}

// nearestCentroid возвращает индекс ближайшего центроида по евклидову
// расстоянию; при равенстве побеждает меньший индекс.
func nearestCentroid(point []float64, centroids [][]float64) int {
	best := 0
	bestDist := squaredDistance(point, centroids[0])
	for c := 1; c < len(centroids); c++ {
		if d := squaredDistance(point, centroids[c]); d < bestDist {
			best = c
			bestDist = d
		}
	}
	return best
}

// repairEmptyClusters отдаёт пустому кластеру точку, наиболее удалённую
// от своего центроида (только из кластеров с размером > 1).
func repairEmptyClusters(points [][]float64, centroids [][]float64, assignments []int, k int) {
	counts := make([]int, k)
	for _, c := range assignments {
		counts[c]++
	}

	for c := 0; c < k; c++ {
		if counts[c] > 0 {
			continue
		}

		farIdx := -1
		farDist := -1.0
		for i, p := range points {
			owner := assignments[i]
			if counts[owner] <= 1 {
				continue
			}
			if d := squaredDistance(p, centroids[owner]); d > farDist {
				farDist = d
				farIdx = i
			}
		}
		if farIdx < 0 {
			continue
		}

		counts[assignments[farIdx]]--
		assignments[farIdx] = c
		counts[c]++
		centroids[c] = cloneVector(points[farIdx])
	}
}

func squaredDistance(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

func cloneVector(v []float64) []float64 {
	out := make([]float64, len(v))
	copy(out, v)
	return out
}

func equalAssignments(a, b []int) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
