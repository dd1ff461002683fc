package usecase

import "math"

// standardScaler — стандартизация колонок (x - mean) / std.
// mean и std считаются один раз по всем строкам и применяются к каждой строке:
// утечки между fit и transform внутри одного запуска быть не может.
type standardScaler struct {
	means []float64
	stds  []float64
}

// fitScaler вычисляет по каждой колонке среднее и популяционное
// стандартное отклонение (делитель N, как в sklearn StandardScaler).
func fitScaler(matrix [][]float64) *standardScaler {
	if len(matrix) == 0 {
		return &standardScaler{}
	}

	cols := len(matrix[0])
	means := make([]float64, cols)
	stds := make([]float64, cols)

	for j := 0; j < cols; j++ {
		var sum float64
		for i := range matrix {
			sum += matrix[i][j]
		}
		mean := sum / float64(len(matrix))
		means[j] = mean

		var sqSum float64
		for i := range matrix {
			d := matrix[i][j] - mean
			sqSum += d * d
		}
		stds[j] = math.Sqrt(sqSum / float64(len(matrix)))
	}

	return &standardScaler{means: means, stds: stds}
}

// transform возвращает новую матрицу со стандартизованными значениями.
// Колонка с нулевой дисперсией даёт нули, а не NaN — обязательная политика
// для вырожденных входов (в том числе N=1).
func (s *standardScaler) transform(matrix [][]float64) [][]float64 {
	scaled := make([][]float64, len(matrix))
	for i, row := range matrix {
		scaledRow := make([]float64, len(row))
		for j, v := range row {
			if s.stds[j] == 0 {
				scaledRow[j] = 0
				continue
			}
			scaledRow[j] = (v - s.means[j]) / s.stds[j]
		}
		scaled[i] = scaledRow
	}
	return scaled
}
