package domain

import (
	"fmt"
	"strings"
)

// SchemaValidationError — в датасете отсутствуют обязательные колонки.
// Пайплайн прерывается до любых вычислений; список имён возвращается целиком.
type SchemaValidationError struct {
	MissingColumns []string
}

func (e *SchemaValidationError) Error() string {
	return fmt.Sprintf("dataset is missing required columns: %s", strings.Join(e.MissingColumns, ", "))
}

// InvalidInputError — запись с недопустимым значением (неположительный
// знаменатель). Отклоняется весь батч, а не отдельная строка.
type InvalidInputError struct {
	Row    int
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input at row %d, field %q: %s", e.Row, e.Field, e.Reason)
}

// InvalidClusterCountError — k вне диапазона [1, N].
type InvalidClusterCountError struct {
	K int
	N int
}

func (e *InvalidClusterCountError) Error() string {
	return fmt.Sprintf("invalid cluster count %d for %d records (expected 1 <= k <= N)", e.K, e.N)
}
