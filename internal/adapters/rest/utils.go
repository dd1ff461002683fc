package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"market-segmentation-service/internal/core/domain"
)

// WriteJSONError отправляет JSON-ответ с полем "error" и заданным статусом
func WriteJSONError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)

	json.NewEncoder(w).Encode(map[string]string{
		"error": message,
	})
}

// RespondWithJSON отправляет JSON-ответ
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Failed to marshal JSON response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// WriteDomainError маппит типизированные ошибки пайплайна на HTTP-статусы.
// Ошибки валидации — 400, всё остальное — 500.
func WriteDomainError(w http.ResponseWriter, err error) {
	var schemaErr *domain.SchemaValidationError
	if errors.As(err, &schemaErr) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error":           schemaErr.Error(),
			"missing_columns": schemaErr.MissingColumns,
		})
		return
	}

	var inputErr *domain.InvalidInputError
	if errors.As(err, &inputErr) {
		WriteJSONError(w, http.StatusBadRequest, inputErr.Error())
		return
	}

	var clusterErr *domain.InvalidClusterCountError
	if errors.As(err, &clusterErr) {
		WriteJSONError(w, http.StatusBadRequest, clusterErr.Error())
		return
	}

	WriteJSONError(w, http.StatusInternalServerError, "internal error")
}

// GetIntQueryOrDefault читает целочисленный query-параметр
// или возвращает значение по умолчанию.
func GetIntQueryOrDefault(r *http.Request, name string, defaultValue int) (int, error) {
	valueStr := r.URL.Query().Get(name)
	if valueStr == "" {
		return defaultValue, nil
	}
	return strconv.Atoi(valueStr)
}

// GetInt64QueryOrDefault читает int64 query-параметр (seed)
// или возвращает значение по умолчанию.
func GetInt64QueryOrDefault(r *http.Request, name string, defaultValue int64) (int64, error) {
	valueStr := r.URL.Query().Get(name)
	if valueStr == "" {
		return defaultValue, nil
	}
	return strconv.ParseInt(valueStr, 10, 64)
}
