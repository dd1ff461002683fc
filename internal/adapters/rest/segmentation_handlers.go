package rest

import (
	"encoding/json"
	"io"
	"net/http"

	"market-segmentation-service/internal/configs"
	"market-segmentation-service/internal/constants"
	"market-segmentation-service/internal/contextkeys"
	"market-segmentation-service/internal/contracts"
	"market-segmentation-service/internal/core/domain"
	"market-segmentation-service/internal/core/port"
	usecases_port "market-segmentation-service/internal/core/port/usecases_port"
)

const propertyDatasetSchema = "PropertyDataset/1.0.0"

type SegmentationHandler struct {
	segmentUC  usecases_port.SegmentMarketsUseCase
	generateUC usecases_port.GeneratePropertiesUseCase
	segCfg     configs.SegmentationConfig
}

func NewSegmentationHandler(segmentUC usecases_port.SegmentMarketsUseCase,
	generateUC usecases_port.GeneratePropertiesUseCase,
	segCfg configs.SegmentationConfig) *SegmentationHandler {
	return &SegmentationHandler{
		segmentUC:  segmentUC,
		generateUC: generateUC,
		segCfg:     segCfg,
	}
}

// resolveOptions достраивает параметры запуска из конфигурации сервиса:
// не заданные запросом clusters/seed берутся из окружения, а не из констант.
func (h *SegmentationHandler) resolveOptions(clusters int, seed *int64) domain.SegmentationOptions {
	opts := domain.SegmentationOptions{
		Clusters:      clusters,
		Seed:          seed,
		MaxIterations: h.segCfg.MaxIterations,
	}
	if opts.Clusters == 0 {
		opts.Clusters = h.segCfg.DefaultClusters
	}
	if opts.Seed == nil {
		opts.Seed = &h.segCfg.Seed
	}
	return opts
}

// SegmentMarkets обрабатывает POST /micro-markets/segment:
// валидация тела по схеме, маппинг в домен, запуск пайплайна.
func (h *SegmentationHandler) SegmentMarkets(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	body, err := io.ReadAll(r.Body)
	if err != nil {
		logger.Warn("Failed to read request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "SegmentMarkets: failed to read request body")
		return
	}

	if err := contracts.ValidateDataset(propertyDatasetSchema, body); err != nil {
		logger.Warn("Dataset failed schema validation", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req SegmentRequest
	if err := json.Unmarshal(body, &req); err != nil {
		logger.Warn("Failed to decode request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "SegmentMarkets: invalid JSON payload")
		return
	}

	records, err := req.toDomainRecords()
	if err != nil {
		logger.Warn("Dataset is missing required columns", port.Fields{"error": err.Error()})
		WriteDomainError(w, err)
		return
	}

	opts := h.resolveOptions(req.Clusters, req.Seed)

	handlerLogger := logger.WithFields(port.Fields{
		"handler":  "SegmentMarkets",
		"records":  len(records),
		"clusters": opts.Clusters,
	})
	handlerLogger.Info("Processing request", nil)

	result, err := h.segmentUC.Segment(r.Context(), records, opts)
	if err != nil {
		handlerLogger.Error("Use case failed", err, nil)
		WriteDomainError(w, err)
		return
	}

	handlerLogger.Info("Segmentation finished", port.Fields{
		"underpriced": result.Summary.UnderpricedCount,
		"overpriced":  result.Summary.OverpricedCount,
	})
	RespondWithJSON(w, http.StatusOK, toSegmentationResponse(result))
}

// DemoSegmentation обрабатывает GET /micro-markets/demo:
// синтетический датасет прогоняется через тот же пайплайн.
func (h *SegmentationHandler) DemoSegmentation(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	count, err := GetIntQueryOrDefault(r, "count", 100)
	if err != nil || count < 1 {
		logger.Warn("Invalid 'count' parameter", nil)
		WriteJSONError(w, http.StatusBadRequest, "DemoSegmentation: invalid count value")
		return
	}

	clusters, err := GetIntQueryOrDefault(r, "clusters", h.segCfg.DefaultClusters)
	if err != nil {
		logger.Warn("Invalid 'clusters' parameter", nil)
		WriteJSONError(w, http.StatusBadRequest, "DemoSegmentation: invalid clusters value")
		return
	}
	if clusters < constants.MinRecommendedK || clusters > constants.MaxRecommendedK {
		logger.Warn("Cluster count outside recommended range", port.Fields{
			"clusters":        clusters,
			"recommended_min": constants.MinRecommendedK,
			"recommended_max": constants.MaxRecommendedK,
		})
	}

	seed, err := GetInt64QueryOrDefault(r, "seed", h.segCfg.Seed)
	if err != nil {
		logger.Warn("Invalid 'seed' parameter", nil)
		WriteJSONError(w, http.StatusBadRequest, "DemoSegmentation: invalid seed value")
		return
	}

	handlerLogger := logger.WithFields(port.Fields{
		"handler":  "DemoSegmentation",
		"count":    count,
		"clusters": clusters,
	})
	handlerLogger.Info("Processing request", nil)

	records, err := h.generateUC.Generate(r.Context(), count, seed)
	if err != nil {
		handlerLogger.Error("Synthetic generation failed", err, nil)
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.segmentUC.Segment(r.Context(), records, h.resolveOptions(clusters, &seed))
	if err != nil {
		handlerLogger.Error("Use case failed", err, nil)
		WriteDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, toSegmentationResponse(result))
}
