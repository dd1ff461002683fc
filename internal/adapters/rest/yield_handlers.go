package rest

import (
	"encoding/json"
	"io"
	"net/http"

	"market-segmentation-service/internal/configs"
	"market-segmentation-service/internal/contextkeys"
	"market-segmentation-service/internal/contracts"
	"market-segmentation-service/internal/core/domain"
	"market-segmentation-service/internal/core/port"
	usecases_port "market-segmentation-service/internal/core/port/usecases_port"
)

const yieldDatasetSchema = "RentalYieldDataset/1.0.0"

type YieldHandler struct {
	computeYieldUC usecases_port.ComputeYieldUseCase
	segCfg         configs.SegmentationConfig
}

func NewYieldHandler(computeYieldUC usecases_port.ComputeYieldUseCase,
	segCfg configs.SegmentationConfig) *YieldHandler {
	return &YieldHandler{computeYieldUC: computeYieldUC, segCfg: segCfg}
}

// SegmentByYield обрабатывает POST /rental-yield/segment.
func (h *YieldHandler) SegmentByYield(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	body, err := io.ReadAll(r.Body)
	if err != nil {
		logger.Warn("Failed to read request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "SegmentByYield: failed to read request body")
		return
	}

	if err := contracts.ValidateDataset(yieldDatasetSchema, body); err != nil {
		logger.Warn("Dataset failed schema validation", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req YieldSegmentRequest
	if err := json.Unmarshal(body, &req); err != nil {
		logger.Warn("Failed to decode request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "SegmentByYield: invalid JSON payload")
		return
	}

	records, err := req.toDomainRecords()
	if err != nil {
		logger.Warn("Dataset is missing required columns", port.Fields{"error": err.Error()})
		WriteDomainError(w, err)
		return
	}

	opts := domain.SegmentationOptions{
		Clusters:      req.Clusters,
		Seed:          req.Seed,
		MaxIterations: h.segCfg.MaxIterations,
	}
	if opts.Clusters == 0 {
		opts.Clusters = h.segCfg.DefaultClusters
	}
	if opts.Seed == nil {
		opts.Seed = &h.segCfg.Seed
	}

	handlerLogger := logger.WithFields(port.Fields{
		"handler":  "SegmentByYield",
		"records":  len(records),
		"clusters": opts.Clusters,
	})
	handlerLogger.Info("Processing request", nil)

	result, err := h.computeYieldUC.Segment(r.Context(), records, opts)
	if err != nil {
		handlerLogger.Error("Use case failed", err, nil)
		WriteDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, toYieldSegmentationResponse(result))
}
