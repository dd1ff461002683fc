package rest

import (
	"context"
	"net/http"

	core_port "market-segmentation-service/internal/core/port"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type Server struct {
	httpServer *http.Server
	logger     core_port.LoggerPort
}

// NewRouter собирает маршруты API. Вынесен отдельно,
// чтобы его можно было поднять в httptest.
func NewRouter(segmentationHandlers *SegmentationHandler,
	yieldHandlers *YieldHandler,
	baseLogger core_port.LoggerPort) chi.Router {

	r := chi.NewRouter()

	// Стандартные middleware
	r.Use(middleware.RealIP, LoggerMiddleware(baseLogger), middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		// Запросы приходят из браузерных дашбордов
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Trace-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/micro-markets/segment", segmentationHandlers.SegmentMarkets)
		r.Get("/micro-markets/demo", segmentationHandlers.DemoSegmentation)

		r.Post("/rental-yield/segment", yieldHandlers.SegmentByYield)

		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	return r
}

func NewServer(port string,
	segmentationHandlers *SegmentationHandler,
	yieldHandlers *YieldHandler,
	baseLogger core_port.LoggerPort) *Server {

	r := NewRouter(segmentationHandlers, yieldHandlers, baseLogger)

	return &Server{
		httpServer: &http.Server{
			Addr:    ":" + port,
			Handler: r,
		},
		logger: baseLogger,
	}
}

func (s *Server) Start() error {
	s.logger.Info("Starting REST server", core_port.Fields{"address": s.httpServer.Addr})
	return s.httpServer.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST server...", nil)
	return s.httpServer.Shutdown(ctx)
}
