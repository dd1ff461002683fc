// Пакетный анализатор: читает CSV-датасет, прогоняет его через пайплайн
// сегментации и пишет обогащённый CSV плюс текстовый отчёт по микро-рынкам.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	csv_adapter "market-segmentation-service/internal/adapters/csv"
	logger_adapter "market-segmentation-service/internal/adapters/logger"
	"market-segmentation-service/internal/constants"
	"market-segmentation-service/internal/contextkeys"
	"market-segmentation-service/internal/core/domain"
	"market-segmentation-service/internal/core/port"
	"market-segmentation-service/internal/core/usecase"
)

func main() {
	inputPath := flag.String("input", "", "path to input CSV dataset")
	outputPath := flag.String("output", "enriched_properties.csv", "path for the enriched CSV")
	reportPath := flag.String("report", "market_analysis_report.txt", "path for the text report")
	clusters := flag.Int("k", constants.DefaultClusters, "number of micro-markets")
	seed := flag.Int64("seed", constants.DefaultSeed, "clustering seed")
	flag.Parse()

	if *inputPath == "" {
		log.Fatal("Usage: analyzer -input data.csv [-k 5] [-seed 42] [-output enriched.csv] [-report report.txt]")
	}

	logger := logger_adapter.NewSlogAdapter(logger_adapter.SlogConfig{UseColor: true})
	ctx := contextkeys.ContextWithLogger(context.Background(), logger)

	if *clusters < constants.MinRecommendedK || *clusters > constants.MaxRecommendedK {
		logger.Warn("Cluster count outside recommended range", port.Fields{
			"clusters":        *clusters,
			"recommended_min": constants.MinRecommendedK,
			"recommended_max": constants.MaxRecommendedK,
		})
	}

	var reader port.DatasetSourcePort = csv_adapter.NewDatasetReader(logger)
	records, err := reader.ReadProperties(ctx, *inputPath)
	if err != nil {
		log.Fatalf("Failed to read dataset: %v", err)
	}

	segmentUC := usecase.NewSegmentMarketsUseCase()
	result, err := segmentUC.Segment(ctx, records, domain.SegmentationOptions{
		Clusters: *clusters,
		Seed:     seed,
	})
	if err != nil {
		log.Fatalf("Segmentation failed: %v", err)
	}

	var writer port.ReportSinkPort = csv_adapter.NewReportWriter(logger)
	if err := writer.WriteEnriched(ctx, *outputPath, result); err != nil {
		log.Fatalf("Failed to write enriched CSV: %v", err)
	}

	// --- Текстовый отчёт ---
	reportFile, err := os.Create(*reportPath)
	if err != nil {
		log.Fatalf("Не удалось создать файл для отчета: %v", err)
	}
	defer reportFile.Close()

	fmt.Fprintf(reportFile, "Проанализировано объектов: %d (k=%d, seed=%d)\n\n", result.Summary.TotalProperties, *clusters, *seed)
	fmt.Fprintf(reportFile, "Underpriced: %d\n", result.Summary.UnderpricedCount)
	fmt.Fprintf(reportFile, "Overpriced:  %d\n", result.Summary.OverpricedCount)
	fmt.Fprintf(reportFile, "Fair:        %d\n\n", result.Summary.TotalProperties-result.Summary.UnderpricedCount-result.Summary.OverpricedCount)

	fmt.Fprintln(reportFile, "--- Микро-рынки ---")
	for _, m := range result.Markets {
		fmt.Fprintf(reportFile, "market %d: %d объектов, медиана аренды %.2f за sqft\n", m.ID, m.Size, m.Median)
	}

	fmt.Printf("Анализ завершен. Результаты: %s, отчет: %s\n", *outputPath, *reportPath)
}
