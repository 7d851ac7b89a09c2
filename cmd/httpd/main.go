// Command httpd serves the extraction API over HTTP.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/jalsetu/extractor/internal/api"
	"github.com/jalsetu/extractor/internal/config"
	"github.com/jalsetu/extractor/internal/extractor"
	"github.com/jalsetu/extractor/internal/logging"
	"github.com/jalsetu/extractor/internal/processor"
	"github.com/jalsetu/extractor/internal/quality"
	"github.com/jalsetu/extractor/internal/server"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.New(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer logging.Sync(logger)

	logger.Info("starting service",
		"name", cfg.Service.Name,
		"version", cfg.Service.Version,
		"port", cfg.Service.Port,
	)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := processor.NewMetrics(registry)

	classifier := extractor.NewContentClassifier(logger)
	patternExtractor := extractor.NewPatternExtractor(logger)

	validator := quality.NewValidator()
	pipeline := quality.NewPipeline(
		quality.NewDeduplicator(logger),
		quality.NewScorer(validator, logger),
		validator,
		cfg.Pipeline.MinQualityScore,
		logger,
	)
	batch := processor.NewBatchProcessor(
		classifier, patternExtractor, pipeline,
		cfg.Pipeline.Concurrency, metrics, logger,
	)
	handler := api.NewHandler(
		classifier, patternExtractor, pipeline, batch,
		cfg.Pipeline.MaxBatchItems, logger,
	)

	srv := server.New(cfg.Service.Port, cfg.Service.Debug, handler, registry, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return srv.Run(ctx)
}
