// Command processor runs the extraction pipeline over text files and
// exports the processed records.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jalsetu/extractor/internal/config"
	"github.com/jalsetu/extractor/internal/domain"
	"github.com/jalsetu/extractor/internal/export"
	"github.com/jalsetu/extractor/internal/extractor"
	"github.com/jalsetu/extractor/internal/logging"
	"github.com/jalsetu/extractor/internal/processor"
	"github.com/jalsetu/extractor/internal/quality"
	"github.com/jalsetu/extractor/internal/storage"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to YAML config file")
	inputPath := flag.String("input", "", "text file or directory of .txt files to process")
	forcedType := flag.String("type", "", "force a content type instead of classifying")
	outputDir := flag.String("out", "", "override export output directory")
	flag.Parse()

	if *inputPath == "" {
		return fmt.Errorf("-input is required")
	}
	if *forcedType != "" && !domain.IsKnownContentType(*forcedType) {
		return fmt.Errorf("unknown content type: %s", *forcedType)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if *outputDir != "" {
		cfg.Export.OutputDir = *outputDir
	}

	logger, err := logging.New(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer logging.Sync(logger)

	var contentType domain.ContentType
	if *forcedType != "" {
		contentType = domain.NormalizeContentType(*forcedType)
	}
	inputs, err := readInputs(*inputPath, contentType)
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		return fmt.Errorf("no .txt inputs found at %s", *inputPath)
	}

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
		cfg.Pipeline.Concurrency, nil, logger,
	)

	ctx := context.Background()
	result, err := batch.Process(ctx, inputs)
	if err != nil {
		return fmt.Errorf("process batch: %w", err)
	}

	exporter := export.NewExporter(cfg.Export.OutputDir, cfg.Export.FilePrefix, logger)

	var store *storage.Store
	if cfg.Storage.Enabled {
		store, err = storage.NewStore(cfg.Storage.Path, logger)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer store.Close()
	}

	for _, contentType := range sortedTypes(result.Records) {
		records := result.Records[contentType]
		if _, err := exporter.ExportJSON(records, contentType); err != nil {
			return err
		}
		if _, err := exporter.ExportCSV(records, contentType); err != nil {
			return err
		}
		if _, err := exporter.ExportSummary(contentType, result.Stats[contentType]); err != nil {
			return err
		}
		if store != nil {
			if _, err := store.SaveBatch(ctx, contentType, records); err != nil {
				return err
			}
		}
	}

	logger.Info("processing finished",
		"inputs", len(inputs),
		"content_types", len(result.Records),
		"output_dir", cfg.Export.OutputDir,
	)
	return nil
}

// readInputs loads a single text file, or every .txt file directly
// under a directory, sorted by name.
func readInputs(path string, contentType domain.ContentType) ([]processor.Input, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat input: %w", err)
	}

	var files []string
	if info.IsDir() {
		entries, err := os.ReadDir(path)
		if err != nil {
			return nil, fmt.Errorf("read input dir: %w", err)
		}
		for _, entry := range entries {
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".txt") {
				continue
			}
			files = append(files, filepath.Join(path, entry.Name()))
		}
		sort.Strings(files)
	} else {
		files = []string{path}
	}

	inputs := make([]processor.Input, 0, len(files))
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", file, err)
		}
		inputs = append(inputs, processor.Input{
			ID:          filepath.Base(file),
			Text:        string(data),
			ContentType: contentType,
		})
	}
	return inputs, nil
}

func sortedTypes(records map[domain.ContentType][]domain.Record) []domain.ContentType {
	types := make([]domain.ContentType, 0, len(records))
	for ct := range records {
		types = append(types, ct)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}
