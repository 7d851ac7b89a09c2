// Package processor fans extraction out across many raw-text inputs and
// funnels the results through the quality pipeline.
package processor

import (
	"context"
	"sync"
	"time"

	"github.com/jalsetu/extractor/internal/domain"
	"github.com/jalsetu/extractor/internal/extractor"
	"github.com/jalsetu/extractor/internal/logging"
	"github.com/jalsetu/extractor/internal/quality"
)

const defaultConcurrency = 10

// Input is one unit of raw text supplied by a collaborator (a scraped
// page, a document). ContentType may be empty, in which case the
// classifier decides.
type Input struct {
	ID          string             `json:"id"`
	Text        string             `json:"text"`
	ContentType domain.ContentType `json:"content_type,omitempty"`
}

// BatchResult groups the processed records and pipeline stats per
// content type.
type BatchResult struct {
	Records map[domain.ContentType][]domain.Record `json:"records"`
	Stats   map[domain.ContentType]quality.Stats   `json:"stats"`
}

// BatchProcessor runs classify+extract concurrently over a batch of
// inputs. Each unit of work is independent; results are merged back in
// input order before the quality pipeline runs, so first-occurrence-wins
// deduplication holds regardless of worker scheduling.
type BatchProcessor struct {
	classifier  *extractor.ContentClassifier
	extractor   *extractor.PatternExtractor
	pipeline    *quality.Pipeline
	concurrency int
	metrics     *Metrics
	logger      logging.Logger
}

// NewBatchProcessor creates a batch processor. Concurrency <= 0 selects
// the default worker count; metrics may be nil.
func NewBatchProcessor(
	classifier *extractor.ContentClassifier,
	patternExtractor *extractor.PatternExtractor,
	pipeline *quality.Pipeline,
	concurrency int,
	metrics *Metrics,
	logger logging.Logger,
) *BatchProcessor {
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}
	return &BatchProcessor{
		classifier:  classifier,
		extractor:   patternExtractor,
		pipeline:    pipeline,
		concurrency: concurrency,
		metrics:     metrics,
		logger:      logger,
	}
}

type extractionResult struct {
	contentType domain.ContentType
	records     []domain.Record
}

// Process extracts records from every input and runs the quality
// pipeline once per content type over the order-stable merged sequence.
func (b *BatchProcessor) Process(ctx context.Context, inputs []Input) (*BatchResult, error) {
	result := &BatchResult{
		Records: make(map[domain.ContentType][]domain.Record),
		Stats:   make(map[domain.ContentType]quality.Stats),
	}
	if len(inputs) == 0 {
		return result, nil
	}

	b.logger.Info("starting batch processing",
		"batch_size", len(inputs),
		"concurrency", b.concurrency,
	)
	startTime := time.Now()

	// Results are written by input index so the merge preserves the
	// caller's ordering.
	extracted := make([]extractionResult, len(inputs))
	jobs := make(chan int, len(inputs))

	var wg sync.WaitGroup
	for w := 0; w < b.concurrency; w++ {
		wg.Add(1)
		go b.worker(ctx, w, inputs, extracted, jobs, &wg)
	}
	for i := range inputs {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	merged := make(map[domain.ContentType][]domain.Record)
	for _, ex := range extracted {
		if len(ex.records) == 0 {
			continue
		}
		merged[ex.contentType] = append(merged[ex.contentType], ex.records...)
		if b.metrics != nil {
			b.metrics.RecordsExtracted(ex.contentType, len(ex.records))
		}
	}

	for contentType, records := range merged {
		processed, stats := b.pipeline.Process(records, contentType)
		result.Records[contentType] = processed
		result.Stats[contentType] = stats
		if b.metrics != nil {
			b.metrics.PipelineStats(contentType, stats)
		}
	}

	b.logger.Info("batch processing complete",
		"inputs", len(inputs),
		"content_types", len(result.Records),
		"duration_ms", time.Since(startTime).Milliseconds(),
	)
	return result, nil
}

// worker pulls input indices from jobs and stores extraction results in
// place.
func (b *BatchProcessor) worker(
	ctx context.Context,
	id int,
	inputs []Input,
	extracted []extractionResult,
	jobs <-chan int,
	wg *sync.WaitGroup,
) {
	defer wg.Done()

	for i := range jobs {
		select {
		case <-ctx.Done():
			b.logger.Warn("worker stopping due to context cancellation", "worker_id", id)
			return
		default:
		}

		input := inputs[i]
		contentType := input.ContentType
		if contentType == "" {
			contentType = b.classifier.Classify(input.Text)
		}
		extracted[i] = extractionResult{
			contentType: contentType,
			records:     b.extractor.Extract(input.Text, contentType),
		}

		b.logger.Debug("input processed",
			"input_id", input.ID,
			"content_type", string(contentType),
			"records", len(extracted[i].records),
		)
	}
}
