// Package api exposes classification, extraction, and quality
// processing over HTTP.
package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jalsetu/extractor/internal/domain"
	"github.com/jalsetu/extractor/internal/extractor"
	"github.com/jalsetu/extractor/internal/logging"
	"github.com/jalsetu/extractor/internal/processor"
	"github.com/jalsetu/extractor/internal/quality"
)

// Handler serves the extraction API.
type Handler struct {
	classifier *extractor.ContentClassifier
	extractor  *extractor.PatternExtractor
	pipeline   *quality.Pipeline
	batch      *processor.BatchProcessor
	maxItems   int
	logger     logging.Logger
}

// NewHandler creates the API handler. maxItems caps the number of
// inputs accepted by the batch endpoint.
func NewHandler(
	classifier *extractor.ContentClassifier,
	patternExtractor *extractor.PatternExtractor,
	pipeline *quality.Pipeline,
	batch *processor.BatchProcessor,
	maxItems int,
	logger logging.Logger,
) *Handler {
	return &Handler{
		classifier: classifier,
		extractor:  patternExtractor,
		pipeline:   pipeline,
		batch:      batch,
		maxItems:   maxItems,
		logger:     logger,
	}
}

// RegisterRoutes mounts the API under /api/v1 plus the health endpoint.
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.GET("/health", h.Health)

	v1 := router.Group("/api/v1")
	{
		v1.POST("/classify", h.Classify)
		v1.POST("/extract", h.Extract)
		v1.POST("/process", h.ProcessRecords)
		v1.POST("/batch", h.ProcessBatch)
	}
}

// Health reports service liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

type classifyRequest struct {
	Text string `json:"text" binding:"required"`
}

// Classify returns the content type for a piece of raw text.
func (h *Handler) Classify(c *gin.Context) {
	var req classifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"content_type": h.classifier.Classify(req.Text),
	})
}

type extractRequest struct {
	Text        string `json:"text" binding:"required"`
	ContentType string `json:"content_type"`
}

// Extract classifies (unless a content type is supplied) and runs
// pattern extraction, returning the raw candidate records.
func (h *Handler) Extract(c *gin.Context) {
	var req extractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}

	var contentType domain.ContentType
	if req.ContentType != "" {
		if !domain.IsKnownContentType(req.ContentType) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown content_type: " + req.ContentType})
			return
		}
		contentType = domain.NormalizeContentType(req.ContentType)
	} else {
		contentType = h.classifier.Classify(req.Text)
	}

	records := h.extractor.Extract(req.Text, contentType)
	c.JSON(http.StatusOK, gin.H{
		"content_type": contentType,
		"records":      records,
		"count":        len(records),
	})
}

type processRequest struct {
	Records  []domain.Record `json:"records" binding:"required"`
	DataType string          `json:"data_type" binding:"required"`
}

// ProcessRecords runs the quality pipeline over caller-supplied records.
func (h *Handler) ProcessRecords(c *gin.Context) {
	var req processRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "records and data_type are required"})
		return
	}
	if !domain.IsKnownContentType(req.DataType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown data_type: " + req.DataType})
		return
	}

	contentType := domain.NormalizeContentType(req.DataType)
	records, stats := h.pipeline.Process(req.Records, contentType)
	c.JSON(http.StatusOK, gin.H{
		"records": records,
		"stats":   stats,
	})
}

type batchRequest struct {
	Inputs []processor.Input `json:"inputs" binding:"required"`
}

// ProcessBatch runs the full classify-extract-process pipeline over a
// batch of raw text inputs.
func (h *Handler) ProcessBatch(c *gin.Context) {
	var req batchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "inputs are required"})
		return
	}
	if h.maxItems > 0 && len(req.Inputs) > h.maxItems {
		c.JSON(http.StatusBadRequest, gin.H{"error": "batch too large"})
		return
	}
	for i, input := range req.Inputs {
		if input.ContentType == "" {
			continue
		}
		if !domain.IsKnownContentType(string(input.ContentType)) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown content_type: " + string(input.ContentType)})
			return
		}
		req.Inputs[i].ContentType = domain.NormalizeContentType(string(input.ContentType))
	}

	result, err := h.batch.Process(c.Request.Context(), req.Inputs)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			c.JSON(http.StatusRequestTimeout, gin.H{"error": "batch processing cancelled"})
			return
		}
		h.logger.Error("batch processing failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "batch processing failed"})
		return
	}
	c.JSON(http.StatusOK, result)
}
