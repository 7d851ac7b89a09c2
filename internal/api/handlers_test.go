package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jalsetu/extractor/internal/extractor"
	"github.com/jalsetu/extractor/internal/logging"
	"github.com/jalsetu/extractor/internal/processor"
	"github.com/jalsetu/extractor/internal/quality"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	logger := logging.NewNop()
	classifier := extractor.NewContentClassifier(logger)
	patternExtractor := extractor.NewPatternExtractor(logger)
	validator := quality.NewValidator()
	pipeline := quality.NewPipeline(
		quality.NewDeduplicator(logger),
		quality.NewScorer(validator, logger),
		validator,
		0,
		logger,
	)
	batch := processor.NewBatchProcessor(classifier, patternExtractor, pipeline, 2, nil, logger)
	handler := NewHandler(classifier, patternExtractor, pipeline, batch, 10, logger)

	router := gin.New()
	handler.RegisterRoutes(router)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	router := newTestRouter()

	rec := doJSON(t, router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, rec.Body.String())
}

func TestClassifyEndpoint(t *testing.T) {
	router := newTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/api/v1/classify", gin.H{
		"text": "The irrigation scheme offers subsidy for farmers",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "government_scheme", resp["content_type"])
}

func TestClassifyEndpointRequiresText(t *testing.T) {
	router := newTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/api/v1/classify", gin.H{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExtractEndpoint(t *testing.T) {
	router := newTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/api/v1/extract", gin.H{
		"text":         "Rainfall: 25.5 mm recorded on 15/08/2024",
		"content_type": "weather_data",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		ContentType string           `json:"content_type"`
		Records     []map[string]any `json:"records"`
		Count       int              `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "weather_data", resp.ContentType)
	require.Equal(t, 1, resp.Count)
	assert.InDelta(t, 25.5, resp.Records[0]["rainfall_mm"], 1e-9)
}

func TestExtractEndpointRejectsUnknownType(t *testing.T) {
	router := newTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/api/v1/extract", gin.H{
		"text":         "some text",
		"content_type": "astrology",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProcessEndpoint(t *testing.T) {
	router := newTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/api/v1/process", gin.H{
		"data_type": "government_schemes",
		"records": []gin.H{
			{
				"scheme_name":    "Pradhan Mantri Krishi Sinchayee Yojana",
				"content":        "Rainwater harvesting and irrigation subsidy for watershed conservation",
				"subsidy_info":   "Rs. 50,000",
				"extracted_date": "2026-08-30T00:00:00Z",
			},
		},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Records []map[string]any `json:"records"`
		Stats   quality.Stats    `json:"stats"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Stats.Input)
	assert.Equal(t, 1, resp.Stats.Output)
	require.Len(t, resp.Records, 1)
	assert.Contains(t, resp.Records[0], "quality_score")
}

func TestProcessEndpointRejectsUnknownDataType(t *testing.T) {
	router := newTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/api/v1/process", gin.H{
		"data_type": "astrology",
		"records":   []gin.H{{"content": "x"}},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBatchEndpoint(t *testing.T) {
	router := newTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/api/v1/batch", gin.H{
		"inputs": []gin.H{
			{"id": "page-1", "text": "Rainfall: 25.5 mm recorded on 15/08/2024", "content_type": "weather_data"},
		},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Records map[string][]map[string]any `json:"records"`
		Stats   map[string]quality.Stats    `json:"stats"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Contains(t, resp.Records, "weather_data")
	assert.Equal(t, 1, resp.Stats["weather_data"].Output)
}

func TestBatchEndpointLimitsSize(t *testing.T) {
	router := newTestRouter()

	inputs := make([]gin.H, 11)
	for i := range inputs {
		inputs[i] = gin.H{"id": "x", "text": "some text"}
	}
	rec := doJSON(t, router, http.MethodPost, "/api/v1/batch", gin.H{"inputs": inputs})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
