package extractor

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jalsetu/extractor/internal/domain"
	"github.com/jalsetu/extractor/internal/logging"
)

func TestClassify(t *testing.T) {
	classifier := NewContentClassifier(logging.NewNop())

	tests := []struct {
		name string
		text string
		want domain.ContentType
	}{
		{
			name: "government scheme",
			text: "The new irrigation scheme offers subsidy for farmers",
			want: domain.TypeGovernmentScheme,
		},
		{
			name: "weather data",
			text: "Rainfall measured 25mm with temperature reaching 35 degrees",
			want: domain.TypeWeatherData,
		},
		{
			name: "cost data",
			text: "Cement price per bag, supplier quotes available",
			want: domain.TypeCostData,
		},
		{
			name: "technical resource",
			text: "Technical specification and installation procedure",
			want: domain.TypeTechnicalResource,
		},
		{
			name: "single keyword is not enough",
			text: "scheme announced today",
			want: domain.TypeGeneral,
		},
		{
			name: "no keywords",
			text: "hello there friend",
			want: domain.TypeGeneral,
		},
		{
			name: "empty text",
			text: "",
			want: domain.TypeGeneral,
		},
		{
			name: "uppercase keywords match",
			text: "YOJANA ELIGIBILITY details published",
			want: domain.TypeGovernmentScheme,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifier.Classify(tt.text))
		})
	}
}

func TestClassifyPriorityOrder(t *testing.T) {
	classifier := NewContentClassifier(logging.NewNop())

	// Both the scheme and cost categories clear the threshold; the
	// earlier category wins regardless of match counts.
	text := "Subsidy scheme lists price and cost of tanks"
	assert.Equal(t, domain.TypeGovernmentScheme, classifier.Classify(text))
}

func TestClassifyConcurrent(t *testing.T) {
	classifier := NewContentClassifier(logging.NewNop())

	// One classifier is shared by all batch workers and HTTP requests;
	// racing calls must still return the same category as a lone call.
	inputs := []struct {
		text string
		want domain.ContentType
	}{
		{"The new irrigation scheme offers subsidy for farmers", domain.TypeGovernmentScheme},
		{"Rainfall measured 25mm with temperature reaching 35 degrees", domain.TypeWeatherData},
		{"Cement price per bag, supplier quotes available", domain.TypeCostData},
		{"Technical specification and installation procedure", domain.TypeTechnicalResource},
		{"hello there friend", domain.TypeGeneral},
	}

	const goroutines = 8
	const iterations = 200

	errs := make(chan string, goroutines)
	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(offset int) {
			defer wg.Done()
			for i := 0; i < iterations; i++ {
				in := inputs[(offset+i)%len(inputs)]
				if got := classifier.Classify(in.text); got != in.want {
					errs <- string(got) + " for " + in.text
					return
				}
			}
		}(g)
	}
	wg.Wait()
	close(errs)

	for msg := range errs {
		t.Errorf("unexpected classification under concurrency: %s", msg)
	}
}

func TestClassifyRepeatedKeywordCountsOnce(t *testing.T) {
	classifier := NewContentClassifier(logging.NewNop())

	// One distinct keyword repeated does not reach the threshold.
	text := "scheme scheme scheme scheme"
	assert.Equal(t, domain.TypeGeneral, classifier.Classify(text))
}
