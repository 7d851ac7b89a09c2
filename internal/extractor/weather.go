package extractor

import (
	"strconv"
	"strings"

	"github.com/jalsetu/extractor/internal/domain"
)

// extractWeather pulls weather readings out of individual lines. Numeric
// captures that fail to parse are dropped, never surfaced as errors.
func (e *PatternExtractor) extractWeather(text string) []domain.Record {
	var records []domain.Record

	for _, line := range strings.Split(text, "\n") {
		if runeLen(strings.TrimSpace(line)) < minLineLen {
			continue
		}

		record := domain.Record{}

		if v, ok := firstGroup(rainfallRe, line); ok {
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				record[domain.FieldRainfallMM] = f
			}
		}
		if v, ok := firstGroup(temperatureRe, line); ok {
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				record[domain.FieldTemperatureC] = f
			}
		}
		if v, ok := firstGroup(humidityRe, line); ok {
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				record[domain.FieldHumidityPct] = f
			}
		}
		if v, ok := firstGroup(weatherDateRe, line); ok {
			record[domain.FieldDate] = v
		}

		record[domain.FieldSourceText] = line
		record[domain.FieldExtractedDate] = domain.Now()

		if len(record) > minPopulatedFields {
			records = append(records, record)
		}
	}

	return records
}
