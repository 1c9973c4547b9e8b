package calculator

import (
	"factorrank/internal/domain"

	"github.com/montanaflynn/stats"
)

// metricUniverse holds the cross-sectional stats for one metric
// field. building it once per field and reusing it for every stock
// gives the same z-scores as recomputing per stock
type metricUniverse struct {
	field string
	mean  float64
	stdev float64
	// false when there are < 2 valid values or the values
	// are all identical. such a metric contributes nothing
	scorable bool
}

func newMetricUniverse(field string, universe []domain.MetricRecord) metricUniverse {
	mu := metricUniverse{field: field}

	dataset := []float64{}
	for _, record := range universe {
		if v, ok := record.Value(field); ok {
			dataset = append(dataset, v)
		}
	}
	if len(dataset) < 2 {
		return mu
	}

	mean, err := stats.Mean(dataset)
	if err != nil {
		return mu
	}
	stdev, err := stats.StandardDeviationPopulation(dataset)
	if err != nil || stdev == 0 {
		return mu
	}

	mu.mean = mean
	mu.stdev = stdev
	mu.scorable = true
	return mu
}

func (mu metricUniverse) zScore(record domain.MetricRecord, direction domain.Direction) *float64 {
	if !mu.scorable {
		return nil
	}
	v, ok := record.Value(mu.field)
	if !ok {
		return nil
	}
	z := (v - mu.mean) / mu.stdev
	if direction == domain.LowerIsBetter {
		z = -z
	}
	return &z
}

// Normalize computes the z-score of ticker's value for field relative
// to the universe, negated for lower-is-better metrics so that higher
// is always better. nil means the metric contributes nothing for this
// stock
func Normalize(field string, universe []domain.MetricRecord, ticker string, direction domain.Direction) *float64 {
	record, ok := findRecord(universe, ticker)
	if !ok {
		return nil
	}
	return newMetricUniverse(field, universe).zScore(record, direction)
}

func findRecord(universe []domain.MetricRecord, ticker string) (domain.MetricRecord, bool) {
	for _, record := range universe {
		if record.Ticker == ticker {
			return record, true
		}
	}
	return domain.MetricRecord{}, false
}
