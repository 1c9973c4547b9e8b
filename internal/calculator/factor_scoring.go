package calculator

import (
	"factorrank/internal/domain"
	"fmt"
	"sort"
)

var factorDefinitions = []domain.FactorDefinition{
	{
		Name: domain.FactorValue,
		Metrics: []domain.FactorMetric{
			{Field: domain.MetricPeRatio, Direction: domain.LowerIsBetter, Weight: 0.4},
			{Field: domain.MetricPbRatio, Direction: domain.LowerIsBetter, Weight: 0.3},
			{Field: domain.MetricPsRatio, Direction: domain.LowerIsBetter, Weight: 0.2},
			{Field: domain.MetricDividendYield, Direction: domain.HigherIsBetter, Weight: 0.1},
		},
	},
	{
		Name: domain.FactorQuality,
		Metrics: []domain.FactorMetric{
			{Field: domain.MetricRoe, Direction: domain.HigherIsBetter, Weight: 0.4},
			{Field: domain.MetricRoa, Direction: domain.HigherIsBetter, Weight: 0.3},
			{Field: domain.MetricProfitMargin, Direction: domain.HigherIsBetter, Weight: 0.3},
		},
	},
	{
		Name: domain.FactorGrowth,
		Metrics: []domain.FactorMetric{
			{Field: domain.MetricRevenueGrowth, Direction: domain.HigherIsBetter, Weight: 0.5},
			{Field: domain.MetricEarningsGrowth, Direction: domain.HigherIsBetter, Weight: 0.5},
		},
	},
	{
		Name: domain.FactorMomentum,
		Metrics: []domain.FactorMetric{
			{Field: domain.MetricReturn1W, Direction: domain.HigherIsBetter, Weight: 0.2},
			{Field: domain.MetricReturn1M, Direction: domain.HigherIsBetter, Weight: 0.3},
			{Field: domain.MetricReturn3M, Direction: domain.HigherIsBetter, Weight: 0.5},
		},
	},
	{
		Name: domain.FactorRisk,
		Metrics: []domain.FactorMetric{
			{Field: domain.MetricVolatility, Direction: domain.LowerIsBetter, Weight: 0.5},
			{Field: domain.MetricBeta, Direction: domain.LowerIsBetter, Weight: 0.3},
			{Field: domain.MetricDebtToEquity, Direction: domain.LowerIsBetter, Weight: 0.2},
		},
	},
}

func init() {
	for _, def := range factorDefinitions {
		if err := def.Validate(); err != nil {
			panic(fmt.Errorf("invalid factor catalog: %w", err))
		}
	}
}

// FactorDefinitions returns a copy of the factor catalog in
// aggregation order
func FactorDefinitions() []domain.FactorDefinition {
	out := make([]domain.FactorDefinition, len(factorDefinitions))
	for i, def := range factorDefinitions {
		metrics := make([]domain.FactorMetric, len(def.Metrics))
		copy(metrics, def.Metrics)
		out[i] = domain.FactorDefinition{Name: def.Name, Metrics: metrics}
	}
	return out
}

// GetFactorDefinition returns nil for unknown factor keys
func GetFactorDefinition(name string) *domain.FactorDefinition {
	factorName, err := domain.NewFactorName(name)
	if err != nil {
		return nil
	}
	for _, def := range FactorDefinitions() {
		if def.Name == *factorName {
			return &def
		}
	}
	return nil
}

type universeCache struct {
	universe []domain.MetricRecord
	byField  map[string]metricUniverse
}

func newUniverseCache(universe []domain.MetricRecord) *universeCache {
	return &universeCache{
		universe: universe,
		byField:  map[string]metricUniverse{},
	}
}

func (c *universeCache) get(field string) metricUniverse {
	if mu, ok := c.byField[field]; ok {
		return mu
	}
	mu := newMetricUniverse(field, c.universe)
	c.byField[field] = mu
	return mu
}

// factorScore is the weighted average of the z-scores that could be
// computed. a stock missing some metrics is scored on the rest
func factorScore(def domain.FactorDefinition, record domain.MetricRecord, cache *universeCache) *float64 {
	totalScore := 0.0
	totalWeight := 0.0
	for _, metric := range def.Metrics {
		if !domain.IsKnownMetricField(metric.Field) {
			continue
		}
		z := cache.get(metric.Field).zScore(record, metric.Direction)
		if z == nil {
			continue
		}
		totalScore += *z * metric.Weight
		totalWeight += metric.Weight
	}
	if totalWeight <= 0 {
		return nil
	}
	score := totalScore / totalWeight
	return &score
}

// FactorScore scores one stock (by ticker) on one factor
func FactorScore(def domain.FactorDefinition, universe []domain.MetricRecord, ticker string) *float64 {
	record, ok := findRecord(universe, ticker)
	if !ok {
		return nil
	}
	return factorScore(def, record, newUniverseCache(universe))
}

// FinalScore combines factor scores by weighted average over the
// factors that have a score. unlike a factor score it is never
// undefined: with nothing to combine it is 0
func FinalScore(scores domain.FactorScores, weights domain.FactorWeights) float64 {
	totalScore := 0.0
	totalWeight := 0.0
	for _, f := range domain.AllFactors {
		score := scores.Get(f)
		if score == nil {
			continue
		}
		w := weights.Get(f)
		totalScore += *score * w
		totalWeight += w
	}
	if totalWeight <= 0 {
		return 0
	}
	return totalScore / totalWeight
}

type RankStocksInput struct {
	Universe []domain.MetricRecord
	Weights  domain.FactorWeights
	// defaults to the catalog when nil
	Factors []domain.FactorDefinition
}

// RankStocks scores every stock in the universe and sorts by final
// score, descending. equal scores keep their input order
func RankStocks(in RankStocksInput) []domain.ScoredStock {
	factors := in.Factors
	if factors == nil {
		factors = factorDefinitions
	}

	cache := newUniverseCache(in.Universe)
	out := make([]domain.ScoredStock, 0, len(in.Universe))
	for _, record := range in.Universe {
		scores := domain.FactorScores{}
		for _, def := range factors {
			scores.Set(def.Name, factorScore(def, record, cache))
		}
		out = append(out, domain.ScoredStock{
			Record:       record,
			FactorScores: scores,
			FinalScore:   FinalScore(scores, in.Weights),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].FinalScore > out[j].FinalScore
	})
	for i := range out {
		out[i].Rank = i + 1
	}

	return out
}
