package calculator

import (
	"factorrank/internal/domain"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func floatPtr(f float64) *float64 {
	return &f
}

func TestFactorDefinitions(t *testing.T) {
	t.Run("catalog covers every factor in order", func(t *testing.T) {
		defs := FactorDefinitions()
		require.Len(t, defs, len(domain.AllFactors))
		for i, def := range defs {
			require.Equal(t, domain.AllFactors[i], def.Name)
			require.NoError(t, def.Validate())
			for _, m := range def.Metrics {
				require.True(t, domain.IsKnownMetricField(m.Field), m.Field)
			}
		}
	})

	t.Run("returned copy does not alias the catalog", func(t *testing.T) {
		defs := FactorDefinitions()
		defs[0].Metrics[0].Weight = 99
		require.NotEqual(t, 99.0, FactorDefinitions()[0].Metrics[0].Weight)
	})

	t.Run("lookup by key", func(t *testing.T) {
		def := GetFactorDefinition("Value")
		require.NotNil(t, def)
		require.Equal(t, domain.FactorValue, def.Name)

		require.Nil(t, GetFactorDefinition("sentiment"))
	})
}

func TestFactorScore(t *testing.T) {
	def := domain.FactorDefinition{
		Name: domain.FactorQuality,
		Metrics: []domain.FactorMetric{
			{Field: domain.MetricRoe, Direction: domain.HigherIsBetter, Weight: 0.6},
			{Field: domain.MetricRoa, Direction: domain.HigherIsBetter, Weight: 0.4},
		},
	}

	t.Run("missing metric does not dilute score", func(t *testing.T) {
		universe := []domain.MetricRecord{
			{Ticker: "A", Metrics: map[string]float64{domain.MetricRoe: 1, domain.MetricRoa: 0}},
			{Ticker: "B", Metrics: map[string]float64{domain.MetricRoe: 2, domain.MetricRoa: 0}},
			{Ticker: "C", Metrics: map[string]float64{domain.MetricRoe: 3, domain.MetricRoa: 0}},
			{Ticker: "D", Metrics: map[string]float64{domain.MetricRoa: 0}},
			{Ticker: "E", Metrics: map[string]float64{domain.MetricRoa: 5}},
		}
		score := FactorScore(def, universe, "E")
		require.NotNil(t, score)
		require.InDelta(t, 2.0, *score, 1e-12)
	})

	t.Run("score lies between contributing z-scores", func(t *testing.T) {
		universe := []domain.MetricRecord{
			{Ticker: "A", Metrics: map[string]float64{domain.MetricRoe: 0.05, domain.MetricRoa: 0.02}},
			{Ticker: "B", Metrics: map[string]float64{domain.MetricRoe: 0.25, domain.MetricRoa: 0.01}},
			{Ticker: "C", Metrics: map[string]float64{domain.MetricRoe: 0.15, domain.MetricRoa: 0.09}},
			{Ticker: "D", Metrics: map[string]float64{domain.MetricRoe: 0.10, domain.MetricRoa: 0.04}},
		}
		for _, record := range universe {
			zRoe := Normalize(domain.MetricRoe, universe, record.Ticker, domain.HigherIsBetter)
			zRoa := Normalize(domain.MetricRoa, universe, record.Ticker, domain.HigherIsBetter)
			score := FactorScore(def, universe, record.Ticker)
			require.NotNil(t, score)

			lo, hi := *zRoe, *zRoa
			if lo > hi {
				lo, hi = hi, lo
			}
			require.GreaterOrEqual(t, *score, lo-1e-12)
			require.LessOrEqual(t, *score, hi+1e-12)
		}
	})

	t.Run("no metric available", func(t *testing.T) {
		universe := []domain.MetricRecord{
			{Ticker: "A", Metrics: map[string]float64{domain.MetricRoe: 1}},
			{Ticker: "B", Metrics: map[string]float64{domain.MetricRoe: 2}},
			{Ticker: "C"},
		}
		require.Nil(t, FactorScore(def, universe, "C"))
	})

	t.Run("unknown metric fields are skipped", func(t *testing.T) {
		withUnknown := domain.FactorDefinition{
			Name: domain.FactorQuality,
			Metrics: []domain.FactorMetric{
				{Field: "analyst_mood", Direction: domain.HigherIsBetter, Weight: 0.9},
				{Field: domain.MetricRoe, Direction: domain.HigherIsBetter, Weight: 0.1},
			},
		}
		universe := []domain.MetricRecord{
			{Ticker: "A", Metrics: map[string]float64{domain.MetricRoe: 10, "analyst_mood": 1}},
			{Ticker: "B", Metrics: map[string]float64{domain.MetricRoe: 20, "analyst_mood": 9}},
			{Ticker: "C", Metrics: map[string]float64{domain.MetricRoe: 30, "analyst_mood": 2}},
		}
		score := FactorScore(withUnknown, universe, "C")
		require.NotNil(t, score)
		require.InDelta(t, 1.2247, *score, 1e-4)
	})
}

func TestFinalScore(t *testing.T) {
	t.Run("weighted average of available factors", func(t *testing.T) {
		scores := domain.FactorScores{
			Value: floatPtr(1),
			Risk:  floatPtr(-1),
		}
		weights := domain.FactorWeights{Value: 0.3, Quality: 0.5, Risk: 0.1}
		require.InDelta(t, (0.3-0.1)/0.4, FinalScore(scores, weights), 1e-12)
	})

	t.Run("weights need not sum to one", func(t *testing.T) {
		scores := domain.FactorScores{Value: floatPtr(2), Growth: floatPtr(1)}
		w1 := domain.FactorWeights{Value: 0.5, Growth: 0.5}
		w2 := domain.FactorWeights{Value: 0.1, Growth: 0.1}
		require.InDelta(t, FinalScore(scores, w1), FinalScore(scores, w2), 1e-12)
	})

	t.Run("nothing to combine defaults to zero", func(t *testing.T) {
		require.Equal(t, 0.0, FinalScore(domain.FactorScores{}, DefaultFactorTheme.Weights()))
	})

	t.Run("zero weight on the only available factor", func(t *testing.T) {
		scores := domain.FactorScores{Momentum: floatPtr(3)}
		require.Equal(t, 0.0, FinalScore(scores, domain.FactorWeights{Value: 1}))
	})
}

func TestRankStocks(t *testing.T) {
	universe := []domain.MetricRecord{
		{Ticker: "A", Metrics: map[string]float64{domain.MetricRoe: 1}},
		{Ticker: "F"},
		{Ticker: "B", Metrics: map[string]float64{domain.MetricRoe: 3}},
		{Ticker: "C", Metrics: map[string]float64{domain.MetricRoe: 2}},
	}

	t.Run("descending with stable ties", func(t *testing.T) {
		ranked := RankStocks(RankStocksInput{
			Universe: universe,
			Weights:  FactorTheme_Balanced.Weights(),
		})

		tickers := []string{}
		ranks := []int{}
		for _, s := range ranked {
			tickers = append(tickers, s.Ticker())
			ranks = append(ranks, s.Rank)
		}
		// F and C both score 0; F came first in the input
		require.Equal(t, "", cmp.Diff([]string{"B", "F", "C", "A"}, tickers))
		require.Equal(t, "", cmp.Diff([]int{1, 2, 3, 4}, ranks))

		require.Nil(t, ranked[1].FactorScores.Quality)
		require.Equal(t, 0.0, ranked[1].FinalScore)
		require.NotNil(t, ranked[0].FactorScores.Quality)
		require.Nil(t, ranked[0].FactorScores.Value)
		require.InDelta(t, 1.2247, ranked[0].FinalScore, 1e-4)
	})

	t.Run("identical input gives identical output", func(t *testing.T) {
		in := RankStocksInput{
			Universe: []domain.MetricRecord{
				{Ticker: "X", Metrics: map[string]float64{domain.MetricPeRatio: 14.2, domain.MetricBeta: 1.1, domain.MetricReturn1M: 0.03}},
				{Ticker: "Y", Metrics: map[string]float64{domain.MetricPeRatio: 31.0, domain.MetricBeta: 0.8, domain.MetricReturn1M: -0.01}},
				{Ticker: "Z", Metrics: map[string]float64{domain.MetricPeRatio: 22.5, domain.MetricBeta: 1.4, domain.MetricReturn1M: 0.07}},
			},
			Weights: FactorTheme_AllWeather.Weights(),
		}
		first := RankStocks(in)
		second := RankStocks(in)
		require.Equal(t, "", cmp.Diff(first, second))
	})

	t.Run("preset and equivalent custom weights agree", func(t *testing.T) {
		custom, err := ResolveFactorWeights("", &domain.FactorWeights{Value: 0.5, Quality: 0.2, Growth: 0.1, Momentum: 0.1, Risk: 0.1})
		require.NoError(t, err)
		preset, err := ResolveFactorWeights("value", nil)
		require.NoError(t, err)

		a := RankStocks(RankStocksInput{Universe: universe, Weights: custom})
		b := RankStocks(RankStocksInput{Universe: universe, Weights: preset})
		require.Equal(t, "", cmp.Diff(a, b))
	})

	t.Run("empty universe", func(t *testing.T) {
		ranked := RankStocks(RankStocksInput{Weights: DefaultFactorTheme.Weights()})
		require.NotNil(t, ranked)
		require.Len(t, ranked, 0)
	})
}
