package calculator

import (
	"factorrank/internal/domain"
	"fmt"
	"math"
	"testing"

	"github.com/montanaflynn/stats"
	"github.com/stretchr/testify/require"
)

func recordsWith(field string, values ...float64) []domain.MetricRecord {
	out := []domain.MetricRecord{}
	for i, v := range values {
		out = append(out, domain.MetricRecord{
			Ticker:  fmt.Sprintf("T%d", i),
			Metrics: map[string]float64{field: v},
		})
	}
	return out
}

func TestNormalize(t *testing.T) {
	t.Run("z-score against population stdev", func(t *testing.T) {
		universe := recordsWith(domain.MetricRoe, 10, 20, 30)

		z := Normalize(domain.MetricRoe, universe, "T1", domain.HigherIsBetter)
		require.NotNil(t, z)
		require.InDelta(t, 0, *z, 1e-12)

		z = Normalize(domain.MetricRoe, universe, "T2", domain.HigherIsBetter)
		require.NotNil(t, z)
		require.InDelta(t, 1.2247, *z, 1e-4)
	})

	t.Run("lower is better negates", func(t *testing.T) {
		universe := recordsWith(domain.MetricPeRatio, 12, 18, 35, 9)
		for _, record := range universe {
			higher := Normalize(domain.MetricPeRatio, universe, record.Ticker, domain.HigherIsBetter)
			lower := Normalize(domain.MetricPeRatio, universe, record.Ticker, domain.LowerIsBetter)
			require.NotNil(t, higher)
			require.NotNil(t, lower)
			require.Equal(t, -*higher, *lower)
		}
	})

	t.Run("z-scores have mean 0 and stdev 1", func(t *testing.T) {
		universe := recordsWith(domain.MetricBeta, 3, 7, 8, 15, 22, 0.5)
		zScores := []float64{}
		for _, record := range universe {
			z := Normalize(domain.MetricBeta, universe, record.Ticker, domain.HigherIsBetter)
			require.NotNil(t, z)
			zScores = append(zScores, *z)
		}
		mean, err := stats.Mean(zScores)
		require.NoError(t, err)
		stdev, err := stats.StandardDeviationPopulation(zScores)
		require.NoError(t, err)
		require.InDelta(t, 0, mean, 1e-9)
		require.InDelta(t, 1, stdev, 1e-9)
	})

	t.Run("fewer than two valid values", func(t *testing.T) {
		universe := recordsWith(domain.MetricRoe, 10)
		universe = append(universe, domain.MetricRecord{Ticker: "EMPTY"})
		require.Nil(t, Normalize(domain.MetricRoe, universe, "T0", domain.HigherIsBetter))
	})

	t.Run("non-finite values are excluded", func(t *testing.T) {
		universe := recordsWith(domain.MetricRoe, 10, 20, 30, math.NaN(), math.Inf(1), math.Inf(-1))

		z := Normalize(domain.MetricRoe, universe, "T2", domain.HigherIsBetter)
		require.NotNil(t, z)
		require.InDelta(t, 1.2247, *z, 1e-4)

		require.Nil(t, Normalize(domain.MetricRoe, universe, "T3", domain.HigherIsBetter))
		require.Nil(t, Normalize(domain.MetricRoe, universe, "T4", domain.HigherIsBetter))
	})

	t.Run("identical peers contribute nothing", func(t *testing.T) {
		universe := recordsWith(domain.MetricRoe, 5, 5, 5)
		require.Nil(t, Normalize(domain.MetricRoe, universe, "T0", domain.HigherIsBetter))
	})

	t.Run("target missing the metric", func(t *testing.T) {
		universe := recordsWith(domain.MetricRoe, 10, 20, 30)
		universe = append(universe, domain.MetricRecord{Ticker: "NONE"})
		require.Nil(t, Normalize(domain.MetricRoe, universe, "NONE", domain.HigherIsBetter))
	})

	t.Run("target not in universe", func(t *testing.T) {
		universe := recordsWith(domain.MetricRoe, 10, 20, 30)
		require.Nil(t, Normalize(domain.MetricRoe, universe, "AAPL", domain.HigherIsBetter))
	})

	t.Run("outliers are not clipped", func(t *testing.T) {
		universe := recordsWith(domain.MetricRoe, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1000)
		z := Normalize(domain.MetricRoe, universe, "T9", domain.HigherIsBetter)
		require.NotNil(t, z)
		require.InDelta(t, 3, *z, 1e-12)
	})
}
