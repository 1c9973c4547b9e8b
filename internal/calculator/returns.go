package calculator

import (
	"factorrank/internal/domain"
	"math"
	"sort"

	"github.com/montanaflynn/stats"
)

const TradingDaysPerYear = 252

// SortPricePoints returns a copy of the series ordered oldest
// to newest. The input is not modified
func SortPricePoints(points []domain.PricePoint) []domain.PricePoint {
	sorted := make([]domain.PricePoint, len(points))
	copy(sorted, points)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})
	return sorted
}

// SimpleReturns converts an oldest-to-newest price list into
// arithmetic returns. a step whose previous price is 0 has no
// defined return and is dropped, so the result can be shorter
// than len(prices)-1
func SimpleReturns(prices []float64) []float64 {
	if len(prices) < 2 {
		return []float64{}
	}
	returns := make([]float64, 0, len(prices)-1)
	for i := 1; i < len(prices); i++ {
		if prices[i-1] == 0 {
			continue
		}
		returns = append(returns, (prices[i]-prices[i-1])/prices[i-1])
	}
	return returns
}

func ReturnsFromPricePoints(points []domain.PricePoint) []float64 {
	sorted := SortPricePoints(points)
	prices := make([]float64, len(sorted))
	for i, p := range sorted {
		prices[i] = p.Price
	}
	return SimpleReturns(prices)
}

// TrailingReturn compares the latest price against the most recent
// price at least nDays before it. the window is anchored on the
// latest observation rather than the clock
func TrailingReturn(points []domain.PricePoint, nDays int) *float64 {
	if len(points) == 0 {
		return nil
	}
	sorted := SortPricePoints(points)
	recent := sorted[len(sorted)-1]
	cutoff := recent.Date.AddDate(0, 0, -nDays)

	for i := len(sorted) - 1; i >= 0; i-- {
		past := sorted[i]
		if past.Date.After(cutoff) {
			continue
		}
		if past.Price == 0 {
			return nil
		}
		ret := (recent.Price - past.Price) / past.Price
		return &ret
	}

	return nil
}

// Volatility is the population stdev of returns scaled by
// sqrt(annualizeFactor). identical returns give 0, which is
// still a defined value
func Volatility(returns []float64, annualizeFactor float64) *float64 {
	if len(returns) < 2 {
		return nil
	}
	stdev, err := stats.StandardDeviationPopulation(returns)
	if err != nil {
		return nil
	}
	vol := stdev * math.Sqrt(annualizeFactor)
	return &vol
}
