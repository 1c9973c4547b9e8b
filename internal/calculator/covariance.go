package calculator

import (
	"factorrank/internal/domain"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Covariance is the sample covariance (n-1 denominator) over the
// overlapping prefix of both series. note this differs from the
// population stdev used by Volatility. fewer than 2 overlapping
// observations gives 0
func Covariance(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	if n < 2 {
		return 0
	}
	return stat.Covariance(a[:n], b[:n], nil)
}

// Correlation is the pearson correlation, with each series' own
// variance taken over its full length
func Correlation(a, b []float64) float64 {
	varA := Covariance(a, a)
	varB := Covariance(b, b)
	if varA == 0 || varB == 0 {
		return 0
	}
	return Covariance(a, b) / (math.Sqrt(varA) * math.Sqrt(varB))
}

// BuildMatrix computes every cell independently. returns[i] belongs
// to tickers[i]
func BuildMatrix(tickers []string, returns [][]float64, mode domain.MatrixMode) domain.CovarianceMatrix {
	f := Correlation
	if mode == domain.MatrixMode_Covariance {
		f = Covariance
	}

	series := func(i int) []float64 {
		if i < len(returns) {
			return returns[i]
		}
		return nil
	}

	n := len(tickers)
	values := make([][]float64, n)
	for i := 0; i < n; i++ {
		values[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			values[i][j] = f(series(i), series(j))
		}
	}

	return domain.CovarianceMatrix{
		Tickers: tickers,
		Mode:    mode,
		Values:  values,
	}
}

// NaiveRiskParityWeights weights each stock by inverse variance, read
// off the diagonal of a covariance matrix. off-diagonal covariance is
// ignored. stocks with no usable variance get a nil weight and are
// left out of the normalization
func NaiveRiskParityWeights(m domain.CovarianceMatrix) []*float64 {
	inverse := make([]float64, m.Size())
	usable := make([]bool, m.Size())
	for i := 0; i < m.Size(); i++ {
		variance := m.Values[i][i]
		if variance <= 0 || math.IsNaN(variance) || math.IsInf(variance, 0) {
			continue
		}
		inverse[i] = 1 / variance
		usable[i] = true
	}

	weights := make([]*float64, m.Size())
	total := floats.Sum(inverse)
	if total == 0 {
		return weights
	}
	for i, ok := range usable {
		if !ok {
			continue
		}
		w := inverse[i] / total
		weights[i] = &w
	}
	return weights
}
