package domain

import (
	"fmt"
	"strings"
)

type MatrixMode string

const (
	MatrixMode_Correlation MatrixMode = "correlation"
	MatrixMode_Covariance  MatrixMode = "covariance"
)

func NewMatrixMode(s string) (*MatrixMode, error) {
	if s == "" {
		m := MatrixMode_Correlation
		return &m, nil
	}
	for _, m := range []MatrixMode{MatrixMode_Correlation, MatrixMode_Covariance} {
		if strings.EqualFold(string(m), s) {
			return &m, nil
		}
	}
	return nil, fmt.Errorf("could not convert '%s' to known matrix mode", s)
}

// CovarianceMatrix holds either covariances or correlations,
// depending on Mode. Values[i][j] refers to Tickers[i], Tickers[j]
type CovarianceMatrix struct {
	Tickers []string    `json:"tickers"`
	Mode    MatrixMode  `json:"mode"`
	Values  [][]float64 `json:"matrix"`
}

func (m CovarianceMatrix) Size() int {
	return len(m.Tickers)
}
