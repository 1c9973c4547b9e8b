package domain

import "math"

// metric fields that the factor catalog knows how to read
// from a MetricRecord
const (
	MetricPeRatio        = "pe_ratio"
	MetricPbRatio        = "pb_ratio"
	MetricPsRatio        = "ps_ratio"
	MetricDividendYield  = "dividend_yield"
	MetricRoe            = "roe"
	MetricRoa            = "roa"
	MetricProfitMargin   = "profit_margin"
	MetricRevenueGrowth  = "revenue_growth"
	MetricEarningsGrowth = "earnings_growth"
	MetricDebtToEquity   = "debt_to_equity"
	MetricBeta           = "beta"
	MetricMarketCap      = "market_cap"

	// derived from price history, not stored
	MetricReturn1W   = "return_1w"
	MetricReturn1M   = "return_1m"
	MetricReturn3M   = "return_3m"
	MetricVolatility = "volatility"
)

var knownMetricFields = map[string]struct{}{
	MetricPeRatio:        {},
	MetricPbRatio:        {},
	MetricPsRatio:        {},
	MetricDividendYield:  {},
	MetricRoe:            {},
	MetricRoa:            {},
	MetricProfitMargin:   {},
	MetricRevenueGrowth:  {},
	MetricEarningsGrowth: {},
	MetricDebtToEquity:   {},
	MetricBeta:           {},
	MetricMarketCap:      {},
	MetricReturn1W:       {},
	MetricReturn1M:       {},
	MetricReturn3M:       {},
	MetricVolatility:     {},
}

func IsKnownMetricField(field string) bool {
	_, ok := knownMetricFields[field]
	return ok
}

// MetricRecord is a snapshot of one stock's metrics, assembled
// per scoring request. Display fields are carried through to
// the ranked output untouched
type MetricRecord struct {
	Ticker    string   `json:"ticker"`
	Company   string   `json:"company"`
	Portfolio *string  `json:"portfolio,omitempty"`
	Sector    *string  `json:"sector,omitempty"`
	Industry  *string  `json:"industry,omitempty"`
	Country   *string  `json:"country,omitempty"`
	Rating    *string  `json:"rating,omitempty"`
	Price     *float64 `json:"price,omitempty"`
	MarketCap *float64 `json:"marketCap,omitempty"`

	// a missing key means the metric is not available
	Metrics map[string]float64 `json:"metrics"`
}

// Value returns the metric if it is present and finite
func (r MetricRecord) Value(field string) (float64, bool) {
	v, ok := r.Metrics[field]
	if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// SetMetric stores v unless it is nil, so optional db
// columns can be copied over without nil checks
func (r *MetricRecord) SetMetric(field string, v *float64) {
	if v == nil {
		return
	}
	if r.Metrics == nil {
		r.Metrics = map[string]float64{}
	}
	r.Metrics[field] = *v
}
