package domain

import "time"

// PricePoint is one observation in a stock's daily price series.
// Series are not guaranteed to be contiguous (weekends, market
// holidays) or sorted
type PricePoint struct {
	Date  time.Time `json:"date"`
	Price float64   `json:"price"`
}

type PriceSeries struct {
	Ticker string       `json:"ticker"`
	Prices []PricePoint `json:"prices"`
}
