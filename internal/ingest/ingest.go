// Package ingest loads tickers, fundamentals snapshots and daily
// prices from CSV exports into postgres
package ingest

import (
	"factorrank/internal/db/models/postgres/public/model"
	"factorrank/internal/repository"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/gocarina/gocsv"
)

type TickerRow struct {
	Symbol   string  `csv:"symbol"`
	Name     string  `csv:"name"`
	Sector   *string `csv:"sector,omitempty"`
	Industry *string `csv:"industry,omitempty"`
	Country  *string `csv:"country,omitempty"`
	Rating   *string `csv:"rating,omitempty"`
}

// FundamentalsRow is one snapshot. empty cells mean the metric
// is unavailable, not zero
type FundamentalsRow struct {
	Symbol         string   `csv:"symbol"`
	AsOfDate       string   `csv:"as_of_date"`
	Price          *float64 `csv:"price,omitempty"`
	MarketCap      *float64 `csv:"market_cap,omitempty"`
	PeRatio        *float64 `csv:"pe_ratio,omitempty"`
	PbRatio        *float64 `csv:"pb_ratio,omitempty"`
	PsRatio        *float64 `csv:"ps_ratio,omitempty"`
	DividendYield  *float64 `csv:"dividend_yield,omitempty"`
	Roe            *float64 `csv:"roe,omitempty"`
	Roa            *float64 `csv:"roa,omitempty"`
	ProfitMargin   *float64 `csv:"profit_margin,omitempty"`
	RevenueGrowth  *float64 `csv:"revenue_growth,omitempty"`
	EarningsGrowth *float64 `csv:"earnings_growth,omitempty"`
	DebtToEquity   *float64 `csv:"debt_to_equity,omitempty"`
	Beta           *float64 `csv:"beta,omitempty"`
}

type PriceRow struct {
	Symbol string  `csv:"symbol"`
	Date   string  `csv:"date"`
	Price  float64 `csv:"price"`
}

func normalizeSymbol(s string) (string, error) {
	symbol := strings.ToUpper(strings.TrimSpace(s))
	if symbol == "" {
		return "", fmt.Errorf("row has empty symbol")
	}
	return symbol, nil
}

func ParseTickers(r io.Reader) ([]model.Ticker, error) {
	rows := []TickerRow{}
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse tickers csv: %w", err)
	}

	out := make([]model.Ticker, 0, len(rows))
	for i, row := range rows {
		symbol, err := normalizeSymbol(row.Symbol)
		if err != nil {
			return nil, fmt.Errorf("ticker row %d: %w", i+1, err)
		}
		out = append(out, model.Ticker{
			Symbol:   symbol,
			Name:     row.Name,
			Sector:   row.Sector,
			Industry: row.Industry,
			Country:  row.Country,
			Rating:   row.Rating,
		})
	}
	return out, nil
}

func ParseFundamentals(r io.Reader) ([]model.AssetFundamental, error) {
	rows := []FundamentalsRow{}
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse fundamentals csv: %w", err)
	}

	out := make([]model.AssetFundamental, 0, len(rows))
	for i, row := range rows {
		symbol, err := normalizeSymbol(row.Symbol)
		if err != nil {
			return nil, fmt.Errorf("fundamentals row %d: %w", i+1, err)
		}
		asOf, err := time.Parse(time.DateOnly, row.AsOfDate)
		if err != nil {
			return nil, fmt.Errorf("fundamentals row %d: invalid as_of_date: %w", i+1, err)
		}
		out = append(out, model.AssetFundamental{
			Symbol:         symbol,
			AsOfDate:       asOf,
			Price:          row.Price,
			MarketCap:      row.MarketCap,
			PeRatio:        row.PeRatio,
			PbRatio:        row.PbRatio,
			PsRatio:        row.PsRatio,
			DividendYield:  row.DividendYield,
			Roe:            row.Roe,
			Roa:            row.Roa,
			ProfitMargin:   row.ProfitMargin,
			RevenueGrowth:  row.RevenueGrowth,
			EarningsGrowth: row.EarningsGrowth,
			DebtToEquity:   row.DebtToEquity,
			Beta:           row.Beta,
		})
	}
	return out, nil
}

func ParsePrices(r io.Reader) ([]model.AdjustedPrice, error) {
	rows := []PriceRow{}
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse prices csv: %w", err)
	}

	out := make([]model.AdjustedPrice, 0, len(rows))
	for i, row := range rows {
		symbol, err := normalizeSymbol(row.Symbol)
		if err != nil {
			return nil, fmt.Errorf("price row %d: %w", i+1, err)
		}
		date, err := time.Parse(time.DateOnly, row.Date)
		if err != nil {
			return nil, fmt.Errorf("price row %d: invalid date: %w", i+1, err)
		}
		if row.Price <= 0 {
			return nil, fmt.Errorf("price row %d: %s has non-positive price %f", i+1, symbol, row.Price)
		}
		out = append(out, model.AdjustedPrice{
			Symbol: symbol,
			Date:   date,
			Price:  row.Price,
		})
	}
	return out, nil
}

type Handler struct {
	TickerRepository       repository.TickerRepository
	FundamentalsRepository repository.AssetFundamentalsRepository
	PriceRepository        repository.AdjustedPriceRepository
}

type Input struct {
	Tickers      io.Reader
	Fundamentals io.Reader
	Prices       io.Reader
}

type Result struct {
	Tickers      int
	Fundamentals int
	Prices       int
}

// Ingest parses every provided file before writing anything, so a
// malformed file leaves tx untouched. nil readers are skipped
func (h Handler) Ingest(tx qrm.Executable, in Input) (*Result, error) {
	var (
		tickers      []model.Ticker
		fundamentals []model.AssetFundamental
		prices       []model.AdjustedPrice
		err          error
	)
	if in.Tickers != nil {
		if tickers, err = ParseTickers(in.Tickers); err != nil {
			return nil, err
		}
	}
	if in.Fundamentals != nil {
		if fundamentals, err = ParseFundamentals(in.Fundamentals); err != nil {
			return nil, err
		}
	}
	if in.Prices != nil {
		if prices, err = ParsePrices(in.Prices); err != nil {
			return nil, err
		}
	}

	if err := h.TickerRepository.Upsert(tx, tickers); err != nil {
		return nil, err
	}
	if err := h.FundamentalsRepository.Add(tx, fundamentals); err != nil {
		return nil, err
	}
	if err := h.PriceRepository.Add(tx, prices); err != nil {
		return nil, err
	}

	return &Result{
		Tickers:      len(tickers),
		Fundamentals: len(fundamentals),
		Prices:       len(prices),
	}, nil
}
