package service

import (
	"context"
	"factorrank/internal/calculator"
	"factorrank/internal/db/models/postgres/public/model"
	"factorrank/internal/domain"
	"factorrank/internal/logger"
	"factorrank/internal/metrics"
	"factorrank/internal/repository"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// trailing return windows, in calendar days
const (
	return1WDays = 7
	return1MDays = 30
	return3MDays = 90
)

// ScoringService assembles a metric universe from stored
// fundamentals and price history, then ranks it
type ScoringService interface {
	// BuildUniverse returns one MetricRecord per stock, with the
	// price-derived metrics filled in when history allows
	BuildUniverse(ctx context.Context, portfolioID *uuid.UUID) ([]domain.MetricRecord, error)
	ScoreStocks(ctx context.Context, in ScoreStocksInput) (*ScoreStocksResult, error)
}

type ScoreStocksInput struct {
	PortfolioID *uuid.UUID
	Weights     domain.FactorWeights
	// label for metrics, "custom" when weights were supplied
	Theme string
}

type ScoreStocksResult struct {
	Stocks          []domain.ScoredStock
	Weights         domain.FactorWeights
	WeightsSumToOne bool
}

type scoringServiceHandler struct {
	TickerRepository       repository.TickerRepository
	PortfolioRepository    repository.PortfolioRepository
	FundamentalsRepository repository.AssetFundamentalsRepository
	PriceRepository        repository.AdjustedPriceRepository

	PriceLookback    int
	PriceLoadWorkers int
}

func NewScoringService(
	tickerRepository repository.TickerRepository,
	portfolioRepository repository.PortfolioRepository,
	fundamentalsRepository repository.AssetFundamentalsRepository,
	priceRepository repository.AdjustedPriceRepository,
	priceLookback int,
	priceLoadWorkers int,
) ScoringService {
	return scoringServiceHandler{
		TickerRepository:       tickerRepository,
		PortfolioRepository:    portfolioRepository,
		FundamentalsRepository: fundamentalsRepository,
		PriceRepository:        priceRepository,
		PriceLookback:          priceLookback,
		PriceLoadWorkers:       priceLoadWorkers,
	}
}

func (h scoringServiceHandler) BuildUniverse(ctx context.Context, portfolioID *uuid.UUID) ([]domain.MetricRecord, error) {
	tickers, err := h.TickerRepository.List(portfolioID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tickers: %w", err)
	}
	if len(tickers) == 0 {
		return []domain.MetricRecord{}, nil
	}

	var portfolioName *string
	if portfolioID != nil {
		portfolio, err := h.PortfolioRepository.Get(*portfolioID)
		if err != nil {
			return nil, fmt.Errorf("failed to get portfolio %s: %w", portfolioID.String(), err)
		}
		portfolioName = &portfolio.Name
	}

	symbols := make([]string, 0, len(tickers))
	for _, t := range tickers {
		symbols = append(symbols, t.Symbol)
	}

	fundamentals, err := h.FundamentalsRepository.GetLatest(symbols)
	if err != nil {
		return nil, fmt.Errorf("failed to get fundamentals: %w", err)
	}

	prices, err := loadPriceHistories(ctx, h.PriceRepository, symbols, h.PriceLookback, h.PriceLoadWorkers)
	if err != nil {
		return nil, err
	}

	universe := make([]domain.MetricRecord, 0, len(tickers))
	missingFundamentals := 0
	for _, t := range tickers {
		f, ok := fundamentals[t.Symbol]
		if !ok {
			missingFundamentals++
		}
		var snapshot *model.AssetFundamental
		if ok {
			snapshot = &f
		}
		universe = append(universe, newMetricRecord(t, portfolioName, snapshot, prices[t.Symbol]))
	}

	if missingFundamentals > 0 {
		logger.FromContext(ctx).Infof("%d of %d tickers have no fundamentals snapshot", missingFundamentals, len(tickers))
	}

	return universe, nil
}

func (h scoringServiceHandler) ScoreStocks(ctx context.Context, in ScoreStocksInput) (*ScoreStocksResult, error) {
	start := time.Now()
	log := logger.FromContext(ctx)

	universe, err := h.BuildUniverse(ctx, in.PortfolioID)
	if err != nil {
		return nil, err
	}

	ranked := calculator.RankStocks(calculator.RankStocksInput{
		Universe: universe,
		Weights:  in.Weights,
	})

	theme := in.Theme
	if theme == "" {
		theme = string(calculator.DefaultFactorTheme)
	}
	metrics.ScoringRunsTotal.WithLabelValues(theme).Inc()
	metrics.UniverseSize.Observe(float64(len(universe)))
	metrics.ScoringRunDuration.Observe(time.Since(start).Seconds())

	if !in.Weights.SumsToOne() {
		log.Warnf("factor weights sum to %f, not 1", in.Weights.Sum())
	}
	log.Infof("scored %d stocks in %s", len(ranked), time.Since(start).String())

	return &ScoreStocksResult{
		Stocks:          ranked,
		Weights:         in.Weights,
		WeightsSumToOne: in.Weights.SumsToOne(),
	}, nil
}

// newMetricRecord merges the stored snapshot with metrics derived
// from prices. prices must be sorted oldest first
func newMetricRecord(
	ticker model.Ticker,
	portfolioName *string,
	snapshot *model.AssetFundamental,
	prices []domain.PricePoint,
) domain.MetricRecord {
	record := domain.MetricRecord{
		Ticker:    ticker.Symbol,
		Company:   ticker.Name,
		Portfolio: portfolioName,
		Sector:    ticker.Sector,
		Industry:  ticker.Industry,
		Country:   ticker.Country,
		Rating:    ticker.Rating,
		Metrics:   map[string]float64{},
	}

	if snapshot != nil {
		record.Price = snapshot.Price
		record.MarketCap = snapshot.MarketCap
		record.SetMetric(domain.MetricPeRatio, snapshot.PeRatio)
		record.SetMetric(domain.MetricPbRatio, snapshot.PbRatio)
		record.SetMetric(domain.MetricPsRatio, snapshot.PsRatio)
		record.SetMetric(domain.MetricDividendYield, snapshot.DividendYield)
		record.SetMetric(domain.MetricRoe, snapshot.Roe)
		record.SetMetric(domain.MetricRoa, snapshot.Roa)
		record.SetMetric(domain.MetricProfitMargin, snapshot.ProfitMargin)
		record.SetMetric(domain.MetricRevenueGrowth, snapshot.RevenueGrowth)
		record.SetMetric(domain.MetricEarningsGrowth, snapshot.EarningsGrowth)
		record.SetMetric(domain.MetricDebtToEquity, snapshot.DebtToEquity)
		record.SetMetric(domain.MetricBeta, snapshot.Beta)
		record.SetMetric(domain.MetricMarketCap, snapshot.MarketCap)
	}

	if len(prices) > 0 {
		if record.Price == nil {
			latest := prices[len(prices)-1].Price
			record.Price = &latest
		}
		record.SetMetric(domain.MetricReturn1W, calculator.TrailingReturn(prices, return1WDays))
		record.SetMetric(domain.MetricReturn1M, calculator.TrailingReturn(prices, return1MDays))
		record.SetMetric(domain.MetricReturn3M, calculator.TrailingReturn(prices, return3MDays))
		record.SetMetric(
			domain.MetricVolatility,
			calculator.Volatility(calculator.ReturnsFromPricePoints(prices), calculator.TradingDaysPerYear),
		)
	}

	return record
}
