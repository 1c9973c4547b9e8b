package service

import (
	"context"
	"factorrank/internal/calculator"
	"factorrank/internal/domain"
	"factorrank/internal/logger"
	"factorrank/internal/metrics"
	"factorrank/internal/repository"
	"fmt"

	"github.com/google/uuid"
)

const DefaultLookbackDays = 90

type CorrelationService interface {
	BuildMatrix(ctx context.Context, in BuildMatrixInput) (*BuildMatrixResult, error)
}

type BuildMatrixInput struct {
	PortfolioID    *uuid.UUID
	Mode           domain.MatrixMode
	IncludeWeights bool
	// number of most recent prices per stock, DefaultLookbackDays when 0
	LookbackDays int
}

type BuildMatrixResult struct {
	Matrix domain.CovarianceMatrix
	// aligned with Matrix.Tickers, nil entries have no defined weight.
	// only set when IncludeWeights was requested
	Weights []*float64
}

type correlationServiceHandler struct {
	TickerRepository repository.TickerRepository
	PriceRepository  repository.AdjustedPriceRepository
	PriceLoadWorkers int
}

func NewCorrelationService(
	tickerRepository repository.TickerRepository,
	priceRepository repository.AdjustedPriceRepository,
	priceLoadWorkers int,
) CorrelationService {
	return correlationServiceHandler{
		TickerRepository: tickerRepository,
		PriceRepository:  priceRepository,
		PriceLoadWorkers: priceLoadWorkers,
	}
}

func (h correlationServiceHandler) BuildMatrix(ctx context.Context, in BuildMatrixInput) (*BuildMatrixResult, error) {
	lookback := in.LookbackDays
	if lookback <= 0 {
		lookback = DefaultLookbackDays
	}
	mode := in.Mode
	if mode == "" {
		mode = domain.MatrixMode_Correlation
	}

	tickers, err := h.TickerRepository.List(in.PortfolioID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tickers: %w", err)
	}

	symbols := make([]string, 0, len(tickers))
	for _, t := range tickers {
		symbols = append(symbols, t.Symbol)
	}

	prices, err := loadPriceHistories(ctx, h.PriceRepository, symbols, lookback, h.PriceLoadWorkers)
	if err != nil {
		return nil, err
	}

	returns := make([][]float64, len(symbols))
	for i, symbol := range symbols {
		returns[i] = calculator.ReturnsFromPricePoints(prices[symbol])
	}

	out := &BuildMatrixResult{
		Matrix: calculator.BuildMatrix(symbols, returns, mode),
	}
	if in.IncludeWeights {
		covariance := out.Matrix
		if mode != domain.MatrixMode_Covariance {
			covariance = calculator.BuildMatrix(symbols, returns, domain.MatrixMode_Covariance)
		}
		out.Weights = calculator.NaiveRiskParityWeights(covariance)
	}

	metrics.MatrixBuildsTotal.WithLabelValues(string(mode)).Inc()
	logger.FromContext(ctx).Infof("built %dx%d %s matrix over %d prices", len(symbols), len(symbols), mode, lookback)

	return out, nil
}
