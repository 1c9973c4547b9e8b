package service

import (
	"context"
	"errors"
	"factorrank/internal/calculator"
	"factorrank/internal/db/models/postgres/public/model"
	"factorrank/internal/domain"
	mock_repository "factorrank/internal/repository/mocks"
	"factorrank/internal/util"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// dailyPrices returns n daily prices starting at start, newest first
// the way the repository returns them. price on day i is 100+i
func dailyPrices(start time.Time, n int) []domain.PricePoint {
	out := []domain.PricePoint{}
	for i := n - 1; i >= 0; i-- {
		out = append(out, domain.PricePoint{
			Date:  start.AddDate(0, 0, i),
			Price: float64(100 + i),
		})
	}
	return out
}

type scoringMocks struct {
	tickers      *mock_repository.MockTickerRepository
	portfolios   *mock_repository.MockPortfolioRepository
	fundamentals *mock_repository.MockAssetFundamentalsRepository
	prices       *mock_repository.MockAdjustedPriceRepository
}

func newScoringHandler(t *testing.T) (scoringServiceHandler, scoringMocks) {
	ctrl := gomock.NewController(t)
	m := scoringMocks{
		tickers:      mock_repository.NewMockTickerRepository(ctrl),
		portfolios:   mock_repository.NewMockPortfolioRepository(ctrl),
		fundamentals: mock_repository.NewMockAssetFundamentalsRepository(ctrl),
		prices:       mock_repository.NewMockAdjustedPriceRepository(ctrl),
	}
	handler := scoringServiceHandler{
		TickerRepository:       m.tickers,
		PortfolioRepository:    m.portfolios,
		FundamentalsRepository: m.fundamentals,
		PriceRepository:        m.prices,
		PriceLookback:          90,
		PriceLoadWorkers:       2,
	}
	return handler, m
}

func TestScoringService_ScoreStocks(t *testing.T) {
	ctx := context.Background()
	tickers := []model.Ticker{
		{Symbol: "AAA", Name: "Alpha", Sector: util.StringPointer("Tech")},
		{Symbol: "BBB", Name: "Beta Corp"},
	}
	fundamentals := map[string]model.AssetFundamental{
		"AAA": {Symbol: "AAA", Price: util.FloatPointer(50), PeRatio: util.FloatPointer(10), Roe: util.FloatPointer(0.2)},
		"BBB": {Symbol: "BBB", Price: util.FloatPointer(20), PeRatio: util.FloatPointer(20), Roe: util.FloatPointer(0.1)},
	}

	t.Run("happy path", func(t *testing.T) {
		handler, m := newScoringHandler(t)
		m.tickers.EXPECT().List(nil).Return(tickers, nil)
		m.fundamentals.EXPECT().GetLatest([]string{"AAA", "BBB"}).Return(fundamentals, nil)
		m.prices.EXPECT().ListRecent("AAA", 90).Return([]domain.PricePoint{}, nil)
		m.prices.EXPECT().ListRecent("BBB", 90).Return([]domain.PricePoint{}, nil)

		weights := calculator.FactorTheme_Balanced.Weights()
		result, err := handler.ScoreStocks(ctx, ScoreStocksInput{
			Weights: weights,
		})
		require.NoError(t, err)
		require.True(t, result.WeightsSumToOne)
		require.Equal(t, "", cmp.Diff(weights, result.Weights))
		require.Len(t, result.Stocks, 2)

		// only value and quality are scorable, each +-1
		require.Equal(t, "AAA", result.Stocks[0].Ticker())
		require.Equal(t, 1, result.Stocks[0].Rank)
		require.InDelta(t, 1.0, result.Stocks[0].FinalScore, 1e-9)
		require.InDelta(t, 1.0, *result.Stocks[0].FactorScores.Value, 1e-9)
		require.InDelta(t, 1.0, *result.Stocks[0].FactorScores.Quality, 1e-9)
		require.Nil(t, result.Stocks[0].FactorScores.Growth)
		require.Nil(t, result.Stocks[0].FactorScores.Momentum)
		require.Nil(t, result.Stocks[0].FactorScores.Risk)
		require.Equal(t, "Tech", *result.Stocks[0].Record.Sector)

		require.Equal(t, "BBB", result.Stocks[1].Ticker())
		require.Equal(t, 2, result.Stocks[1].Rank)
		require.InDelta(t, -1.0, result.Stocks[1].FinalScore, 1e-9)
	})

	t.Run("labels records with portfolio name", func(t *testing.T) {
		handler, m := newScoringHandler(t)
		portfolioID := uuid.New()
		m.tickers.EXPECT().List(&portfolioID).Return(tickers[:1], nil)
		m.portfolios.EXPECT().Get(portfolioID).Return(&model.Portfolio{PortfolioID: portfolioID, Name: "Core"}, nil)
		m.fundamentals.EXPECT().GetLatest([]string{"AAA"}).Return(map[string]model.AssetFundamental{}, nil)
		m.prices.EXPECT().ListRecent("AAA", 90).Return(nil, nil)

		result, err := handler.ScoreStocks(ctx, ScoreStocksInput{
			PortfolioID: &portfolioID,
			Weights:     domain.FactorWeights{Value: 0.5, Risk: 0.2},
			Theme:       "custom",
		})
		require.NoError(t, err)
		require.False(t, result.WeightsSumToOne)
		require.Len(t, result.Stocks, 1)
		require.Equal(t, "Core", *result.Stocks[0].Record.Portfolio)
		require.Equal(t, 0.0, result.Stocks[0].FinalScore)
	})

	t.Run("empty universe", func(t *testing.T) {
		handler, m := newScoringHandler(t)
		m.tickers.EXPECT().List(nil).Return([]model.Ticker{}, nil)

		result, err := handler.ScoreStocks(ctx, ScoreStocksInput{
			Weights: calculator.FactorTheme_Value.Weights(),
		})
		require.NoError(t, err)
		require.Empty(t, result.Stocks)
	})

	t.Run("price load failure", func(t *testing.T) {
		handler, m := newScoringHandler(t)
		m.tickers.EXPECT().List(nil).Return(tickers, nil)
		m.fundamentals.EXPECT().GetLatest(gomock.Any()).Return(fundamentals, nil)
		m.prices.EXPECT().ListRecent(gomock.Any(), 90).Return(nil, errors.New("connection refused")).MinTimes(1).MaxTimes(2)

		_, err := handler.ScoreStocks(ctx, ScoreStocksInput{})
		require.Error(t, err)
		require.ErrorContains(t, err, "connection refused")
	})
}

func Test_newMetricRecord(t *testing.T) {
	ticker := model.Ticker{Symbol: "AAA", Name: "Alpha", Country: util.StringPointer("US")}
	// 2024-01-01 through 2024-03-31
	prices := calculator.SortPricePoints(dailyPrices(util.NewDate(2024, 1, 1), 91))

	t.Run("derives price metrics without snapshot", func(t *testing.T) {
		record := newMetricRecord(ticker, nil, nil, prices)

		require.Equal(t, "Alpha", record.Company)
		require.Equal(t, "US", *record.Country)
		require.Nil(t, record.Portfolio)
		require.Equal(t, 190.0, *record.Price)
		require.Nil(t, record.MarketCap)

		ret1w, ok := record.Value(domain.MetricReturn1W)
		require.True(t, ok)
		require.InDelta(t, 7.0/183.0, ret1w, 1e-12)

		ret3m, ok := record.Value(domain.MetricReturn3M)
		require.True(t, ok)
		require.InDelta(t, 0.9, ret3m, 1e-12)

		_, ok = record.Value(domain.MetricVolatility)
		require.True(t, ok)
		_, ok = record.Value(domain.MetricPeRatio)
		require.False(t, ok)
	})

	t.Run("copies snapshot fields", func(t *testing.T) {
		snapshot := model.AssetFundamental{
			Symbol:       "AAA",
			Price:        util.FloatPointer(42),
			MarketCap:    util.FloatPointer(1e9),
			PbRatio:      util.FloatPointer(3),
			DebtToEquity: util.FloatPointer(0.5),
		}
		record := newMetricRecord(ticker, util.StringPointer("Core"), &snapshot, nil)

		require.Equal(t, 42.0, *record.Price)
		require.Equal(t, "Core", *record.Portfolio)
		require.Equal(t, "", cmp.Diff(map[string]float64{
			domain.MetricPbRatio:      3,
			domain.MetricDebtToEquity: 0.5,
			domain.MetricMarketCap:    1e9,
		}, record.Metrics))
	})
}
