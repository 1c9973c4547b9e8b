package service

import (
	"context"
	"factorrank/internal/db/models/postgres/public/model"
	"factorrank/internal/domain"
	mock_repository "factorrank/internal/repository/mocks"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// pricesNewestFirst lays prices out on consecutive days ending
// 2024-03-01, in the order the repository returns them
func pricesNewestFirst(oldestFirst ...float64) []domain.PricePoint {
	end := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	out := []domain.PricePoint{}
	for i := len(oldestFirst) - 1; i >= 0; i-- {
		out = append(out, domain.PricePoint{
			Date:  end.AddDate(0, 0, i-len(oldestFirst)+1),
			Price: oldestFirst[i],
		})
	}
	return out
}

func TestCorrelationService_BuildMatrix(t *testing.T) {
	ctx := context.Background()
	tickers := []model.Ticker{{Symbol: "AAA"}, {Symbol: "BBB"}}

	newHandler := func(t *testing.T, lookback int) correlationServiceHandler {
		ctrl := gomock.NewController(t)
		tickerRepository := mock_repository.NewMockTickerRepository(ctrl)
		priceRepository := mock_repository.NewMockAdjustedPriceRepository(ctrl)

		tickerRepository.EXPECT().List(nil).Return(tickers, nil)
		// returns [0.1, -0.1] and [-0.1, 0.1]
		priceRepository.EXPECT().ListRecent("AAA", lookback).Return(pricesNewestFirst(100, 110, 99), nil)
		priceRepository.EXPECT().ListRecent("BBB", lookback).Return(pricesNewestFirst(100, 90, 99), nil)

		return correlationServiceHandler{
			TickerRepository: tickerRepository,
			PriceRepository:  priceRepository,
			PriceLoadWorkers: 4,
		}
	}

	t.Run("correlation with default lookback", func(t *testing.T) {
		handler := newHandler(t, DefaultLookbackDays)
		result, err := handler.BuildMatrix(ctx, BuildMatrixInput{})
		require.NoError(t, err)

		m := result.Matrix
		require.Equal(t, []string{"AAA", "BBB"}, m.Tickers)
		require.Equal(t, domain.MatrixMode_Correlation, m.Mode)
		require.InDelta(t, 1.0, m.Values[0][0], 1e-9)
		require.InDelta(t, 1.0, m.Values[1][1], 1e-9)
		require.InDelta(t, -1.0, m.Values[0][1], 1e-9)
		require.Equal(t, m.Values[0][1], m.Values[1][0])
		require.Nil(t, result.Weights)
	})

	t.Run("weights come from covariance in correlation mode", func(t *testing.T) {
		handler := newHandler(t, 30)
		result, err := handler.BuildMatrix(ctx, BuildMatrixInput{
			Mode:           domain.MatrixMode_Correlation,
			IncludeWeights: true,
			LookbackDays:   30,
		})
		require.NoError(t, err)

		require.Len(t, result.Weights, 2)
		require.InDelta(t, 0.5, *result.Weights[0], 1e-6)
		require.InDelta(t, 0.5, *result.Weights[1], 1e-6)
	})

	t.Run("covariance mode", func(t *testing.T) {
		handler := newHandler(t, DefaultLookbackDays)
		result, err := handler.BuildMatrix(ctx, BuildMatrixInput{
			Mode:           domain.MatrixMode_Covariance,
			IncludeWeights: true,
		})
		require.NoError(t, err)

		m := result.Matrix
		require.Equal(t, domain.MatrixMode_Covariance, m.Mode)
		require.InDelta(t, 0.02, m.Values[0][0], 1e-9)
		require.InDelta(t, -0.02, m.Values[0][1], 1e-9)
		require.Len(t, result.Weights, 2)
	})
}

func TestCorrelationService_BuildMatrix_NoPrices(t *testing.T) {
	ctrl := gomock.NewController(t)
	tickerRepository := mock_repository.NewMockTickerRepository(ctrl)
	priceRepository := mock_repository.NewMockAdjustedPriceRepository(ctrl)
	tickerRepository.EXPECT().List(nil).Return([]model.Ticker{{Symbol: "AAA"}}, nil)
	priceRepository.EXPECT().ListRecent("AAA", DefaultLookbackDays).Return([]domain.PricePoint{}, nil)

	handler := NewCorrelationService(tickerRepository, priceRepository, 1)
	result, err := handler.BuildMatrix(context.Background(), BuildMatrixInput{IncludeWeights: true})
	require.NoError(t, err)
	require.Equal(t, [][]float64{{0}}, result.Matrix.Values)
	require.Equal(t, []*float64{nil}, result.Weights)
}
