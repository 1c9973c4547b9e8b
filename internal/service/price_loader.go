package service

import (
	"context"
	"factorrank/internal/calculator"
	"factorrank/internal/domain"
	"factorrank/internal/repository"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
)

// loadPriceHistories fetches up to lookback recent prices for every
// symbol, at most workers at a time. the returned series are
// sorted oldest first. symbols without prices map to an empty slice
func loadPriceHistories(
	ctx context.Context,
	priceRepository repository.AdjustedPriceRepository,
	symbols []string,
	lookback int,
	workers int,
) (map[string][]domain.PricePoint, error) {
	if workers < 1 {
		workers = 1
	}

	out := make(map[string][]domain.PricePoint, len(symbols))
	mu := sync.Mutex{}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, symbol := range symbols {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			prices, err := priceRepository.ListRecent(symbol, lookback)
			if err != nil {
				return fmt.Errorf("failed to load prices for %s: %w", symbol, err)
			}
			sorted := calculator.SortPricePoints(prices)

			mu.Lock()
			out[symbol] = sorted
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
