package repository

import (
	"database/sql"
	"factorrank/internal/db/models/postgres/public/model"
	. "factorrank/internal/db/models/postgres/public/table"
	"factorrank/internal/domain"
	"fmt"
	"time"

	. "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/patrickmn/go-cache"
)

type AdjustedPriceRepository interface {
	// ListRecent returns up to limit of the most recent prices for
	// symbol, newest first
	ListRecent(symbol string, limit int) ([]domain.PricePoint, error)
	// Add writes prices, overwriting existing prices for the same
	// symbol and date
	Add(tx qrm.Executable, prices []model.AdjustedPrice) error
}

type adjustedPriceRepositoryHandler struct {
	Db    *sql.DB
	Cache *cache.Cache
}

func NewAdjustedPriceRepository(db *sql.DB, cacheTtl time.Duration) AdjustedPriceRepository {
	return adjustedPriceRepositoryHandler{
		Db:    db,
		Cache: cache.New(cacheTtl, cacheTtl*2),
	}
}

func priceCacheKey(symbol string, limit int) string {
	return fmt.Sprintf("prices/%s/%d", symbol, limit)
}

func (h adjustedPriceRepositoryHandler) ListRecent(symbol string, limit int) ([]domain.PricePoint, error) {
	key := priceCacheKey(symbol, limit)
	if cached, ok := h.Cache.Get(key); ok {
		if prices, ok := cached.([]domain.PricePoint); ok {
			return prices, nil
		}
	}

	query := AdjustedPrice.
		SELECT(AdjustedPrice.AllColumns).
		WHERE(AdjustedPrice.Symbol.EQ(String(symbol))).
		ORDER_BY(AdjustedPrice.Date.DESC()).
		LIMIT(int64(limit))

	result := []model.AdjustedPrice{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent prices for %s: %w", symbol, err)
	}

	out := make([]domain.PricePoint, 0, len(result))
	for _, p := range result {
		out = append(out, domain.PricePoint{
			Date:  p.Date,
			Price: p.Price,
		})
	}

	h.Cache.SetDefault(key, out)
	return out, nil
}

func (h adjustedPriceRepositoryHandler) Add(tx qrm.Executable, prices []model.AdjustedPrice) error {
	if len(prices) == 0 {
		return nil
	}
	now := time.Now().UTC()
	for i := range prices {
		prices[i].CreatedAt = now
	}

	query := AdjustedPrice.
		INSERT(AdjustedPrice.MutableColumns).
		MODELS(prices).
		ON_CONFLICT(AdjustedPrice.Symbol, AdjustedPrice.Date).
		DO_UPDATE(
			SET(AdjustedPrice.Price.SET(AdjustedPrice.EXCLUDED.Price)),
		)

	_, err := query.Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to add %d adjusted prices: %w", len(prices), err)
	}

	// cached windows may now be stale
	h.Cache.Flush()
	return nil
}
