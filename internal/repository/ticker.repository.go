package repository

import (
	"database/sql"
	"factorrank/internal/db/models/postgres/public/model"
	"factorrank/internal/db/models/postgres/public/table"
	"fmt"
	"time"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

type TickerRepository interface {
	// List returns every ticker, or only those held in
	// the portfolio when portfolioID is set
	List(portfolioID *uuid.UUID) ([]model.Ticker, error)
	// Upsert inserts tickers, updating display fields of
	// symbols that already exist
	Upsert(tx qrm.Executable, tickers []model.Ticker) error
}

type tickerRepositoryHandler struct {
	Db *sql.DB
}

func NewTickerRepository(db *sql.DB) TickerRepository {
	return tickerRepositoryHandler{Db: db}
}

func (h tickerRepositoryHandler) List(portfolioID *uuid.UUID) ([]model.Ticker, error) {
	query := table.Ticker.
		SELECT(table.Ticker.AllColumns).
		ORDER_BY(table.Ticker.Symbol.ASC())

	if portfolioID != nil {
		query = postgres.
			SELECT(table.Ticker.AllColumns).
			FROM(
				table.Ticker.INNER_JOIN(
					table.PortfolioTicker,
					table.PortfolioTicker.TickerID.EQ(table.Ticker.TickerID),
				),
			).
			WHERE(table.PortfolioTicker.PortfolioID.EQ(postgres.UUID(*portfolioID))).
			ORDER_BY(table.Ticker.Symbol.ASC())
	}

	result := []model.Ticker{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list tickers: %w", err)
	}

	return result, nil
}

func (h tickerRepositoryHandler) Upsert(tx qrm.Executable, tickers []model.Ticker) error {
	if len(tickers) == 0 {
		return nil
	}
	now := time.Now().UTC()
	for i := range tickers {
		tickers[i].CreatedAt = now
	}

	t := table.Ticker
	query := t.INSERT(t.MutableColumns).
		MODELS(tickers).
		ON_CONFLICT(t.Symbol).
		DO_UPDATE(
			postgres.SET(
				t.Name.SET(t.EXCLUDED.Name),
				t.Sector.SET(t.EXCLUDED.Sector),
				t.Industry.SET(t.EXCLUDED.Industry),
				t.Country.SET(t.EXCLUDED.Country),
				t.Rating.SET(t.EXCLUDED.Rating),
			),
		)

	_, err := query.Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to upsert %d tickers: %w", len(tickers), err)
	}

	return nil
}
