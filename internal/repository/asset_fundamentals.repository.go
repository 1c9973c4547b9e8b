package repository

import (
	"database/sql"
	"factorrank/internal/db/models/postgres/public/model"
	. "factorrank/internal/db/models/postgres/public/table"
	"fmt"
	"time"

	. "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

type AssetFundamentalsRepository interface {
	// GetLatest returns the most recent snapshot for each symbol.
	// symbols without any snapshot are absent from the result
	GetLatest(symbols []string) (map[string]model.AssetFundamental, error)
	// Add writes snapshots, replacing any existing snapshot for
	// the same symbol and date
	Add(tx qrm.Executable, snapshots []model.AssetFundamental) error
}

type assetFundamentalsRepositoryHandler struct {
	Db *sql.DB
}

func NewAssetFundamentalsRepository(db *sql.DB) AssetFundamentalsRepository {
	return assetFundamentalsRepositoryHandler{Db: db}
}

func (h assetFundamentalsRepositoryHandler) GetLatest(symbols []string) (map[string]model.AssetFundamental, error) {
	out := map[string]model.AssetFundamental{}
	if len(symbols) == 0 {
		return out, nil
	}

	symbolExpressions := []Expression{}
	for _, s := range symbols {
		symbolExpressions = append(symbolExpressions, String(s))
	}

	query := AssetFundamental.
		SELECT(AssetFundamental.AllColumns).
		WHERE(AssetFundamental.Symbol.IN(symbolExpressions...)).
		ORDER_BY(
			AssetFundamental.Symbol.ASC(),
			AssetFundamental.AsOfDate.DESC(),
		)

	result := []model.AssetFundamental{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest asset fundamentals: %w", err)
	}

	// rows are newest first within each symbol
	for _, r := range result {
		if _, ok := out[r.Symbol]; !ok {
			out[r.Symbol] = r
		}
	}

	return out, nil
}

func (h assetFundamentalsRepositoryHandler) Add(tx qrm.Executable, snapshots []model.AssetFundamental) error {
	if len(snapshots) == 0 {
		return nil
	}
	now := time.Now().UTC()
	for i := range snapshots {
		snapshots[i].CreatedAt = now
	}

	af := AssetFundamental
	query := af.INSERT(af.MutableColumns).
		MODELS(snapshots).
		ON_CONFLICT(af.Symbol, af.AsOfDate).
		DO_UPDATE(
			SET(
				af.Price.SET(af.EXCLUDED.Price),
				af.MarketCap.SET(af.EXCLUDED.MarketCap),
				af.PeRatio.SET(af.EXCLUDED.PeRatio),
				af.PbRatio.SET(af.EXCLUDED.PbRatio),
				af.PsRatio.SET(af.EXCLUDED.PsRatio),
				af.DividendYield.SET(af.EXCLUDED.DividendYield),
				af.Roe.SET(af.EXCLUDED.Roe),
				af.Roa.SET(af.EXCLUDED.Roa),
				af.ProfitMargin.SET(af.EXCLUDED.ProfitMargin),
				af.RevenueGrowth.SET(af.EXCLUDED.RevenueGrowth),
				af.EarningsGrowth.SET(af.EXCLUDED.EarningsGrowth),
				af.DebtToEquity.SET(af.EXCLUDED.DebtToEquity),
				af.Beta.SET(af.EXCLUDED.Beta),
			),
		)

	_, err := query.Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to add %d asset fundamentals: %w", len(snapshots), err)
	}

	return nil
}
