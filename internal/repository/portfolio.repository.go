package repository

import (
	"database/sql"
	"factorrank/internal/db/models/postgres/public/model"
	"factorrank/internal/db/models/postgres/public/table"
	"fmt"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/google/uuid"
)

type PortfolioRepository interface {
	Get(portfolioID uuid.UUID) (*model.Portfolio, error)
}

type portfolioRepositoryHandler struct {
	Db *sql.DB
}

func NewPortfolioRepository(db *sql.DB) PortfolioRepository {
	return portfolioRepositoryHandler{Db: db}
}

func (h portfolioRepositoryHandler) Get(portfolioID uuid.UUID) (*model.Portfolio, error) {
	query := table.Portfolio.
		SELECT(table.Portfolio.AllColumns).
		WHERE(table.Portfolio.PortfolioID.EQ(postgres.UUID(portfolioID)))

	out := model.Portfolio{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to get portfolio %s: %w", portfolioID.String(), err)
	}

	return &out, nil
}
