package cmd

import (
	"database/sql"
	"factorrank/api"
	"factorrank/internal/repository"
	"factorrank/internal/service"
	"factorrank/internal/util"
	"fmt"
	"log"

	_ "github.com/lib/pq"
)

func CloseDependencies(handler *api.ApiHandler) {
	err := handler.Db.Close()
	if err != nil {
		log.Fatalf("failed to close db: %v", err)
	}
}

func InitializeDependencies() (*api.ApiHandler, *util.Secrets, error) {
	secrets, err := util.LoadSecrets()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	dbConn, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	tickerRepository := repository.NewTickerRepository(dbConn)
	portfolioRepository := repository.NewPortfolioRepository(dbConn)
	fundamentalsRepository := repository.NewAssetFundamentalsRepository(dbConn)
	priceRepository := repository.NewAdjustedPriceRepository(dbConn, secrets.Scoring.PriceCacheTtl)

	scoringService := service.NewScoringService(
		tickerRepository,
		portfolioRepository,
		fundamentalsRepository,
		priceRepository,
		secrets.Scoring.PriceLookback,
		secrets.Scoring.PriceLoadWorkers,
	)
	correlationService := service.NewCorrelationService(
		tickerRepository,
		priceRepository,
		secrets.Scoring.PriceLoadWorkers,
	)

	apiHandler := &api.ApiHandler{
		Db:                 dbConn,
		ScoringService:     scoringService,
		CorrelationService: correlationService,
		ExportService:      service.NewExportService(),
	}

	return apiHandler, secrets, nil
}
