package main

import (
	"database/sql"
	"factorrank/internal/ingest"
	"factorrank/internal/logger"
	"factorrank/internal/repository"
	"factorrank/internal/util"
	"fmt"
	"io"
	"os"

	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
)

func openOptional(path string) (io.ReadCloser, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	return f, nil
}

func newIngestCmd() *cobra.Command {
	var tickersPath, fundamentalsPath, pricesPath string
	cmd := &cobra.Command{
		Use:   "ingest",
		Short: "Load tickers, fundamentals and prices from CSV files into postgres",
		RunE: func(cmd *cobra.Command, args []string) error {
			input := ingest.Input{}
			files := []struct {
				path   string
				target *io.Reader
			}{
				{tickersPath, &input.Tickers},
				{fundamentalsPath, &input.Fundamentals},
				{pricesPath, &input.Prices},
			}
			for _, f := range files {
				rc, err := openOptional(f.path)
				if err != nil {
					return err
				}
				if rc != nil {
					defer rc.Close()
					*f.target = rc
				}
			}

			secrets, err := util.LoadSecrets()
			if err != nil {
				return fmt.Errorf("failed to load secrets: %w", err)
			}
			db, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
			if err != nil {
				return fmt.Errorf("failed to connect to db: %w", err)
			}
			defer db.Close()

			handler := ingest.Handler{
				TickerRepository:       repository.NewTickerRepository(db),
				FundamentalsRepository: repository.NewAssetFundamentalsRepository(db),
				PriceRepository:        repository.NewAdjustedPriceRepository(db, secrets.Scoring.PriceCacheTtl),
			}

			tx, err := db.Begin()
			if err != nil {
				return fmt.Errorf("failed to start transaction: %w", err)
			}
			defer tx.Rollback()

			result, err := handler.Ingest(tx, input)
			if err != nil {
				return err
			}
			if err := tx.Commit(); err != nil {
				return fmt.Errorf("failed to commit: %w", err)
			}

			logger.FromContext(cmd.Context()).Infow("ingest complete",
				"tickers", result.Tickers,
				"fundamentals", result.Fundamentals,
				"prices", result.Prices,
			)
			return nil
		},
	}
	cmd.Flags().StringVar(&tickersPath, "tickers", "", "CSV of symbol,name,sector,industry,country,rating")
	cmd.Flags().StringVar(&fundamentalsPath, "fundamentals", "", "CSV of fundamentals snapshots")
	cmd.Flags().StringVar(&pricesPath, "prices", "", "CSV of symbol,date,price")
	cmd.MarkFlagsOneRequired("tickers", "fundamentals", "prices")
	return cmd
}
