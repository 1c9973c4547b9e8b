package main

import (
	"context"
	"encoding/json"
	"factorrank/internal/calculator"
	"factorrank/internal/domain"
	"factorrank/internal/logger"
	"factorrank/internal/service"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "factorrank",
		Short:         "Score stocks and build correlation matrices from local files",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newScoreCmd(), newMatrixCmd(), newIngestCmd())
	return root
}

func newScoreCmd() *cobra.Command {
	var (
		input   string
		theme   string
		weights string
		out     string
	)
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Rank a universe of metric records",
		RunE: func(cmd *cobra.Command, args []string) error {
			universe := []domain.MetricRecord{}
			if err := readJsonFile(input, &universe); err != nil {
				return err
			}

			custom, err := parseWeights(weights)
			if err != nil {
				return err
			}
			resolved, err := calculator.ResolveFactorWeights(theme, custom)
			if err != nil {
				return err
			}
			if !resolved.SumsToOne() {
				logger.FromContext(cmd.Context()).Warnf("factor weights sum to %f, not 1", resolved.Sum())
			}

			ranked := calculator.RankStocks(calculator.RankStocksInput{
				Universe: universe,
				Weights:  resolved,
			})

			if out == "" {
				return printScores(cmd.OutOrStdout(), ranked)
			}
			return writeExport(cmd.Context(), out, ranked)
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "JSON file of metric records")
	cmd.Flags().StringVar(&theme, "theme", "", "factor theme preset (default balanced)")
	cmd.Flags().StringVar(&weights, "weights", "", "custom weights as value,quality,growth,momentum,risk")
	cmd.Flags().StringVarP(&out, "out", "o", "", "write ranked scores to a .xlsx or .csv file")
	cmd.MarkFlagRequired("input")
	cmd.MarkFlagsMutuallyExclusive("theme", "weights")
	return cmd
}

// priceSeriesFile is the on-disk shape of a price history. dates
// are YYYY-MM-DD
type priceSeriesFile struct {
	Ticker string `json:"ticker"`
	Prices []struct {
		Date  string  `json:"date"`
		Price float64 `json:"price"`
	} `json:"prices"`
}

func (f priceSeriesFile) toPricePoints() ([]domain.PricePoint, error) {
	out := make([]domain.PricePoint, 0, len(f.Prices))
	for _, p := range f.Prices {
		date, err := time.Parse(time.DateOnly, p.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid date for %s: %w", f.Ticker, err)
		}
		out = append(out, domain.PricePoint{Date: date, Price: p.Price})
	}
	return out, nil
}

type matrixOutput struct {
	Tickers []string          `json:"tickers"`
	Mode    domain.MatrixMode `json:"mode"`
	Matrix  [][]float64       `json:"matrix"`
	Weights []*float64        `json:"weights,omitempty"`
}

func newMatrixCmd() *cobra.Command {
	var (
		input          string
		mode           string
		includeWeights bool
	)
	cmd := &cobra.Command{
		Use:   "matrix",
		Short: "Build a correlation or covariance matrix from price histories",
		RunE: func(cmd *cobra.Command, args []string) error {
			matrixMode, err := domain.NewMatrixMode(mode)
			if err != nil {
				return err
			}

			series := []priceSeriesFile{}
			if err := readJsonFile(input, &series); err != nil {
				return err
			}

			tickers := make([]string, 0, len(series))
			returns := make([][]float64, 0, len(series))
			for _, s := range series {
				points, err := s.toPricePoints()
				if err != nil {
					return err
				}
				tickers = append(tickers, s.Ticker)
				returns = append(returns, calculator.ReturnsFromPricePoints(points))
			}

			m := calculator.BuildMatrix(tickers, returns, *matrixMode)
			out := matrixOutput{
				Tickers: m.Tickers,
				Mode:    m.Mode,
				Matrix:  m.Values,
			}
			if includeWeights {
				out.Weights = calculator.NaiveRiskParityWeights(
					calculator.BuildMatrix(tickers, returns, domain.MatrixMode_Covariance),
				)
			}

			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			return encoder.Encode(out)
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "JSON file of per-ticker price series")
	cmd.Flags().StringVar(&mode, "mode", string(domain.MatrixMode_Correlation), "correlation or covariance")
	cmd.Flags().BoolVar(&includeWeights, "weights", false, "include naive inverse-variance weights")
	cmd.MarkFlagRequired("input")
	return cmd
}

func readJsonFile(path string, v any) error {
	f, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(f, v); err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return nil
}

var validate = validator.New()

// parseWeights reads "v,q,g,m,r". an empty string means no custom
// weights
func parseWeights(s string) (*domain.FactorWeights, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	if len(parts) != len(domain.AllFactors) {
		return nil, fmt.Errorf("expected %d comma separated weights, got %d", len(domain.AllFactors), len(parts))
	}

	values := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid %s weight '%s': %w", domain.AllFactors[i], p, err)
		}
		values[i] = v
	}

	weights := domain.FactorWeights{
		Value:    values[0],
		Quality:  values[1],
		Growth:   values[2],
		Momentum: values[3],
		Risk:     values[4],
	}
	if err := validate.Struct(weights); err != nil {
		return nil, fmt.Errorf("invalid weights: %w", err)
	}
	return &weights, nil
}

func formatScore(f *float64) string {
	if f == nil {
		return "-"
	}
	return strconv.FormatFloat(*f, 'f', 3, 64)
}

func printScores(w io.Writer, ranked []domain.ScoredStock) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "RANK\tTICKER\tCOMPANY\tFINAL\tVALUE\tQUALITY\tGROWTH\tMOMENTUM\tRISK")
	for _, s := range ranked {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%.3f\t%s\t%s\t%s\t%s\t%s\n",
			s.Rank,
			s.Ticker(),
			s.Record.Company,
			s.FinalScore,
			formatScore(s.FactorScores.Value),
			formatScore(s.FactorScores.Quality),
			formatScore(s.FactorScores.Growth),
			formatScore(s.FactorScores.Momentum),
			formatScore(s.FactorScores.Risk),
		)
	}
	return tw.Flush()
}

func writeExport(ctx context.Context, path string, ranked []domain.ScoredStock) error {
	format, err := service.NewExportFormat(filepath.Ext(path))
	if err != nil {
		return err
	}
	out, err := service.NewExportService().Export(ranked, *format)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	logger.FromContext(ctx).Infof("wrote %d ranked stocks to %s", len(ranked), path)
	return nil
}
