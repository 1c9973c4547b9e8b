package service

import (
	"factorrank/internal/domain"
	"factorrank/internal/metrics"
	"fmt"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

type ExportFormat string

const (
	ExportFormat_Xlsx ExportFormat = "xlsx"
	ExportFormat_Csv  ExportFormat = "csv"
)

func NewExportFormat(s string) (*ExportFormat, error) {
	for _, f := range []ExportFormat{ExportFormat_Xlsx, ExportFormat_Csv} {
		if strings.EqualFold(string(f), strings.TrimPrefix(s, ".")) {
			return &f, nil
		}
	}
	return nil, fmt.Errorf("could not convert '%s' to known export format", s)
}

func (f ExportFormat) ContentType() string {
	if f == ExportFormat_Xlsx {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv"
}

const exportSheetName = "Scores"

// ExportRow is one line of the ranked export. column order is
// relied on by downstream spreadsheets
type ExportRow struct {
	Rank       int    `csv:"rank"`
	Ticker     string `csv:"ticker"`
	Company    string `csv:"company"`
	Portfolio  string `csv:"portfolio"`
	Sector     string `csv:"sector"`
	Industry   string `csv:"industry"`
	Country    string `csv:"country"`
	Rating     string `csv:"rating"`
	Price      string `csv:"price"`
	MarketCap  string `csv:"market cap"`
	FinalScore string `csv:"final score"`
	Value      string `csv:"value"`
	Quality    string `csv:"quality"`
	Growth     string `csv:"growth"`
	Momentum   string `csv:"momentum"`
	Risk       string `csv:"risk"`
}

var exportHeader = []string{
	"rank", "ticker", "company", "portfolio", "sector", "industry", "country", "rating",
	"price", "market cap", "final score", "value", "quality", "growth", "momentum", "risk",
}

func (r ExportRow) cells() []interface{} {
	return []interface{}{
		r.Rank, r.Ticker, r.Company, r.Portfolio, r.Sector, r.Industry, r.Country, r.Rating,
		r.Price, r.MarketCap, r.FinalScore, r.Value, r.Quality, r.Growth, r.Momentum, r.Risk,
	}
}

type ExportService interface {
	Export(stocks []domain.ScoredStock, format ExportFormat) ([]byte, error)
}

type exportServiceHandler struct{}

func NewExportService() ExportService {
	return exportServiceHandler{}
}

func (h exportServiceHandler) Export(stocks []domain.ScoredStock, format ExportFormat) ([]byte, error) {
	rows := NewExportRows(stocks)

	var (
		out []byte
		err error
	)
	switch format {
	case ExportFormat_Csv:
		out, err = gocsv.MarshalBytes(&rows)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal csv: %w", err)
		}
	case ExportFormat_Xlsx:
		out, err = writeXlsx(rows)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported export format '%s'", format)
	}

	metrics.ExportsTotal.WithLabelValues(string(format)).Inc()
	return out, nil
}

func NewExportRows(stocks []domain.ScoredStock) []ExportRow {
	rows := make([]ExportRow, 0, len(stocks))
	for _, s := range stocks {
		r := s.Record
		rows = append(rows, ExportRow{
			Rank:       s.Rank,
			Ticker:     r.Ticker,
			Company:    r.Company,
			Portfolio:  stringOrEmpty(r.Portfolio),
			Sector:     stringOrEmpty(r.Sector),
			Industry:   stringOrEmpty(r.Industry),
			Country:    stringOrEmpty(r.Country),
			Rating:     stringOrEmpty(r.Rating),
			Price:      fixedOrEmpty(r.Price, 2),
			MarketCap:  fixedOrEmpty(r.MarketCap, 0),
			FinalScore: decimal.NewFromFloat(s.FinalScore).StringFixed(4),
			Value:      fixedOrEmpty(s.FactorScores.Value, 4),
			Quality:    fixedOrEmpty(s.FactorScores.Quality, 4),
			Growth:     fixedOrEmpty(s.FactorScores.Growth, 4),
			Momentum:   fixedOrEmpty(s.FactorScores.Momentum, 4),
			Risk:       fixedOrEmpty(s.FactorScores.Risk, 4),
		})
	}
	return rows
}

func writeXlsx(rows []ExportRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheetName); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	header := make([]interface{}, len(exportHeader))
	for i, h := range exportHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(exportSheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	for i, r := range rows {
		cells := r.cells()
		if err := f.SetSheetRow(exportSheetName, "A"+strconv.Itoa(i+2), &cells); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func fixedOrEmpty(f *float64, places int32) string {
	if f == nil {
		return ""
	}
	return decimal.NewFromFloat(*f).StringFixed(places)
}
