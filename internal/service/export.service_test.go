package service

import (
	"bytes"
	"factorrank/internal/domain"
	"factorrank/internal/util"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func exportFixture() []domain.ScoredStock {
	return []domain.ScoredStock{
		{
			Rank: 1,
			Record: domain.MetricRecord{
				Ticker:    "AAA",
				Company:   "Alpha",
				Portfolio: util.StringPointer("Core"),
				Sector:    util.StringPointer("Tech"),
				Price:     util.FloatPointer(123.456),
				MarketCap: util.FloatPointer(2500000000),
			},
			FactorScores: domain.FactorScores{
				Value:   util.FloatPointer(1.23456),
				Quality: util.FloatPointer(-0.5),
			},
			FinalScore: 0.75,
		},
		{
			Rank:       2,
			Record:     domain.MetricRecord{Ticker: "BBB", Company: "Beta Corp"},
			FinalScore: 0,
		},
	}
}

func TestNewExportFormat(t *testing.T) {
	f, err := NewExportFormat("XLSX")
	require.NoError(t, err)
	require.Equal(t, ExportFormat_Xlsx, *f)

	f, err = NewExportFormat(".csv")
	require.NoError(t, err)
	require.Equal(t, ExportFormat_Csv, *f)

	_, err = NewExportFormat("pdf")
	require.Error(t, err)
}

func TestNewExportRows(t *testing.T) {
	rows := NewExportRows(exportFixture())
	expected := []ExportRow{
		{
			Rank:       1,
			Ticker:     "AAA",
			Company:    "Alpha",
			Portfolio:  "Core",
			Sector:     "Tech",
			Price:      "123.46",
			MarketCap:  "2500000000",
			FinalScore: "0.7500",
			Value:      "1.2346",
			Quality:    "-0.5000",
		},
		{
			Rank:       2,
			Ticker:     "BBB",
			Company:    "Beta Corp",
			FinalScore: "0.0000",
		},
	}
	require.Equal(t, "", cmp.Diff(expected, rows))
}

func TestExportService_Export(t *testing.T) {
	svc := NewExportService()

	t.Run("csv", func(t *testing.T) {
		out, err := svc.Export(exportFixture(), ExportFormat_Csv)
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(string(out)), "\n")
		require.Len(t, lines, 3)
		require.Equal(t, strings.Join(exportHeader, ","), lines[0])
		require.Equal(t, "1,AAA,Alpha,Core,Tech,,,,123.46,2500000000,0.7500,1.2346,-0.5000,,,", lines[1])
	})

	t.Run("xlsx", func(t *testing.T) {
		out, err := svc.Export(exportFixture(), ExportFormat_Xlsx)
		require.NoError(t, err)

		f, err := excelize.OpenReader(bytes.NewReader(out))
		require.NoError(t, err)
		defer f.Close()

		rows, err := f.GetRows(exportSheetName)
		require.NoError(t, err)
		require.Len(t, rows, 3)
		require.Equal(t, exportHeader, rows[0])
		require.Equal(t, "AAA", rows[1][1])
		require.Equal(t, "0.7500", rows[1][10])
		require.Equal(t, "2", rows[2][0])
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := svc.Export(exportFixture(), ExportFormat("pdf"))
		require.Error(t, err)
	})
}
