package api

import (
	"factorrank/internal/service"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type exportScoresRequest struct {
	scoreStocksRequest
	Format string `json:"format"`
}

func (m ApiHandler) exportScores(c *gin.Context) {
	var requestBody exportScoresRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, http.StatusBadRequest)
		return
	}

	format, err := service.NewExportFormat(requestBody.Format)
	if err != nil {
		returnErrorJsonCode(err, c, http.StatusBadRequest)
		return
	}

	in, err := requestBody.toScoreStocksInput()
	if err != nil {
		returnErrorJsonCode(err, c, http.StatusBadRequest)
		return
	}

	result, err := m.ScoringService.ScoreStocks(c.Request.Context(), *in)
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to score stocks: %w", err), c)
		return
	}

	out, err := m.ExportService.Export(result.Stocks, *format)
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to export scores: %w", err), c)
		return
	}

	filename := fmt.Sprintf("factor-scores-%s.%s", time.Now().UTC().Format(time.DateOnly), *format)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(200, format.ContentType(), out)
}
