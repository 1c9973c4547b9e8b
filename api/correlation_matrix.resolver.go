package api

import (
	"factorrank/internal/domain"
	"factorrank/internal/service"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type correlationMatrixRequest struct {
	PortfolioID    *string `json:"portfolioID"`
	Mode           string  `json:"mode"`
	IncludeWeights bool    `json:"includeWeights"`
	LookbackDays   int     `json:"lookbackDays" validate:"gte=0,lte=2520"`
}

type correlationMatrixResponse struct {
	Tickers []string          `json:"tickers"`
	Mode    domain.MatrixMode `json:"mode"`
	Matrix  [][]float64       `json:"matrix"`
	Weights []*float64        `json:"weights,omitempty"`
}

func (m ApiHandler) correlationMatrix(c *gin.Context) {
	var requestBody correlationMatrixRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, http.StatusBadRequest)
		return
	}
	if err := validate.Struct(requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid request: %w", err), c, http.StatusBadRequest)
		return
	}

	portfolioID, err := parsePortfolioID(requestBody.PortfolioID)
	if err != nil {
		returnErrorJsonCode(err, c, http.StatusBadRequest)
		return
	}
	mode, err := domain.NewMatrixMode(requestBody.Mode)
	if err != nil {
		returnErrorJsonCode(err, c, http.StatusBadRequest)
		return
	}

	result, err := m.CorrelationService.BuildMatrix(c.Request.Context(), service.BuildMatrixInput{
		PortfolioID:    portfolioID,
		Mode:           *mode,
		IncludeWeights: requestBody.IncludeWeights,
		LookbackDays:   requestBody.LookbackDays,
	})
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to build matrix: %w", err), c)
		return
	}

	c.JSON(200, correlationMatrixResponse{
		Tickers: result.Matrix.Tickers,
		Mode:    result.Matrix.Mode,
		Matrix:  result.Matrix.Values,
		Weights: result.Weights,
	})
}
