package api

import (
	"factorrank/internal/calculator"
	"factorrank/internal/domain"
	"factorrank/internal/service"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type scoreStocksRequest struct {
	PortfolioID   *string               `json:"portfolioID"`
	Theme         string                `json:"theme"`
	FactorWeights *domain.FactorWeights `json:"factorWeights"`
}

type scoredStockResponse struct {
	Rank         int                 `json:"rank"`
	Ticker       string              `json:"ticker"`
	Company      string              `json:"company"`
	Portfolio    *string             `json:"portfolio"`
	Sector       *string             `json:"sector"`
	Industry     *string             `json:"industry"`
	Country      *string             `json:"country"`
	Rating       *string             `json:"rating"`
	Price        *float64            `json:"price"`
	MarketCap    *float64            `json:"marketCap"`
	FactorScores domain.FactorScores `json:"factorScores"`
	FinalScore   float64             `json:"finalScore"`
}

type scoreStocksResponse struct {
	Stocks          []scoredStockResponse `json:"stocks"`
	FactorWeights   domain.FactorWeights  `json:"factorWeights"`
	WeightsSumToOne bool                  `json:"weightsSumToOne"`
}

// toScoreStocksInput validates the request. any error it returns
// is the caller's fault
func (r scoreStocksRequest) toScoreStocksInput() (*service.ScoreStocksInput, error) {
	portfolioID, err := parsePortfolioID(r.PortfolioID)
	if err != nil {
		return nil, err
	}

	if r.FactorWeights != nil {
		if err := validate.Struct(r.FactorWeights); err != nil {
			return nil, fmt.Errorf("invalid factorWeights: %w", err)
		}
	}

	weights, err := calculator.ResolveFactorWeights(r.Theme, r.FactorWeights)
	if err != nil {
		return nil, err
	}

	label := string(calculator.DefaultFactorTheme)
	if r.FactorWeights != nil {
		label = "custom"
	} else if r.Theme != "" {
		theme, err := calculator.NewFactorTheme(r.Theme)
		if err != nil {
			return nil, err
		}
		label = string(*theme)
	}

	return &service.ScoreStocksInput{
		PortfolioID: portfolioID,
		Weights:     weights,
		Theme:       label,
	}, nil
}

func newScoredStockResponses(stocks []domain.ScoredStock) []scoredStockResponse {
	out := make([]scoredStockResponse, 0, len(stocks))
	for _, s := range stocks {
		r := s.Record
		out = append(out, scoredStockResponse{
			Rank:         s.Rank,
			Ticker:       r.Ticker,
			Company:      r.Company,
			Portfolio:    r.Portfolio,
			Sector:       r.Sector,
			Industry:     r.Industry,
			Country:      r.Country,
			Rating:       r.Rating,
			Price:        r.Price,
			MarketCap:    r.MarketCap,
			FactorScores: s.FactorScores,
			FinalScore:   s.FinalScore,
		})
	}
	return out
}

func (m ApiHandler) scoreStocks(c *gin.Context) {
	var requestBody scoreStocksRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, http.StatusBadRequest)
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

	c.JSON(200, scoreStocksResponse{
		Stocks:          newScoredStockResponses(result.Stocks),
		FactorWeights:   result.Weights,
		WeightsSumToOne: result.WeightsSumToOne,
	})
}
