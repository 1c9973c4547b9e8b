package api

import (
	"factorrank/internal/calculator"
	"factorrank/internal/domain"

	"github.com/gin-gonic/gin"
)

type factorThemeResponse struct {
	Name            calculator.FactorTheme `json:"name"`
	Weights         domain.FactorWeights   `json:"weights"`
	WeightsSumToOne bool                   `json:"weightsSumToOne"`
}

type factorThemesResponse struct {
	DefaultTheme calculator.FactorTheme    `json:"defaultTheme"`
	Themes       []factorThemeResponse     `json:"themes"`
	Factors      []domain.FactorDefinition `json:"factors"`
}

func (m ApiHandler) factorThemes(c *gin.Context) {
	themes := []factorThemeResponse{}
	for _, t := range calculator.FactorThemes() {
		w := t.Weights()
		themes = append(themes, factorThemeResponse{
			Name:            t,
			Weights:         w,
			WeightsSumToOne: w.SumsToOne(),
		})
	}

	c.JSON(200, factorThemesResponse{
		DefaultTheme: calculator.DefaultFactorTheme,
		Themes:       themes,
		Factors:      calculator.FactorDefinitions(),
	})
}
