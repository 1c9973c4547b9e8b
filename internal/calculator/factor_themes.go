package calculator

import (
	"factorrank/internal/domain"
	"fmt"
	"strings"
)

type FactorTheme string

const (
	FactorTheme_Value      FactorTheme = "value"
	FactorTheme_Growth     FactorTheme = "growth"
	FactorTheme_Stability  FactorTheme = "stability"
	FactorTheme_Momentum   FactorTheme = "momentum"
	FactorTheme_AllWeather FactorTheme = "all_weather"
	FactorTheme_Balanced   FactorTheme = "balanced"
)

const DefaultFactorTheme = FactorTheme_Balanced

// presets are just named defaults for the weights input; they
// go through the same aggregation as custom weights
var factorThemes = []struct {
	Theme   FactorTheme
	Weights domain.FactorWeights
}{
	{FactorTheme_Value, domain.FactorWeights{Value: 0.5, Quality: 0.2, Growth: 0.1, Momentum: 0.1, Risk: 0.1}},
	{FactorTheme_Growth, domain.FactorWeights{Value: 0.1, Quality: 0.15, Growth: 0.5, Momentum: 0.15, Risk: 0.1}},
	{FactorTheme_Stability, domain.FactorWeights{Value: 0.15, Quality: 0.35, Growth: 0.05, Momentum: 0.05, Risk: 0.4}},
	{FactorTheme_Momentum, domain.FactorWeights{Value: 0.05, Quality: 0.1, Growth: 0.15, Momentum: 0.6, Risk: 0.1}},
	{FactorTheme_AllWeather, domain.FactorWeights{Value: 0.2, Quality: 0.3, Growth: 0.1, Momentum: 0.1, Risk: 0.3}},
	{FactorTheme_Balanced, domain.FactorWeights{Value: 0.2, Quality: 0.2, Growth: 0.2, Momentum: 0.2, Risk: 0.2}},
}

func NewFactorTheme(s string) (*FactorTheme, error) {
	for _, t := range factorThemes {
		if strings.EqualFold(
			strings.ReplaceAll(string(t.Theme), "_", ""),
			strings.ReplaceAll(strings.ReplaceAll(s, "-", ""), "_", ""),
		) {
			theme := t.Theme
			return &theme, nil
		}
	}
	return nil, fmt.Errorf("could not convert '%s' to known factor theme", s)
}

func FactorThemes() []FactorTheme {
	out := make([]FactorTheme, len(factorThemes))
	for i, t := range factorThemes {
		out[i] = t.Theme
	}
	return out
}

func (t FactorTheme) Weights() domain.FactorWeights {
	for _, preset := range factorThemes {
		if preset.Theme == t {
			return preset.Weights
		}
	}
	return domain.FactorWeights{}
}

// ResolveFactorWeights picks custom weights when given, otherwise the
// named theme, otherwise the default theme
func ResolveFactorWeights(theme string, custom *domain.FactorWeights) (domain.FactorWeights, error) {
	if custom != nil {
		return *custom, nil
	}
	if theme == "" {
		return DefaultFactorTheme.Weights(), nil
	}
	t, err := NewFactorTheme(theme)
	if err != nil {
		return domain.FactorWeights{}, err
	}
	return t.Weights(), nil
}
