package domain

import (
	"fmt"
	"math"
	"strings"
)

type FactorName string

const (
	FactorValue    FactorName = "value"
	FactorQuality  FactorName = "quality"
	FactorGrowth   FactorName = "growth"
	FactorMomentum FactorName = "momentum"
	FactorRisk     FactorName = "risk"
)

// AllFactors is the fixed order factors are aggregated and
// displayed in
var AllFactors = []FactorName{
	FactorValue,
	FactorQuality,
	FactorGrowth,
	FactorMomentum,
	FactorRisk,
}

func NewFactorName(s string) (*FactorName, error) {
	for _, f := range AllFactors {
		if strings.EqualFold(string(f), strings.TrimSpace(s)) {
			return &f, nil
		}
	}
	return nil, fmt.Errorf("could not convert '%s' to known factor", s)
}

type Direction string

const (
	HigherIsBetter Direction = "higher-is-better"
	LowerIsBetter  Direction = "lower-is-better"
)

type FactorMetric struct {
	Field     string    `json:"field"`
	Direction Direction `json:"direction"`
	// relative weight of the metric within its factor
	Weight float64 `json:"weight"`
}

type FactorDefinition struct {
	Name    FactorName     `json:"name"`
	Metrics []FactorMetric `json:"metrics"`
}

// Validate catches malformed definitions. Metric fields are not
// checked against the catalog here; unknown fields are skipped at
// scoring time
func (d FactorDefinition) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("factor definition has no name")
	}
	if len(d.Metrics) == 0 {
		return fmt.Errorf("factor %s has no metrics", d.Name)
	}
	for _, m := range d.Metrics {
		if m.Field == "" {
			return fmt.Errorf("factor %s has metric with empty field", d.Name)
		}
		if m.Direction != HigherIsBetter && m.Direction != LowerIsBetter {
			return fmt.Errorf("factor %s metric %s has unknown direction '%s'", d.Name, m.Field, m.Direction)
		}
		if m.Weight < 0 || math.IsNaN(m.Weight) {
			return fmt.Errorf("factor %s metric %s has invalid weight %f", d.Name, m.Field, m.Weight)
		}
	}
	return nil
}

// FactorWeights are the top-level weights used to combine factor
// scores. They do not need to sum to 1
type FactorWeights struct {
	Value    float64 `json:"value" validate:"gte=0,lte=1"`
	Quality  float64 `json:"quality" validate:"gte=0,lte=1"`
	Growth   float64 `json:"growth" validate:"gte=0,lte=1"`
	Momentum float64 `json:"momentum" validate:"gte=0,lte=1"`
	Risk     float64 `json:"risk" validate:"gte=0,lte=1"`
}

func (w FactorWeights) Get(f FactorName) float64 {
	switch f {
	case FactorValue:
		return w.Value
	case FactorQuality:
		return w.Quality
	case FactorGrowth:
		return w.Growth
	case FactorMomentum:
		return w.Momentum
	case FactorRisk:
		return w.Risk
	}
	return 0
}

func (w FactorWeights) Sum() float64 {
	return w.Value + w.Quality + w.Growth + w.Momentum + w.Risk
}

// SumsToOne is informational only - callers may want to
// warn, but the engine accepts any sum
func (w FactorWeights) SumsToOne() bool {
	return math.Abs(w.Sum()-1) < 0.0001
}

type FactorScores struct {
	Value    *float64 `json:"value"`
	Quality  *float64 `json:"quality"`
	Growth   *float64 `json:"growth"`
	Momentum *float64 `json:"momentum"`
	Risk     *float64 `json:"risk"`
}

func (s FactorScores) Get(f FactorName) *float64 {
	switch f {
	case FactorValue:
		return s.Value
	case FactorQuality:
		return s.Quality
	case FactorGrowth:
		return s.Growth
	case FactorMomentum:
		return s.Momentum
	case FactorRisk:
		return s.Risk
	}
	return nil
}

func (s *FactorScores) Set(f FactorName, v *float64) {
	switch f {
	case FactorValue:
		s.Value = v
	case FactorQuality:
		s.Quality = v
	case FactorGrowth:
		s.Growth = v
	case FactorMomentum:
		s.Momentum = v
	case FactorRisk:
		s.Risk = v
	}
}

type ScoredStock struct {
	Rank   int          `json:"rank"`
	Record MetricRecord `json:"-"`

	FactorScores FactorScores `json:"factorScores"`
	// always set, 0 when no factor could be scored
	FinalScore float64 `json:"finalScore"`
}

func (s ScoredStock) Ticker() string {
	return s.Record.Ticker
}
