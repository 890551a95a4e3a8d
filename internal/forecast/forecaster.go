package forecast

import (
	"fmt"
	"math"

	"econdash/internal/errors"
)

// GlobalAverageGrowth is the reference the forecast delta is measured against
const GlobalAverageGrowth = 2.5

// Regions offered by the forecasting form
var Regions = []string{"North America", "Europe", "Asia", "Latin America", "Africa", "Oceania"}

// Range is an inclusive slider range
type Range struct {
	Min, Max, Default, Step float64
}

var (
	GDPGrowthRange    = Range{Min: -5, Max: 10, Default: 2.5, Step: 0.1}
	InflationRange    = Range{Min: 0, Max: 20, Default: 3, Step: 0.1}
	UnemploymentRange = Range{Min: 1, Max: 20, Default: 5, Step: 0.1}
	TradeBalanceRange = Range{Min: -15, Max: 15, Default: 0, Step: 0.1}
)

// Input holds the forecasting form values
type Input struct {
	GDPGrowth        float64 `json:"gdp_growth"`
	InflationRate    float64 `json:"inflation_rate"`
	UnemploymentRate float64 `json:"unemployment_rate"`
	TradeBalance     float64 `json:"trade_balance"`
	Region           string  `json:"region"`
}

// DefaultInput returns the form's initial slider positions
func DefaultInput() Input {
	return Input{
		GDPGrowth:        GDPGrowthRange.Default,
		InflationRate:    InflationRange.Default,
		UnemploymentRate: UnemploymentRange.Default,
		TradeBalance:     TradeBalanceRange.Default,
		Region:           Regions[0],
	}
}

// Validate checks every value against its slider range
func (in Input) Validate() error {
	checks := []struct {
		name  string
		value float64
		r     Range
	}{
		{"GDP growth rate", in.GDPGrowth, GDPGrowthRange},
		{"inflation rate", in.InflationRate, InflationRange},
		{"unemployment rate", in.UnemploymentRate, UnemploymentRange},
		{"trade balance", in.TradeBalance, TradeBalanceRange},
	}
	for _, c := range checks {
		if math.IsNaN(c.value) || c.value < c.r.Min || c.value > c.r.Max {
			return errors.InvalidInput(fmt.Sprintf("%s must be between %g and %g", c.name, c.r.Min, c.r.Max))
		}
	}
	for _, r := range Regions {
		if r == in.Region {
			return nil
		}
	}
	return errors.InvalidInput(fmt.Sprintf("unknown region %q", in.Region))
}

// Row converts the input into model features, one-hot encoding the region
func (in Input) Row() []Feature {
	return []Feature{
		{Name: "GDP_Growth", Value: in.GDPGrowth},
		{Name: "Inflation_Rate", Value: in.InflationRate},
		{Name: "Unemployment_Rate", Value: in.UnemploymentRate},
		{Name: "Trade_Balance", Value: in.TradeBalance},
		{Name: "Region_Asia", Value: indicator(in.Region == "Asia")},
		{Name: "Region_Europe", Value: indicator(in.Region == "Europe")},
		{Name: "Region_North_America", Value: indicator(in.Region == "North America")},
	}
}

func indicator(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// Growth status labels
const (
	StatusRecession = "Recession"
	StatusSlow      = "Slow Growth"
	StatusModerate  = "Moderate Growth"
	StatusStrong    = "Strong Growth"
)

// Result is a generated forecast
type Result struct {
	Input      Input    `json:"input"`
	Prediction float64  `json:"prediction"`
	Delta      float64  `json:"delta"`
	Status     string   `json:"status"`
	Indicator  string   `json:"indicator"`
	Factors    []string `json:"factors"`
}

// Classify maps a predicted growth rate to its status and indicator colour
func Classify(prediction float64) (status, indicator string) {
	switch {
	case prediction < 0:
		return StatusRecession, "red"
	case prediction < 2:
		return StatusSlow, "orange"
	case prediction < 4:
		return StatusModerate, "yellow"
	default:
		return StatusStrong, "green"
	}
}

// KeyFactors lists the inputs that stand out, or a single neutral factor
func KeyFactors(in Input) []string {
	var factors []string
	if in.GDPGrowth > 3 {
		factors = append(factors, "Strong recent GDP growth")
	}
	if in.InflationRate < 2.5 {
		factors = append(factors, "Low inflation")
	}
	if in.UnemploymentRate < 4 {
		factors = append(factors, "Low unemployment")
	}
	if in.TradeBalance > 2 {
		factors = append(factors, "Positive trade balance")
	}
	if len(factors) == 0 {
		factors = []string{"Balanced economic indicators"}
	}
	return factors
}

// Forecast validates the input and predicts growth with the bundle
func Forecast(bundle *Bundle, in Input) (*Result, error) {
	if bundle == nil {
		return nil, errors.New(errors.CodeModelLoad, "economic forecast model is not available")
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	pred, err := bundle.Predict(rowOf(in.Row()))
	if err != nil {
		return nil, err
	}

	status, colour := Classify(pred)
	return &Result{
		Input:      in,
		Prediction: pred,
		Delta:      pred - GlobalAverageGrowth,
		Status:     status,
		Indicator:  colour,
		Factors:    KeyFactors(in),
	}, nil
}
