// Package testkit generates reproducible synthetic economy datasets for
// tests, demos and for training a sample forecast bundle.
package testkit

import (
	"math"
	"math/rand"
	"strconv"

	"econdash/internal/dataset"
	"econdash/internal/forecast"
)

// CountryProfile is the long-run level each indicator wanders around
type CountryProfile struct {
	Name         string  `json:"name"`
	Region       string  `json:"region"`
	Growth       float64 `json:"growth"`
	Inflation    float64 `json:"inflation"`
	Unemployment float64 `json:"unemployment"`
	TradeBalance float64 `json:"trade_balance"`
}

// DefaultCountries covers every forecasting region so region dummies are
// never collinear with the intercept
var DefaultCountries = []CountryProfile{
	{Name: "United States", Region: "North America", Growth: 2.3, Inflation: 3.1, Unemployment: 4.0, TradeBalance: -3.0},
	{Name: "Canada", Region: "North America", Growth: 1.8, Inflation: 2.9, Unemployment: 5.8, TradeBalance: -0.8},
	{Name: "Mexico", Region: "North America", Growth: 2.1, Inflation: 4.6, Unemployment: 3.2, TradeBalance: -1.2},
	{Name: "Germany", Region: "Europe", Growth: 1.2, Inflation: 2.8, Unemployment: 3.1, TradeBalance: 6.5},
	{Name: "France", Region: "Europe", Growth: 1.1, Inflation: 2.5, Unemployment: 7.4, TradeBalance: -1.9},
	{Name: "Turkey", Region: "Europe", Growth: 4.5, Inflation: 15.0, Unemployment: 9.5, TradeBalance: -4.5},
	{Name: "China", Region: "Asia", Growth: 5.2, Inflation: 1.2, Unemployment: 5.2, TradeBalance: 3.1},
	{Name: "India", Region: "Asia", Growth: 6.8, Inflation: 5.4, Unemployment: 7.8, TradeBalance: -2.2},
	{Name: "Japan", Region: "Asia", Growth: 0.9, Inflation: 1.8, Unemployment: 2.6, TradeBalance: 0.6},
	{Name: "Brazil", Region: "Latin America", Growth: 2.0, Inflation: 6.1, Unemployment: 8.9, TradeBalance: 1.4},
	{Name: "South Africa", Region: "Africa", Growth: 0.8, Inflation: 5.8, Unemployment: 18.5, TradeBalance: -0.5},
	{Name: "Australia", Region: "Oceania", Growth: 2.2, Inflation: 3.9, Unemployment: 3.8, TradeBalance: 1.8},
}

// TargetColumn is the next-year growth the sample model learns to forecast
const TargetColumn = "GDP_Growth_Next"

// TrueIntercept and TrueCoefficients define how the generator derives the
// target from the features
const TrueIntercept = 0.8

var TrueCoefficients = map[string]float64{
	"GDP_Growth":           0.55,
	"Inflation_Rate":       -0.12,
	"Unemployment_Rate":    -0.08,
	"Trade_Balance":        0.06,
	"Region_Asia":          0.9,
	"Region_Europe":        -0.2,
	"Region_North_America": 0.3,
}

// EconomyGeneratorConfig configures the economy data generator
type EconomyGeneratorConfig struct {
	Countries []CountryProfile `json:"countries"`
	StartYear int              `json:"start_year"`
	EndYear   int              `json:"end_year"`
	Noise     float64          `json:"noise"`
	Seed      int64            `json:"seed"`
}

// DefaultEconomyConfig returns the configuration used for the sample dataset
func DefaultEconomyConfig() EconomyGeneratorConfig {
	return EconomyGeneratorConfig{
		Countries: DefaultCountries,
		StartYear: 2000,
		EndYear:   2023,
		Noise:     0.25,
		Seed:      42,
	}
}

// EconomyDataGenerator produces one row per country and year
type EconomyDataGenerator struct {
	config EconomyGeneratorConfig
	rng    *rand.Rand
}

// NewEconomyDataGenerator creates a generator seeded from the config
func NewEconomyDataGenerator(config EconomyGeneratorConfig) *EconomyDataGenerator {
	return &EconomyDataGenerator{
		config: config,
		rng:    rand.New(rand.NewSource(config.Seed)),
	}
}

// Headers lists the generated columns in order
func Headers() []string {
	headers := []string{"Country", "Region", "Year"}
	for _, f := range (forecast.Input{}).Row() {
		headers = append(headers, f.Name)
	}
	return append(headers, TargetColumn)
}

// FeatureNames lists the model input columns
func FeatureNames() []string {
	var names []string
	for _, f := range (forecast.Input{}).Row() {
		names = append(names, f.Name)
	}
	return names
}

// Generate builds the table. Features are rounded to two decimals before the
// target is derived, so a noise-free table fits TrueCoefficients exactly.
func (g *EconomyDataGenerator) Generate() *dataset.Table {
	table := &dataset.Table{Source: "generated", Headers: Headers()}
	for _, country := range g.config.Countries {
		for year := g.config.StartYear; year <= g.config.EndYear; year++ {
			in := forecast.Input{
				GDPGrowth:        g.around(country.Growth, 1.5, forecast.GDPGrowthRange),
				InflationRate:    g.around(country.Inflation, 1.0, forecast.InflationRange),
				UnemploymentRate: g.around(country.Unemployment, 0.8, forecast.UnemploymentRange),
				TradeBalance:     g.around(country.TradeBalance, 1.5, forecast.TradeBalanceRange),
				Region:           country.Region,
			}

			row := []string{country.Name, country.Region, strconv.Itoa(year)}
			target := TrueIntercept
			for _, f := range in.Row() {
				row = append(row, strconv.FormatFloat(f.Value, 'f', -1, 64))
				target += TrueCoefficients[f.Name] * f.Value
			}
			if g.config.Noise > 0 {
				target += g.rng.NormFloat64() * g.config.Noise
			}
			row = append(row, strconv.FormatFloat(round(target, 4), 'f', -1, 64))
			table.Rows = append(table.Rows, row)
		}
	}
	return table
}

// around draws a normal value near level, clamped to the slider range
func (g *EconomyDataGenerator) around(level, spread float64, r forecast.Range) float64 {
	v := level + g.rng.NormFloat64()*spread
	return round(math.Max(r.Min, math.Min(r.Max, v)), 2)
}

func round(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}
