package testkit

import (
	"testing"

	"econdash/internal/forecast"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallConfig() EconomyGeneratorConfig {
	config := DefaultEconomyConfig()
	config.StartYear = 2020
	config.EndYear = 2022
	return config
}

func TestEconomyDataGenerator_Shape(t *testing.T) {
	table := NewEconomyDataGenerator(smallConfig()).Generate()

	assert.Equal(t, len(DefaultCountries)*3, table.Len())
	assert.Equal(t, []string{
		"Country", "Region", "Year",
		"GDP_Growth", "Inflation_Rate", "Unemployment_Rate", "Trade_Balance",
		"Region_Asia", "Region_Europe", "Region_North_America",
		TargetColumn,
	}, table.Headers)

	first := table.Record(0)
	assert.Equal(t, "United States", first["Country"])
	assert.Equal(t, "2020", first["Year"])
	assert.Equal(t, "1", first["Region_North_America"])
	assert.Equal(t, "0", first["Region_Asia"])
}

func TestEconomyDataGenerator_ValuesStayInRange(t *testing.T) {
	table := NewEconomyDataGenerator(DefaultEconomyConfig()).Generate()

	for _, v := range table.NumericColumn("Unemployment_Rate") {
		assert.GreaterOrEqual(t, v, forecast.UnemploymentRange.Min)
		assert.LessOrEqual(t, v, forecast.UnemploymentRange.Max)
	}
	for _, v := range table.NumericColumn("Inflation_Rate") {
		assert.GreaterOrEqual(t, v, forecast.InflationRange.Min)
		assert.LessOrEqual(t, v, forecast.InflationRange.Max)
	}
}

func TestEconomyDataGenerator_Deterministic(t *testing.T) {
	a := NewEconomyDataGenerator(smallConfig()).Generate()
	b := NewEconomyDataGenerator(smallConfig()).Generate()
	assert.Equal(t, a.Rows, b.Rows)

	other := smallConfig()
	other.Seed = 7
	c := NewEconomyDataGenerator(other).Generate()
	assert.NotEqual(t, a.Rows, c.Rows)
}

func TestEconomyDataGenerator_NoiseFreeTargetFollowsCoefficients(t *testing.T) {
	config := smallConfig()
	config.Noise = 0
	table := NewEconomyDataGenerator(config).Generate()

	bundle := &forecast.Bundle{
		Model:    &forecast.LinearModel{Intercept: TrueIntercept, Coefficients: TrueCoefficients},
		Features: FeatureNames(),
	}
	eval, err := forecast.Evaluate(bundle, table, TargetColumn)
	require.NoError(t, err)
	assert.Equal(t, table.Len(), eval.Rows)
	assert.InDelta(t, 1.0, eval.R2, 1e-6)
}
