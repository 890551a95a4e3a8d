package forecast

import (
	"math"
	"testing"

	"econdash/internal/dataset"
	"econdash/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustBundle(t *testing.T, content string) *Bundle {
	t.Helper()
	bundle, err := ParseBundle([]byte(content))
	require.NoError(t, err)
	return bundle
}

const sevenFeatureBundle = `{
  "model": {"type": "linear_regression", "intercept": 0, "coefficients": {"GDP_Growth": 1, "Region_Asia": 1}},
  "features": ["GDP_Growth", "Inflation_Rate", "Unemployment_Rate", "Trade_Balance", "Region_Asia", "Region_Europe", "Region_North_America"]
}`

func TestDiagnose_NotLoaded(t *testing.T) {
	diag := Diagnose(nil)
	assert.False(t, diag.Loaded)
	assert.Nil(t, diag.TestPrediction)
}

func TestDiagnose_Loaded(t *testing.T) {
	diag := Diagnose(mustBundle(t, linearBundle))

	assert.True(t, diag.Loaded)
	assert.Equal(t, "*forecast.LinearModel", diag.ModelType)
	assert.Equal(t, "0.92", diag.R2Score)
	assert.Equal(t, DiagnosticTestRow, diag.TestData)
	require.NotNil(t, diag.TestPrediction)
	assert.InDelta(t, 1.9, *diag.TestPrediction, 1e-9)
	assert.Empty(t, diag.PredictionError)
}

func TestDiagnose_PredictionErrorIsReported(t *testing.T) {
	diag := Diagnose(mustBundle(t, sevenFeatureBundle))

	assert.True(t, diag.Loaded)
	assert.Equal(t, "Not specified", diag.R2Score)
	assert.Nil(t, diag.TestPrediction)
	assert.Contains(t, diag.PredictionError, "Region_Europe")
}

func TestClassify(t *testing.T) {
	tests := []struct {
		prediction float64
		status     string
	}{
		{-0.1, StatusRecession},
		{0, StatusSlow},
		{1.99, StatusSlow},
		{2, StatusModerate},
		{3.99, StatusModerate},
		{4, StatusStrong},
	}
	for _, tt := range tests {
		status, _ := Classify(tt.prediction)
		assert.Equal(t, tt.status, status, "prediction %v", tt.prediction)
	}
}

func TestKeyFactors(t *testing.T) {
	assert.Equal(t, []string{"Balanced economic indicators"}, KeyFactors(DefaultInput()))

	in := Input{GDPGrowth: 4, InflationRate: 1, UnemploymentRate: 3, TradeBalance: 5, Region: "Asia"}
	assert.Equal(t, []string{
		"Strong recent GDP growth",
		"Low inflation",
		"Low unemployment",
		"Positive trade balance",
	}, KeyFactors(in))
}

func TestForecast(t *testing.T) {
	bundle := mustBundle(t, sevenFeatureBundle)
	in := DefaultInput()
	in.GDPGrowth = 3.5
	in.Region = "Asia"

	result, err := Forecast(bundle, in)
	require.NoError(t, err)
	assert.InDelta(t, 4.5, result.Prediction, 1e-9)
	assert.InDelta(t, 2.0, result.Delta, 1e-9)
	assert.Equal(t, StatusStrong, result.Status)
	assert.Equal(t, []string{"Strong recent GDP growth"}, result.Factors)
}

func TestForecast_Rejects(t *testing.T) {
	bundle := mustBundle(t, sevenFeatureBundle)

	_, err := Forecast(nil, DefaultInput())
	assert.Equal(t, errors.CodeModelLoad, errors.GetCode(err))

	in := DefaultInput()
	in.InflationRate = 25
	_, err = Forecast(bundle, in)
	assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))

	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		in = DefaultInput()
		in.GDPGrowth = v
		_, err = Forecast(bundle, in)
		assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err), "GDP growth %v", v)
	}

	in = DefaultInput()
	in.Region = "Antarctica"
	_, err = Forecast(bundle, in)
	assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
}

func TestEvaluate(t *testing.T) {
	bundle := mustBundle(t, `{
	  "model": {"type": "linear_regression", "intercept": 1, "coefficients": {"x": 2}},
	  "features": ["x"]
	}`)
	table := &dataset.Table{
		Headers: []string{"x", "y"},
		Rows: [][]string{
			{"1", "3"},
			{"2", "5"},
			{"3", "7"},
			{"", "9"},
		},
	}

	eval, err := Evaluate(bundle, table, "y")
	require.NoError(t, err)
	assert.Equal(t, 3, eval.Rows)
	assert.Equal(t, 1, eval.Skipped)
	assert.InDelta(t, 1.0, eval.R2, 1e-9)

	_, err = Evaluate(bundle, table, "gdp")
	assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
}
