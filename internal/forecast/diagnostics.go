package forecast

import (
	"fmt"
)

// Feature is one named input value, kept in display order
type Feature struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// DiagnosticTestRow is the fixed row the diagnostic panel predicts on
var DiagnosticTestRow = []Feature{
	{Name: "GDP_Growth", Value: 2.5},
	{Name: "Inflation_Rate", Value: 3.0},
	{Name: "Unemployment_Rate", Value: 5.0},
	{Name: "Trade_Balance", Value: -2.5},
	{Name: "Region_Asia", Value: 0},
}

// Diagnostics is what the "Model Diagnostic Information" panel shows
type Diagnostics struct {
	Loaded          bool      `json:"loaded"`
	ModelType       string    `json:"model_type,omitempty"`
	Features        []string  `json:"features,omitempty"`
	R2Score         string    `json:"r2_score,omitempty"`
	TestData        []Feature `json:"test_data,omitempty"`
	TestPrediction  *float64  `json:"test_prediction,omitempty"`
	PredictionError string    `json:"prediction_error,omitempty"`
}

// Diagnose runs the fixed test row through the bundle. A nil bundle yields
// Loaded=false and nothing else.
func Diagnose(bundle *Bundle) Diagnostics {
	if bundle == nil {
		return Diagnostics{}
	}

	diag := Diagnostics{
		Loaded:    true,
		ModelType: fmt.Sprintf("%T", bundle.Model),
		Features:  bundle.Features,
		R2Score:   "Not specified",
		TestData:  DiagnosticTestRow,
	}
	if bundle.R2Score != nil {
		diag.R2Score = fmt.Sprintf("%g", *bundle.R2Score)
	}

	pred, err := bundle.Predict(rowOf(DiagnosticTestRow))
	if err != nil {
		diag.PredictionError = err.Error()
		return diag
	}
	diag.TestPrediction = &pred
	return diag
}

func rowOf(features []Feature) map[string]float64 {
	row := make(map[string]float64, len(features))
	for _, f := range features {
		row[f.Name] = f.Value
	}
	return row
}
