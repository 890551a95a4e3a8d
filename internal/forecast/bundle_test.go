package forecast

import (
	"os"
	"path/filepath"
	"testing"

	"econdash/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const linearBundle = `{
  "model": {
    "type": "linear_regression",
    "intercept": 0.5,
    "coefficients": {"GDP_Growth": 0.8, "Inflation_Rate": -0.1, "Unemployment_Rate": -0.05, "Trade_Balance": 0.02, "Region_Asia": 0.4}
  },
  "features": ["GDP_Growth", "Inflation_Rate", "Unemployment_Rate", "Trade_Balance", "Region_Asia"],
  "r2_score": 0.92
}`

const forestBundle = `{
  "model": {
    "type": "random_forest",
    "trees": [
      {"nodes": [{"feature": "GDP_Growth", "threshold": 2, "left": 1, "right": 2}, {"value": 1.0}, {"value": 3.0}]},
      {"nodes": [{"value": 2.0}]}
    ]
  },
  "features": ["GDP_Growth"]
}`

func writeBundle(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadBundle_Linear(t *testing.T) {
	bundle, err := LoadBundle(writeBundle(t, linearBundle))
	require.NoError(t, err)

	assert.Equal(t, KindLinear, bundle.Model.Kind())
	assert.Len(t, bundle.Features, 5)
	assert.InDelta(t, 0.92, bundle.R2(), 1e-12)

	// 0.5 + 0.8*2.5 - 0.1*3 - 0.05*5 + 0.02*-2.5
	pred, err := bundle.Predict(rowOf(DiagnosticTestRow))
	require.NoError(t, err)
	assert.InDelta(t, 1.9, pred, 1e-9)
}

func TestLoadBundle_ForestDefaultsR2(t *testing.T) {
	bundle, err := LoadBundle(writeBundle(t, forestBundle))
	require.NoError(t, err)

	assert.Equal(t, KindForest, bundle.Model.Kind())
	assert.Nil(t, bundle.R2Score)
	assert.Equal(t, DefaultR2Score, bundle.R2())

	pred, err := bundle.Predict(map[string]float64{"GDP_Growth": 2.5})
	require.NoError(t, err)
	assert.InDelta(t, 2.5, pred, 1e-12, "mean of 3.0 and 2.0")

	pred, err = bundle.Predict(map[string]float64{"GDP_Growth": 1})
	require.NoError(t, err)
	assert.InDelta(t, 1.5, pred, 1e-12)
}

func TestLoadBundleOrNil_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
		code    string
	}{
		{"bare list", `[1, 2, 3]`, errors.CodeModelShape},
		{"scalar", `42`, errors.CodeModelShape},
		{"missing model key", `{"features": ["a"]}`, errors.CodeModelShape},
		{"unknown model type", `{"model": {"type": "svm"}}`, errors.CodeModelShape},
		{"model not an object", `{"model": "pickle"}`, errors.CodeModelShape},
		{"empty forest", `{"model": {"type": "random_forest", "trees": []}}`, errors.CodeModelShape},
		{"not json", `\x80\x04\x95`, errors.CodeModelLoad},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bundle, err := LoadBundleOrNil(writeBundle(t, tt.content))
			assert.Nil(t, bundle)
			require.Error(t, err)
			assert.Equal(t, tt.code, errors.GetCode(err))
		})
	}
}

func TestLoadBundleOrNil_MissingFile(t *testing.T) {
	bundle, err := LoadBundleOrNil(filepath.Join(t.TempDir(), "absent.json"))
	assert.Nil(t, bundle)
	assert.Equal(t, errors.CodeModelLoad, errors.GetCode(err))
}

func TestBundlePredict_MissingFeature(t *testing.T) {
	bundle, err := ParseBundle([]byte(linearBundle))
	require.NoError(t, err)

	_, err = bundle.Predict(map[string]float64{"GDP_Growth": 1})
	require.Error(t, err)
	assert.Equal(t, errors.CodePrediction, errors.GetCode(err))
}

func TestTree_RejectsBadIndexes(t *testing.T) {
	tree := Tree{Nodes: []TreeNode{{Feature: "x", Threshold: 0, Left: 5, Right: 1}}}
	_, err := tree.predict(map[string]float64{"x": -1})
	assert.Error(t, err)

	cyclic := Tree{Nodes: []TreeNode{{Feature: "x", Left: 1, Right: 1}, {Feature: "x", Left: 1, Right: 1}}}
	_, err = cyclic.predict(map[string]float64{"x": 0})
	assert.Error(t, err)
}
