package forecast

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"econdash/internal/dataset"
	"econdash/internal/errors"

	"gonum.org/v1/gonum/mat"
)

// FitLinear trains an ordinary least squares model on the table rows that
// carry numeric values for every feature and the target. The returned bundle
// holds its in-sample R².
func FitLinear(table *dataset.Table, features []string, target string) (*Bundle, error) {
	if len(features) == 0 {
		return nil, errors.InvalidInput("at least one feature is required")
	}
	columns := append(append([]string{}, features...), target)
	for _, name := range columns {
		if table.ColumnIndex(name) < 0 {
			return nil, errors.InvalidInput(fmt.Sprintf("dataset has no column %q", name))
		}
	}

	var xs, ys []float64
	n := 0
	for i := 0; i < table.Len(); i++ {
		row, ok := numericRow(table.Record(i), columns)
		if !ok {
			continue
		}
		xs = append(xs, 1)
		for _, f := range features {
			xs = append(xs, row[f])
		}
		ys = append(ys, row[target])
		n++
	}
	p := len(features) + 1
	if n < p {
		return nil, errors.InvalidInput(fmt.Sprintf("need at least %d complete rows to fit %d features, have %d", p, len(features), n))
	}

	var qr mat.QR
	qr.Factorize(mat.NewDense(n, p, xs))
	var beta mat.Dense
	if err := qr.SolveTo(&beta, false, mat.NewDense(n, 1, ys)); err != nil {
		return nil, errors.Wrap(err, "features are collinear")
	}

	model := &LinearModel{Intercept: beta.At(0, 0), Coefficients: make(map[string]float64, len(features))}
	for i, f := range features {
		model.Coefficients[f] = beta.At(i+1, 0)
	}
	bundle := &Bundle{Model: model, Features: append([]string{}, features...)}

	eval, err := Evaluate(bundle, table, target)
	if err != nil {
		return nil, err
	}
	bundle.R2Score = &eval.R2
	log.Printf("[Trainer] Fitted %d features on %d rows (R²=%.4f)", len(features), n, eval.R2)
	return bundle, nil
}

// MarshalJSON writes the bundle in the document shape ParseBundle reads
func (b *Bundle) MarshalJSON() ([]byte, error) {
	if b.Model == nil {
		return nil, errors.ModelShape("bundle has no model")
	}
	body, err := json.Marshal(b.Model)
	if err != nil {
		return nil, err
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, err
	}
	fields["type"], _ = json.Marshal(b.Model.Kind())
	model, err := json.Marshal(fields)
	if err != nil {
		return nil, err
	}
	return json.Marshal(rawBundle{Model: model, Features: b.Features, R2Score: b.R2Score})
}

// SaveBundle writes the bundle as indented JSON
func SaveBundle(path string, b *Bundle) error {
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to encode model bundle")
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return errors.Wrapf(err, "failed to write model bundle to %s", path)
	}
	return nil
}
