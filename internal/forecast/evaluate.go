package forecast

import (
	"fmt"

	"econdash/internal/dataset"
	"econdash/internal/errors"

	"gonum.org/v1/gonum/stat"
)

// Evaluation is the model's fit against a dataset column
type Evaluation struct {
	Target  string  `json:"target"`
	Rows    int     `json:"rows"`
	Skipped int     `json:"skipped"`
	R2      float64 `json:"r2"`
}

// Evaluate scores the bundle on every table row that has numeric values for
// all features and the target column.
func Evaluate(bundle *Bundle, table *dataset.Table, target string) (*Evaluation, error) {
	if bundle == nil {
		return nil, errors.New(errors.CodeModelLoad, "model is not loaded")
	}
	if table.ColumnIndex(target) < 0 {
		return nil, errors.InvalidInput(fmt.Sprintf("dataset has no column %q", target))
	}
	for _, f := range bundle.Features {
		if table.ColumnIndex(f) < 0 {
			return nil, errors.InvalidInput(fmt.Sprintf("dataset has no feature column %q", f))
		}
	}

	eval := &Evaluation{Target: target}
	var observed, estimated []float64
	for i := 0; i < table.Len(); i++ {
		record := table.Record(i)
		y, ok := dataset.ParseNumber(record[target])
		if !ok {
			eval.Skipped++
			continue
		}
		row, ok := numericRow(record, bundle.Features)
		if !ok {
			eval.Skipped++
			continue
		}
		pred, err := bundle.Predict(row)
		if err != nil {
			return nil, err
		}
		observed = append(observed, y)
		estimated = append(estimated, pred)
	}

	eval.Rows = len(observed)
	if eval.Rows < 2 {
		return nil, errors.InvalidInput("need at least two complete rows to evaluate the model")
	}
	eval.R2 = stat.RSquaredFrom(estimated, observed, nil)
	return eval, nil
}

func numericRow(record map[string]string, features []string) (map[string]float64, bool) {
	row := make(map[string]float64, len(features))
	for _, f := range features {
		v, ok := dataset.ParseNumber(record[f])
		if !ok {
			return nil, false
		}
		row[f] = v
	}
	return row, true
}
