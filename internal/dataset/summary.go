package dataset

import (
	"github.com/montanaflynn/stats"
)

// ColumnSummary describes one numeric column
type ColumnSummary struct {
	Name   string  `json:"name"`
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	StdDev float64 `json:"std_dev"`
}

// Summarize computes summaries for every column where at least half of the
// non-blank cells are numeric.
func Summarize(t *Table) []ColumnSummary {
	if t.IsEmpty() {
		return nil
	}

	summaries := make([]ColumnSummary, 0, len(t.Headers))
	for _, name := range t.Headers {
		values := t.NumericColumn(name)
		if len(values) == 0 || len(values)*2 < nonBlank(t.Column(name)) {
			continue
		}

		data := stats.Float64Data(values)
		summary := ColumnSummary{Name: name, Count: len(values)}
		summary.Mean, _ = data.Mean()
		summary.Median, _ = data.Median()
		summary.Min, _ = data.Min()
		summary.Max, _ = data.Max()
		if len(values) > 1 {
			summary.StdDev, _ = data.StandardDeviationSample()
		}
		summaries = append(summaries, summary)
	}
	return summaries
}

func nonBlank(cells []string) int {
	n := 0
	for _, c := range cells {
		if c != "" {
			n++
		}
	}
	return n
}
