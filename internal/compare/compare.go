// Package compare builds side-by-side economic comparisons of two countries.
//
// The figures are illustrative: they are drawn from a seeded generator
// within each metric's plausible range, so the same seed always produces the
// same comparison.
package compare

import (
	"fmt"
	"math"
	"math/rand"
	"strings"

	"econdash/internal/errors"
)

// Countries offered for comparison
var Countries = []string{
	"United States", "China", "Germany", "Japan", "United Kingdom", "France", "India",
	"Brazil", "Canada", "South Korea", "Australia", "Mexico", "Indonesia", "Turkey",
}

// Metric describes one comparable indicator
type Metric struct {
	Name          string
	Min, Max      float64
	Decimals      int
	Unit          string
	LowerIsBetter bool
}

// Metrics in display order
var Metrics = []Metric{
	{Name: "GDP Growth Rate", Min: 1.5, Max: 4.5, Decimals: 1, Unit: "%"},
	{Name: "Inflation Rate", Min: 1.0, Max: 6.0, Decimals: 1, Unit: "%", LowerIsBetter: true},
	{Name: "Unemployment Rate", Min: 3.0, Max: 8.0, Decimals: 1, Unit: "%", LowerIsBetter: true},
	{Name: "Trade Balance", Min: -5.0, Max: 5.0, Decimals: 1, Unit: "%"},
	{Name: "Public Debt", Min: 40.0, Max: 120.0, Decimals: 1, Unit: "% of GDP", LowerIsBetter: true},
	{Name: "Foreign Investment", Min: 10.0, Max: 50.0, Decimals: 1, Unit: "Billion USD"},
	{Name: "Currency Strength", Min: 0.7, Max: 1.3, Decimals: 2, Unit: "Index"},
}

// DefaultMetricNames are preselected in the form
func DefaultMetricNames() []string {
	names := make([]string, 4)
	for i := range names {
		names[i] = Metrics[i].Name
	}
	return names
}

// MinChartMetrics is the fewest metrics the comparison bar chart is drawn for
const MinChartMetrics = 3

// Row is one metric compared across both countries
type Row struct {
	Metric     string  `json:"metric"`
	Unit       string  `json:"unit"`
	Value1     float64 `json:"value1"`
	Value2     float64 `json:"value2"`
	Difference float64 `json:"difference"`
}

// Format renders a value with the row's unit
func (r Row) Format(v float64) string {
	return fmt.Sprintf("%g %s", v, r.Unit)
}

// DifferenceText renders the absolute difference to one decimal
func (r Row) DifferenceText() string {
	return fmt.Sprintf("%.1f %s", r.Difference, r.Unit)
}

// Result is a complete comparison
type Result struct {
	Country1    string   `json:"country1"`
	Country2    string   `json:"country2"`
	Rows        []Row    `json:"rows"`
	Summary     []string `json:"summary"`
	Advantages1 int      `json:"advantages1"`
	Advantages2 int      `json:"advantages2"`
	Verdict     string   `json:"verdict"`
}

// ChartEligible reports whether enough metrics were chosen for the bar chart
func (r *Result) ChartEligible() bool {
	return len(r.Rows) >= MinChartMetrics
}

// Title is the comparison heading
func (r *Result) Title() string {
	return fmt.Sprintf("Economic Comparison: %s vs %s", r.Country1, r.Country2)
}

// Compare validates the selection and generates the comparison
func Compare(country1, country2 string, metricNames []string, seed int64) (*Result, error) {
	if len(metricNames) == 0 {
		return nil, errors.InvalidInput("Please select at least one metric to compare.")
	}
	for _, c := range []string{country1, country2} {
		if !knownCountry(c) {
			return nil, errors.InvalidInput(fmt.Sprintf("unknown country %q", c))
		}
	}
	metrics := make([]Metric, 0, len(metricNames))
	for _, name := range metricNames {
		m, ok := lookupMetric(name)
		if !ok {
			return nil, errors.InvalidInput(fmt.Sprintf("unknown metric %q", name))
		}
		metrics = append(metrics, m)
	}

	rng := rand.New(rand.NewSource(seed))
	result := &Result{Country1: country1, Country2: country2}
	for _, m := range metrics {
		v1 := round(m.Min+rng.Float64()*(m.Max-m.Min), m.Decimals)
		v2 := round(m.Min+rng.Float64()*(m.Max-m.Min), m.Decimals)
		result.Rows = append(result.Rows, Row{
			Metric:     m.Name,
			Unit:       m.Unit,
			Value1:     v1,
			Value2:     v2,
			Difference: math.Abs(v1 - v2),
		})
		result.score(m, v1, v2)
	}

	switch {
	case result.Advantages1 > result.Advantages2:
		result.Verdict = fmt.Sprintf("Based on selected metrics, %s shows stronger economic performance.", country1)
	case result.Advantages2 > result.Advantages1:
		result.Verdict = fmt.Sprintf("Based on selected metrics, %s shows stronger economic performance.", country2)
	default:
		result.Verdict = fmt.Sprintf("Based on selected metrics, %s and %s show comparable economic performance.", country1, country2)
	}
	return result, nil
}

// score credits the country that is better on m; ties credit nobody
func (r *Result) score(m Metric, v1, v2 float64) {
	better, comparative := v1 > v2, "higher"
	if m.LowerIsBetter {
		better, comparative = v1 < v2, "lower"
	}
	label := strings.ToLower(m.Name)
	switch {
	case v1 == v2:
		return
	case better:
		r.Advantages1++
		r.Summary = append(r.Summary, fmt.Sprintf("%s has %s %s (%g vs %g)", r.Country1, comparative, label, v1, v2))
	default:
		r.Advantages2++
		r.Summary = append(r.Summary, fmt.Sprintf("%s has %s %s (%g vs %g)", r.Country2, comparative, label, v2, v1))
	}
}

func round(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}

func knownCountry(name string) bool {
	for _, c := range Countries {
		if c == name {
			return true
		}
	}
	return false
}

func lookupMetric(name string) (Metric, bool) {
	for _, m := range Metrics {
		if m.Name == name {
			return m, true
		}
	}
	return Metric{}, false
}
