// Package forecast holds the pre-trained GDP growth model bundle and the
// forecasting helpers built on it.
package forecast

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Predictor accepts one feature row and returns a scalar prediction
type Predictor interface {
	Predict(row map[string]float64) (float64, error)
	Kind() string
}

const (
	KindLinear = "linear_regression"
	KindForest = "random_forest"
)

// LinearModel is an ordinary least squares regression
type LinearModel struct {
	Intercept    float64            `json:"intercept"`
	Coefficients map[string]float64 `json:"coefficients"`
}

func (m *LinearModel) Kind() string { return KindLinear }

func (m *LinearModel) Predict(row map[string]float64) (float64, error) {
	names := make([]string, 0, len(m.Coefficients))
	for name := range m.Coefficients {
		names = append(names, name)
	}
	sort.Strings(names)

	x := make([]float64, len(names))
	w := make([]float64, len(names))
	for i, name := range names {
		v, ok := row[name]
		if !ok {
			return 0, fmt.Errorf("missing feature %q", name)
		}
		x[i] = v
		w[i] = m.Coefficients[name]
	}
	return m.Intercept + floats.Dot(x, w), nil
}

// TreeNode is one node of a regression tree. Leaves have an empty Feature.
// Internal nodes send rows with value <= Threshold to Left.
type TreeNode struct {
	Feature   string  `json:"feature,omitempty"`
	Threshold float64 `json:"threshold,omitempty"`
	Left      int     `json:"left,omitempty"`
	Right     int     `json:"right,omitempty"`
	Value     float64 `json:"value,omitempty"`
}

// Tree is a flattened regression tree rooted at node 0
type Tree struct {
	Nodes []TreeNode `json:"nodes"`
}

func (t Tree) predict(row map[string]float64) (float64, error) {
	if len(t.Nodes) == 0 {
		return 0, fmt.Errorf("empty tree")
	}
	idx := 0
	for steps := 0; steps <= len(t.Nodes); steps++ {
		node := t.Nodes[idx]
		if node.Feature == "" {
			return node.Value, nil
		}
		v, ok := row[node.Feature]
		if !ok {
			return 0, fmt.Errorf("missing feature %q", node.Feature)
		}
		next := node.Right
		if v <= node.Threshold {
			next = node.Left
		}
		if next <= 0 || next >= len(t.Nodes) {
			return 0, fmt.Errorf("node %d points outside the tree", idx)
		}
		idx = next
	}
	return 0, fmt.Errorf("tree contains a cycle")
}

// ForestModel averages the predictions of its trees
type ForestModel struct {
	Trees []Tree `json:"trees"`
}

func (m *ForestModel) Kind() string { return KindForest }

func (m *ForestModel) Predict(row map[string]float64) (float64, error) {
	if len(m.Trees) == 0 {
		return 0, fmt.Errorf("forest has no trees")
	}
	preds := make([]float64, len(m.Trees))
	for i, tree := range m.Trees {
		p, err := tree.predict(row)
		if err != nil {
			return 0, fmt.Errorf("tree %d: %w", i, err)
		}
		preds[i] = p
	}
	return floats.Sum(preds) / float64(len(preds)), nil
}
