package device

import (
	"fmt"
	"strings"
)

// Model identifies a supported GeForce3 board variant.
type Model string

// Supported board variants.
const (
	ModelGeForce3 Model = "geforce3"
	ModelTi200    Model = "ti200"
	ModelTi500    Model = "ti500"
)

// ModelFromString maps a model option value to a supported model.
// An empty string selects the reference GeForce3.
func ModelFromString(s string) (Model, error) {
	switch strings.ToLower(s) {
	case "", string(ModelGeForce3):
		return ModelGeForce3, nil
	case string(ModelTi200):
		return ModelTi200, nil
	case string(ModelTi500):
		return ModelTi500, nil
	default:
		return "", fmt.Errorf("unsupported model '%s', valid options: geforce3, ti200, ti500", s)
	}
}

// ModelConfig returns the identification values of the given model.
func ModelConfig(model Model) Config {
	cfg := DefaultConfig()

	switch model {
	case ModelTi200:
		cfg.Implementation = ImplGeForce3Ti200
		cfg.DeviceID = DeviceGeForce3Ti200

	case ModelTi500:
		cfg.Implementation = ImplGeForce3Ti500
		cfg.DeviceID = DeviceGeForce3Ti500
	}

	return cfg
}
