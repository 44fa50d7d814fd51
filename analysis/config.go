package analysis

import (
	"os"

	"gopkg.in/yaml.v3"
)

//MetricsConfig carries the presentation metadata for the metrics table:
//per-metric threshold bounds (the [good, bad] pair the table renderer uses
//for coloring), hover tooltips, and the weights of the metrics in the
//overall score. All of it is opaque to the metric computation itself and
//flows straight into the table artifact.
type MetricsConfig struct {
	Thresholds map[string][]float64 `yaml:"thresholds" json:"thresholds"`
	Tooltips   map[string]string    `yaml:"tooltips" json:"tooltips"`
	Weights    map[string]float64   `yaml:"weights" json:"weights"`
}

//LoadMetricsConfig reads the metrics configuration from the YAML file at
//path. An empty path returns an empty (but usable) configuration.
func LoadMetricsConfig(path string) (*MetricsConfig, error) {
	cfg := &MetricsConfig{
		Thresholds: make(map[string][]float64),
		Tooltips:   make(map[string]string),
		Weights:    make(map[string]float64),
	}
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, Error{message: err.Error(), deco: []string{"LoadMetricsConfig"}, critical: true}
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, Error{message: "malformed metrics config: " + err.Error(), deco: []string{"LoadMetricsConfig"}, critical: true}
	}
	return cfg, nil
}
