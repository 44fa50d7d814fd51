package analysis

import (
	"encoding/json"
	"os"
)

//Table is the metrics table artifact consumed by the presentation layer and
//by the generic table renderer of the dashboard: the metric values per
//model, plus the externally supplied presentation metadata.
type Table struct {
	Metrics    map[string]map[string]float64 `json:"metrics"` //metric name -> model name -> value
	Thresholds map[string][]float64          `json:"thresholds"`
	Tooltips   map[string]string             `json:"tooltips"`
	Weights    map[string]float64            `json:"weights"`
}

//BuildTable assembles the table artifact from the computed metrics and the
//metrics configuration.
func BuildTable(metrics map[string]map[string]float64, cfg *MetricsConfig) *Table {
	if cfg == nil {
		cfg = &MetricsConfig{}
	}
	return &Table{
		Metrics:    metrics,
		Thresholds: cfg.Thresholds,
		Tooltips:   cfg.Tooltips,
		Weights:    cfg.Weights,
	}
}

//Write persists the table as indented JSON, overwriting filename.
func (T *Table) Write(filename string) error {
	raw, err := json.MarshalIndent(T, "", "  ")
	if err != nil {
		return Error{message: err.Error(), deco: []string{"Table.Write"}, critical: true}
	}
	if err := os.WriteFile(filename, raw, 0644); err != nil {
		return Error{message: err.Error(), deco: []string{"Table.Write"}, critical: true}
	}
	return nil
}
