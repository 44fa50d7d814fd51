package analysis

import (
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestRunArtifacts(Te *testing.T) {
	calcDir := Te.TempDir()
	outDir := Te.TempDir()
	writeResults(Te, calcDir, "m1", "NaCl", map[float64]float64{0: 100, 10: 95, 150: 80})
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	if err := Run(calcDir, outDir, []string{"m1", "ghost"}, "", log); err != nil {
		Te.Fatal(err)
	}
	raw, err := os.ReadFile(filepath.Join(outDir, TableArtifact))
	if err != nil {
		Te.Fatal(err)
	}
	var table Table
	if err := json.Unmarshal(raw, &table); err != nil {
		Te.Fatal(err)
	}
	if !close2(table.Metrics[MetricCompression]["m1"], 0.20) {
		Te.Errorf("table compression = %f, want 0.20", table.Metrics[MetricCompression]["m1"])
	}
	if !close2(table.Metrics[MetricBulkModulus]["m1"], 750) {
		Te.Errorf("table bulk modulus = %f, want 750", table.Metrics[MetricBulkModulus]["m1"])
	}
	if v, ok := table.Metrics[MetricCompression]["ghost"]; !ok || v != 0.0 {
		Te.Errorf("dataless model entry: %f (present %v)", v, ok)
	}
	raw, err = os.ReadFile(filepath.Join(outDir, FigureArtifact))
	if err != nil {
		Te.Fatal(err)
	}
	var fig Figure
	if err := json.Unmarshal(raw, &fig); err != nil {
		Te.Fatal(err)
	}
	if fig.Title != "Volume vs Pressure" {
		Te.Errorf("wrong figure title: %s", fig.Title)
	}
	if len(fig.Series["m1"]) != 3 {
		Te.Errorf("wrong m1 series: %v", fig.Series["m1"])
	}
	if ref, ok := fig.Series["ref"]; !ok || len(ref) != 0 {
		Te.Errorf("ref placeholder: %v (present %v)", ref, ok)
	}
	if fig.HoverData["Structure"][0] != "NaCl" {
		Te.Errorf("wrong hover data: %v", fig.HoverData)
	}
	info, err := os.Stat(filepath.Join(outDir, FigurePNG))
	if err != nil {
		Te.Fatal(err)
	}
	if info.Size() == 0 {
		Te.Error("empty figure png")
	}
}

//A rerun replaces the artifacts wholesale.
func TestRunOverwrites(Te *testing.T) {
	calcDir := Te.TempDir()
	outDir := Te.TempDir()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	writeResults(Te, calcDir, "m1", "NaCl", map[float64]float64{0: 100, 150: 90})
	if err := Run(calcDir, outDir, []string{"m1"}, "", log); err != nil {
		Te.Fatal(err)
	}
	writeResults(Te, calcDir, "m1", "NaCl", map[float64]float64{0: 100, 150: 50})
	if err := Run(calcDir, outDir, []string{"m1"}, "", log); err != nil {
		Te.Fatal(err)
	}
	raw, err := os.ReadFile(filepath.Join(outDir, TableArtifact))
	if err != nil {
		Te.Fatal(err)
	}
	var table Table
	if err := json.Unmarshal(raw, &table); err != nil {
		Te.Fatal(err)
	}
	if !close2(table.Metrics[MetricCompression]["m1"], 0.50) {
		Te.Errorf("rerun table compression = %f, want 0.50", table.Metrics[MetricCompression]["m1"])
	}
}
