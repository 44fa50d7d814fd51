package analysis

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"testing"

	mlpeg "github.com/ddmms/mlpeg"
)

//writeResults writes a results.json for one (model, structure) pair. A NaN
//volume becomes an error record.
func writeResults(Te *testing.T, calcDir, model, structure string, volumes map[float64]float64) {
	Te.Helper()
	recs := make(map[string]any)
	for p, v := range volumes {
		if math.IsNaN(v) {
			recs[mlpeg.PressureKey(p)] = map[string]string{"error": "relaxation failed"}
		} else {
			recs[mlpeg.PressureKey(p)] = map[string]float64{"volume": v}
		}
	}
	dir := filepath.Join(calcDir, model, structure)
	if err := os.MkdirAll(dir, 0755); err != nil {
		Te.Fatal(err)
	}
	raw, err := json.Marshal(recs)
	if err != nil {
		Te.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "results.json"), raw, 0644); err != nil {
		Te.Fatal(err)
	}
}

func close2(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestVolumeCompression(Te *testing.T) {
	calcDir := Te.TempDir()
	//100 -> 90 over the series is a 10% compression
	writeResults(Te, calcDir, "m1", "NaCl", map[float64]float64{0: 100, 150: 90})
	got := VolumeCompression(calcDir, []string{"m1"})
	if !close2(got["m1"], 0.10) {
		Te.Errorf("compression = %f, want 0.10", got["m1"])
	}
}

func TestVolumeCompressionMean(Te *testing.T) {
	calcDir := Te.TempDir()
	writeResults(Te, calcDir, "m1", "NaCl", map[float64]float64{0: 100, 150: 90})
	writeResults(Te, calcDir, "m1", "MgO", map[float64]float64{0: 100, 150: 70})
	got := VolumeCompression(calcDir, []string{"m1"})
	if !close2(got["m1"], 0.20) {
		Te.Errorf("mean compression = %f, want 0.20", got["m1"])
	}
}

func TestBulkModulus(Te *testing.T) {
	calcDir := Te.TempDir()
	//|-100 * (150 - 0) / (80 - 100)| = 750 GPa
	writeResults(Te, calcDir, "m1", "NaCl", map[float64]float64{0: 100, 10: 95, 150: 80})
	got := BulkModulus(calcDir, []string{"m1"})
	if !close2(got["m1"], 750) {
		Te.Errorf("bulk modulus = %f, want 750", got["m1"])
	}
}

//Two valid volumes are enough for the compression but not for the bulk
//modulus, which needs more than two.
func TestBulkModulusNeedsThreeVolumes(Te *testing.T) {
	calcDir := Te.TempDir()
	writeResults(Te, calcDir, "m1", "NaCl", map[float64]float64{0: 100, 150: 80})
	got := BulkModulus(calcDir, []string{"m1"})
	if got["m1"] != 0.0 {
		Te.Errorf("bulk modulus from two volumes = %f, want 0.0", got["m1"])
	}
}

//Error records are skipped when collecting the (pressure, volume) pairs, so
//the endpoints move to the surviving records.
func TestErrorRecordsExcluded(Te *testing.T) {
	calcDir := Te.TempDir()
	nan := math.NaN()
	writeResults(Te, calcDir, "m1", "NaCl", map[float64]float64{0: nan, 10: 100, 100: 90, 150: nan})
	comp := VolumeCompression(calcDir, []string{"m1"})
	if !close2(comp["m1"], 0.10) {
		Te.Errorf("compression with error records = %f, want 0.10", comp["m1"])
	}
	recs := readResults(filepath.Join(calcDir, "m1", "NaCl", "results.json"))
	pressures, volumes := PressureVolumes(recs)
	if len(pressures) != 2 || pressures[0] != 10 || pressures[1] != 100 {
		Te.Errorf("wrong surviving pressures: %v", pressures)
	}
	if len(volumes) != 2 || volumes[0] != 100 || volumes[1] != 90 {
		Te.Errorf("wrong surviving volumes: %v", volumes)
	}
}

//A model with no results at all still appears in the metrics, with 0.0.
func TestDatalessModel(Te *testing.T) {
	calcDir := Te.TempDir()
	writeResults(Te, calcDir, "m1", "NaCl", map[float64]float64{0: 100, 10: 95, 150: 80})
	metrics := Metrics(calcDir, []string{"m1", "ghost"})
	for _, name := range []string{MetricCompression, MetricBulkModulus} {
		v, ok := metrics[name]["ghost"]
		if !ok {
			Te.Fatalf("%s misses the dataless model", name)
		}
		if v != 0.0 {
			Te.Errorf("%s for the dataless model = %f, want 0.0", name, v)
		}
	}
	if metrics[MetricCompression]["m1"] == 0.0 {
		Te.Error("the model with data should not be zeroed")
	}
}

func TestVolumesVsPressure(Te *testing.T) {
	calcDir := Te.TempDir()
	writeResults(Te, calcDir, "m1", "MgO", map[float64]float64{0: 50, 150: 40})
	writeResults(Te, calcDir, "m1", "NaCl", map[float64]float64{0: 100, 150: 90})
	series := VolumesVsPressure(calcDir, []string{"m1"})
	ref, ok := series["ref"]
	if !ok || len(ref) != 0 {
		Te.Errorf("the ref placeholder should be present and empty: %v", ref)
	}
	//structures in sorted order, pressures in series order within each
	want := []float64{50, 40, 100, 90}
	if len(series["m1"]) != len(want) {
		Te.Fatalf("wrong series length: %v", series["m1"])
	}
	for i, v := range want {
		if series["m1"][i] != v {
			Te.Errorf("series[%d] = %f, want %f", i, series["m1"][i], v)
		}
	}
	names := StructureNames(calcDir, []string{"nope", "m1"})
	if len(names) != 2 || names[0] != "MgO" || names[1] != "NaCl" {
		Te.Errorf("wrong structure names: %v", names)
	}
}
