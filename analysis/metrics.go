/*
 * metrics.go, part of mlpeg.
 *
 * Copyright 2024 The mlpeg developers
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package analysis

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"sort"

	"gonum.org/v1/gonum/stat"

	mlpeg "github.com/ddmms/mlpeg"
)

//The names under which the metrics appear in the table.
const (
	MetricCompression = "Volume Compression"
	MetricBulkModulus = "Bulk Modulus"
)

//record is one relaxation record of a results file, as far as the analysis
//cares: either it carries a volume, or an error, or it is useless.
type record struct {
	Volume *float64 `json:"volume"`
	Error  string   `json:"error"`
}

func (r record) valid() bool {
	return r.Error == "" && r.Volume != nil
}

//readResults parses a results.json. A missing or malformed file is not an
//error here; the caller just gets nothing to aggregate.
func readResults(path string) map[string]record {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	var recs map[string]record
	if json.Unmarshal(raw, &recs) != nil {
		return nil
	}
	return recs
}

//PressureVolumes extracts the available (pressure, volume) pairs from a
//parsed results file in the order of the fixed pressure series, skipping
//error records and missing pressures.
func PressureVolumes(recs map[string]record) (pressures, volumes []float64) {
	for _, p := range mlpeg.Pressures {
		rec, ok := recs[mlpeg.PressureKey(p)]
		if !ok || !rec.valid() {
			continue
		}
		pressures = append(pressures, p)
		volumes = append(volumes, *rec.Volume)
	}
	return pressures, volumes
}

//structDirs lists the subdirectories of a model's output directory, sorted.
//A missing directory yields nothing.
func structDirs(modelDir string) []string {
	entries, err := os.ReadDir(modelDir)
	if err != nil {
		return nil
	}
	var dirs []string
	for _, e := range entries {
		if e.IsDir() {
			dirs = append(dirs, e.Name())
		}
	}
	sort.Strings(dirs)
	return dirs
}

//StructureNames returns the structure names found under the first model
//directory that exists, sorted. They label the points of the volume plot.
func StructureNames(calcDir string, models []string) []string {
	for _, model := range models {
		if dirs := structDirs(filepath.Join(calcDir, model)); dirs != nil {
			return dirs
		}
	}
	return nil
}

//VolumeCompression computes, for each model, the mean over its structures
//of |(V(first) - V(last)) / V(first)| across the available pressures. A
//structure needs at least two valid volumes, and a nonzero first volume, to
//contribute. A model with no contributing structures gets 0.0, never an
//absent entry.
func VolumeCompression(calcDir string, models []string) map[string]float64 {
	ret := make(map[string]float64, len(models))
	for _, model := range models {
		var changes []float64
		for _, sd := range structDirs(filepath.Join(calcDir, model)) {
			recs := readResults(filepath.Join(calcDir, model, sd, "results.json"))
			_, volumes := PressureVolumes(recs)
			if len(volumes) < 2 || volumes[0] == 0 {
				continue
			}
			rel := (volumes[0] - volumes[len(volumes)-1]) / volumes[0]
			changes = append(changes, math.Abs(rel))
		}
		if len(changes) > 0 {
			ret[model] = stat.Mean(changes, nil)
		} else {
			ret[model] = 0.0
		}
	}
	return ret
}

//BulkModulus computes, for each model, the mean over its structures of the
//finite-difference bulk modulus estimate |−V(first)·ΔP/ΔV| between the first
//and last available (pressure, volume) pairs, in GPa. A structure needs more
//than two valid volumes and a nonzero ΔV to contribute. As with the
//compression, a model with nothing to average gets 0.0.
func BulkModulus(calcDir string, models []string) map[string]float64 {
	ret := make(map[string]float64, len(models))
	for _, model := range models {
		var moduli []float64
		for _, sd := range structDirs(filepath.Join(calcDir, model)) {
			recs := readResults(filepath.Join(calcDir, model, sd, "results.json"))
			pressures, volumes := PressureVolumes(recs)
			if len(volumes) <= 2 || volumes[0] <= 0 {
				continue
			}
			dV := volumes[len(volumes)-1] - volumes[0]
			dP := pressures[len(pressures)-1] - pressures[0]
			if dV == 0 {
				continue
			}
			moduli = append(moduli, math.Abs(-volumes[0]*dP/dV))
		}
		if len(moduli) > 0 {
			ret[model] = stat.Mean(moduli, nil)
		} else {
			ret[model] = 0.0
		}
	}
	return ret
}

//Metrics bundles both metrics keyed by their table names.
func Metrics(calcDir string, models []string) map[string]map[string]float64 {
	return map[string]map[string]float64{
		MetricCompression: VolumeCompression(calcDir, models),
		MetricBulkModulus: BulkModulus(calcDir, models),
	}
}

//VolumesVsPressure assembles the plot payload: for each model, the
//predicted volumes across its structures and pressures, flattened in
//structure-then-pressure order. The "ref" series is a placeholder, kept
//empty until the data source ships reference volumes.
func VolumesVsPressure(calcDir string, models []string) map[string][]float64 {
	ret := map[string][]float64{"ref": {}}
	for _, model := range models {
		ret[model] = []float64{}
		for _, sd := range structDirs(filepath.Join(calcDir, model)) {
			recs := readResults(filepath.Join(calcDir, model, sd, "results.json"))
			_, volumes := PressureVolumes(recs)
			ret[model] = append(ret[model], volumes...)
		}
	}
	return ret
}
