package calc

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	mlpeg "github.com/ddmms/mlpeg"
)

//A Model is a named calculator taking part in the benchmark.
type Model struct {
	Name string
	Calc Calculator
}

//Defaults for the remote structure archive.
const (
	DefaultSourceURI = "https://alexandria.icams.rub.de/data/pbe/benchmarks/pressure"
	DefaultArchive   = "pressure_structures.zip"
)

//Runner drives the calculation stage: for every model and every input
//structure, a cell-shape relaxation at every pressure of the fixed series,
//with one results.json per (model, structure) under OutDir. Everything is
//sequential: model, then structure, then pressure. Reruns overwrite prior
//outputs unconditionally.
type Runner struct {
	Models    []Model
	DataDir   string //input structures (filled by fetching if empty)
	OutDir    string
	SourceURI string  //remote archive location, DefaultSourceURI if empty
	Archive   string  //archive file name, DefaultArchive if empty
	Fmax      float64 //passed to Relax
	Steps     int     //passed to Relax
	Log       *slog.Logger
}

//Run executes the benchmark. A missing data set is a skip, logged and
//returned as nil: only infrastructure problems (like an unwritable output
//directory) make Run fail. A relaxation that errors out is recorded in the
//results file for its pressure only and never interrupts the sweep.
func (R *Runner) Run() error {
	log := R.Log
	if log == nil {
		log = slog.Default()
	}
	uri := R.SourceURI
	if uri == "" {
		uri = DefaultSourceURI
	}
	archive := R.Archive
	if archive == "" {
		archive = DefaultArchive
	}
	if err := FetchStructures(uri, archive, R.DataDir); err != nil {
		if errors.Is(err, ErrNoData) {
			log.Warn("skipping pressure benchmark", "reason", err.Error())
			return nil
		}
		return errDecorate(err, "Runner.Run")
	}
	files, names, err := StructureFiles(R.DataDir)
	if err != nil {
		if errors.Is(err, ErrNoData) {
			log.Warn("skipping pressure benchmark", "reason", err.Error())
			return nil
		}
		return errDecorate(err, "Runner.Run")
	}
	for _, model := range R.Models {
		log.Info("running pressure benchmark", "model", model.Name, "structures", len(names))
		for _, name := range names {
			st, err := mlpeg.XYZRead(files[name])
			if err != nil {
				return errDecorate(err, "Runner.Run")
			}
			st.Name = name
			outdir := filepath.Join(R.OutDir, model.Name, name)
			if err := os.MkdirAll(outdir, 0755); err != nil {
				return Error{message: err.Error(), model: model.Name, deco: []string{"Runner.Run"}, critical: true}
			}
			results := newPressureResults()
			for _, p := range mlpeg.Pressures {
				results.add(mlpeg.PressureKey(p), R.relaxOne(model, st, p, outdir, log))
			}
			if err := results.write(filepath.Join(outdir, "results.json")); err != nil {
				return errDecorate(err, "Runner.Run")
			}
		}
	}
	return nil
}

//relaxOne runs the relaxation of one (structure, pressure) pair and returns
//the record for the results file: the success payload, or {error: message}
//if anything went wrong. Each invocation works on fresh copies of both the
//structure and the calculator.
func (R *Runner) relaxOne(model Model, st *mlpeg.Structure, p float64, outdir string, log *slog.Logger) any {
	log.Info("relaxing", "model", model.Name, "structure", st.Name, "pressure_gpa", p)
	base := filepath.Join(outdir, fmt.Sprintf("%s_P%gGPa", st.Name, p))
	traj, err := NewTrajWriter(base + "_opt.extxyz.zst")
	if err != nil {
		log.Error("relaxation failed", "model", model.Name, "structure", st.Name, "pressure_gpa", p, "error", err.Error())
		return errorRecord{Error: err.Error()}
	}
	relaxed, res, err := Relax(st.Copy(), model.Calc.Clone(), p, &RelaxOptions{Fmax: R.Fmax, Steps: R.Steps, Traj: traj})
	traj.Close()
	if err == nil {
		err = mlpeg.XYZWrite(base+".extxyz", relaxed, res.Energy)
	}
	if err != nil {
		log.Error("relaxation failed", "model", model.Name, "structure", st.Name, "pressure_gpa", p, "error", err.Error())
		os.Remove(base + "_opt.extxyz.zst")
		os.Remove(base + ".extxyz")
		return errorRecord{Error: err.Error()}
	}
	return relaxRecord{
		Volume:    relaxed.Volume(),
		Cell:      relaxed.CellSlice(),
		Positions: relaxed.CoordsSlice(),
		Forces:    res.ForcesSlice(),
		Stress:    res.Stress[:],
		Energy:    res.Energy,
	}
}

//The success payload of a relaxation record.
type relaxRecord struct {
	Volume    float64     `json:"volume"`
	Cell      [][]float64 `json:"cell"`
	Positions [][]float64 `json:"positions"`
	Forces    [][]float64 `json:"forces"`
	Stress    []float64   `json:"stress"`
	Energy    float64     `json:"energy"`
}

//The failure payload of a relaxation record.
type errorRecord struct {
	Error string `json:"error"`
}

//pressureResults is a results file under construction. It keeps the keys in
//insertion order, so the file preserves the order of the pressure series
//(encoding/json would sort a map alphabetically, putting 100 before 10).
type pressureResults struct {
	keys []string
	recs map[string]any
}

func newPressureResults() *pressureResults {
	return &pressureResults{recs: make(map[string]any)}
}

func (P *pressureResults) add(key string, rec any) {
	P.keys = append(P.keys, key)
	P.recs[key] = rec
}

func (P *pressureResults) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range P.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		vb, err := json.Marshal(P.recs[k])
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (P *pressureResults) write(filename string) error {
	raw, err := json.MarshalIndent(P, "", "  ")
	if err != nil {
		return Error{message: err.Error(), deco: []string{"pressureResults.write"}, critical: true}
	}
	if err := os.WriteFile(filename, raw, 0644); err != nil {
		return Error{message: err.Error(), deco: []string{"pressureResults.write"}, critical: true}
	}
	return nil
}
