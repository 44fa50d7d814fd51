package calc

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//ModelSpec is one entry of the models file.
type ModelSpec struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"` //"lennard-jones" or "command"

	//command settings
	Command string   `yaml:"command"`
	Args    []string `yaml:"args"`
	Scratch string   `yaml:"scratch"`

	//lennard-jones settings, zero values mean the defaults
	Epsilon float64 `yaml:"epsilon"`
	Sigma   float64 `yaml:"sigma"`
	Cutoff  float64 `yaml:"cutoff"`
}

type modelsFile struct {
	Models []ModelSpec `yaml:"models"`
}

//LoadModels reads the YAML models file at path and returns the models to
//benchmark. An empty path returns the default: the built-in Lennard-Jones
//calculator under the name "lj".
func LoadModels(path string) ([]Model, error) {
	if path == "" {
		return []Model{{Name: "lj", Calc: NewLennardJones()}}, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, Error{message: err.Error(), deco: []string{"LoadModels"}, critical: true}
	}
	var mf modelsFile
	if err := yaml.Unmarshal(raw, &mf); err != nil {
		return nil, Error{message: "malformed models file: " + err.Error(), deco: []string{"LoadModels"}, critical: true}
	}
	if len(mf.Models) == 0 {
		return nil, Error{message: "models file " + path + " lists no models", deco: []string{"LoadModels"}, critical: true}
	}
	models := make([]Model, 0, len(mf.Models))
	for _, spec := range mf.Models {
		m, err := spec.model()
		if err != nil {
			return nil, errDecorate(err, "LoadModels")
		}
		models = append(models, m)
	}
	return models, nil
}

func (spec ModelSpec) model() (Model, error) {
	if spec.Name == "" {
		return Model{}, Error{message: "a model needs a name", deco: []string{"ModelSpec.model"}, critical: true}
	}
	switch spec.Type {
	case "lennard-jones", "lj", "":
		lj := NewLennardJones()
		if spec.Epsilon > 0 {
			lj.Epsilon = spec.Epsilon
		}
		if spec.Sigma > 0 {
			lj.Sigma = spec.Sigma
		}
		if spec.Cutoff > 0 {
			lj.Cutoff = spec.Cutoff
		}
		return Model{Name: spec.Name, Calc: lj}, nil
	case "command":
		if spec.Command == "" {
			return Model{}, Error{message: "model " + spec.Name + " has type command but no command", deco: []string{"ModelSpec.model"}, critical: true}
		}
		return Model{Name: spec.Name, Calc: NewCommandCalc(spec.Command, spec.Args, spec.Scratch)}, nil
	default:
		return Model{}, Error{message: fmt.Sprintf("model %s has unknown type %q", spec.Name, spec.Type), deco: []string{"ModelSpec.model"}, critical: true}
	}
}

//ModelNames returns just the names, in order.
func ModelNames(models []Model) []string {
	names := make([]string, len(models))
	for i, m := range models {
		names[i] = m.Name
	}
	return names
}
