package calc

import (
	"os"
	"path/filepath"
	"testing"
)

func writeModels(Te *testing.T, text string) string {
	Te.Helper()
	path := filepath.Join(Te.TempDir(), "models.yml")
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		Te.Fatal(err)
	}
	return path
}

func TestLoadModels(Te *testing.T) {
	path := writeModels(Te, `
models:
  - name: soft-lj
    type: lennard-jones
    epsilon: 0.02
    sigma: 3.0
  - name: mace-mp0
    type: command
    command: mace-sp
    args: ["--model", "medium"]
`)
	models, err := LoadModels(path)
	if err != nil {
		Te.Fatal(err)
	}
	if len(models) != 2 {
		Te.Fatalf("want 2 models, got %d", len(models))
	}
	lj, ok := models[0].Calc.(*LennardJones)
	if !ok {
		Te.Fatalf("soft-lj is a %T", models[0].Calc)
	}
	if lj.Epsilon != 0.02 || lj.Sigma != 3.0 {
		Te.Errorf("lj parameters not applied: %+v", lj)
	}
	if lj.Cutoff == 0 {
		Te.Error("unset cutoff should keep the default")
	}
	if _, ok := models[1].Calc.(*CommandCalc); !ok {
		Te.Fatalf("mace-mp0 is a %T", models[1].Calc)
	}
	names := ModelNames(models)
	if names[0] != "soft-lj" || names[1] != "mace-mp0" {
		Te.Errorf("wrong names: %v", names)
	}
}

func TestLoadModelsDefault(Te *testing.T) {
	models, err := LoadModels("")
	if err != nil {
		Te.Fatal(err)
	}
	if len(models) != 1 || models[0].Name != "lj" {
		Te.Fatalf("unexpected default models: %+v", models)
	}
}

func TestLoadModelsErrors(Te *testing.T) {
	for name, text := range map[string]string{
		"unknown type": "models:\n  - name: x\n    type: dft\n",
		"no name":      "models:\n  - type: lj\n",
		"no command":   "models:\n  - name: x\n    type: command\n",
		"empty":        "models: []\n",
	} {
		if _, err := LoadModels(writeModels(Te, text)); err == nil {
			Te.Errorf("%s: want an error", name)
		}
	}
}
