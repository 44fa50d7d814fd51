package main

import (
	"github.com/spf13/cobra"

	"github.com/ddmms/mlpeg/calc"
)

var calcFlags struct {
	data      string
	out       string
	models    string
	sourceURI string
	archive   string
	fmax      float64
	steps     int
}

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Run the relaxation stage of the pressure benchmark",
	Long: `calc relaxes the cell shape of every input structure at each pressure of
the fixed series (0, 10, 30, 50, 100, 150 GPa), for every model, and writes
one results.json per (model, structure) under the output directory, plus a
trajectory per relaxation. The input structures are downloaded from the
remote archive, falling back to whatever extxyz files are already in the
data directory; with no data at all the run is skipped, not failed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		models, err := calc.LoadModels(calcFlags.models)
		if err != nil {
			return err
		}
		runner := &calc.Runner{
			Models:    models,
			DataDir:   calcFlags.data,
			OutDir:    calcFlags.out,
			SourceURI: calcFlags.sourceURI,
			Archive:   calcFlags.archive,
			Fmax:      calcFlags.fmax,
			Steps:     calcFlags.steps,
			Log:       logger,
		}
		return runner.Run()
	},
}

func init() {
	calcCmd.Flags().StringVar(&calcFlags.data, "data", "data", "directory for the input structures")
	calcCmd.Flags().StringVar(&calcFlags.out, "out", "outputs", "directory for the calculation results")
	calcCmd.Flags().StringVar(&calcFlags.models, "models", "", "YAML file listing the models (default: built-in Lennard-Jones)")
	calcCmd.Flags().StringVar(&calcFlags.sourceURI, "source-uri", calc.DefaultSourceURI, "remote location of the structure archive")
	calcCmd.Flags().StringVar(&calcFlags.archive, "archive", calc.DefaultArchive, "name of the structure archive")
	calcCmd.Flags().Float64Var(&calcFlags.fmax, "fmax", 0.05, "force convergence criterion in eV/Å")
	calcCmd.Flags().IntVar(&calcFlags.steps, "steps", 500, "cap on optimizer iterations per relaxation")
}
