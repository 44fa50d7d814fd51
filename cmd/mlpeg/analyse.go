package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ddmms/mlpeg/analysis"
	"github.com/ddmms/mlpeg/calc"
)

var analyseFlags struct {
	calcDir string
	out     string
	models  string
	config  string
}

var analyseCmd = &cobra.Command{
	Use:     "analyse",
	Aliases: []string{"analyze"},
	Short:   "Aggregate relaxation results into metrics and artifacts",
	Long: `analyse reads every results.json under the calculation directory, computes
the per-model volume compression and bulk modulus metrics, and persists the
metrics table and the volume-versus-pressure figure artifacts. Models and
structures with no results on disk are skipped silently; they appear in the
table with zero-valued metrics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		models, err := calc.LoadModels(analyseFlags.models)
		if err != nil {
			return err
		}
		cfg := metricsConfigPath(analyseFlags.config, cmd.Flags().Changed("metrics-config"))
		return analysis.Run(analyseFlags.calcDir, analyseFlags.out,
			calc.ModelNames(models), cfg, logger)
	},
}

//metricsConfigPath resolves the metrics config path. The default file is
//optional: if it is not there, the analysis runs with an empty config. A
//path given explicitly on the command line must exist, so a typo fails
//loudly instead of silently dropping every threshold.
func metricsConfigPath(path string, explicit bool) string {
	if explicit || path == "" {
		return path
	}
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

func init() {
	analyseCmd.Flags().StringVar(&analyseFlags.calcDir, "calc-dir", "outputs", "directory holding the calculation results")
	analyseCmd.Flags().StringVar(&analyseFlags.out, "out", "appdata", "directory for the table and figure artifacts")
	analyseCmd.Flags().StringVar(&analyseFlags.models, "models", "", "YAML file listing the models (default: built-in Lennard-Jones)")
	analyseCmd.Flags().StringVar(&analyseFlags.config, "metrics-config", "metrics.yml", "YAML file with metric thresholds, tooltips and weights")
}
