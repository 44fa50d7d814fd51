package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var logger = slog.New(slog.NewTextHandler(os.Stderr, nil))

var rootCmd = &cobra.Command{
	Use:   "mlpeg",
	Short: "Benchmark machine-learned interatomic potentials under pressure",
	Long: `mlpeg relaxes bulk crystal structures under a range of external pressures
(0-150 GPa) with machine-learned interatomic potentials, aggregates the
results into consistency metrics (volume compression, bulk modulus), and
serves them as a web dashboard.

The three stages are independent and communicate through files on disk:
'mlpeg calc' writes one results.json per (model, structure), 'mlpeg analyse'
turns those into table and figure artifacts, and 'mlpeg serve' presents the
artifacts.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(calcCmd)
	rootCmd.AddCommand(analyseCmd)
	rootCmd.AddCommand(serveCmd)
}
