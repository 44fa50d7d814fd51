package analysis

import (
	"log/slog"
	"os"
	"path/filepath"
)

//Artifact file names, shared with the app package.
const (
	TableArtifact  = "pressure_metrics_table.json"
	FigureArtifact = "figure_volumes_vs_pressure.json"
	FigurePNG      = "figure_volumes_vs_pressure.png"
)

//Run executes the whole analysis stage: it aggregates the results under
//calcDir for the given models, and persists the table and figure artifacts
//into outDir. cfgPath points to the metrics YAML configuration and may be
//empty. Models or structures with nothing on disk are skipped silently by
//the aggregation; they still appear in the table with zero-valued metrics.
func Run(calcDir, outDir string, models []string, cfgPath string, log *slog.Logger) error {
	if log == nil {
		log = slog.Default()
	}
	cfg, err := LoadMetricsConfig(cfgPath)
	if err != nil {
		return errDecorate(err, "analysis.Run")
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return Error{message: err.Error(), deco: []string{"analysis.Run"}, critical: true}
	}
	metrics := Metrics(calcDir, models)
	table := BuildTable(metrics, cfg)
	if err := table.Write(filepath.Join(outDir, TableArtifact)); err != nil {
		return errDecorate(err, "analysis.Run")
	}
	log.Info("wrote metrics table", "file", filepath.Join(outDir, TableArtifact), "models", len(models))
	fig := &Figure{
		Title:  "Volume vs Pressure",
		XLabel: "Predicted volume / Å³",
		YLabel: "Reference volume / Å³",
		Series: VolumesVsPressure(calcDir, models),
		HoverData: map[string][]string{
			"Structure": StructureNames(calcDir, models),
		},
	}
	if err := fig.Write(filepath.Join(outDir, FigureArtifact)); err != nil {
		return errDecorate(err, "analysis.Run")
	}
	if err := RenderVolumes(calcDir, models, filepath.Join(outDir, FigurePNG)); err != nil {
		return errDecorate(err, "analysis.Run")
	}
	log.Info("wrote volume figure", "file", filepath.Join(outDir, FigureArtifact))
	return nil
}
