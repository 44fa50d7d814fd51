package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMetricsConfigPath(Te *testing.T) {
	dir := Te.TempDir()
	present := filepath.Join(dir, "metrics.yml")
	if err := os.WriteFile(present, []byte("weights: {}\n"), 0644); err != nil {
		Te.Fatal(err)
	}
	missing := filepath.Join(dir, "nope.yml")
	//the default config is optional: when its file is not there, the
	//analysis runs with an empty config instead of failing
	if got := metricsConfigPath(missing, false); got != "" {
		Te.Errorf("missing default config resolved to %q, want empty", got)
	}
	if got := metricsConfigPath(present, false); got != present {
		Te.Errorf("present default config resolved to %q", got)
	}
	//a path given explicitly must be passed through even if missing, so
	//loading it fails loudly
	if got := metricsConfigPath(missing, true); got != missing {
		Te.Errorf("explicit config resolved to %q, want %q", got, missing)
	}
	if got := metricsConfigPath("", false); got != "" {
		Te.Errorf("empty path resolved to %q", got)
	}
}
