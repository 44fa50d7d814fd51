package app

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func testBenchmark(Te *testing.T) (*Benchmark, string) {
	Te.Helper()
	dir := Te.TempDir()
	return Pressure(dir), dir
}

func request(Te *testing.T, e http.Handler, path string) *httptest.ResponseRecorder {
	Te.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func quietLog() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDashboardPage(Te *testing.T) {
	b, _ := testBenchmark(Te)
	e := NewEcho(b, quietLog())
	rec := request(Te, e, "/")
	if rec.Code != http.StatusOK {
		Te.Fatalf("GET / = %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, b.Name) {
		Te.Error("page misses the benchmark name")
	}
	if !strings.Contains(body, b.LinkedMetric) {
		Te.Error("page misses the linked metric")
	}
	if !strings.Contains(body, b.DocsURL) {
		Te.Error("page misses the documentation link")
	}
}

func TestDashboardArtifacts(Te *testing.T) {
	b, dir := testBenchmark(Te)
	table := `{"metrics": {"Volume Compression": {"lj": 0.1}}}`
	if err := os.WriteFile(filepath.Join(dir, filepath.Base(b.TablePath)), []byte(table), 0644); err != nil {
		Te.Fatal(err)
	}
	e := NewEcho(b, quietLog())
	rec := request(Te, e, "/api/table")
	if rec.Code != http.StatusOK {
		Te.Fatalf("GET /api/table = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		Te.Errorf("table served as %s", ct)
	}
	if !strings.Contains(rec.Body.String(), "Volume Compression") {
		Te.Error("table artifact not served back")
	}
	//the figure artifact was never written
	rec = request(Te, e, "/api/figure")
	if rec.Code != http.StatusNotFound {
		Te.Fatalf("GET /api/figure without artifact = %d, want 404", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "analysis") {
		Te.Error("missing-artifact message should point at the analysis stage")
	}
}
