package calc

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zip"
)

//makeArchive builds an in-memory zip with the given members.
func makeArchive(Te *testing.T, members map[string]string) []byte {
	Te.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, body := range members {
		f, err := w.Create(name)
		if err != nil {
			Te.Fatal(err)
		}
		if _, err := f.Write([]byte(body)); err != nil {
			Te.Fatal(err)
		}
	}
	if err := w.Close(); err != nil {
		Te.Fatal(err)
	}
	return buf.Bytes()
}

const tinyXYZ = "1\nLattice=\"10.0 0.0 0.0 0.0 10.0 0.0 0.0 0.0 10.0\" Properties=species:S:1:pos:R:3 pbc=\"T T T\"\nAr 0.0 0.0 0.0\n"

func TestFetchStructuresDownload(Te *testing.T) {
	archive := makeArchive(Te, map[string]string{
		"pressure/NaCl.extxyz":     tinyXYZ,
		"pressure/structures.json": `{"NaCl": {"file": "NaCl.extxyz"}}`,
		"pressure/README.md":       "ignored",
	})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/pressure_structures.zip" {
			http.NotFound(w, r)
			return
		}
		w.Write(archive)
	}))
	defer srv.Close()
	dir := Te.TempDir()
	if err := FetchStructures(srv.URL, "pressure_structures.zip", dir); err != nil {
		Te.Fatal(err)
	}
	//archive members land flat in the data dir, non-structure files are
	//skipped
	if _, err := os.Stat(filepath.Join(dir, "NaCl.extxyz")); err != nil {
		Te.Error("NaCl.extxyz was not extracted")
	}
	if _, err := os.Stat(filepath.Join(dir, "structures.json")); err != nil {
		Te.Error("structures.json was not extracted")
	}
	if _, err := os.Stat(filepath.Join(dir, "README.md")); err == nil {
		Te.Error("a non-structure archive member was extracted")
	}
	files, names, err := StructureFiles(dir)
	if err != nil {
		Te.Fatal(err)
	}
	if len(names) != 1 || names[0] != "NaCl" {
		Te.Errorf("wrong structure names: %v", names)
	}
	if files["NaCl"] != filepath.Join(dir, "NaCl.extxyz") {
		Te.Errorf("wrong file for NaCl: %s", files["NaCl"])
	}
}

func TestFetchStructuresLocalFallback(Te *testing.T) {
	dir := Te.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "Ar.extxyz"), []byte(tinyXYZ), 0644); err != nil {
		Te.Fatal(err)
	}
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()
	if err := FetchStructures(srv.URL, "pressure_structures.zip", dir); err != nil {
		Te.Fatalf("local data should cover a failed download: %v", err)
	}
	_, names, err := StructureFiles(dir)
	if err != nil {
		Te.Fatal(err)
	}
	if len(names) != 1 || names[0] != "Ar" {
		Te.Errorf("glob fallback gave the wrong names: %v", names)
	}
}

func TestFetchStructuresNoData(Te *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()
	err := FetchStructures(srv.URL, "pressure_structures.zip", Te.TempDir())
	if !errors.Is(err, ErrNoData) {
		Te.Fatalf("want ErrNoData, got %v", err)
	}
}

func TestStructureFilesIndex(Te *testing.T) {
	dir := Te.TempDir()
	//an index entry without a file points at name.extxyz
	index := `{"b": {"file": "other.extxyz"}, "a": {}}`
	if err := os.WriteFile(filepath.Join(dir, "structures.json"), []byte(index), 0644); err != nil {
		Te.Fatal(err)
	}
	files, names, err := StructureFiles(dir)
	if err != nil {
		Te.Fatal(err)
	}
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		Te.Errorf("names not sorted: %v", names)
	}
	if files["a"] != filepath.Join(dir, "a.extxyz") {
		Te.Errorf("default file for a: %s", files["a"])
	}
	if files["b"] != filepath.Join(dir, "other.extxyz") {
		Te.Errorf("indexed file for b: %s", files["b"])
	}
}
