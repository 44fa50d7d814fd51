package calc

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/klauspost/compress/zip"
)

//FetchStructures makes sure dataDir holds the benchmark input structures.
//It downloads the zip archive filename from the source uri and extracts the
//*.extxyz members into dataDir. If the download or the extraction fails but
//dataDir already holds extxyz files, those are used instead; with no local
//data either, the returned error wraps ErrNoData and the caller should skip
//the whole run, reporting the reason.
func FetchStructures(uri, filename, dataDir string) error {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return Error{message: err.Error(), deco: []string{"FetchStructures"}, critical: true}
	}
	derr := downloadArchive(uri+"/"+filename, dataDir)
	if derr == nil {
		return nil
	}
	local, err := filepath.Glob(filepath.Join(dataDir, "*.extxyz"))
	if err == nil && len(local) > 0 {
		return nil
	}
	return fmt.Errorf("%w: could not download %s from %s (%s) and no local data found in %s", ErrNoData, filename, uri, derr.Error(), dataDir)
}

func downloadArchive(url, dataDir string) error {
	resp, err := http.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: %s", url, resp.Status)
	}
	tmp, err := os.CreateTemp("", "mlpeg-*.zip")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	_, err = io.Copy(tmp, resp.Body)
	tmp.Close()
	if err != nil {
		return err
	}
	r, err := zip.OpenReader(tmp.Name())
	if err != nil {
		return err
	}
	defer r.Close()
	extracted := 0
	for _, zf := range r.File {
		name := filepath.Base(zf.Name)
		if zf.FileInfo().IsDir() ||
			(!strings.HasSuffix(name, ".extxyz") && name != "structures.json") {
			continue
		}
		in, err := zf.Open()
		if err != nil {
			return err
		}
		out, err := os.Create(filepath.Join(dataDir, name))
		if err != nil {
			in.Close()
			return err
		}
		_, err = io.Copy(out, in)
		in.Close()
		out.Close()
		if err != nil {
			return err
		}
		extracted++
	}
	if extracted == 0 {
		return fmt.Errorf("archive %s holds no structure files", url)
	}
	return nil
}

//structureIndex is the optional structures.json index shipped with the
//archive, mapping structure names to their files.
type structureIndex map[string]struct {
	File string `json:"file"`
}

//StructureFiles lists the input structures in dataDir as name to file path,
//from the structures.json index if one is present, or from the *.extxyz
//files otherwise (the name being the file stem). The second return value
//holds the names, sorted.
func StructureFiles(dataDir string) (map[string]string, []string, error) {
	files := make(map[string]string)
	index := filepath.Join(dataDir, "structures.json")
	if raw, err := os.ReadFile(index); err == nil {
		var idx structureIndex
		if err := json.Unmarshal(raw, &idx); err != nil {
			return nil, nil, Error{message: "malformed structures.json: " + err.Error(), deco: []string{"StructureFiles"}, critical: true}
		}
		for name, entry := range idx {
			f := entry.File
			if f == "" {
				f = name + ".extxyz"
			}
			if !filepath.IsAbs(f) {
				f = filepath.Join(dataDir, f)
			}
			files[name] = f
		}
	} else {
		glob, err := filepath.Glob(filepath.Join(dataDir, "*.extxyz"))
		if err != nil {
			return nil, nil, Error{message: err.Error(), deco: []string{"StructureFiles"}, critical: true}
		}
		for _, f := range glob {
			name := strings.TrimSuffix(filepath.Base(f), ".extxyz")
			files[name] = f
		}
	}
	if len(files) == 0 {
		return nil, nil, fmt.Errorf("%w: no structure files in %s", ErrNoData, dataDir)
	}
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)
	return files, names, nil
}
