// core/presence/build.go
package presence

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"dotmap-core/geneset"
	"dotmap-core/gff"
)

// ErrNoInput marks a directory with zero qualifying annotation files.
var ErrNoInput = errors.New("no annotation files found")

type inputFile struct {
	path string
	mod  time.Time
}

// listAnnotationFiles returns the .gff/.gff.gz files directly inside dir,
// ordered by modification time ascending with the file name as the
// deterministic tie-break. Raw directory order is never used.
func listAnnotationFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []inputFile
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !strings.HasSuffix(name, gff.Extension) && !strings.HasSuffix(name, gff.Extension+".gz") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, err
		}
		files = append(files, inputFile{path: filepath.Join(dir, name), mod: info.ModTime()})
	}
	sort.Slice(files, func(i, j int) bool {
		if !files[i].mod.Equal(files[j].mod) {
			return files[i].mod.Before(files[j].mod)
		}
		return files[i].path < files[j].path
	})
	paths := make([]string, len(files))
	for i, f := range files {
		paths[i] = f.path
	}
	return paths, nil
}

// Build parses every annotation file in dir against the gene panel and
// aggregates one table row per file. A missing directory, zero input files,
// an unreadable file, or a duplicate GenomeID aborts the build.
func Build(dir string, genes *geneset.Set) (*Table, error) {
	paths, err := listAnnotationFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoInput, dir)
	}

	t := NewTable(genes)
	for _, p := range paths {
		genome, vec, err := gff.ParseFile(p, genes)
		if err != nil {
			return nil, err
		}
		if err := t.AddRow(genome, vec); err != nil {
			return nil, fmt.Errorf("%s: %w", p, err)
		}
	}
	return t, nil
}
