// internal/collate/collate.go
package collate

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"dotmap-core/gff"
)

// Flatten copies every annotation file found anywhere under root into dest,
// collating files from nested per-genome subdirectories into one flat
// working directory. Source modification times are preserved so downstream
// row ordering stays stable. Two files with the same base name would be two
// rows claiming one GenomeID, so a collision aborts the flatten.
func Flatten(root, dest string) (int, error) {
	if info, err := os.Stat(root); err != nil {
		return 0, err
	} else if !info.IsDir() {
		return 0, fmt.Errorf("%s is not a directory", root)
	}
	if err := os.MkdirAll(dest, 0o755); err != nil {
		return 0, err
	}

	seen := make(map[string]string)
	count := 0
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		name := d.Name()
		if !strings.HasSuffix(name, gff.Extension) && !strings.HasSuffix(name, gff.Extension+".gz") {
			return nil
		}
		if prev, dup := seen[name]; dup {
			return fmt.Errorf("annotation file %s found in both %s and %s", name, prev, path)
		}
		seen[name] = path
		if err := copyFile(path, filepath.Join(dest, name)); err != nil {
			return err
		}
		count++
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	info, err := in.Stat()
	if err != nil {
		return err
	}
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	return os.Chtimes(dst, info.ModTime(), info.ModTime())
}
