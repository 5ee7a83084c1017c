// core/geneset/loader.go
package geneset

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Load reads a gene panel from a text file: one gene name per line, blank
// lines and '#' comments ignored. Order in the file is panel order.
func Load(path string) (*Set, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()

	var names []string
	sc := bufio.NewScanner(fh)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		if strings.ContainsAny(line, " \t") {
			return nil, fmt.Errorf("%s:%d gene name contains whitespace: %q", path, ln, line)
		}
		names = append(names, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	s, err := New(names...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}
