// core/gff/reader_test.go
package gff

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"dotmap-core/geneset"
)

const nineCols = "strainA\tProkka\tgene\t1\t900\t.\t+\t0\t"

func record(attrs string) string { return nineCols + attrs }

func TestParsePresence(t *testing.T) {
	genes := geneset.MustNew("mecA", "tetA")
	in := strings.Join([]string{
		"##gff-version 3",
		record("ID=g1;Name=mecA;product=PBP2a"),
		record("ID=g2;Name=gyrA"),
	}, "\n")

	got, err := Parse(strings.NewReader(in), genes)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := []int{1, 0}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("presence[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestParseSkipsMalformedRecords(t *testing.T) {
	genes := geneset.MustNew("mecA")
	in := strings.Join([]string{
		"# comment line",
		"only\tthree\tfields",
		"strainA\tProkka\tgene\t1\t900\t.\t+\t0", // 8 fields
		record("product=no name here"),
		record("ID=g9;Name=mecA"),
	}, "\n")

	got, err := Parse(strings.NewReader(in), genes)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got[0] != 1 {
		t.Errorf("mecA bit = %d, want 1 despite malformed neighbors", got[0])
	}
}

func TestParseExactMatchOnly(t *testing.T) {
	genes := geneset.MustNew("mecA")
	in := strings.Join([]string{
		record("Name=mecA2"),
		record("Name=mec"),
	}, "\n")

	got, err := Parse(strings.NewReader(in), genes)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got[0] != 0 {
		t.Errorf("partial gene names must not match, got bit %d", got[0])
	}
}

func TestParseRepeatIsIdempotent(t *testing.T) {
	genes := geneset.MustNew("tetM")
	in := strings.Join([]string{
		record("Name=tetM"),
		record("Name=tetM"),
	}, "\n")

	got, err := Parse(strings.NewReader(in), genes)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got[0] != 1 {
		t.Errorf("tetM bit = %d, want 1", got[0])
	}
}

func TestGenomeID(t *testing.T) {
	cases := map[string]string{
		"strainA.gff":         "strainA",
		"/data/in/strainB.gff": "strainB",
		"strainC.gff.gz":      "strainC",
		"strain.v2.gff":       "strain.v2",
	}
	for path, want := range cases {
		if got := GenomeID(path); got != want {
			t.Errorf("GenomeID(%q) = %q, want %q", path, got, want)
		}
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "strainA.gff")
	data := record("ID=g1;Name=mecA") + "\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	genes := geneset.MustNew("mecA", "tetA")
	genome, vec, err := ParseFile(path, genes)
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if genome != "strainA" {
		t.Errorf("genome = %q, want strainA", genome)
	}
	if vec[0] != 1 || vec[1] != 0 {
		t.Errorf("vector = %v, want [1 0]", vec)
	}
}

func TestParseFileGzip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "strainZ.gff.gz")
	fh, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	zw := gzip.NewWriter(fh)
	if _, err := zw.Write([]byte(record("Name=vanA") + "\n")); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := fh.Close(); err != nil {
		t.Fatal(err)
	}

	genes := geneset.MustNew("vanA")
	genome, vec, err := ParseFile(path, genes)
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if genome != "strainZ" || vec[0] != 1 {
		t.Errorf("got genome %q vec %v, want strainZ [1]", genome, vec)
	}
}

func TestParseFileUnreadable(t *testing.T) {
	genes := geneset.MustNew("mecA")
	if _, _, err := ParseFile(filepath.Join(t.TempDir(), "missing.gff"), genes); err == nil {
		t.Fatal("expected error for unreadable file")
	}
}
