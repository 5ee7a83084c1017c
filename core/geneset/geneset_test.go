// core/geneset/geneset_test.go
package geneset

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOrderPreserved(t *testing.T) {
	s := MustNew("gapA", "gyrA", "recA")
	want := []string{"gapA", "gyrA", "recA"}
	for i, n := range s.Names() {
		if n != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, n, want[i])
		}
	}
	if s.Index("gyrA") != 1 {
		t.Errorf("Index(gyrA) = %d, want 1", s.Index("gyrA"))
	}
	if s.Index("gyrB") != -1 {
		t.Errorf("Index(gyrB) = %d, want -1", s.Index("gyrB"))
	}
}

func TestDuplicateRejected(t *testing.T) {
	if _, err := New("mecA", "mecA"); err == nil {
		t.Fatal("expected duplicate gene error")
	}
}

func TestEmptyRejected(t *testing.T) {
	if _, err := New(); err == nil {
		t.Fatal("expected empty set error")
	}
}

func TestDefaultPanels(t *testing.T) {
	if got := DefaultHGT().Len(); got != 5 {
		t.Errorf("HGT panel size = %d, want 5", got)
	}
	if !DefaultVGT().Contains("rpoB") {
		t.Error("VGT panel missing rpoB")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "panel.txt")
	data := "# custom panel\nmecA\n\ntetA\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.Len() != 2 || s.Index("tetA") != 1 {
		t.Errorf("unexpected panel %v", s.Names())
	}
}

func TestLoadRejectsWhitespace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "panel.txt")
	if err := os.WriteFile(path, []byte("mecA tetA\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected whitespace error")
	}
}
