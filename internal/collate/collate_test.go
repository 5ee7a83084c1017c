// internal/collate/collate_test.go
package collate

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlattenCollectsNestedFiles(t *testing.T) {
	root := t.TempDir()
	dest := filepath.Join(t.TempDir(), "gff")

	write := func(rel string) {
		p := filepath.Join(root, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte("##gff-version 3\n"), 0o644))
	}
	write("genomeA/annot/strainA.gff")
	write("genomeB/strainB.gff")
	write("genomeB/strainB.ffn") // non-annotation, ignored
	write("strainC.gff.gz")

	n, err := Flatten(root, dest)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	for _, name := range []string{"strainA.gff", "strainB.gff", "strainC.gff.gz"} {
		_, err := os.Stat(filepath.Join(dest, name))
		assert.NoError(t, err, name)
	}
	_, err = os.Stat(filepath.Join(dest, "strainB.ffn"))
	assert.True(t, os.IsNotExist(err), "ffn file must not be copied")
}

func TestFlattenPreservesModTime(t *testing.T) {
	root := t.TempDir()
	dest := filepath.Join(t.TempDir(), "gff")

	src := filepath.Join(root, "strainA.gff")
	require.NoError(t, os.WriteFile(src, []byte("x\n"), 0o644))
	ts := time.Now().Add(-48 * time.Hour).Truncate(time.Second)
	require.NoError(t, os.Chtimes(src, ts, ts))

	_, err := Flatten(root, dest)
	require.NoError(t, err)

	info, err := os.Stat(filepath.Join(dest, "strainA.gff"))
	require.NoError(t, err)
	assert.True(t, info.ModTime().Equal(ts), "mod time %v, want %v", info.ModTime(), ts)
}

func TestFlattenCollisionFails(t *testing.T) {
	root := t.TempDir()
	for _, sub := range []string{"a", "b"} {
		p := filepath.Join(root, sub, "strainA.gff")
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte("x\n"), 0o644))
	}

	_, err := Flatten(root, filepath.Join(t.TempDir(), "gff"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "strainA.gff")
}

func TestFlattenMissingRootFails(t *testing.T) {
	_, err := Flatten(filepath.Join(t.TempDir(), "nope"), t.TempDir())
	assert.Error(t, err)
}

func TestFlattenEmptyRootIsZero(t *testing.T) {
	n, err := Flatten(t.TempDir(), filepath.Join(t.TempDir(), "gff"))
	require.NoError(t, err)
	assert.Zero(t, n)
}
