// core/newick/newick_test.go
package newick

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func leaves(t *testing.T, text string) []string {
	t.Helper()
	tree, err := ParseString(text)
	require.NoError(t, err, "parsing %q", text)
	return tree.Leaves()
}

func TestLeafOrder(t *testing.T) {
	assert.Equal(t, []string{"B", "A", "C"}, leaves(t, "(B,(A,C));"))
	assert.Equal(t, []string{"A"}, leaves(t, "A;"))
	assert.Equal(t, []string{"A", "B", "C", "D"}, leaves(t, "((A,B),(C,D));"))
}

func TestBranchLengthsIgnoredForOrder(t *testing.T) {
	got := leaves(t, "(B:0.1,(A:1e-3,C:2.5)inner:0.4)root;")
	assert.Equal(t, []string{"B", "A", "C"}, got)
}

func TestQuotedLabelsStripped(t *testing.T) {
	got := leaves(t, "('strain A','B''s isolate');")
	assert.Equal(t, []string{"strain A", "B's isolate"}, got)
}

func TestInternalLabelsAreNotLeaves(t *testing.T) {
	tree, err := ParseString("((A,B)clade1,C)root;")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, tree.Leaves())
	assert.Equal(t, "root", tree.Root.Name)
}

func TestMissingSemicolonAccepted(t *testing.T) {
	assert.Equal(t, []string{"A", "B"}, leaves(t, "(A,B)"))
}

func TestWhitespaceTolerated(t *testing.T) {
	got := leaves(t, " ( B , ( A , C ) ) ;\n")
	assert.Equal(t, []string{"B", "A", "C"}, got)
}

func TestParseErrors(t *testing.T) {
	cases := map[string]string{
		"unbalanced open":    "((A,B);",
		"unbalanced close":   "(A,B));",
		"trailing text":      "(A,B);junk",
		"empty input":        "",
		"missing label":      "(A,);",
		"unterminated quote": "('A,B);",
		"bad branch length":  "(A:xyz,B);",
	}
	for name, text := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseString(text)
			require.Error(t, err)
			var perr *ParseError
			assert.True(t, errors.As(err, &perr), "want *ParseError, got %T", err)
		})
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tree.nwk")
	require.NoError(t, os.WriteFile(path, []byte("(B,(A,C));\n"), 0o644))

	tree, err := ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "A", "C"}, tree.Leaves())

	_, err = ParseFile(filepath.Join(t.TempDir(), "missing.nwk"))
	assert.Error(t, err)
}
