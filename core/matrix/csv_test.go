// core/matrix/csv_test.go
package matrix

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCSVLayout(t *testing.T) {
	m, err := New([]string{"B", "A"}, []float64{1, 0, 0, 1})
	require.NoError(t, err)

	var b strings.Builder
	require.NoError(t, m.WriteCSV(&b))
	assert.Equal(t, "Genome,B,A\nB,1,0\nA,0,1\n", b.String())
}

func TestReadCSV(t *testing.T) {
	in := "Genome,B,A\nB,1,0\nA,0,1\n"
	m, err := ReadCSV(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "A"}, m.Index())
	v, err := m.At("B", "B")
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}

func TestReadCSVRejectsLabelMismatch(t *testing.T) {
	in := "Genome,B,A\nB,1,0\nC,0,1\n"
	_, err := ReadCSV(strings.NewReader(in))
	assert.Error(t, err)
}

func TestReadCSVRejectsRagged(t *testing.T) {
	in := "Genome,B,A\nB,1,0\n"
	_, err := ReadCSV(strings.NewReader(in))
	assert.Error(t, err)
}
