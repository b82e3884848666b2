package odatab

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `# subunit.pdb optimal docking area
MET 1   4.21
GLU 2   -0.87
TRP 3   -12.40
LYS 4   -3.05
`

func TestRead(t *testing.T) {
	rs, err := Read(strings.NewReader(sample))
	require.NoError(t, err)
	require.Len(t, rs, 4)
	assert.Equal(t, Residue{Name: "TRP", Number: 3, ODA: -12.40}, rs[2])
}

func TestReadErrors(t *testing.T) {
	_, err := Read(strings.NewReader("MET 1\n"))
	assert.Error(t, err, "short row")

	_, err = Read(strings.NewReader("MET one 4.2\n"))
	assert.Error(t, err, "bad residue number")

	_, err = Read(strings.NewReader("MET 1 low\n"))
	assert.Error(t, err, "bad oda value")
}

func TestHotspots(t *testing.T) {
	rs, err := Read(strings.NewReader(sample))
	require.NoError(t, err)

	hot := Hotspots(rs, -1.0)
	require.Len(t, hot, 2)
	assert.Equal(t, 3, hot[0].Number)
	assert.Equal(t, 4, hot[1].Number)
}
