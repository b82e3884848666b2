package pydock

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDockser(t *testing.T) {
	rec, lig, outDir := testInputs(t)
	rot := writeFile(t, filepath.Join(outDir, "poses.rot"), "ROT\n")

	c := DefaultConfig
	c.Binary = fakeTool(t, `
test "$2" = dockser || exit 1
test -f "$1_rec.pdb" || exit 2
test -f "$1_lig.pdb" || exit 2
test -f "$1.rot" || exit 2
cat > "$1.ene" <<EOF
Conf   Ele     Desolv  VDW    Total   RANK
14     -22.8   -9.3    2.0    -31.9   1
73     -14.5   -12.6   4.6    -26.7   2
EOF
`)

	outEne := filepath.Join(outDir, "energies.ene")
	sum, err := c.Dockser(context.Background(), DockserInput{Rec: rec, Lig: lig, Rot: rot}, outEne)
	require.NoError(t, err)

	assert.FileExists(t, outEne)
	assert.Equal(t, 2, sum.N)
	assert.InDelta(t, -31.9, sum.Best, 1e-12)
}

func TestDockserFailure(t *testing.T) {
	rec, lig, outDir := testInputs(t)
	rot := writeFile(t, filepath.Join(outDir, "poses.rot"), "ROT\n")

	c := DefaultConfig
	c.Binary = fakeTool(t, `exit 7`)
	_, err := c.Dockser(context.Background(),
		DockserInput{Rec: rec, Lig: lig, Rot: rot},
		filepath.Join(outDir, "energies.ene"))
	assert.Error(t, err)
}

func TestDockserRestart(t *testing.T) {
	outDir := t.TempDir()
	outEne := writeFile(t, filepath.Join(outDir, "energies.ene"),
		"Conf Total RANK\n5 -12.0 1\n9 -8.0 2\n")

	c := DefaultConfig
	c.Restart = true
	c.Binary = fakeTool(t, `exit 1`) // must not be reached
	sum, err := c.Dockser(context.Background(), DockserInput{}, outEne)
	require.NoError(t, err)
	assert.Equal(t, 2, sum.N)
	assert.InDelta(t, -12.0, sum.Best, 1e-12)
}
