package pydock

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOda(t *testing.T) {
	structure := writeFile(t, filepath.Join(t.TempDir(), "receptor.pdb"), recPDB)
	outDir := t.TempDir()

	c := DefaultConfig
	c.Name = "subunit"
	c.Binary = fakeTool(t, `
test "$2" = oda || exit 1
case "$1" in *subunit.pdb) ;; *) exit 2 ;; esac
base="${1%.pdb}"
echo oda > "$1.oda"
echo odaH > "$1.oda.H"
echo amber > "$base.oda.amber"
printf 'MET 1 4.21\nTRP 3 -12.40\n' > "$1.oda.ODAtab"
`)

	out := OdaOutput{
		Oda:      filepath.Join(outDir, "receptor.pdb.oda"),
		OdaH:     filepath.Join(outDir, "receptor.pdb.oda.H"),
		OdaAmber: filepath.Join(outDir, "receptor.oda.amber"),
		OdaTab:   filepath.Join(outDir, "receptor.pdb.oda.ODAtab"),
	}
	rs, err := c.Oda(context.Background(), structure, out)
	require.NoError(t, err)

	for _, p := range []string{out.Oda, out.OdaH, out.OdaAmber, out.OdaTab} {
		assert.FileExists(t, p)
	}
	require.Len(t, rs, 2)
	assert.Equal(t, "TRP", rs[1].Name)
	assert.InDelta(t, -12.40, rs[1].ODA, 1e-12)
}

func TestOdaRestart(t *testing.T) {
	outDir := t.TempDir()
	out := OdaOutput{
		Oda:      writeFile(t, filepath.Join(outDir, "r.pdb.oda"), "x"),
		OdaH:     writeFile(t, filepath.Join(outDir, "r.pdb.oda.H"), "x"),
		OdaAmber: writeFile(t, filepath.Join(outDir, "r.oda.amber"), "x"),
		OdaTab:   writeFile(t, filepath.Join(outDir, "r.pdb.oda.ODAtab"), "GLU 2 -0.87\n"),
	}

	c := DefaultConfig
	c.Restart = true
	c.Binary = fakeTool(t, `exit 1`) // must not be reached
	rs, err := c.Oda(context.Background(), "unused.pdb", out)
	require.NoError(t, err)
	require.Len(t, rs, 1)
	assert.Equal(t, 2, rs[0].Number)
}
