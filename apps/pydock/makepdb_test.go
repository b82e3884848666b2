package pydock

import (
	"archive/zip"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rankedEne = `Conf       Ele        Desolv     VDW        Total      RANK
14         -22.818    -9.368     2.089      -31.977    1
73         -14.503    -12.690    4.690      -26.724    2
2          -10.224    -10.233    1.842      -20.273    3
91         -3.180     -13.401    0.551      -16.526    4
`

func makePDBInput(t *testing.T) (MakePDBInput, string) {
	t.Helper()
	dir := t.TempDir()
	file := func(name, content string) string {
		return writeFile(t, filepath.Join(dir, name), content)
	}
	return MakePDBInput{
		Rec:      file("rec.pdb", recPDB),
		RecH:     file("rec.pdb.H", recPDB),
		RecAmber: file("rec.pdb.amber", "amber\n"),
		Lig:      file("lig.pdb", ligPDB),
		LigH:     file("lig.pdb.H", ligPDB),
		LigAmber: file("lig.pdb.amber", "amber\n"),
		Rot:      file("poses.rot", "ROT\n"),
		Ene:      file("energies.ene", rankedEne),
		Rank1:    2,
		Rank2:    3,
	}, t.TempDir()
}

func TestMakePDB(t *testing.T) {
	in, outDir := makePDBInput(t)

	c := DefaultConfig
	c.Binary = fakeTool(t, `
test "$2" = makePDB || exit 1
test "$3" = 2 || exit 2
test "$4" = 3 || exit 2
echo "MODEL 73" > "$1_73.pdb"
echo "MODEL 2" > "$1_2.pdb"
`)

	outZip := filepath.Join(outDir, "models.zip")
	models, err := c.MakePDB(context.Background(), in, outZip)
	require.NoError(t, err)
	assert.Equal(t, []string{"docking_73.pdb", "docking_2.pdb"}, models)

	zr, err := zip.OpenReader(outZip)
	require.NoError(t, err)
	defer zr.Close()
	var names []string
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"docking_73.pdb", "docking_2.pdb"}, names)
}

func TestMakePDBBadRange(t *testing.T) {
	in, outDir := makePDBInput(t)
	c := DefaultConfig

	in.Rank1, in.Rank2 = 0, 3
	_, err := c.MakePDB(context.Background(), in, filepath.Join(outDir, "m.zip"))
	assert.ErrorContains(t, err, "bad rank range")

	in.Rank1, in.Rank2 = 3, 2
	_, err = c.MakePDB(context.Background(), in, filepath.Join(outDir, "m.zip"))
	assert.ErrorContains(t, err, "bad rank range")
}

func TestMakePDBEmptyRange(t *testing.T) {
	in, outDir := makePDBInput(t)
	in.Rank1, in.Rank2 = 20, 30

	_, err := DefaultConfig.MakePDB(context.Background(), in, filepath.Join(outDir, "m.zip"))
	assert.ErrorContains(t, err, "no poses with rank")
}

func TestMakePDBMissingModel(t *testing.T) {
	in, outDir := makePDBInput(t)

	c := DefaultConfig
	c.Binary = fakeTool(t, `echo "MODEL 73" > "$1_73.pdb"`) // forgets docking_2.pdb
	_, err := c.MakePDB(context.Background(), in, filepath.Join(outDir, "m.zip"))
	assert.ErrorContains(t, err, "docking_2.pdb was not created")
}
