package pydock

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dockrstInput(t *testing.T) (DockrstInput, string) {
	t.Helper()
	dir := t.TempDir()
	file := func(name, content string) string {
		return writeFile(t, filepath.Join(dir, name), content)
	}
	return DockrstInput{
		Rec:      file("rec.pdb", recPDB),
		RecH:     file("rec.pdb.H", recPDB),
		RecAmber: file("rec.pdb.amber", "amber\n"),
		Lig:      file("lig.pdb", ligPDB),
		LigH:     file("lig.pdb.H", ligPDB),
		LigAmber: file("lig.pdb.amber", "amber\n"),
		Rot:      file("poses.rot", "ROT\n"),
		Ene:      file("energies.ene", "Conf Total RANK\n1 -10.0 1\n"),
	}, t.TempDir()
}

func TestDockrst(t *testing.T) {
	in, outDir := dockrstInput(t)

	c := DefaultConfig
	c.Receptor.Restraints = []string{"A.Arg.45"}
	c.Ligand.Restraints = []string{"B.Ala.88"}
	c.Binary = fakeTool(t, `
test "$2" = dockrst || exit 1
grep -q "restr = A.Arg.45" "$1.ini" || exit 2
test -f "$1.rot" || exit 3
test -f "$1.ene" || exit 3
echo rst > "$1.rst"
echo combined > "$1.eneRST"
`)

	out := DockrstOutput{
		Rst:    filepath.Join(outDir, "restraints.rst"),
		EneRst: filepath.Join(outDir, "combined.eneRST"),
	}
	require.NoError(t, c.Dockrst(context.Background(), in, out))
	assert.FileExists(t, out.Rst)
	assert.FileExists(t, out.EneRst)
}

func TestDockrstNeedsRestraints(t *testing.T) {
	in, outDir := dockrstInput(t)

	c := DefaultConfig
	c.Binary = fakeTool(t, `exit 1`) // must not be reached
	err := c.Dockrst(context.Background(), in, DockrstOutput{
		Rst:    filepath.Join(outDir, "restraints.rst"),
		EneRst: filepath.Join(outDir, "combined.eneRST"),
	})
	assert.ErrorContains(t, err, "at least one restraint")
}

func TestDockrstBadRestraint(t *testing.T) {
	in, _ := dockrstInput(t)

	c := DefaultConfig
	c.Receptor.Restraints = []string{"A.ARG.45"}
	err := c.Dockrst(context.Background(), in, DockrstOutput{})
	assert.ErrorContains(t, err, "capitalized")
}
