package pydock

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeTool writes a shell script standing in for the docking binary. The
// script sees the same argv the real tool would: the command path, the
// stage name and any extra arguments.
func fakeTool(t *testing.T, script string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pyDock3")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o755))
	return path
}

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// minimal single-chain structures for staging and chain validation
const recPDB = `ATOM      1  N   MET A   1      27.340  24.430   2.614  1.00  9.67           N
ATOM      2  CA  ARG A  45      26.266  25.413   2.842  1.00 10.38           C
END
`

const ligPDB = `ATOM      1  N   ALA A  88      20.000  20.000   5.000  1.00  8.00           N
END
`

// testInputs writes receptor and ligand structures into a temp dir and
// returns their paths plus an output dir.
func testInputs(t *testing.T) (rec, lig, outDir string) {
	t.Helper()
	dir := t.TempDir()
	rec = writeFile(t, filepath.Join(dir, "receptor.pdb"), recPDB)
	lig = writeFile(t, filepath.Join(dir, "ligand.pdb"), ligPDB)
	return rec, lig, t.TempDir()
}
