package launch

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestStageInputsAndCollect(t *testing.T) {
	host := t.TempDir()
	writeFile(t, filepath.Join(host, "receptor.pdb"), "REC")
	writeFile(t, filepath.Join(host, "ligand.pdb"), "LIG")

	s, err := NewStaging(false)
	require.NoError(t, err)
	defer s.Remove()

	err = s.StageInputs(map[string]string{
		"docking_rec.pdb": filepath.Join(host, "receptor.pdb"),
		"docking_lig.pdb": filepath.Join(host, "ligand.pdb"),
		"docking_ref.pdb": "", // optional input, not given
	})
	require.NoError(t, err)

	got, err := os.ReadFile(s.Path("docking_rec.pdb"))
	require.NoError(t, err)
	assert.Equal(t, "REC", string(got))
	assert.NoFileExists(t, s.Path("docking_ref.pdb"))

	// Pretend the tool wrote an output, then collect it under a new name.
	writeFile(t, s.Path("docking.ene"), "Conf Total RANK\n")
	dst := filepath.Join(host, "out", "energies.ene")
	err = s.Collect(map[string]string{"docking.ene": dst})
	require.NoError(t, err)
	got, err = os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "Conf Total RANK\n", string(got))
}

func TestCollectMissingOutput(t *testing.T) {
	s, err := NewStaging(false)
	require.NoError(t, err)
	defer s.Remove()

	err = s.Collect(map[string]string{"docking.ene": filepath.Join(t.TempDir(), "x.ene")})
	assert.ErrorContains(t, err, "was not created")
}

func TestRemoveAndKeep(t *testing.T) {
	s, err := NewStaging(false)
	require.NoError(t, err)
	s.Remove()
	assert.NoDirExists(t, s.Dir)

	s, err = NewStaging(true)
	require.NoError(t, err)
	s.Remove()
	assert.DirExists(t, s.Dir)
	os.RemoveAll(s.Dir)
}

func TestOutputsExist(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a")
	b := filepath.Join(dir, "b")
	writeFile(t, a, "x")

	assert.False(t, OutputsExist(a, b))
	writeFile(t, b, "y")
	assert.True(t, OutputsExist(a, b))
	assert.True(t, OutputsExist(a, "", b))

	// Nothing to check is not "all present".
	assert.False(t, OutputsExist())
	assert.False(t, OutputsExist(""))
}
