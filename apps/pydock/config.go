package pydock

import (
	"go.uber.org/zap"

	"github.com/NBDsoftware/biobb-pydock/launch"
)

// Config carries everything shared by the docking stages: where the binary
// lives, the docking name that prefixes every file the tool reads and
// writes, the chain dictionaries, and how runs are executed.
type Config struct {
	// Binary is the docking tool executable.
	Binary string

	// Name is the docking name. The tool derives every internal file name
	// from it: <name>_rec.pdb, <name>.rot, <name>.ene and so on. For the Oda
	// stage it is the subunit name.
	Name string

	// Receptor and Ligand describe the chain of each partner in its input
	// file and the chain code it gets after setup. The two NewChain codes
	// must differ.
	Receptor Molecule
	Ligand   Molecule

	// Reference, when non-nil, names the receptor and ligand chains of a
	// reference complex handed to setup for later quality measures.
	Reference *Reference

	// Container, when non-nil, runs the tool inside a container engine.
	Container *launch.Container

	// Restart skips a stage when all of its output files already exist.
	Restart bool

	// KeepTemp leaves staging directories behind for inspection.
	KeepTemp bool

	// Verbose echoes command lines and tool output to stderr.
	Verbose bool

	// Log receives structured progress messages. A nil Log disables them.
	Log *zap.Logger
}

// Molecule identifies one docking partner's chain. Chain is the chain code
// in the input file ('mol'), NewChain the code the tool renames it to
// ('newmol'). Restraints lists dockrst restraints on the renamed chain,
// each in the form 'B.Ala.88'.
type Molecule struct {
	Chain      string
	NewChain   string
	Restraints []string
}

// Reference names the chains of a reference complex: RecChain is the
// receptor chain code ('recmol'), LigChain the ligand chain code ('ligmol').
type Reference struct {
	RecChain string
	LigChain string
}

// DefaultConfig docks chain A of the receptor against chain A of the
// ligand, renaming the ligand chain to B, with a pyDock3 binary found in
// $PATH. For example:
//
//	conf := pydock.DefaultConfig
//	conf.Name = "barnase-barstar"
//	err := conf.Ftdock(ctx, in, "poses.ftdock")
var DefaultConfig = Config{
	Binary:   "pyDock3",
	Name:     "docking",
	Receptor: Molecule{Chain: "A", NewChain: "A"},
	Ligand:   Molecule{Chain: "A", NewChain: "B"},
}

// Internal file names under the tool's naming convention.

func (c Config) recName() string      { return c.Name + "_rec.pdb" }
func (c Config) recHName() string     { return c.Name + "_rec.pdb.H" }
func (c Config) recAmberName() string { return c.Name + "_rec.pdb.amber" }
func (c Config) ligName() string      { return c.Name + "_lig.pdb" }
func (c Config) ligHName() string     { return c.Name + "_lig.pdb.H" }
func (c Config) ligAmberName() string { return c.Name + "_lig.pdb.amber" }
func (c Config) refName() string      { return c.Name + "_ref.pdb" }
func (c Config) iniName() string      { return c.Name + ".ini" }
func (c Config) ftdockName() string   { return c.Name + ".ftdock" }
func (c Config) rotName() string      { return c.Name + ".rot" }
func (c Config) eneName() string      { return c.Name + ".ene" }
func (c Config) rstName() string      { return c.Name + ".rst" }
func (c Config) eneRSTName() string   { return c.Name + ".eneRST" }

func (c Config) runner() launch.Runner {
	return launch.Runner{
		Binary:    c.Binary,
		Container: c.Container,
		Verbose:   c.Verbose,
		Log:       c.log(),
	}
}

func (c Config) newStaging() (*launch.Staging, error) {
	stage, err := launch.NewStaging(c.KeepTemp)
	if err != nil {
		return nil, err
	}
	c.log().Info("staging directory created", zap.String("dir", stage.Dir))
	return stage, nil
}

func (c Config) log() *zap.Logger {
	if c.Log == nil {
		return zap.NewNop()
	}
	return c.Log
}

// skip reports whether a stage can be skipped because every one of its
// outputs already exists and Restart is on.
func (c Config) skip(outputs ...string) bool {
	if !c.Restart || !launch.OutputsExist(outputs...) {
		return false
	}
	c.log().Info("outputs already exist, skipping stage",
		zap.String("name", c.Name))
	return true
}
