package pydock

import (
	"context"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"
)

// SetupInput names the raw structures handed to the setup stage. Either the
// PDB path or the AMBER coordinates/topology pair must be given for each
// partner; the reference complex is optional.
type SetupInput struct {
	RecPDB    string
	RecCoords string
	RecTop    string

	LigPDB    string
	LigCoords string
	LigTop    string

	RefPDB string
}

// SetupOutput names the destinations for the prepared structures: the
// renamed PDB, its hydrogenated variant and its AMBER parameter file, for
// each partner, plus the renamed reference complex when one was given.
type SetupOutput struct {
	Rec      string
	RecH     string
	RecAmber string

	Lig      string
	LigH     string
	LigAmber string

	Ref string
}

// Setup prepares both structures for docking: it renames the configured
// chains, adds hydrogens and assigns AMBER parameters, all by handing the
// inputs and the INI file to the tool's setup stage.
func (c Config) Setup(ctx context.Context, in SetupInput, out SetupOutput) error {
	if err := c.checkMolecules(); err != nil {
		return err
	}
	if in.RecPDB == "" && (in.RecCoords == "" || in.RecTop == "") {
		return fmt.Errorf("pydock: setup needs a receptor pdb or coords+topology")
	}
	if in.LigPDB == "" && (in.LigCoords == "" || in.LigTop == "") {
		return fmt.Errorf("pydock: setup needs a ligand pdb or coords+topology")
	}
	if err := checkChainInFile(in.RecPDB, c.Receptor.Chain, "receptor"); err != nil {
		return err
	}
	if err := checkChainInFile(in.LigPDB, c.Ligand.Chain, "ligand"); err != nil {
		return err
	}
	if c.skip(out.Rec, out.RecH, out.RecAmber, out.Lig, out.LigH, out.LigAmber, out.Ref) {
		return nil
	}

	stage, err := c.newStaging()
	if err != nil {
		return err
	}
	defer stage.Remove()

	// Setup accepts arbitrary input names; stage everything under its own
	// base name and point the INI at the staged copies.
	inputs := make(map[string]string)
	for _, p := range []string{in.RecPDB, in.RecCoords, in.RecTop,
		in.LigPDB, in.LigCoords, in.LigTop, in.RefPDB} {
		if p != "" {
			inputs[filepath.Base(p)] = p
		}
	}
	if err := stage.StageInputs(inputs); err != nil {
		return err
	}

	r := c.runner()
	staged := func(p string) string {
		if p == "" {
			return ""
		}
		return r.CmdPath(stage, filepath.Base(p))
	}
	f := c.dockingINI(staged(in.RecPDB), staged(in.LigPDB), staged(in.RefPDB))
	if err := f.WriteFile(stage.Path(c.iniName())); err != nil {
		return fmt.Errorf("pydock: writing %s: %w", c.iniName(), err)
	}
	c.log().Info("wrote docking ini", zap.String("file", c.iniName()))

	if err := r.Run(ctx, stage, r.CmdPath(stage, c.Name), "setup"); err != nil {
		return err
	}

	outputs := map[string]string{
		c.recName():      out.Rec,
		c.recHName():     out.RecH,
		c.recAmberName(): out.RecAmber,
		c.ligName():      out.Lig,
		c.ligHName():     out.LigH,
		c.ligAmberName(): out.LigAmber,
	}
	if c.Reference != nil && in.RefPDB != "" {
		outputs[c.refName()] = out.Ref
	}
	return stage.Collect(outputs)
}
