package pydock

import (
	"context"
	"fmt"
)

// DockrstInput names the full prepared set from setup plus the pose table
// and energy ranking from the sampling and scoring stages.
type DockrstInput struct {
	Rec      string
	RecH     string
	RecAmber string

	Lig      string
	LigH     string
	LigAmber string

	Rot string
	Ene string
}

// DockrstOutput names the destinations for the restraint scoring (.rst) and
// for the energy ranking combined with it (.eneRST).
type DockrstOutput struct {
	Rst    string
	EneRst string
}

// Dockrst rescores the ranked poses against the distance restraints
// configured on the receptor and ligand molecules.
func (c Config) Dockrst(ctx context.Context, in DockrstInput, out DockrstOutput) error {
	if err := c.checkMolecules(); err != nil {
		return err
	}
	if len(c.Receptor.Restraints) == 0 && len(c.Ligand.Restraints) == 0 {
		return fmt.Errorf("pydock: dockrst needs at least one restraint on the receptor or ligand")
	}
	if c.skip(out.Rst, out.EneRst) {
		return nil
	}

	stage, err := c.newStaging()
	if err != nil {
		return err
	}
	defer stage.Remove()

	err = stage.StageInputs(map[string]string{
		c.recName():      in.Rec,
		c.recHName():     in.RecH,
		c.recAmberName(): in.RecAmber,
		c.ligName():      in.Lig,
		c.ligHName():     in.LigH,
		c.ligAmberName(): in.LigAmber,
		c.rotName():      in.Rot,
		c.eneName():      in.Ene,
	})
	if err != nil {
		return err
	}

	r := c.runner()
	f := c.dockingINI(
		r.CmdPath(stage, c.recName()),
		r.CmdPath(stage, c.ligName()),
		"")
	if err := f.WriteFile(stage.Path(c.iniName())); err != nil {
		return fmt.Errorf("pydock: writing %s: %w", c.iniName(), err)
	}

	if err := r.Run(ctx, stage, r.CmdPath(stage, c.Name), "dockrst"); err != nil {
		return err
	}
	return stage.Collect(map[string]string{
		c.rstName():    out.Rst,
		c.eneRSTName(): out.EneRst,
	})
}
