package pydock

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/NBDsoftware/biobb-pydock/io/odatab"
)

// OdaOutput names the destinations for the oda stage: the structure with
// oda energies in the B-factor column, its hydrogenated variant, the AMBER
// parameter file and the per-residue ODAtab table.
type OdaOutput struct {
	Oda      string
	OdaH     string
	OdaAmber string
	OdaTab   string
}

// Oda runs the optimal-docking-area analysis on a single structure,
// predicting likely binding interfaces from surface desolvation energy.
// Config.Name is used as the subunit name. The parsed ODAtab table is
// returned alongside writing the output files.
func (c Config) Oda(ctx context.Context, structure string, out OdaOutput) ([]odatab.Residue, error) {
	if c.skip(out.Oda, out.OdaH, out.OdaAmber, out.OdaTab) {
		if out.OdaTab == "" {
			return nil, nil
		}
		return odatab.ReadFile(out.OdaTab)
	}

	stage, err := c.newStaging()
	if err != nil {
		return nil, err
	}
	defer stage.Remove()

	subunit := c.Name + ".pdb"
	if err := stage.StageInputs(map[string]string{subunit: structure}); err != nil {
		return nil, err
	}

	// Unlike the docking stages, oda takes the staged structure file itself
	// as its path argument.
	r := c.runner()
	if err := r.Run(ctx, stage, r.CmdPath(stage, subunit), "oda"); err != nil {
		return nil, err
	}

	err = stage.Collect(map[string]string{
		subunit + ".oda":        out.Oda,
		subunit + ".oda.H":      out.OdaH,
		c.Name + ".oda.amber":   out.OdaAmber,
		subunit + ".oda.ODAtab": out.OdaTab,
	})
	if err != nil {
		return nil, err
	}

	rs, err := odatab.ReadFile(out.OdaTab)
	if err != nil {
		return nil, fmt.Errorf("pydock: parsing oda table: %w", err)
	}
	c.log().Info("oda analysis finished",
		zap.String("subunit", c.Name),
		zap.Int("residues", len(rs)))
	return rs, nil
}
