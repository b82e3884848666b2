package main

import (
	"github.com/spf13/cobra"

	"github.com/NBDsoftware/biobb-pydock/apps/pydock"
)

func newSetupCmd() *cobra.Command {
	var in pydock.SetupInput
	var out pydock.SetupOutput

	c := &cobra.Command{
		Use:   "setup",
		Short: "prepare both structures for docking (chain renaming, hydrogens, AMBER parameters)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return props.config(flagVerbose).Setup(cmd.Context(), in, out)
		},
	}

	f := c.Flags()
	f.StringVar(&in.RecPDB, "input-rec-pdb", "", "receptor PDB file (the largest of the two proteins)")
	f.StringVar(&in.RecCoords, "input-rec-coords", "", "receptor AMBER coordinates file (alternative to the PDB)")
	f.StringVar(&in.RecTop, "input-rec-top", "", "receptor AMBER topology file (alternative to the PDB)")
	f.StringVar(&in.LigPDB, "input-lig-pdb", "", "ligand PDB file (will be rotated and translated)")
	f.StringVar(&in.LigCoords, "input-lig-coords", "", "ligand AMBER coordinates file (alternative to the PDB)")
	f.StringVar(&in.LigTop, "input-lig-top", "", "ligand AMBER topology file (alternative to the PDB)")
	f.StringVar(&in.RefPDB, "input-ref", "", "reference complex PDB file")

	f.StringVar(&out.Rec, "output-rec", "", "prepared receptor PDB file")
	f.StringVar(&out.RecH, "output-rec-h", "", "prepared receptor with hydrogens")
	f.StringVar(&out.RecAmber, "output-rec-amber", "", "receptor AMBER parameters")
	f.StringVar(&out.Lig, "output-lig", "", "prepared ligand PDB file")
	f.StringVar(&out.LigH, "output-lig-h", "", "prepared ligand with hydrogens")
	f.StringVar(&out.LigAmber, "output-lig-amber", "", "ligand AMBER parameters")
	f.StringVar(&out.Ref, "output-ref", "", "prepared reference PDB file")

	for _, flag := range []string{"output-rec", "output-rec-h", "output-rec-amber",
		"output-lig", "output-lig-h", "output-lig-amber"} {
		c.MarkFlagRequired(flag)
	}
	return c
}
