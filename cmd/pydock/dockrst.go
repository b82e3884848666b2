package main

import (
	"github.com/spf13/cobra"

	"github.com/NBDsoftware/biobb-pydock/apps/pydock"
)

func newDockrstCmd() *cobra.Command {
	var in pydock.DockrstInput
	var out pydock.DockrstOutput

	c := &cobra.Command{
		Use:   "dockrst",
		Short: "rescore the energy ranking against distance restraints",
		RunE: func(cmd *cobra.Command, args []string) error {
			return props.config(flagVerbose).Dockrst(cmd.Context(), in, out)
		},
	}

	f := c.Flags()
	f.StringVar(&in.Rec, "input-rec", "", "prepared receptor PDB file from setup")
	f.StringVar(&in.RecH, "input-rec-h", "", "prepared receptor with hydrogens")
	f.StringVar(&in.RecAmber, "input-rec-amber", "", "receptor AMBER parameters")
	f.StringVar(&in.Lig, "input-lig", "", "prepared ligand PDB file from setup")
	f.StringVar(&in.LigH, "input-lig-h", "", "prepared ligand with hydrogens")
	f.StringVar(&in.LigAmber, "input-lig-amber", "", "ligand AMBER parameters")
	f.StringVar(&in.Rot, "input-rot", "", "transformation matrices from rotftdock")
	f.StringVar(&in.Ene, "input-ene", "", "energy ranking from dockser")
	f.StringVar(&out.Rst, "output-rst", "", "restraint scoring per docking pose")
	f.StringVar(&out.EneRst, "output-ene-rst", "", "energy ranking combined with restraint scoring")

	for _, flag := range []string{"input-rec", "input-rec-h", "input-rec-amber",
		"input-lig", "input-lig-h", "input-lig-amber",
		"input-rot", "input-ene", "output-rst", "output-ene-rst"} {
		c.MarkFlagRequired(flag)
	}
	return c
}
