package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/NBDsoftware/biobb-pydock/apps/pydock"
)

func newMakePDBCmd() *cobra.Command {
	var in pydock.MakePDBInput
	var outZip string

	c := &cobra.Command{
		Use:   "makepdb",
		Short: "extract PDB models for a rank range of poses into a zip archive",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf := props.config(flagVerbose)
			if !cmd.Flags().Changed("rank1") {
				in.Rank1 = props.Rank1
			}
			if !cmd.Flags().Changed("rank2") {
				in.Rank2 = props.Rank2
			}
			models, err := conf.MakePDB(cmd.Context(), in, outZip)
			if err != nil {
				return err
			}
			fmt.Printf("wrote %d models to %s\n", len(models), outZip)
			return nil
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
	f.IntVar(&in.Rank1, "rank1", 1, "first rank to extract")
	f.IntVar(&in.Rank2, "rank2", 10, "last rank to extract (equal to rank1 for a single model)")
	f.StringVar(&outZip, "output-zip", "", "zip archive with the extracted models")

	for _, flag := range []string{"input-rec", "input-rec-h", "input-rec-amber",
		"input-lig", "input-lig-h", "input-lig-amber",
		"input-rot", "input-ene", "output-zip"} {
		c.MarkFlagRequired(flag)
	}
	return c
}
