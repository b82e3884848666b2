package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/NBDsoftware/biobb-pydock/apps/pydock"
)

func newDockserCmd() *cobra.Command {
	var in pydock.DockserInput
	var outEne string
	var summary bool

	c := &cobra.Command{
		Use:   "dockser",
		Short: "score every docking pose and write the energy ranking",
		RunE: func(cmd *cobra.Command, args []string) error {
			sum, err := props.config(flagVerbose).Dockser(cmd.Context(), in, outEne)
			if err != nil {
				return err
			}
			if summary {
				fmt.Printf("%d poses scored: best %.3f, mean %.3f, stddev %.3f\n",
					sum.N, sum.Best, sum.Mean, sum.StdDev)
			}
			return nil
		},
	}

	f := c.Flags()
	f.StringVar(&in.Rec, "input-rec", "", "prepared receptor PDB file from setup")
	f.StringVar(&in.Lig, "input-lig", "", "prepared ligand PDB file from setup")
	f.StringVar(&in.Rot, "input-rot", "", "transformation matrices from rotftdock")
	f.StringVar(&outEne, "output-ene", "", "ranked energy table")
	f.BoolVar(&summary, "summary", false, "print summary statistics of the Total column")
	c.MarkFlagRequired("input-rec")
	c.MarkFlagRequired("input-lig")
	c.MarkFlagRequired("input-rot")
	c.MarkFlagRequired("output-ene")
	return c
}
