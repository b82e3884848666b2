package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/NBDsoftware/biobb-pydock/apps/pydock"
	"github.com/NBDsoftware/biobb-pydock/io/odatab"
)

func newOdaCmd() *cobra.Command {
	var structure string
	var out pydock.OdaOutput
	var hotspots float64

	c := &cobra.Command{
		Use:   "oda",
		Short: "predict binding interfaces from surface desolvation energy",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf := props.config(flagVerbose)
			if props.SubunitName != "" {
				conf.Name = props.SubunitName
			}
			rs, err := conf.Oda(cmd.Context(), structure, out)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("hotspots") {
				for _, r := range odatab.Hotspots(rs, hotspots) {
					fmt.Printf("%s %d %.3f\n", r.Name, r.Number, r.ODA)
				}
			}
			return nil
		},
	}

	f := c.Flags()
	f.StringVar(&structure, "input-structure", "", "protein PDB file to analyze")
	f.StringVar(&out.Oda, "output-oda", "", "structure with oda energies in the B-factor column")
	f.StringVar(&out.OdaH, "output-oda-h", "", "oda structure with hydrogens")
	f.StringVar(&out.OdaAmber, "output-oda-amber", "", "AMBER parameters of the analyzed structure")
	f.StringVar(&out.OdaTab, "output-oda-tab", "", "per-residue oda table")
	f.Float64Var(&hotspots, "hotspots", 0, "print residues with oda energy at or below this threshold")

	for _, flag := range []string{"input-structure", "output-oda", "output-oda-h",
		"output-oda-amber", "output-oda-tab"} {
		c.MarkFlagRequired(flag)
	}
	return c
}
