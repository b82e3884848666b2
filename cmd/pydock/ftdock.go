package main

import (
	"github.com/spf13/cobra"

	"github.com/NBDsoftware/biobb-pydock/apps/pydock"
)

func newFtdockCmd() *cobra.Command {
	var in pydock.FtdockInput
	var outFtdock string

	c := &cobra.Command{
		Use:   "ftdock",
		Short: "sample rigid-body docking poses with the FFT search",
		RunE: func(cmd *cobra.Command, args []string) error {
			return props.config(flagVerbose).Ftdock(cmd.Context(), in, outFtdock)
		},
	}

	f := c.Flags()
	f.StringVar(&in.Rec, "input-rec", "", "prepared receptor PDB file from setup")
	f.StringVar(&in.Lig, "input-lig", "", "prepared ligand PDB file from setup")
	f.StringVar(&outFtdock, "output-ftdock", "", "raw pose list written by ftdock")
	c.MarkFlagRequired("input-rec")
	c.MarkFlagRequired("input-lig")
	c.MarkFlagRequired("output-ftdock")
	return c
}

func newRotftdockCmd() *cobra.Command {
	var inFtdock, outRot string

	c := &cobra.Command{
		Use:   "rotftdock",
		Short: "convert a raw ftdock pose list into a transformation-matrix table",
		RunE: func(cmd *cobra.Command, args []string) error {
			return props.config(flagVerbose).Rotftdock(cmd.Context(), inFtdock, outRot)
		},
	}

	c.Flags().StringVar(&inFtdock, "input-ftdock", "", "raw pose list from ftdock")
	c.Flags().StringVar(&outRot, "output-rot", "", "transformation matrices for all docking poses")
	c.MarkFlagRequired("input-ftdock")
	c.MarkFlagRequired("output-rot")
	return c
}
