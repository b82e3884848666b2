// Command pydock drives the stages of the pyDock docking pipeline from the
// command line: setup, ftdock, rotftdock, dockser, dockrst, makepdb and
// oda. Shared settings (docking name, chain dictionaries, binary path,
// container engine) come from a YAML properties file given with --config;
// per-stage input and output paths are flags.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	flagConfig  string
	flagVerbose bool

	props Properties
)

func newLogger(verbose bool) *zap.Logger {
	conf := zap.NewProductionConfig()
	conf.Encoding = "console"
	conf.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if verbose {
		conf.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	log, err := conf.Build()
	if err != nil {
		return zap.NewNop()
	}
	return log
}

func main() {
	root := &cobra.Command{
		Use:           "pydock",
		Short:         "wrappers around the pyDock docking tool",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			props, err = loadProperties(flagConfig)
			return err
		},
	}
	root.PersistentFlags().StringVar(&flagConfig, "config", "",
		"YAML properties file (docking name, chains, binary, container)")
	root.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false,
		"echo the tool's command lines and output")

	root.AddCommand(
		newSetupCmd(),
		newFtdockCmd(),
		newRotftdockCmd(),
		newDockserCmd(),
		newDockrstCmd(),
		newMakePDBCmd(),
		newOdaCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "pydock: %s\n", err)
		os.Exit(1)
	}
}
