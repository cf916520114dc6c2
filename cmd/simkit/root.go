// Root command for the simkit CLI.
package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/neutronlab/simkit/pkg/checkval"
	"github.com/neutronlab/simkit/pkg/logger"
)

// Global flag values.
var (
	flagLogFormat string
	flagVerbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "simkit",
	Short: "simkit is a neutron transport simulation toolkit",
	Long: `simkit is a deterministic neutron transport simulation toolkit.
The CLI validates the inputs of a run - material decks, geometry and
solver settings - before any tracking or solving starts.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := checkval.CheckValue("log format", flagLogFormat,
			[]string{string(logger.FormatText), string(logger.FormatJSON)}); err != nil {
			return err
		}

		opts := []logger.Option{logger.WithFormat(logger.Format(flagLogFormat))}
		if flagVerbose {
			opts = append(opts, logger.WithLevel(slog.LevelDebug))
		}
		opts = append(opts, logger.WithAttr(slog.String("tool", "simkit")))

		l := logger.New(opts...)
		logger.SetAsDefault(l)
		checkval.SetDiagnosticLogger(l)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLogFormat, "log-format", string(logger.FormatText), "log output format: text or json")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(validateCmd)
}
