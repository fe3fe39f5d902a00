package cmd

import (
	"fmt"
	"os"

	"github.com/philipparndt/goperceptron/internal/app"
	"github.com/philipparndt/goperceptron/version"
	"github.com/spf13/cobra"
)

var opts app.Options

var rootCmd = &cobra.Command{
	Use:     "goperceptron-raylib",
	Short:   "Interactive perceptron chart",
	Long:    `Place points, draw the ideal dividing line and compare it against generated training lines.`,
	Args:    cobra.NoArgs,
	Version: version.GetFullVersion(),
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Run(opts)
	},
}

func init() {
	rootCmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "TOML config file")
	rootCmd.Flags().StringVarP(&opts.ScenarioPath, "scenario", "s", "", "YAML scenario to replay, reloaded on change")
	rootCmd.Flags().StringVar(&opts.LogLevel, "log-level", "", "log level (debug, info, warn, error)")
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
