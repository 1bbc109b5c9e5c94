package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "omxctl",
		Short:         "Offline tooling for the OMX bilingual FAQ assistant",
		Long:          `omxctl detects languages, answers questions and validates catalogs without running the server`,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			mode, err := cmd.Flags().GetString("color")
			if err != nil {
				return err
			}
			switch mode {
			case "on":
				color.NoColor = false
			case "off":
				color.NoColor = true
			}
			return nil
		},
	}

	root.PersistentFlags().String("catalog", "", "catalog file (yaml|json|toml); the embedded catalog when empty")
	root.PersistentFlags().Float64("threshold", 0.4, "minimum similarity a match must exceed")
	root.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	root.PersistentFlags().String("log-level", "warn", "log level for diagnostics written to stderr")

	root.AddCommand(newDetectCmd())
	root.AddCommand(newAskCmd())
	root.AddCommand(newReplCmd())
	root.AddCommand(newCatalogCmd())
	root.AddCommand(newTokenCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
