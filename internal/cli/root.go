// Package cli wires the fontface commands.
package cli

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Execute builds the root command and runs it.
func Execute(version string) error {
	return newRootCmd(version).Execute()
}

func newRootCmd(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "fontface",
		Short: "Self-host Google Fonts stylesheets for local TTF files",
		Long: "fontface derives Google Fonts family queries from TTF file names,\n" +
			"fetches the generated stylesheets and points their sources at the local files.",
		SilenceUsage: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			_ = godotenv.Load()
		},
	}

	rootCmd.AddCommand(newVersionCmd(version))
	rootCmd.AddCommand(newFetchCmd())
	rootCmd.AddCommand(newQueryCmd())

	return rootCmd
}

func newVersionCmd(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("fontface version %s\n", version)
		},
	}
}
