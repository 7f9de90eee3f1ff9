// Package cli implements the handlix command: the HTTP service and the
// operator tools around the catalog and inquiry links.
package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "handlix",
	Short: "Handlix home-services site backend",
	Long: `handlix serves the catalog, filtering, deep-link and WhatsApp inquiry
API behind the Handlix site.

Run without arguments to start the HTTP service.`,
	SilenceUsage: true,
	RunE:         runServe,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
