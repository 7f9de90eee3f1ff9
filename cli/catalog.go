package cli

import (
	"fmt"

	"github.com/jawwad-masteee/handlix/services/catalog"
	"github.com/spf13/cobra"
)

var catalogFile string

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the site catalog",
}

var catalogCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate a catalog file, or the compiled-in catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		store, err := catalog.Load(catalogFile)
		if err != nil {
			return err
		}
		source := catalogFile
		if source == "" {
			source = "compiled-in catalog"
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s: ok\n", source)
		counts := store.Counts()
		for _, kind := range catalog.Kinds() {
			fmt.Fprintf(out, "  %-9s %d\n", kind, counts[kind])
		}
		return nil
	},
}

var catalogExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the compiled-in catalog as YAML",
	Long: `Writes the compiled-in catalog in the format CATALOG_PATH accepts, as a
starting point for an override file.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := catalog.Export(cmd.OutOrStdout(), catalog.DefaultData()); err != nil {
			return fmt.Errorf("export catalog: %w", err)
		}
		return nil
	},
}

func init() {
	catalogCheckCmd.Flags().StringVar(&catalogFile, "file", "", "YAML catalog to validate")
	catalogCmd.AddCommand(catalogCheckCmd, catalogExportCmd)
	rootCmd.AddCommand(catalogCmd)
}
