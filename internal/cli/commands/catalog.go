package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewCatalogCommand creates the catalog command group.
func NewCatalogCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect the outfit catalog",
	}

	cmd.AddCommand(newCatalogListCommand())
	cmd.AddCommand(newCatalogThemesCommand())

	return cmd
}

func newCatalogListCommand() *cobra.Command {
	var theme string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog outfits",
		Example: `  # All outfits
  glamql catalog list

  # Only one theme
  glamql catalog list --theme cyberpunk`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt := RuntimeFrom(cmd.Context())

			c, err := rt.OpenCatalog()
			if err != nil {
				return err
			}

			outfits := c.Outfits()
			if theme != "" {
				outfits = c.ForTheme(theme)
			}

			renderOutfitTable(cmd.OutOrStdout(), rt.Config.OutputFormat, outfits, rt.Config.ImageBase)
			return nil
		},
	}

	cmd.Flags().StringVar(&theme, "theme", "", "Only outfits for this theme")

	return cmd
}

func newCatalogThemesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List the distinct catalog themes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt := RuntimeFrom(cmd.Context())

			c, err := rt.OpenCatalog()
			if err != nil {
				return err
			}

			for _, t := range c.Themes() {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), t)
			}
			return nil
		},
	}
}
