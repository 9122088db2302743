package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewInventoryCommand creates the inventory command group, which talks to
// the persistence store directly without running any commands.
func NewInventoryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inventory",
		Short: "Inspect persisted inventories",
	}

	cmd.AddCommand(newInventoryShowCommand())
	cmd.AddCommand(newInventoryProfilesCommand())

	return cmd
}

func newInventoryShowCommand() *cobra.Command {
	var profile string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the persisted inventory for a profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt := RuntimeFrom(cmd.Context())

			name := profile
			if name == "" {
				name = rt.Config.Profile
			}
			if name == "" {
				return fmt.Errorf("no profile: pass --profile or set one in the config")
			}

			s, err := rt.OpenStore()
			if err != nil {
				return err
			}
			defer func() { _ = s.Close() }()

			items, err := s.LoadInventory(cmd.Context(), name)
			if err != nil {
				return err
			}

			renderItemList(cmd.OutOrStdout(), rt.Config.OutputFormat, "Item", items)
			return nil
		},
	}

	cmd.Flags().StringVar(&profile, "profile", "", "Profile to show (defaults to the configured profile)")

	return cmd
}

func newInventoryProfilesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "profiles",
		Short: "List profiles with a persisted inventory",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt := RuntimeFrom(cmd.Context())

			s, err := rt.OpenStore()
			if err != nil {
				return err
			}
			defer func() { _ = s.Close() }()

			profiles, err := s.Profiles(cmd.Context())
			if err != nil {
				return err
			}

			renderItemList(cmd.OutOrStdout(), rt.Config.OutputFormat, "Profile", profiles)
			return nil
		},
	}
}
