package commands

import (
	"fmt"

	"github.com/grid-tools/fuelmix/pkg/services/config"
	"github.com/spf13/cobra"
)

type NetworksCmd struct {
	profilesPath string
}

func NewNetworksCmd() *cobra.Command {
	nc := &NetworksCmd{}
	cmd := &cobra.Command{
		Use:   "networks",
		Short: "List configured network profiles",
		RunE:  nc.run,
	}

	cmd.Flags().StringVar(&nc.profilesPath, "profiles", "networks.ini", "Path to the network profiles file")

	return cmd
}

func (nc *NetworksCmd) run(cmd *cobra.Command, _ []string) error {
	registry, err := config.NewRegistry(nc.profilesPath)
	if err != nil {
		return fmt.Errorf("failed to load network profiles: %w", err)
	}

	profiles, err := registry.GetProfiles(cmd.Context())
	if err != nil {
		return err
	}

	for _, profile := range profiles {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", profile.Name, profile.Code, profile.Source)
	}
	return nil
}
