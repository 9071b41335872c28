package cli

import (
	"fmt"

	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"

	"github.com/kyleking/cutecosmic/internal/bridge"
	"github.com/kyleking/cutecosmic/internal/preview"
)

func newColorCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "color <role>",
		Short: "Print one palette role",
		Long: `Print the color of a single palette or extended palette role. The role name
is matched fuzzily, so "acc" finds "accent".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			role, err := lookupRole(a.builder.Roles(), args[0])
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				preview.Swatch(role.Color.RGBHex(), 2), role.Name, role.Color.Hex())

			return err
		},
	}
}

// lookupRole prefers an exact name and otherwise takes the best fuzzy match.
func lookupRole(roles bridge.Roles, query string) (bridge.Role, error) {
	for _, r := range roles {
		if r.Name == query {
			return r, nil
		}
	}

	matches := fuzzy.FindFrom(query, roles)
	if len(matches) == 0 {
		return bridge.Role{}, fmt.Errorf("no color role matches %q", query)
	}

	return roles[matches[0].Index], nil
}
