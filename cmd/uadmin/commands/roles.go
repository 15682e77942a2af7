package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/humas-io/uadmin/pkg/uadmin"
)

// NewRolesCommand creates the roles command group.
func NewRolesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "roles",
		Aliases: []string{"role"},
		Short:   "Manage roles",
		Long:    "List the roles assignable to user accounts",
	}

	cmd.AddCommand(newRolesListCommand())

	return cmd
}

func newRolesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List roles",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			roles, err := client.Roles().List(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list roles: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(roles)
			case OutputFormatYAML:
				return StandardYAMLRenderer(roles)
			default:
				return renderRoleTable(roles)
			}
		},
	}
}

func renderRoleTable(roles []uadmin.Role) error {
	if len(roles) == 0 {
		fmt.Println("No roles found")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Description")

	for _, role := range roles {
		description := role.Description
		if description == "" {
			description = NotAvailable
		}

		_ = table.Append(role.ID, role.Name, description)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}
