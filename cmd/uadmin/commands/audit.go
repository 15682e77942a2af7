package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/humas-io/uadmin/internal/constants"
	"github.com/humas-io/uadmin/pkg/uadmin"
)

// NewAuditCommand creates the audit command group.
func NewAuditCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "audit",
		Aliases: []string{"audit-logs"},
		Short:   "Review the audit trail",
		Long:    "List audit log entries with optional user and action filters",
	}

	cmd.AddCommand(newAuditListCommand())

	return cmd
}

func newAuditListCommand() *cobra.Command {
	var (
		page    int
		perPage int
		userID  string
		action  string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List audit log entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			logs, err := client.AuditLogs().List(context.Background(), uadmin.AuditLogQuery{
				Page:    page,
				PerPage: perPage,
				UserID:  userID,
				Action:  action,
			})
			if err != nil {
				return fmt.Errorf("failed to list audit logs: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(logs)
			case OutputFormatYAML:
				return StandardYAMLRenderer(logs)
			default:
				return renderAuditLogTable(logs)
			}
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "page to fetch")
	cmd.Flags().IntVar(&perPage, "per-page", constants.LargePageSize, "results per page")
	cmd.Flags().StringVar(&userID, "user", "", "filter by user ID")
	cmd.Flags().StringVar(&action, "action", "", "filter by action")

	return cmd
}

func renderAuditLogTable(page *uadmin.AuditLogPage) error {
	if len(page.Items) == 0 {
		fmt.Println("No audit log entries found")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Time", "User", "Action", "Detail")

	for _, entry := range page.Items {
		user := entry.Username
		if user == "" {
			user = entry.UserID
		}

		_ = table.Append(formatTime(entry.CreatedAt), user, entry.Action, entry.Detail)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	fmt.Printf("\nPage %d of %d (%d entries total)\n", page.Page, page.TotalPages, page.Total)

	return nil
}
