package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/humas-io/uadmin/internal/constants"
	"github.com/humas-io/uadmin/pkg/uadmin"
)

// Static errors for the users commands.
var (
	ErrInvalidActiveFlag = errors.New("active flag must be 'true', 'false', or 'all'")
	ErrDeleteAborted     = errors.New("delete aborted")
)

// NewUsersCommand creates the users command group.
func NewUsersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "users",
		Aliases: []string{"user"},
		Short:   "Manage users",
		Long:    "List, inspect, create, update, and delete user accounts",
	}

	cmd.AddCommand(newUsersListCommand())
	cmd.AddCommand(newUsersGetCommand())
	cmd.AddCommand(newUsersCreateCommand())
	cmd.AddCommand(newUsersUpdateCommand())
	cmd.AddCommand(newUsersDeleteCommand())
	cmd.AddCommand(newUsersResetPasswordCommand())
	cmd.AddCommand(newUsersBrowseCommand())

	return cmd
}

func newUsersListCommand() *cobra.Command {
	var (
		page    int
		perPage int
		roleID  string
		search  string
		active  string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List users",
		Long:  "List user accounts with optional role, search, and active-state filters",
		RunE: func(cmd *cobra.Command, args []string) error {
			query := uadmin.ListQuery{
				Page:    page,
				PerPage: perPage,
				RoleID:  roleID,
				Search:  search,
			}

			activeFilter, err := parseActiveFlag(active)
			if err != nil {
				return err
			}

			query.Active = activeFilter

			return runUsersListCommand(query)
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "page to fetch")
	cmd.Flags().IntVar(&perPage, "per-page", constants.StandardPageSize, "results per page")
	cmd.Flags().StringVar(&roleID, "role", "", "filter by role ID")
	cmd.Flags().StringVar(&search, "search", "", "filter by username, email, or name")
	cmd.Flags().StringVar(&active, "active", "all", "filter by active state (all, true, false)")

	return cmd
}

// parseActiveFlag resolves the tri-state --active flag: "all" (or
// empty) means no constraint.
func parseActiveFlag(value string) (*bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "all":
		return nil, nil
	case "true":
		return uadmin.BoolPtr(true), nil
	case "false":
		return uadmin.BoolPtr(false), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidActiveFlag, value)
	}
}

func runUsersListCommand(query uadmin.ListQuery) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	page, err := client.Users().List(context.Background(), query)
	if err != nil {
		return fmt.Errorf("failed to list users: %w", err)
	}

	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(page)
	case OutputFormatYAML:
		return StandardYAMLRenderer(page)
	default:
		return renderUserTable(page)
	}
}

func renderUserTable(page *uadmin.UserPage) error {
	if len(page.Items) == 0 {
		fmt.Println("No users found")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Username", "Email", "Full Name", "Role", "Active", "Created")

	for _, user := range page.Items {
		role := user.RoleName
		if role == "" {
			role = user.RoleID
		}

		_ = table.Append(user.ID, user.Username, user.Email, user.FullName,
			role, formatBool(user.Active), formatTime(user.CreatedAt))
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	fmt.Printf("\nPage %d of %d (%d users total)\n", page.Page, page.TotalPages, page.Total)

	return nil
}

func newUsersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get USER_ID",
		Short: "Show user details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			user, err := client.Users().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get user: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(user)
			case OutputFormatYAML:
				return StandardYAMLRenderer(user)
			default:
				return renderUserDetail(user)
			}
		},
	}
}

func renderUserDetail(user *uadmin.User) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")

	_ = table.Append("ID", user.ID)
	_ = table.Append("Username", user.Username)
	_ = table.Append("Email", user.Email)
	_ = table.Append("Full Name", user.FullName)
	_ = table.Append("Role ID", user.RoleID)

	if user.RoleName != "" {
		_ = table.Append("Role", user.RoleName)
	}

	_ = table.Append("Active", formatBool(user.Active))
	_ = table.Append("Created", formatTime(user.CreatedAt))
	_ = table.Append("Updated", formatTime(user.UpdatedAt))

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func newUsersCreateCommand() *cobra.Command {
	var (
		username string
		email    string
		fullName string
		roleID   string
		password string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a user",
		Long:  "Create a new user account; prompts for the password when not supplied via --password",
		RunE: func(cmd *cobra.Command, args []string) error {
			if username == "" {
				return uadmin.ErrUsernameRequired
			}

			if roleID == "" {
				return uadmin.ErrRoleIDRequired
			}

			if password == "" {
				prompted, err := promptForPassword("Password: ")
				if err != nil {
					return err
				}

				password = prompted
			}

			if password == "" {
				return uadmin.ErrPasswordRequired
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			result, err := client.Users().Create(context.Background(), &uadmin.UserCreateRequest{
				Username: username,
				Email:    email,
				FullName: fullName,
				Password: password,
				RoleID:   roleID,
			})
			if err != nil {
				return fmt.Errorf("failed to create user: %w", err)
			}

			fmt.Printf("User '%s' created\n", username)

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(result)
			case OutputFormatYAML:
				return StandardYAMLRenderer(result)
			default:
				return nil
			}
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "username (required)")
	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&fullName, "full-name", "", "full name")
	cmd.Flags().StringVar(&roleID, "role", "", "role ID (required)")
	cmd.Flags().StringVar(&password, "password", "", "initial password (prompted when omitted)")

	return cmd
}

// promptForPassword reads a password without echoing it.
func promptForPassword(prompt string) (string, error) {
	fmt.Print(prompt)

	bytePassword, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	fmt.Println()

	return string(bytePassword), nil
}

func newUsersUpdateCommand() *cobra.Command {
	var (
		email    string
		fullName string
		roleID   string
		active   string
	)

	cmd := &cobra.Command{
		Use:   "update USER_ID",
		Short: "Update a user",
		Long:  "Update a user account; only the supplied flags are changed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			request := &uadmin.UserUpdateRequest{}

			if cmd.Flags().Changed("email") {
				request.Email = &email
			}

			if cmd.Flags().Changed("full-name") {
				request.FullName = &fullName
			}

			if cmd.Flags().Changed("role") {
				request.RoleID = &roleID
			}

			if cmd.Flags().Changed("active") {
				activeValue, err := parseActiveFlag(active)
				if err != nil {
					return err
				}

				request.Active = activeValue
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			if err := client.Users().Update(context.Background(), args[0], request); err != nil {
				return fmt.Errorf("failed to update user: %w", err)
			}

			fmt.Printf("User '%s' updated\n", args[0])

			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "new email address")
	cmd.Flags().StringVar(&fullName, "full-name", "", "new full name")
	cmd.Flags().StringVar(&roleID, "role", "", "new role ID")
	cmd.Flags().StringVar(&active, "active", "", "new active state (true, false)")

	return cmd
}

func newUsersDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete USER_ID",
		Short: "Delete a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				fmt.Printf("Really delete user '%s'? (y/N): ", args[0])

				reader := bufio.NewReader(os.Stdin)
				answer, _ := reader.ReadString('\n')

				if !strings.EqualFold(strings.TrimSpace(answer), "y") {
					return ErrDeleteAborted
				}
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			if err := client.Users().Delete(context.Background(), args[0]); err != nil {
				return fmt.Errorf("failed to delete user: %w", err)
			}

			fmt.Printf("User '%s' deleted\n", args[0])

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip the confirmation prompt")

	return cmd
}

func newUsersResetPasswordCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reset-password USER_ID",
		Short: "Reset a user's password",
		Long:  "Reset a user's password and print the server's reset result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			result, err := client.Users().ResetPassword(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to reset password: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(result)
			case OutputFormatYAML:
				return StandardYAMLRenderer(result)
			default:
				fmt.Printf("Password reset for user '%s'\n", args[0])

				for key, value := range result {
					fmt.Printf("  %s: %v\n", key, value)
				}

				return nil
			}
		},
	}
}
