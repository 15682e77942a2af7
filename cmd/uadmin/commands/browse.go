package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/humas-io/uadmin/internal/constants"
	"github.com/humas-io/uadmin/pkg/uadmin"
)

func newUsersBrowseCommand() *cobra.Command {
	var perPage int

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse users interactively",
		Long: `Browse the user list page by page.

Commands: n (next page), p (previous page), r (refresh),
/TEXT (search), d ID (show detail), q (quit)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			return runBrowse(client, perPage)
		},
	}

	cmd.Flags().IntVar(&perPage, "per-page", constants.StandardPageSize, "results per page")

	return cmd
}

func runBrowse(client uadmin.Client, perPage int) error {
	ctx := context.Background()
	controller := uadmin.NewController(client.Users())

	// Render on every state change the controller announces.
	unsubscribe := controller.Subscribe(func() {
		if controller.Loading() {
			return
		}

		if msg := controller.ErrorMessage(); msg != "" {
			fmt.Fprintf(os.Stderr, "error: %s\n", msg)

			return
		}

		if page := controller.CurrentPage(); page != nil {
			_ = renderUserTable(page)
		}
	})
	defer unsubscribe()

	query := uadmin.NewListQuery()
	query.PerPage = perPage
	controller.Query(ctx, query)

	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("> ")

		if !scanner.Scan() {
			return nil
		}

		line := strings.TrimSpace(scanner.Text())

		switch {
		case line == "q":
			return nil
		case line == "n":
			active := controller.ActiveQuery()
			if page := controller.CurrentPage(); page != nil && !page.HasNextPage {
				fmt.Println("Already on the last page")

				continue
			}

			controller.Query(ctx, active.WithPage(active.Page+1))
		case line == "p":
			active := controller.ActiveQuery()
			if active.Page <= 1 {
				fmt.Println("Already on the first page")

				continue
			}

			controller.Query(ctx, active.WithPage(active.Page-1))
		case line == "r":
			controller.Refresh(ctx)
		case strings.HasPrefix(line, "/"):
			active := controller.ActiveQuery()
			active.Search = strings.TrimPrefix(line, "/")
			active.Page = 1
			controller.Query(ctx, active)
		case strings.HasPrefix(line, "d "):
			id := strings.TrimSpace(strings.TrimPrefix(line, "d "))

			user, err := controller.LoadDetail(ctx, id)
			if err == nil {
				_ = renderUserDetail(user)
			}
		case line == "":
			continue
		default:
			fmt.Println("Commands: n, p, r, /TEXT, d ID, q")
		}
	}
}
