package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"hearthplan/internal/cli/formatter"
	"hearthplan/internal/grid"
)

func newShowCmd(app *App) *cobra.Command {
	var week, member string
	var sharedOnly bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a week's schedule as a time grid",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			weekStart, err := parseWeek(week)
			if err != nil {
				return err
			}

			filter := grid.Filter{SharedOnly: sharedOnly}
			if member != "" {
				memberID, err := resolveMemberID(ctx, app, member)
				if err != nil {
					return err
				}
				filter.MemberID = memberID
			}

			g, err := app.Schedules.Layout(ctx, householdOwner, weekStart, filter)
			if err != nil {
				return err
			}

			fmt.Println(formatter.FormatGrid(g))
			return nil
		},
	}

	cmd.Flags().StringVar(&week, "week", "", "Week start Monday (YYYY-MM-DD), default next Monday")
	cmd.Flags().StringVar(&member, "member", "", "Highlight one member, dim the rest")
	cmd.Flags().BoolVar(&sharedOnly, "shared", false, "Highlight shared activities, dim the rest")

	return cmd
}
