package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"hearthplan/internal/cli/formatter"
	"hearthplan/internal/domain"
	"hearthplan/internal/timeutil"
)

func newCommitmentCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "commitment",
		Short: "Manage fixed weekly commitments",
	}

	cmd.AddCommand(
		newCommitmentAddCmd(app),
		newCommitmentListCmd(app),
		newCommitmentRemoveCmd(app),
	)

	return cmd
}

func newCommitmentAddCmd(app *App) *cobra.Command {
	var owner, title, category, day, start, end string
	var shared bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a fixed weekly commitment",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			dayNum, err := timeutil.ParseDayName(day)
			if err != nil {
				return err
			}

			c := &domain.RecurringCommitment{
				Title:     title,
				Category:  domain.BlockCategory(category),
				DayOfWeek: dayNum,
				StartTime: start,
				EndTime:   end,
				IsShared:  shared,
			}
			if !shared {
				if owner == "" {
					return fmt.Errorf("either --owner or --shared is required")
				}
				ownerID, err := resolveMemberID(ctx, app, owner)
				if err != nil {
					return err
				}
				c.OwnerID = &ownerID
			}

			if err := app.Commitments.Create(ctx, c); err != nil {
				return err
			}
			fmt.Printf("Added commitment %q on %s %s-%s\n", c.Title, timeutil.DayName(c.DayOfWeek), c.StartTime, c.EndTime)
			return nil
		},
	}

	cmd.Flags().StringVar(&owner, "owner", "", "Owning member (name or id)")
	cmd.Flags().StringVar(&title, "title", "", "Commitment title")
	cmd.Flags().StringVar(&category, "category", "other", "Category: work, activity, meal, or other")
	cmd.Flags().StringVar(&day, "day", "", "Day of week (e.g. Monday or mon)")
	cmd.Flags().StringVar(&start, "start", "", "Start time (HH:MM)")
	cmd.Flags().StringVar(&end, "end", "", "End time (HH:MM)")
	cmd.Flags().BoolVar(&shared, "shared", false, "Whole-family commitment with no single owner")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("day")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

func newCommitmentListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List fixed weekly commitments",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			commitments, err := app.Commitments.List(ctx)
			if err != nil {
				return err
			}
			if len(commitments) == 0 {
				fmt.Println("No commitments yet.")
				return nil
			}
			members, err := app.Members.List(ctx)
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatCommitmentList(commitments, members))
			return nil
		},
	}
}

func newCommitmentRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a fixed weekly commitment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Commitments.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Println("Removed.")
			return nil
		},
	}
}
