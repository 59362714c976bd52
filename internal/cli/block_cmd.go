package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"hearthplan/internal/cli/formatter"
	"hearthplan/internal/domain"
	"hearthplan/internal/timeutil"
)

// householdOwner keys the week schedules of this single-household CLI.
const householdOwner = "family"

func newBlockCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "block",
		Short: "Manage manual time blocks",
	}

	cmd.AddCommand(
		newBlockAddCmd(app),
		newBlockListCmd(app),
		newBlockMoveCmd(app),
		newBlockRemoveCmd(app),
	)

	return cmd
}

func newBlockAddCmd(app *App) *cobra.Command {
	var owner, title, category, day, start, end, week string
	var shared bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a manual block to a week",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			weekStart, err := parseWeek(week)
			if err != nil {
				return err
			}
			schedule, err := app.Schedules.EnsureWeek(ctx, householdOwner, weekStart)
			if err != nil {
				return err
			}

			dayNum, err := timeutil.ParseDayName(day)
			if err != nil {
				return err
			}
			startMin, err := timeutil.ParseClock(start)
			if err != nil {
				return err
			}
			endMin, err := timeutil.ParseClock(end)
			if err != nil {
				return err
			}

			b := &domain.TimeBlock{
				ScheduleID: schedule.ID,
				Title:      title,
				Category:   domain.BlockCategory(category),
				Start:      timeutil.OnDay(schedule.WeekStart, dayNum, startMin),
				End:        timeutil.OnDay(schedule.WeekStart, dayNum, endMin),
				IsShared:   shared,
			}
			if !shared && owner != "" {
				ownerID, err := resolveMemberID(ctx, app, owner)
				if err != nil {
					return err
				}
				b.OwnerID = &ownerID
			}

			if err := app.Blocks.Create(ctx, b); err != nil {
				return err
			}
			fmt.Printf("Added block %q on %s %s-%s (%s)\n",
				b.Title, timeutil.DayName(dayNum), start, end, b.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Block title")
	cmd.Flags().StringVar(&owner, "owner", "", "Owning member (name or id)")
	cmd.Flags().StringVar(&category, "category", "other", "Category: work, activity, meal, or other")
	cmd.Flags().StringVar(&day, "day", "", "Day of week (e.g. Monday or mon)")
	cmd.Flags().StringVar(&start, "start", "", "Start time (HH:MM)")
	cmd.Flags().StringVar(&end, "end", "", "End time (HH:MM)")
	cmd.Flags().StringVar(&week, "week", "", "Week start Monday (YYYY-MM-DD), default next Monday")
	cmd.Flags().BoolVar(&shared, "shared", false, "Whole-family block with no single owner")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("day")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

func newBlockListCmd(app *App) *cobra.Command {
	var week string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a week's blocks",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			weekStart, err := parseWeek(week)
			if err != nil {
				return err
			}
			schedule, err := app.Schedules.EnsureWeek(ctx, householdOwner, weekStart)
			if err != nil {
				return err
			}
			blocks, err := app.Blocks.ListBySchedule(ctx, schedule.ID)
			if err != nil {
				return err
			}
			if len(blocks) == 0 {
				fmt.Println("No blocks this week.")
				return nil
			}
			members, err := app.Members.List(ctx)
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatBlockList(blocks, members))
			return nil
		},
	}

	cmd.Flags().StringVar(&week, "week", "", "Week start Monday (YYYY-MM-DD), default next Monday")

	return cmd
}

func newBlockMoveCmd(app *App) *cobra.Command {
	var day, start, end, title string

	cmd := &cobra.Command{
		Use:   "move ID",
		Short: "Move or retitle a block (the block becomes manual)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			b, err := app.Blocks.GetByID(ctx, args[0])
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("title") {
				b.Title = title
			}

			weekStart := timeutil.StartOfDay(b.Start).AddDate(0, 0, -(b.Day() - 1))
			dayNum := b.Day()
			startMin := timeutil.DurationMinutes(timeutil.StartOfDay(b.Start), b.Start)
			endMin := timeutil.DurationMinutes(timeutil.StartOfDay(b.Start), b.End)
			if cmd.Flags().Changed("day") {
				if dayNum, err = timeutil.ParseDayName(day); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("start") {
				if startMin, err = timeutil.ParseClock(start); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("end") {
				if endMin, err = timeutil.ParseClock(end); err != nil {
					return err
				}
			}
			b.Start = timeutil.OnDay(weekStart, dayNum, startMin)
			b.End = timeutil.OnDay(weekStart, dayNum, endMin)

			if err := app.Blocks.Update(ctx, b); err != nil {
				return err
			}
			fmt.Printf("Moved %q to %s %s-%s\n", b.Title, timeutil.DayName(dayNum),
				b.Start.Format("15:04"), b.End.Format("15:04"))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&day, "day", "", "New day of week")
	cmd.Flags().StringVar(&start, "start", "", "New start time (HH:MM)")
	cmd.Flags().StringVar(&end, "end", "", "New end time (HH:MM)")

	return cmd
}

func newBlockRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a block",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Blocks.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Println("Removed.")
			return nil
		},
	}
}
