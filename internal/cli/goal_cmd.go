package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"hearthplan/internal/cli/formatter"
	"hearthplan/internal/domain"
)

func newGoalCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Manage recurring goals",
	}

	cmd.AddCommand(
		newGoalAddCmd(app),
		newGoalListCmd(app),
		newGoalRemoveCmd(app),
	)

	return cmd
}

func newGoalAddCmd(app *App) *cobra.Command {
	var member, name, priority string
	var times []string
	var freq, duration int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a recurring goal for a member",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			memberID, err := resolveMemberID(ctx, app, member)
			if err != nil {
				return err
			}

			g := &domain.RecurringGoal{
				MemberID:             memberID,
				Name:                 name,
				FrequencyPerWeek:     freq,
				PreferredDurationMin: duration,
				Priority:             domain.GoalPriority(priority),
			}
			for _, t := range times {
				g.PreferredTimes = append(g.PreferredTimes, domain.TimeOfDay(strings.ToLower(t)))
			}

			if err := app.Goals.Create(ctx, g); err != nil {
				return err
			}
			fmt.Printf("Added goal %q (%dx/week)\n", g.Name, g.FrequencyPerWeek)
			return nil
		},
	}

	cmd.Flags().StringVar(&member, "member", "", "Owning member (name or id)")
	cmd.Flags().StringVar(&name, "name", "", "Goal name")
	cmd.Flags().IntVar(&freq, "freq", 1, "Occurrences per week (1-14)")
	cmd.Flags().IntVar(&duration, "duration", 30, "Preferred duration in minutes (15-480)")
	cmd.Flags().StringSliceVar(&times, "times", nil, "Preferred times of day: morning, afternoon, evening")
	cmd.Flags().StringVar(&priority, "priority", "medium", "Priority: low, medium, or high")
	_ = cmd.MarkFlagRequired("member")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newGoalListCmd(app *App) *cobra.Command {
	var member string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recurring goals",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var goals []domain.RecurringGoal
			var err error
			if member != "" {
				memberID, rerr := resolveMemberID(ctx, app, member)
				if rerr != nil {
					return rerr
				}
				goals, err = app.Goals.ListByMember(ctx, memberID)
			} else {
				goals, err = app.Goals.List(ctx)
			}
			if err != nil {
				return err
			}
			if len(goals) == 0 {
				fmt.Println("No goals yet.")
				return nil
			}

			members, err := app.Members.List(ctx)
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatGoalList(goals, members))
			return nil
		},
	}

	cmd.Flags().StringVar(&member, "member", "", "Only goals for this member")

	return cmd
}

func newGoalRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a recurring goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Goals.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Println("Removed.")
			return nil
		},
	}
}
