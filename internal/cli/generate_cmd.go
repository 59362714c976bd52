package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"hearthplan/internal/cli/formatter"
	"hearthplan/internal/contract"
	"hearthplan/internal/domain"
)

func newGenerateCmd(app *App) *cobra.Command {
	var week, strategy, prefs string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Regenerate a week's schedule",
		Long: `Regenerate the schedule for one week. Fixed commitments are re-anchored
onto the week and the AI generator proposes activity placements for the
household's goals. Manual blocks are never touched; previous fixed and AI
blocks are discarded and recomputed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			weekStart, err := parseWeek(week)
			if err != nil {
				return err
			}

			resp, err := app.Schedules.Generate(ctx, contract.GenerateScheduleRequest{
				OwnerID:     householdOwner,
				WeekStart:   weekStart,
				Strategy:    domain.Strategy(strategy),
				Preferences: prefs,
			})
			if err != nil {
				return err
			}

			fmt.Println(formatter.FormatGenerateResult(resp, weekStart))
			return nil
		},
	}

	cmd.Flags().StringVar(&week, "week", "", "Week start Monday (YYYY-MM-DD), default next Monday")
	cmd.Flags().StringVar(&strategy, "strategy", "balanced", "Strategy: balanced, energy_optimized, or goal_focused")
	cmd.Flags().StringVar(&prefs, "prefs", "", "Free-text preferences passed to the generator")

	return cmd
}
