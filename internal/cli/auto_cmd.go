package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"hearthplan/internal/contract"
	"hearthplan/internal/domain"
)

func newAutoCmd(app *App) *cobra.Command {
	var schedule, strategy, prefs string

	cmd := &cobra.Command{
		Use:   "auto",
		Short: "Run as a daemon, regenerating the upcoming week on a cron schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := cron.New()
			_, err := c.AddFunc(schedule, func() {
				weekStart := upcomingMonday(timeNow())
				resp, err := app.Schedules.Generate(context.Background(), contract.GenerateScheduleRequest{
					OwnerID:     householdOwner,
					WeekStart:   weekStart,
					Strategy:    domain.Strategy(strategy),
					Preferences: prefs,
				})
				if err != nil {
					app.Logger.Error("scheduled generation failed",
						"week", weekStart.Format("2006-01-02"), "error", err)
					return
				}
				app.Logger.Info("scheduled generation complete",
					"week", weekStart.Format("2006-01-02"),
					"blocks", resp.Summary.TotalBlocks,
					"conflicts", resp.Summary.ConflictsSuppressed)
			})
			if err != nil {
				return fmt.Errorf("invalid cron schedule %q: %w", schedule, err)
			}

			c.Start()
			defer c.Stop()
			fmt.Printf("Regenerating on schedule %q. Ctrl-C to stop.\n", schedule)

			sig := make(chan os.Signal, 1)
			signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
			<-sig
			return nil
		},
	}

	cmd.Flags().StringVar(&schedule, "schedule", "0 6 * * 1", "Cron schedule (default: Mondays 06:00)")
	cmd.Flags().StringVar(&strategy, "strategy", "balanced", "Strategy for scheduled runs")
	cmd.Flags().StringVar(&prefs, "prefs", "", "Free-text preferences for scheduled runs")

	return cmd
}
