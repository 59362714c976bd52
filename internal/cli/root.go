package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"hearthplan/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Members     service.MemberService
	Goals       service.GoalService
	Commitments service.CommitmentService
	Blocks      service.BlockService
	Schedules   service.ScheduleService
	Logger      *slog.Logger
}

// NewRootCmd creates the top-level "hearthplan" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "hearthplan",
		Short: "Weekly family schedule planner",
	}

	root.AddCommand(
		newMemberCmd(app),
		newGoalCmd(app),
		newCommitmentCmd(app),
		newBlockCmd(app),
		newGenerateCmd(app),
		newShowCmd(app),
		newAutoCmd(app),
	)

	return root
}
