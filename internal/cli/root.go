package cli

import (
	"github.com/openbarbell/liftlog/internal/config"
	"github.com/openbarbell/liftlog/internal/service"
	"github.com/openbarbell/liftlog/internal/session"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Plans    service.PlanService
	Workouts service.PublishService
	Profiles service.ProfileService

	Config config.Config

	// Interactive reports whether stdout is a terminal. The live
	// session surface requires one.
	Interactive bool

	// SessionObserver receives machine transition events. Nil means
	// transitions are not logged.
	SessionObserver session.Observer
}

// NewRootCmd creates the top-level "liftlog" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "liftlog",
		Short: "Workout plan library and live session tracker",
	}

	root.AddCommand(
		newStartCmd(app),
		newPlanCmd(app),
		newHistoryCmd(app),
		newProfileCmd(app),
	)

	return root
}
