package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/openbarbell/liftlog/internal/cli/formatter"
	"github.com/openbarbell/liftlog/internal/session"
	"github.com/spf13/cobra"
)

func newStartCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "start REF",
		Short: "Start a live workout session from a plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.Interactive {
				return fmt.Errorf("start requires an interactive terminal")
			}

			opts := []session.Option{}
			if app.SessionObserver != nil {
				opts = append(opts, session.WithObserver(app.SessionObserver))
			}
			machine := session.New(
				app.Plans,
				app.Profiles,
				app.Workouts,
				session.Config{MinDuration: app.Config.Session.MinWorkoutDuration.Std()},
				opts...,
			)

			model := newSessionModel(machine, args[0], app.Config.Session.TickInterval.Std())
			program := tea.NewProgram(model, tea.WithAltScreen())
			if _, err := program.Run(); err != nil {
				return err
			}

			// The alt screen is gone once the program exits; reprint the
			// outcome so it stays in the scrollback.
			snap := machine.Snapshot()
			switch snap.Phase {
			case session.PhaseCompleted:
				fmt.Print(formatter.RenderBox("Workout Complete", formatter.WorkoutDetail(snap.Workout)))
				fmt.Println()
			case session.PhaseCancelled:
				fmt.Println("Workout discarded.")
			}
			return nil
		},
	}
}
