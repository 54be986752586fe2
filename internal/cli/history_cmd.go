package cli

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/openbarbell/liftlog/internal/cli/formatter"
	"github.com/openbarbell/liftlog/internal/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// workoutTypeFlag is a pflag.Value that accepts only known workout types.
type workoutTypeFlag struct {
	v *domain.WorkoutType
}

var _ pflag.Value = workoutTypeFlag{}

func (f workoutTypeFlag) String() string {
	if f.v == nil {
		return ""
	}
	return string(*f.v)
}

func (f workoutTypeFlag) Set(s string) error {
	s = strings.ToLower(s)
	if !domain.ValidWorkoutTypes[s] {
		return fmt.Errorf("unknown workout type %q (valid: %s)", s, strings.Join(workoutTypeNames(), ", "))
	}
	*f.v = domain.WorkoutType(s)
	return nil
}

func (f workoutTypeFlag) Type() string { return "type" }

func workoutTypeNames() []string {
	names := make([]string, 0, len(domain.ValidWorkoutTypes))
	for t := range domain.ValidWorkoutTypes {
		names = append(names, t)
	}
	sort.Strings(names)
	return names
}

func newHistoryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Browse completed workouts",
	}

	cmd.AddCommand(
		newHistoryListCmd(app),
		newHistoryShowCmd(app),
		newHistoryExportCmd(app),
	)

	return cmd
}

func newHistoryListCmd(app *App) *cobra.Command {
	var limit int
	var typeFilter domain.WorkoutType

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent workouts",
		RunE: func(cmd *cobra.Command, args []string) error {
			workouts, err := app.Workouts.ListRecent(context.Background(), limit)
			if err != nil {
				return err
			}

			if typeFilter != "" {
				filtered := workouts[:0]
				for _, w := range workouts {
					if w.WorkoutType == typeFilter {
						filtered = append(filtered, w)
					}
				}
				workouts = filtered
			}

			if len(workouts) == 0 {
				fmt.Println("No workouts recorded yet.")
				return nil
			}

			headers := []string{"ID", "TITLE", "TYPE", "WHEN", "DURATION", "SETS", "VOLUME"}
			rows := make([][]string, 0, len(workouts))
			for _, w := range workouts {
				stats := workoutStats(w)
				rows = append(rows, []string{
					formatter.TruncID(w.ID),
					w.Title,
					formatter.WorkoutTypeBadge(w.WorkoutType),
					formatter.HumanTimestamp(w.StartTime),
					formatter.FormatDuration(w.Duration()),
					strconv.Itoa(stats.TotalSets),
					formatter.FormatVolume(stats.TotalVolume),
				})
			}

			fmt.Print(formatter.RenderBox("History", formatter.RenderTable(headers, rows)))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of workouts to show")
	cmd.Flags().Var(workoutTypeFlag{&typeFilter}, "type", "Filter by workout type")

	return cmd
}

func newHistoryShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show a workout's sets and totals",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := app.Workouts.GetByID(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Print(formatter.RenderBox("", formatter.WorkoutDetail(w)))
			fmt.Println()
			return nil
		},
	}
}

func newHistoryExportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "export ID",
		Short: "Print a workout as a plain-text summary for sharing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := app.Workouts.GetByID(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Print(w.Summary())
			return nil
		},
	}
}

func workoutStats(w *domain.CompletedWorkout) domain.LedgerStats {
	ledger := domain.SetLedger{}
	for _, s := range w.Sets {
		ledger, _ = ledger.Append(s)
	}
	return ledger.Aggregate()
}
