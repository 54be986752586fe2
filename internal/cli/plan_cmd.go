package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/openbarbell/liftlog/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newPlanCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Manage the local plan library",
	}

	cmd.AddCommand(
		newPlanImportCmd(app),
		newPlanListCmd(app),
		newPlanShowCmd(app),
		newPlanRemoveCmd(app),
	)

	return cmd
}

func newPlanImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import a plan from a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := app.Plans.Import(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Imported %s (%s, %d exercises)\n", plan.Ref, plan.Title, len(plan.Exercises))
			return nil
		},
	}
}

func newPlanListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List imported plans",
		RunE: func(cmd *cobra.Command, args []string) error {
			plans, err := app.Plans.List(context.Background())
			if err != nil {
				return err
			}

			if len(plans) == 0 {
				fmt.Println("No plans imported. Use `liftlog plan import FILE` to add one.")
				return nil
			}

			headers := []string{"REF", "TITLE", "TYPE", "EXERCISES", "ADDED"}
			rows := make([][]string, 0, len(plans))
			for _, p := range plans {
				rows = append(rows, []string{
					formatter.StyleFg.Render(p.Ref),
					p.Title,
					formatter.WorkoutTypeBadge(p.WorkoutType),
					strconv.Itoa(len(p.Exercises)),
					formatter.Dim(formatter.HumanDate(p.CreatedAt)),
				})
			}

			fmt.Print(formatter.RenderBox("Plans", formatter.RenderTable(headers, rows)))
			return nil
		},
	}
}

func newPlanShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show REF",
		Short: "Show a plan's exercises",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := app.Plans.ResolvePlan(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Print(formatter.RenderBox("", formatter.PlanDetail(plan)))
			fmt.Println()
			return nil
		},
	}
}

func newPlanRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove REF",
		Short: "Remove a plan from the library",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Plans.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed plan %s\n", args[0])
			return nil
		},
	}
}
