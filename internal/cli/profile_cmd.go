package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/openbarbell/liftlog/internal/cli/formatter"
	"github.com/openbarbell/liftlog/internal/repository"
	"github.com/spf13/cobra"
)

func newProfileCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage the local user profile",
	}

	cmd.AddCommand(
		newProfileShowCmd(app),
		newProfileSetCmd(app),
	)

	return cmd
}

func newProfileShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Profiles.Get(context.Background())
			if errors.Is(err, repository.ErrNotFound) {
				fmt.Println("No profile set. Use `liftlog profile set` to create one.")
				return nil
			}
			if err != nil {
				return err
			}

			fmt.Printf("%s %s\n", formatter.Bold(p.DisplayName), formatter.Dim("("+p.UserID+")"))
			fmt.Printf("Updated %s\n", formatter.Dim(formatter.HumanTimestamp(p.UpdatedAt)))
			return nil
		},
	}
}

func newProfileSetCmd(app *App) *cobra.Command {
	var userID, name string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set the author identity stamped onto finished workouts",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Profiles.Set(context.Background(), userID, name); err != nil {
				return err
			}
			fmt.Printf("Profile saved: %s (%s)\n", name, userID)
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "User ID used as workout author")
	cmd.Flags().StringVar(&name, "name", "", "Display name")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}
