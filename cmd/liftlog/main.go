package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/openbarbell/liftlog/internal/cli"
	"github.com/openbarbell/liftlog/internal/config"
	"github.com/openbarbell/liftlog/internal/db"
	"github.com/openbarbell/liftlog/internal/repository"
	"github.com/openbarbell/liftlog/internal/service"
	"github.com/openbarbell/liftlog/internal/session"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(config.DefaultPath())
	if err != nil {
		return err
	}

	dbPath := cfg.DBPath
	if dbPath == "" {
		dbPath, err = config.DefaultDBPath()
		if err != nil {
			return err
		}
	}
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	planRepo := repository.NewSQLitePlanRepo(database)
	workoutRepo := repository.NewSQLiteWorkoutRepo(database)
	profileRepo := repository.NewSQLiteProfileRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	app := &cli.App{
		Plans:    service.NewPlanService(planRepo),
		Workouts: service.NewPublishService(workoutRepo, uow),
		Profiles: service.NewProfileService(profileRepo),
		Config:   cfg,
		Interactive: isatty.IsTerminal(os.Stdout.Fd()) ||
			isatty.IsCygwinTerminal(os.Stdout.Fd()),
	}
	if cfg.Log.Transitions {
		app.SessionObserver = session.NewLogObserver(os.Stderr)
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
