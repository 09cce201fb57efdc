package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/lucasferreira/webquest/internal/cli"
	"github.com/lucasferreira/webquest/internal/db"
	"github.com/lucasferreira/webquest/internal/notify"
	"github.com/lucasferreira/webquest/internal/progress"
	"github.com/lucasferreira/webquest/internal/repository"
	"github.com/lucasferreira/webquest/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.webquest/webquest.db
	dbPath := os.Getenv("WEBQUEST_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".webquest", "webquest.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	ctx := context.Background()
	snapshots := repository.NewSQLiteSnapshotRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	// Wire stores and the notification sink. Load problems degrade to
	// defaults and are logged, never fatal.
	logf := log.New(os.Stderr, "webquest: ", 0).Printf
	notices := notify.NewEmitter()
	progressStore := progress.NewStore(ctx, snapshots,
		progress.WithNotifier(notices),
		progress.WithLogf(logf))
	settingsStore := progress.NewSettingsStore(ctx, snapshots, logf)

	app := &cli.App{
		Progress: service.NewProgressService(progressStore, notices),
		Settings: service.NewSettingsService(settingsStore),
		Data:     service.NewDataService(progressStore, settingsStore, uow),
		Notices:  notices,
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
