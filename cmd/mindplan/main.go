package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/alexanderramin/mindplan/internal/cli"
	"github.com/alexanderramin/mindplan/internal/config"
	"github.com/alexanderramin/mindplan/internal/datecalc"
	"github.com/alexanderramin/mindplan/internal/db"
	"github.com/alexanderramin/mindplan/internal/repository"
	"github.com/alexanderramin/mindplan/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	mapRepo := repository.NewSQLiteMapRepo(database)
	historyRepo := repository.NewSQLiteHistoryRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	// Use cases log through the logger the root command puts in the context.
	observer := service.NewContextUseCaseObserver()

	today := func() datecalc.Date { return datecalc.FromTime(time.Now()) }

	app := &cli.App{
		Maps:    service.NewMapService(mapRepo, historyRepo, uow, cfg.HistoryLimit, observer),
		Plans:   service.NewPlanService(mapRepo, uow, cfg.HistoryLimit, today, observer),
		Exports: service.NewExportService(mapRepo, observer),
		Config:  cfg,
		Today:   today,
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).ExecuteContext(context.Background())
}
