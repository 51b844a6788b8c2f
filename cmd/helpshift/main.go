package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/alexanderramin/helpshift/internal/calendar"
	"github.com/alexanderramin/helpshift/internal/cli"
	"github.com/alexanderramin/helpshift/internal/config"
	"github.com/alexanderramin/helpshift/internal/db"
	"github.com/alexanderramin/helpshift/internal/export"
	"github.com/alexanderramin/helpshift/internal/registry"
	"github.com/alexanderramin/helpshift/internal/repository"
	"github.com/alexanderramin/helpshift/internal/service"
	"github.com/alexanderramin/helpshift/internal/shiftcode"
	"github.com/mattn/go-isatty"
)

// holidayCacheAge is how long a fetched holiday feed is reused.
const holidayCacheAge = 7 * 24 * time.Hour

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	dir := registry.Default()
	if cfg.RegistryPath != "" {
		if dir, err = registry.LoadFile(cfg.RegistryPath); err != nil {
			return err
		}
	}

	// Open database
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// After OpenDB so the holiday cache can live next to the database.
	holidays := loadHolidays(cfg)

	// Wire repositories
	shiftRepo := repository.NewSQLiteShiftRepo(database)
	requestRepo := repository.NewSQLiteHelpRequestRepo(database)

	// Imports write through it; tables read through its snapshots.
	uow := db.NewSQLiteUnitOfWork(database)

	var observers []service.UseCaseObserver
	if cfg.LogUseCases {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr, cfg.LogLevel))
	}

	app := &cli.App{
		Shifts:   service.NewShiftService(shiftRepo, dir, observers...),
		Requests: service.NewHelpRequestService(requestRepo, dir, observers...),
		Tables: service.NewTableService(uow, dir,
			dir.Presenter(shiftcode.DefaultPalette()), holidays, observers...),
		Import: service.NewImportService(dir, uow, observers...),

		Registry: dir,
		Holidays: holidays,
		PageSize: cfg.PageSize,
		PDF: export.PDFOptions{
			FontPath:     cfg.FontPath,
			BoldFontPath: cfg.BoldFontPath,
			RowsPerPage:  cfg.PageSize,
		},
	}

	// Detect interactive terminal for forms and the table browser.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}

// loadHolidays merges the remote feed (when enabled) with the local file;
// local names win. Failures only warn, since tables render without holidays.
func loadHolidays(cfg config.Config) *calendar.Holidays {
	holidays := calendar.NewHolidays(nil)

	if cfg.FetchHolidays {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		cache := filepath.Join(filepath.Dir(cfg.DBPath), "holidays.json")
		fetched, err := calendar.FetchHolidaysCached(ctx, &http.Client{}, cfg.HolidaysURL, cache, holidayCacheAge)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		}
		if fetched != nil {
			holidays.Merge(fetched.Names())
		}
	}

	if cfg.HolidaysPath != "" {
		local, err := calendar.LoadHolidaysFile(cfg.HolidaysPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		} else {
			holidays.Merge(local.Names())
		}
	}

	return holidays
}
