package cli

import (
	"time"

	"github.com/alexanderramin/helpshift/internal/calendar"
	"github.com/alexanderramin/helpshift/internal/config"
	"github.com/alexanderramin/helpshift/internal/export"
	"github.com/alexanderramin/helpshift/internal/registry"
	"github.com/alexanderramin/helpshift/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Shifts   service.ShiftService
	Requests service.HelpRequestService
	Tables   service.TableService
	Import   service.ImportService

	Registry *registry.Registry
	Holidays *calendar.Holidays

	PageSize int
	PDF      export.PDFOptions

	// IsInteractive reports whether stdin is a terminal. nil means never;
	// commands then print static output instead of opening forms or the
	// table browser.
	IsInteractive func() bool

	// Now is the clock used for the default period. nil means time.Now.
	Now func() time.Time
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

// currentPeriod is the pay period containing today.
func (a *App) currentPeriod() calendar.Period {
	return calendar.PeriodContaining(a.now())
}

func (a *App) pageSize() int {
	if a.PageSize > 0 {
		return a.PageSize
	}
	return config.DefaultPageSize
}

// NewRootCmd creates the top-level "helpshift" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "helpshift",
		Short:         "Help-staff shift codes, request tables and exports",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(service.WithRequestID(cmd.Context()))
		},
	}

	root.AddCommand(
		newShiftCmd(app),
		newRequestCmd(app),
		newTableCmd(app),
		newScheduleCmd(app),
		newExportCmd(app),
		newImportCmd(app),
		newStoresCmd(app),
	)

	return root
}
