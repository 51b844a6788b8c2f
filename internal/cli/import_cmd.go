package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/helpshift/internal/calendar"
	"github.com/alexanderramin/helpshift/internal/cli/formatter"
	"github.com/alexanderramin/helpshift/internal/export"
	"github.com/alexanderramin/helpshift/internal/service"
)

func newImportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import shift data",
	}

	cmd.AddCommand(newImportCSVCmd(app))

	return cmd
}

func newImportCSVCmd(app *App) *cobra.Command {
	var period periodValue

	cmd := &cobra.Command{
		Use:   "csv <file>",
		Short: "Import a shift grid CSV as written by 'export csv'",
		Long: `Import a shift grid CSV (日付, optional 曜日, then one column per
employee). Every row is validated before anything is written; the import is
all-or-nothing. With --period, every date must fall inside that period.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening %s: %w", args[0], err)
			}
			defer f.Close()

			records, err := export.ReadShiftGridCSV(f)
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}

			res, err := app.Import.ImportShifts(cmd.Context(), service.ImportRequest{
				Records: records,
				Period:  periodOrNil(&period),
			})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatImportResult(res))
			return nil
		},
	}

	addPeriodFlag(cmd.Flags(), &period)

	return cmd
}

// periodOrNil returns the flag's period when it was given.
func periodOrNil(v *periodValue) *calendar.Period {
	if !v.set {
		return nil
	}
	p := v.period
	return &p
}
