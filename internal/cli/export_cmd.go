package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/helpshift/internal/calendar"
	"github.com/alexanderramin/helpshift/internal/contract"
	"github.com/alexanderramin/helpshift/internal/export"
	"github.com/alexanderramin/helpshift/internal/shiftcode"
)

func newExportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export tables as CSV, XLSX or PDF",
	}

	cmd.AddCommand(
		newExportCSVCmd(app),
		newExportRequestsCSVCmd(app),
		newExportTableCSVCmd(app),
		newExportXLSXCmd(app),
		newExportPDFCmd(app),
	)

	return cmd
}

// writeOutput runs write against path, or stdout when path is empty or "-".
// A file is only reported written when write and close both succeed.
func writeOutput(cmd *cobra.Command, path string, write func(io.Writer) error) error {
	if path == "" || path == "-" {
		return write(cmd.OutOrStdout())
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", path)
	return nil
}

func addOutFlag(cmd *cobra.Command, out *string) {
	cmd.Flags().StringVarP(out, "out", "o", "", "output file (default: stdout)")
}

func newExportCSVCmd(app *App) *cobra.Command {
	var period periodValue
	var out string

	cmd := &cobra.Command{
		Use:   "csv",
		Short: "Export the raw shift grid (dates × employees) as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := period.resolve(app)
			grid, err := app.Shifts.Grid(cmd.Context(), p)
			if err != nil {
				return err
			}
			return writeOutput(cmd, out, func(w io.Writer) error {
				return export.WriteShiftGridCSV(w, p, app.Registry.Employees(), grid)
			})
		},
	}

	addPeriodFlag(cmd.Flags(), &period)
	addOutFlag(cmd, &out)

	return cmd
}

func newExportRequestsCSVCmd(app *App) *cobra.Command {
	var period periodValue
	var out string

	cmd := &cobra.Command{
		Use:   "requests-csv",
		Short: "Export store help requests as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			requests, err := app.Requests.ListPeriod(cmd.Context(), period.resolve(app))
			if err != nil {
				return err
			}
			return writeOutput(cmd, out, func(w io.Writer) error {
				return export.WriteHelpRequestsCSV(w, requests)
			})
		},
	}

	addPeriodFlag(cmd.Flags(), &period)
	addOutFlag(cmd, &out)

	return cmd
}

func newExportTableCSVCmd(app *App) *cobra.Command {
	var period periodValue
	var out string

	cmd := &cobra.Command{
		Use:   "table-csv",
		Short: "Export the help table with canonical codes as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Tables.HelpTable(cmd.Context(), contract.HelpTableRequest{
				Period: period.resolve(app),
				Medium: shiftcode.MediumPlain,
			})
			if err != nil {
				return err
			}
			return writeOutput(cmd, out, func(w io.Writer) error {
				return export.WriteHelpTableCSV(w, resp)
			})
		},
	}

	addPeriodFlag(cmd.Flags(), &period)
	addOutFlag(cmd, &out)

	return cmd
}

// buildWorkbook loads the help table and every area's request table.
func buildWorkbook(ctx context.Context, app *App, p calendar.Period) (export.Workbook, error) {
	var wb export.Workbook
	help, err := app.Tables.HelpTable(ctx, contract.HelpTableRequest{Period: p, Medium: shiftcode.MediumPrint})
	if err != nil {
		return wb, err
	}
	wb.Help = help

	for _, a := range app.Registry.Areas() {
		resp, err := app.Tables.RequestTable(ctx, contract.RequestTableRequest{Period: p, Area: a.Name})
		if err != nil {
			return wb, err
		}
		wb.Requests = append(wb.Requests, resp)
	}
	return wb, nil
}

func newExportXLSXCmd(app *App) *cobra.Command {
	var period periodValue
	var out string

	cmd := &cobra.Command{
		Use:   "xlsx",
		Short: "Export the help table and area request tables as an XLSX workbook",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := period.resolve(app)
			wb, err := buildWorkbook(cmd.Context(), app, p)
			if err != nil {
				return err
			}
			if out == "" {
				out = fmt.Sprintf("helpshift-%s.xlsx", p)
			}
			return writeOutput(cmd, out, func(w io.Writer) error {
				return export.WriteXLSX(w, wb)
			})
		},
	}

	addPeriodFlag(cmd.Flags(), &period)
	addOutFlag(cmd, &out)

	return cmd
}

func newExportPDFCmd(app *App) *cobra.Command {
	var period periodValue
	var out, employee string
	var stores []string
	layout := layoutHelp

	cmd := &cobra.Command{
		Use:   "pdf",
		Short: "Export the help table, an employee's shifts or store schedules as PDF",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p := period.resolve(app)
			opts := app.PDF
			if opts.RowsPerPage == 0 {
				opts.RowsPerPage = app.pageSize()
			}

			var write func(io.Writer) error
			switch layout {
			case layoutHelp:
				resp, err := app.Tables.HelpTable(ctx, contract.HelpTableRequest{Period: p, Medium: shiftcode.MediumPrint})
				if err != nil {
					return err
				}
				write = func(w io.Writer) error { return export.WriteHelpTablePDF(w, resp, opts) }

			case layoutIndividual:
				if employee == "" {
					return fmt.Errorf("--employee is required for the individual layout")
				}
				resp, err := app.Tables.Individual(ctx, contract.IndividualRequest{
					Period: p, Employee: employee, Medium: shiftcode.MediumPrint,
				})
				if err != nil {
					return err
				}
				write = func(w io.Writer) error { return export.WriteIndividualPDF(w, resp, opts) }

			case layoutStore:
				resp, err := app.Tables.StoreSchedule(ctx, contract.StoreScheduleRequest{Period: p, Stores: stores})
				if err != nil {
					return withFixHint(err)
				}
				write = func(w io.Writer) error { return export.WriteStoreSchedulePDF(w, resp, opts) }
			}

			if out == "" {
				name := string(layout)
				if layout == layoutIndividual {
					name = employee
				}
				out = fmt.Sprintf("helpshift-%s-%s.pdf", p, name)
			}
			return writeOutput(cmd, out, write)
		},
	}

	addPeriodFlag(cmd.Flags(), &period)
	addOutFlag(cmd, &out)
	cmd.Flags().Var(&layout, "layout", "help, individual or store")
	cmd.Flags().StringVar(&employee, "employee", "", "employee for the individual layout")
	cmd.Flags().StringSliceVar(&stores, "store", nil, "stores for the store layout (default: all)")

	return cmd
}
