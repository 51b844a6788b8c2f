package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/helpshift/internal/calendar"
	"github.com/alexanderramin/helpshift/internal/cli/formatter"
	"github.com/alexanderramin/helpshift/internal/contract"
	"github.com/alexanderramin/helpshift/internal/domain"
	"github.com/alexanderramin/helpshift/internal/repository"
	"github.com/alexanderramin/helpshift/internal/shiftcode"
)

func newShiftCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shift",
		Short: "Register and inspect shift codes",
	}

	cmd.AddCommand(
		newShiftSetCmd(app),
		newShiftGetCmd(app),
		newShiftShowCmd(app),
	)

	return cmd
}

func newShiftSetCmd(app *App) *cobra.Command {
	var date, employee, code, kind string
	var slotFlags []string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Register an employee's shift code for a date",
		Long: `Register a shift code either verbatim with --code, or composed from
--kind and up to five --slot time@store values. With no flags on a terminal
an edit form is shown.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			noFlags := date == "" && employee == "" && code == "" && kind == "" && len(slotFlags) == 0
			if noFlags && app.interactive() {
				v := shiftFormValues{Date: app.now().Format(calendar.DateLayout), Kind: string(shiftcode.KindAM)}
				if err := shiftForm(app.Registry, &v).Run(); err != nil {
					return err
				}
				date, employee, kind = v.Date, v.Employee, v.Kind
				raw, err := composeShiftCode(app.Registry, shiftcode.Kind(v.Kind), v.slots())
				if err != nil {
					return err
				}
				code = raw.String()
			}

			if date == "" || employee == "" {
				return fmt.Errorf("--date and --employee are required")
			}
			d, err := calendar.ParseDate(date)
			if err != nil {
				return err
			}

			var raw shiftcode.Raw
			switch {
			case code != "" && kind != "" && !noFlags:
				return fmt.Errorf("use either --code or --kind, not both")
			case code != "":
				raw = shiftcode.RawOf(code)
			case kind != "":
				slots := make([]slotInput, 0, len(slotFlags))
				for _, s := range slotFlags {
					slot, err := parseSlotFlag(s)
					if err != nil {
						return err
					}
					slots = append(slots, slot)
				}
				raw, err = composeShiftCode(app.Registry, shiftcode.Kind(kind), slots)
				if err != nil {
					return err
				}
			default:
				return fmt.Errorf("one of --code or --kind is required")
			}

			rec := &domain.ShiftRecord{Date: d, Employee: employee, Raw: raw}
			if err := app.Shifts.Save(ctx, rec); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %s\n",
				calendar.FormatJA(d), employee, formatter.Bold(raw.String()))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&employee, "employee", "", "employee name")
	cmd.Flags().StringVar(&code, "code", "", "raw shift code, stored verbatim")
	cmd.Flags().StringVar(&kind, "kind", "", "AM可, PM可, 1日可, a special keyword or -")
	cmd.Flags().StringArrayVar(&slotFlags, "slot", nil, "time@store segment (repeatable, up to 5)")

	return cmd
}

func newShiftGetCmd(app *App) *cobra.Command {
	var date, employee string

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Print the stored code for one cell",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := calendar.ParseDate(date)
			if err != nil {
				return err
			}
			rec, err := app.Shifts.Get(cmd.Context(), d, employee)
			if errors.Is(err, repository.ErrNotFound) {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("(未登録)"))
				return nil
			}
			if err != nil {
				return err
			}

			parsed := app.Registry.Parser().Parse(rec.Raw)
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n", rec.Raw.String(), formatter.Dim(shiftcode.PlainText(parsed)))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&employee, "employee", "", "employee name")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("employee")

	return cmd
}

func newShiftShowCmd(app *App) *cobra.Command {
	var period periodValue
	var medium mediumValue

	cmd := &cobra.Command{
		Use:   "show <employee>",
		Short: "Show one employee's shifts for a period",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Tables.Individual(cmd.Context(), contract.IndividualRequest{
				Period:   period.resolve(app),
				Employee: strings.TrimSpace(args[0]),
				Medium:   medium.medium,
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatIndividual(resp))
			return nil
		},
	}

	addPeriodFlag(cmd.Flags(), &period)
	cmd.Flags().Var(&medium, "medium", "screen, print or plain (plain drops colors)")

	return cmd
}
