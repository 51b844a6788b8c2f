package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/helpshift/internal/cli/formatter"
	"github.com/alexanderramin/helpshift/internal/contract"
	"github.com/alexanderramin/helpshift/internal/shiftcode"
)

// withFixHint adds the command that corrects a malformed time token.
func withFixHint(err error) error {
	var tfe *shiftcode.TimeFormatError
	if !errors.As(err, &tfe) || tfe.Date == "" || tfe.Employee == "" {
		return err
	}
	return fmt.Errorf("%w\n  fix with: helpshift shift set --date %s --employee %s --code <code>",
		err, tfe.Date, tfe.Employee)
}

func newScheduleCmd(app *App) *cobra.Command {
	var period periodValue
	var stores []string

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Show per-store help schedules, helpers ordered by start time",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Tables.StoreSchedule(cmd.Context(), contract.StoreScheduleRequest{
				Period: period.resolve(app),
				Stores: stores,
			})
			if err != nil {
				return withFixHint(err)
			}

			parts := make([]string, 0, len(resp.Schedules))
			for _, s := range resp.Schedules {
				parts = append(parts, formatter.FormatStoreSchedule(s))
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(parts, "\n"))
			return nil
		},
	}

	addPeriodFlag(cmd.Flags(), &period)
	cmd.Flags().StringSliceVar(&stores, "store", nil, "restrict to these stores (default: all)")

	return cmd
}
