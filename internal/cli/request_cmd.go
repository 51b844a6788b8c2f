package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/helpshift/internal/calendar"
	"github.com/alexanderramin/helpshift/internal/cli/formatter"
	"github.com/alexanderramin/helpshift/internal/contract"
	"github.com/alexanderramin/helpshift/internal/domain"
)

func newRequestCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "request",
		Short: "Manage store help requests",
	}

	cmd.AddCommand(
		newRequestSetCmd(app),
		newRequestListCmd(app),
	)

	return cmd
}

func newRequestSetCmd(app *App) *cobra.Command {
	var date, store, helpTime string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Record a store's requested help time for a date",
		RunE: func(cmd *cobra.Command, args []string) error {
			if date == "" && store == "" && !cmd.Flags().Changed("time") && app.interactive() {
				v := requestFormValues{Date: app.now().Format(calendar.DateLayout)}
				if err := requestForm(app.Registry, &v).Run(); err != nil {
					return err
				}
				date, store, helpTime = v.Date, v.Store, v.HelpTime
			}
			if date == "" || store == "" {
				return fmt.Errorf("--date and --store are required")
			}

			d, err := calendar.ParseDate(date)
			if err != nil {
				return err
			}
			req := &domain.HelpRequest{Date: d, Store: store, HelpTime: helpTime}
			if err := app.Requests.Save(cmd.Context(), req); err != nil {
				return err
			}

			shown := req.HelpTime
			if !req.Requested() {
				shown = formatter.Dim("(取消)")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %s\n", calendar.FormatJA(d), store, shown)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&store, "store", "", "store name")
	cmd.Flags().StringVar(&helpTime, "time", "", "requested help time, e.g. 10-15 (empty clears)")

	return cmd
}

func newRequestListCmd(app *App) *cobra.Command {
	var period periodValue
	var area string
	var page int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show an area's request table",
		RunE: func(cmd *cobra.Command, args []string) error {
			if area == "" {
				areas := app.Registry.Areas()
				if len(areas) == 0 {
					return fmt.Errorf("no areas registered")
				}
				area = areas[0].Name
			}

			resp, err := app.Tables.RequestTable(cmd.Context(), contract.RequestTableRequest{
				Period: period.resolve(app),
				Area:   area,
			})
			if err != nil {
				return err
			}

			size := app.pageSize()
			if page < 1 {
				return fmt.Errorf("--page must be at least 1")
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatRequestTable(resp, page-1, size))
			return nil
		},
	}

	addPeriodFlag(cmd.Flags(), &period)
	cmd.Flags().StringVar(&area, "area", "", "area name (default: first area)")
	cmd.Flags().IntVar(&page, "page", 1, "page number (1-based)")

	return cmd
}
