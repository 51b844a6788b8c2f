package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/helpshift/internal/cli/formatter"
	"github.com/alexanderramin/helpshift/internal/contract"
)

func newTableCmd(app *App) *cobra.Command {
	var period periodValue
	var page int
	var all bool
	var employees []string
	var medium mediumValue

	cmd := &cobra.Command{
		Use:   "table",
		Short: "Show the help table (dates × employees)",
		Long: `Show the help table for a pay period. On a terminal, without --page or
--all, an interactive browser opens: ←/→ page, home/end jump, [ and ] change
period, tab switches to the per-area request tables.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p := period.resolve(app)
			size := app.pageSize()

			static := cmd.Flags().Changed("page") || cmd.Flags().Changed("medium") || all || len(employees) > 0
			if app.interactive() && !static {
				m := newTableBrowser(ctx, app.Tables, app.Registry.Areas(), p, size, 0)
				_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
				return err
			}

			resp, err := app.Tables.HelpTable(ctx, contract.HelpTableRequest{
				Period:    p,
				Medium:    medium.medium,
				Employees: employees,
			})
			if err != nil {
				return err
			}

			if all {
				pages := contract.Pages(len(resp.Rows), size)
				parts := make([]string, 0, pages)
				for i := 0; i < pages; i++ {
					parts = append(parts, formatter.FormatHelpTable(resp, i, size))
				}
				fmt.Fprintln(cmd.OutOrStdout(), strings.Join(parts, "\n\n"))
				return nil
			}
			if page < 1 {
				return fmt.Errorf("--page must be at least 1")
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatHelpTable(resp, page-1, size))
			return nil
		},
	}

	addPeriodFlag(cmd.Flags(), &period)
	cmd.Flags().IntVar(&page, "page", 1, "page number (1-based)")
	cmd.Flags().BoolVar(&all, "all", false, "print every page")
	cmd.Flags().StringSliceVar(&employees, "employee", nil, "restrict columns to these employees")
	cmd.Flags().Var(&medium, "medium", "screen, print or plain (plain drops colors)")

	return cmd
}
