package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/helpshift/internal/cli/formatter"
)

func newStoresCmd(app *App) *cobra.Command {
	var showKeywords, showEmployees bool

	cmd := &cobra.Command{
		Use:   "stores",
		Short: "List areas, stores and their colors",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprint(out, formatter.FormatStores(app.Registry.Areas()))
			if showKeywords {
				fmt.Fprintln(out)
				fmt.Fprint(out, formatter.FormatKeywords(app.Registry.Keywords()))
			}
			if showEmployees {
				fmt.Fprintln(out)
				fmt.Fprintln(out, formatter.Header("従業員"))
				fmt.Fprintln(out, strings.Join(app.Registry.Employees(), "  "))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showKeywords, "keywords", false, "also list special keywords")
	cmd.Flags().BoolVar(&showEmployees, "employees", false, "also list the employee roster")

	return cmd
}
