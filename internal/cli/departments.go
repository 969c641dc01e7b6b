package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/metcollection/pkg/integrations/met"
)

// departmentsDocument wraps the list so it encodes as a TOML table.
type departmentsDocument struct {
	Departments met.DepartmentList `toml:"departments"`
}

// departmentsCommand creates the "departments" command.
func (c *CLI) departmentsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "departments",
		Short: "List curatorial departments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			prog := newProgress(c.Logger)
			var depts met.DepartmentList
			err := c.await(cmd.Context(), "Fetching departments...", func(ctx context.Context) (err error) {
				depts, err = c.newClient().ListDepartments(ctx)
				return err
			})
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Fetched %d departments", len(depts)))

			w := cmd.OutOrStdout()
			switch c.output {
			case OutputJSON:
				return writeJSON(w, depts)
			case OutputTOML:
				return writeTOML(w, departmentsDocument{Departments: depts})
			}

			rows := make([][]string, len(depts))
			for i, d := range depts {
				rows[i] = []string{strconv.Itoa(d.DepartmentID), d.DisplayName}
			}
			fmt.Fprintln(w, renderTable([]string{"ID", "Department"}, rows, []columnAlignment{alignRight, alignLeft}))
			return nil
		},
	}
}
