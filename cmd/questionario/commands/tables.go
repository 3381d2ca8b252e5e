package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/lcarotenuto/questionario-ampasilava/internal/domain"
)

func tablesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tables",
		Short: "Inspect the bundled WHO reference tables",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "verify",
		Short: "Check every reference table for holes and non-positive parameters",
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "TABLE\tROWS\tMIN\tMAX\tSTATUS")

			var failed int
			for _, t := range domain.ReferenceTables() {
				status := "ok"
				if err := domain.VerifyTable(t); err != nil {
					a.logger.Error("reference table invalid", "table", t.Name(), "error", err)
					status = err.Error()
					failed++
				}
				fmt.Fprintf(tw, "%s\t%d\t%.1f\t%.1f\t%s\n", t.Name(), t.Len(), t.MinHeight(), t.MaxHeight(), status)
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			if failed > 0 {
				return fmt.Errorf("%d reference tables failed verification", failed)
			}
			return nil
		},
	})
	return cmd
}
