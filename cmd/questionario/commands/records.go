package commands

import (
	"encoding/json"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/lcarotenuto/questionario-ampasilava/internal/adapter/csvexport"
)

func recordsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "records",
		Short: "Browse and export saved survey records",
	}
	cmd.AddCommand(recordsListCmd(a), recordsShowCmd(a), recordsExportCmd(a))
	return cmd
}

func recordsListCmd(a *app) *cobra.Command {
	var search string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List records, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore(store, a.logger)

			recs, err := a.newService(store).List(cmd.Context(), search)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "TARATASSI\tVILLAGGIO\tSESSO\tETÀ\tALTEZZA\tPESO\tWHZ\tCREATO")
			for _, r := range recs {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\t%s\t%s\t%s\n",
					r.Taratassi, r.Village, r.Sex, r.DeclaredAge,
					optional(r.Height), optional(r.Weight), optional(r.WHZ),
					r.CreatedAt.Format("2006-01-02 15:04"))
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVarP(&search, "search", "s", "", "match taratassi containing this text")
	return cmd
}

func recordsShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <taratassi>",
		Short: "Show one record with its current assessment as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore(store, a.logger)

			entry, err := a.newService(store).Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(entry)
		},
	}
}

func recordsExportCmd(a *app) *cobra.Command {
	var (
		search string
		out    string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export records to a semicolon-separated CSV file",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore(store, a.logger)

			if out == "-" {
				_, err := a.newService(store).Export(cmd.Context(), cmd.OutOrStdout(), search)
				return err
			}

			recs, err := a.newService(store).List(cmd.Context(), search)
			if err != nil {
				return err
			}
			if err := csvexport.WriteFile(out, recs); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "%d records exported to %s\n", len(recs), out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&search, "search", "s", "", "match taratassi containing this text")
	cmd.Flags().StringVarP(&out, "out", "o", "risultati.csv", "output file, or - for stdout")
	return cmd
}

func optional(v *float64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
