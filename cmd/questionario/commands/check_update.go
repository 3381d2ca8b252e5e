package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lcarotenuto/questionario-ampasilava/internal/adapter/updates"
	"github.com/lcarotenuto/questionario-ampasilava/internal/version"
)

func checkUpdateCmd(a *app) *cobra.Command {
	var (
		dir        string
		noDownload bool
	)
	cmd := &cobra.Command{
		Use:   "check-update",
		Short: "Check the release manifest for a newer version",
		RunE: func(cmd *cobra.Command, args []string) error {
			if dir == "" {
				dir = a.cfg.UpdateDir
			}
			client := updates.NewClient(a.cfg, a.logger, a.metrics)

			var (
				res updates.Result
				err error
			)
			if noDownload {
				res, err = client.Check(cmd.Context(), version.Version)
			} else {
				res, err = client.CheckAndDownload(cmd.Context(), version.Version, dir)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch {
			case !res.Available:
				fmt.Fprintf(out, "Nessun aggiornamento disponibile (versione %s).\n", res.Local)
			case res.Path != "":
				fmt.Fprintf(out, "Versione %s scaricata in %s\n", res.Remote, res.Path)
			default:
				fmt.Fprintf(out, "Nuova versione disponibile: %s\n%s\n", res.Remote, res.AssetURL)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "", "download directory (default $UPDATE_DIR)")
	cmd.Flags().BoolVar(&noDownload, "no-download", false, "only report whether an update exists")
	return cmd
}
