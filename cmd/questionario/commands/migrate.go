package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lcarotenuto/questionario-ampasilava/internal/adapter/sqlite"
)

func migrateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or upgrade the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Open applies pending migrations.
			store, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore(store, a.logger)

			v, err := sqlite.Version(cmd.Context(), store.DB())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: schema version %d\n", a.cfg.DBPath, v)
			return nil
		},
	}
}
