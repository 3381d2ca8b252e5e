package commands

import (
	"context"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/lcarotenuto/questionario-ampasilava/internal/adapter/csvexport"
	"github.com/lcarotenuto/questionario-ampasilava/internal/adapter/sqlite"
	"github.com/lcarotenuto/questionario-ampasilava/internal/config"
	"github.com/lcarotenuto/questionario-ampasilava/internal/observability"
	"github.com/lcarotenuto/questionario-ampasilava/internal/registry"
	"github.com/lcarotenuto/questionario-ampasilava/internal/version"
)

// app is the state shared by every subcommand once the root pre-run has
// loaded configuration.
type app struct {
	cfg     *config.Config
	logger  *slog.Logger
	metrics *observability.Metrics
	dbPath  string
}

// Execute runs the CLI.
func Execute() error {
	return newRootCmd(observability.NewMetrics()).Execute()
}

func newRootCmd(metrics *observability.Metrics) *cobra.Command {
	a := &app{metrics: metrics}

	root := &cobra.Command{
		Use:           "questionario",
		Short:         "Child nutrition survey registry with WHZ screening",
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.LoadDotEnv(); err != nil {
				return err
			}
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if a.dbPath != "" {
				cfg.DBPath = a.dbPath
			}
			a.cfg = cfg
			a.logger = observability.NewLogger(cfg, cmd.ErrOrStderr())
			return nil
		},
	}

	root.PersistentFlags().StringVar(&a.dbPath, "db", "", "sqlite database file (default $DB_PATH or questionario.sqlite3)")

	root.AddCommand(
		serveCmd(a),
		whzCmd(a),
		recordsCmd(a),
		migrateCmd(a),
		syncCmd(a),
		checkUpdateCmd(a),
		tablesCmd(a),
	)
	return root
}

// openStore opens the database, running pending migrations.
func (a *app) openStore(ctx context.Context) (*sqlite.Store, error) {
	return sqlite.Open(ctx, a.cfg.DBPath, a.logger)
}

func (a *app) newService(store registry.Store) *registry.Service {
	return registry.NewService(store, csvexport.Writer{}, a.logger, a.metrics)
}

func closeStore(store io.Closer, logger *slog.Logger) {
	if err := store.Close(); err != nil {
		logger.Error("database close error", "error", err)
	}
}
