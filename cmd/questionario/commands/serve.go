package commands

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"sync"
	"syscall"

	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/spf13/cobra"

	"github.com/lcarotenuto/questionario-ampasilava/internal/adapter/httpadapter"
	kafkaadapter "github.com/lcarotenuto/questionario-ampasilava/internal/adapter/kafka"
	"github.com/lcarotenuto/questionario-ampasilava/internal/pipeline"
)

func serveCmd(a *app) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and, when Kafka is configured, the record sync",
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr != "" {
				a.cfg.HTTPAddr = addr
			}
			return a.serve(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default $HTTP_ADDR or :8080)")
	return cmd
}

func (a *app) serve(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := a.openStore(ctx)
	if err != nil {
		return err
	}
	defer closeStore(store, a.logger)

	var (
		writer *kafkaadapter.Writer
		wg     sync.WaitGroup
		ready  sharedobs.ReadinessChecker = store
	)
	if a.cfg.SyncEnabled {
		writer = kafkaadapter.NewWriter(a.cfg, a.logger)
		ready = httpadapter.AllReady(store, writer)
		p := pipeline.New(store, pipeline.NewTransformer(a.logger), writer, a.logger, a.metrics,
			a.cfg.BatchSize, a.cfg.BatchFlushInterval)

		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := p.Run(ctx); err != nil {
				a.logger.Error("pipeline error", "error", err)
			}
		}()
	} else {
		a.logger.Info("record sync disabled")
	}

	srv := httpadapter.NewServer(a.cfg.HTTPAddr, a.newService(store), ready, a.logger)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Error("http server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	a.logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("http server shutdown error", "error", err)
	}
	wg.Wait()
	if writer != nil {
		if err := writer.Close(); err != nil {
			a.logger.Error("kafka writer close error", "error", err)
		}
	}

	a.logger.Info("shutdown complete")
	return nil
}
