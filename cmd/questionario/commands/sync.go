package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	kafkaadapter "github.com/lcarotenuto/questionario-ampasilava/internal/adapter/kafka"
	"github.com/lcarotenuto/questionario-ampasilava/internal/pipeline"
)

func syncCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Publish every unsynced record to Kafka and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(a.cfg.KafkaBrokers) == 0 {
				return errors.New("KAFKA_BROKERS is not set")
			}

			store, err := a.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore(store, a.logger)

			writer := kafkaadapter.NewWriter(a.cfg, a.logger)
			defer func() {
				if err := writer.Close(); err != nil {
					a.logger.Error("kafka writer close error", "error", err)
				}
			}()

			p := pipeline.New(store, pipeline.NewTransformer(a.logger), writer, a.logger, a.metrics,
				a.cfg.BatchSize, a.cfg.BatchFlushInterval)
			n, err := p.Drain(cmd.Context())
			if err != nil {
				return fmt.Errorf("sync stopped after %d records: %w", n, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d records published to %s\n", n, a.cfg.KafkaTopic)
			return nil
		},
	}
}
