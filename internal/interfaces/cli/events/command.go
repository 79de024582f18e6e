// Package events provides tooling around the inquiry event channel.
package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/instamakaan/instamakaan/internal/infrastructure/pubsub"
	"github.com/instamakaan/instamakaan/internal/interfaces/cli/bootstrap"
)

var (
	opts      bootstrap.Options
	eventType string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events",
		Short: "Inquiry event channel tools",
	}

	cmd.PersistentFlags().StringVarP(&opts.Env, "env", "e", "development", "Environment (development, test, production)")
	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")

	tail := &cobra.Command{
		Use:   "tail",
		Short: "Print inquiry events published on the Redis channel",
		Long:  `Subscribe to the inquiry event channel and print each event as a JSON line until interrupted.`,
		RunE:  runTail,
	}
	tail.Flags().StringVarP(&eventType, "type", "t", "", "Only print events of this type (e.g. inquiry.assigned)")
	cmd.AddCommand(tail)

	return cmd
}

func runTail(cmd *cobra.Command, args []string) error {
	cfg, log, err := bootstrap.Load(opts)
	if err != nil {
		return err
	}
	if !cfg.Redis.Enabled {
		return fmt.Errorf("redis is disabled in the configuration")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer client.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	bus := pubsub.NewRedisInquiryEventBus(client, cfg.Notification.EventChannel, log)
	err = bus.Subscribe(ctx, printer(cmd.OutOrStdout(), eventType))
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// printer writes matching messages as JSON lines.
func printer(w io.Writer, only string) pubsub.InquiryEventHandler {
	enc := json.NewEncoder(w)
	return func(_ context.Context, msg pubsub.InquiryEventMessage) {
		if only != "" && msg.EventType != only {
			return
		}
		_ = enc.Encode(msg)
	}
}
