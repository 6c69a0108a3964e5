package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/hoppxi/lumo/internal/bridge"
	"github.com/hoppxi/lumo/internal/config"
)

var bridgeCmd = &cobra.Command{
	Use:   "bridge",
	Short: "Mirror brightness state and commands over MQTT",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			log.Fatal("Config load failed", "err", err)
		}

		gw, err := newGateway(cmd)
		if err != nil {
			log.Fatal("Gateway setup failed", "err", err)
		}

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		log.Info("Bridge connecting", "broker", cfg.MQTT.Broker, "topic", cfg.MQTT.Topic)
		if err := bridge.New(cfg.MQTT, gw).Run(ctx); err != nil {
			log.Fatal("Bridge stopped", "err", err)
		}
	},
}
