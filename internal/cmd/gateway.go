package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hoppxi/lumo/internal/config"
	"github.com/hoppxi/lumo/internal/host/logind"
	"github.com/hoppxi/lumo/internal/host/mock"
	"github.com/hoppxi/lumo/internal/host/sysfs"
	"github.com/hoppxi/lumo/internal/subscribe"
	"github.com/hoppxi/lumo/pkg/brightness"
)

// newGateway wires a gateway from config, with flags taking precedence.
func newGateway(cmd *cobra.Command) (*brightness.Gateway, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if v, _ := cmd.Flags().GetString("backend"); v != "" {
		cfg.Backend = v
	}
	if v, _ := cmd.Flags().GetString("device"); v != "" {
		cfg.Device = v
	}

	switch cfg.Backend {
	case "mock":
		host := mock.NewHost(0.5, 0.5)
		return brightness.NewGateway(host, host.Notifier()), nil

	case "logind":
		fs, err := sysfs.New(cfg.Device)
		if err != nil {
			return nil, err
		}
		host, err := logind.New(fs)
		if err != nil {
			return nil, err
		}
		return brightness.NewGateway(host, newNotifier(cfg, fs)), nil

	case "sysfs", "":
		fs, err := sysfs.New(cfg.Device)
		if err != nil {
			return nil, err
		}
		return brightness.NewGateway(fs, newNotifier(cfg, fs)), nil

	default:
		return nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}
}

func newNotifier(cfg config.Config, fs *sysfs.Backlight) brightness.Notifier {
	read := func() (float64, bool, error) {
		return fs.ScreenBrightness(context.Background())
	}
	if cfg.Notifier == "fsnotify" {
		return subscribe.NewFile(fs.BrightnessPath(), read)
	}
	return subscribe.NewUevent(read)
}
