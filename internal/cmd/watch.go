package cmd

import (
	"context"
	"fmt"
	"math"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/ncruces/zenity"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Stream brightness changes to stdout",
	Run: func(cmd *cobra.Command, args []string) {
		gw, err := newGateway(cmd)
		if err != nil {
			log.Fatal("Gateway setup failed", "err", err)
		}

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		changes, err := gw.Changes(ctx)
		if err != nil {
			log.Fatal("Subscribe failed", "err", err)
		}

		notify, _ := cmd.Flags().GetBool("notify")
		for v := range changes {
			fmt.Printf("%.2f\n", float64(v))
			if notify {
				text := fmt.Sprintf("Brightness %d%%", int(math.Round(float64(v)*100)))
				if err := zenity.Notify(text, zenity.Title("lumo"), zenity.InfoIcon); err != nil {
					log.Warn("Desktop notification failed", "err", err)
				}
			}
		}
	},
}

func init() {
	watchCmd.Flags().Bool("notify", false, "Send a desktop notification on every change")
}
