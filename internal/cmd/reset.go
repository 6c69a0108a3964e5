package cmd

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the launch-time system brightness",
	Run: func(cmd *cobra.Command, args []string) {
		gw, err := newGateway(cmd)
		if err != nil {
			log.Fatal("Gateway setup failed", "err", err)
		}
		if err := gw.ResetBrightness(cmd.Context()); err != nil {
			log.Fatal("Reset brightness failed", "err", err)
		}
	},
}
