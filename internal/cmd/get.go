package cmd

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/hoppxi/lumo/pkg/brightness"
)

var getCmd = &cobra.Command{
	Use:   "get",
	Short: "Print the current brightness",
	Run: func(cmd *cobra.Command, args []string) {
		gw, err := newGateway(cmd)
		if err != nil {
			log.Fatal("Gateway setup failed", "err", err)
		}

		ctx := cmd.Context()
		var v brightness.Value
		if system, _ := cmd.Flags().GetBool("system"); system {
			v, err = gw.SystemBrightness(ctx)
		} else {
			v, err = gw.CurrentBrightness(ctx)
		}
		if err != nil {
			log.Fatal("Read brightness failed", "err", err)
		}

		fmt.Printf("%.2f\n", float64(v))
	},
}

func init() {
	getCmd.Flags().Bool("system", false, "Print the launch-time system brightness instead of the live value")
}
