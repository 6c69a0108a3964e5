package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:     "lumo",
	Version: Version,
	Short:   "Read, set and watch screen brightness",
	Long:    "Lumo controls the display backlight: read the current or launch-time brightness, set or reset it, and stream changes",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("backend", "", "Brightness backend: sysfs, logind or mock")
	rootCmd.PersistentFlags().String("device", "", "Backlight device name (default: first found)")

	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(bridgeCmd)
	rootCmd.AddCommand(configCmd)
}
