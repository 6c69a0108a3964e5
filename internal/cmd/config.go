package cmd

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/hoppxi/lumo/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the lumo config file",
}

var configGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write a default lumo.yaml",
	Run: func(cmd *cobra.Command, args []string) {
		path := config.Path()
		if err := config.Generate(path); err != nil {
			log.Fatal("Config generation failed", "err", err)
		}
		fmt.Println("Wrote", path)
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(config.Path())
	},
}

func init() {
	configCmd.AddCommand(configGenerateCmd)
	configCmd.AddCommand(configPathCmd)
}
