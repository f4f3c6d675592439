package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkarren/docdex/pkg/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the active configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("# %s\n", config.GetActiveConfigPath(cfgPath))
		return config.SaveConfigTo(cfg, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
