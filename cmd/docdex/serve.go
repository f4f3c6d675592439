package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mkarren/docdex/pkg/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the msgpack IPC server on stdin/stdout",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		return server.NewServer(store, os.Stdin, os.Stdout).Start()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
