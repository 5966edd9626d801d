package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/evosim/evosim/api"
)

var configFile string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the evolution HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := api.LoadConfig(configFile)
		if err != nil {
			return err
		}
		server, err := api.NewServer(cfg, logrus.StandardLogger())
		if err != nil {
			return err
		}
		return server.Run()
	},
}

func init() {
	serveCmd.Flags().StringVar(&configFile, "config", "", "Path to a YAML config file (defaults apply when empty)")
	rootCmd.AddCommand(serveCmd)
}
