package main

import (
	"github.com/spf13/cobra"

	"github.com/ddmms/mlpeg/app"
)

var serveFlags struct {
	data string
	port int
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the benchmark dashboard",
	Long: `serve exposes the persisted table and figure artifacts as a local web
dashboard: the metrics table, with the volume-versus-pressure figure linked
to the Volume Compression column.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Serve(app.Pressure(serveFlags.data), serveFlags.port, logger)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveFlags.data, "data", "appdata", "directory holding the analysis artifacts")
	serveCmd.Flags().IntVar(&serveFlags.port, "port", app.DefaultPort, "local port to serve on")
}
