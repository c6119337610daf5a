package main

import (
	"github.com/spf13/cobra"

	"github.com/deepfield-ai/pitchviz/internal/api"
)

var (
	apiAddr    string
	apiRoot    string
	apiOrigins []string
)

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Start the pitchviz HTTP API",
	Long:  `Serve chart rendering and image retrieval over HTTP.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		return api.ListenAndServe(api.Config{
			Addr:             apiAddr,
			Root:             apiRoot,
			CORSAllowOrigins: apiOrigins,
			Logger:           buildLogger(),
		})
	},
}

func init() {
	apiCmd.Flags().StringVar(&apiAddr, "addr", ":8090", "listen address")
	apiCmd.Flags().StringVar(&apiRoot, "root", ".", "directory charts are served from and written to")
	apiCmd.Flags().StringSliceVar(&apiOrigins, "cors-origin", nil, "allowed CORS origins (default all)")
	rootCmd.AddCommand(apiCmd)
}
