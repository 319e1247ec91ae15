package main

import (
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/hogaku/shakufu"
	"github.com/hogaku/shakufu/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the render endpoint over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := loadOptions()
		if err != nil {
			return err
		}

		srv := &http.Server{
			Addr:              serveAddr,
			Handler:           server.New(shakufu.WithOptions(opts)).Handler(),
			ReadHeaderTimeout: 5 * time.Second,
		}
		shakufu.Logger().Info("serving", "addr", serveAddr)
		cmd.Printf("listening on %s\n", serveAddr)
		return srv.ListenAndServe()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
}
