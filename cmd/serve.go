package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/sigmalogic/deviceprobe/api"
	"github.com/sigmalogic/deviceprobe/internal/probe"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Expose the request channel over HTTP for desktop hosts",
		RunE: func(cmd *cobra.Command, args []string) error {
			messenger, _ := newDeviceChannel()

			server, err := api.NewServer(messenger)
			if err != nil {
				return err
			}

			// Handle graceful shutdown
			go func() {
				sigChan := make(chan os.Signal, 1)
				signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
				<-sigChan

				if err := server.Shutdown(); err != nil {
					log.Error().Err(err).Msg("error during shutdown")
				}
			}()

			log.Info().
				Str("address", cfg.Address()).
				Str("channel", probe.ChannelName).
				Msg("starting deviceprobe server")
			return server.Start(cfg.Address())
		},
	}

	cmd.Flags().String("bind", cfg.Bind, "IP address to bind the server to")
	cmd.Flags().String("port", cfg.Port, "Port to run the server on")
	return cmd
}
