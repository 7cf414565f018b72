package cmd

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/sigmalogic/deviceprobe/internal/channel"
	"github.com/sigmalogic/deviceprobe/internal/config"
	"github.com/sigmalogic/deviceprobe/internal/probe"
	"github.com/spf13/cobra"
)

// Version is set at build time via -ldflags "-X github.com/sigmalogic/deviceprobe/cmd.Version=..."
var Version = "dev"

var cfg = config.Default()

var rootCmd = &cobra.Command{
	Use:     "deviceprobe",
	Short:   "Device information bridge for the Sigma Notes host UI",
	Long:    `deviceprobe answers device-info requests (model, OS version, manufacturer, battery, storage) on the com.sigmalogic.sigmanotes/device_info channel.`,
	Version: Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup(cmd)
	},
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	output := zerolog.ConsoleWriter{Out: os.Stderr}
	log.Logger = zerolog.New(output).With().Timestamp().Logger()

	rootCmd.PersistentFlags().String("log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	rootCmd.AddCommand(
		newServeCmd(),
		newCallCmd(),
		newInfoCmd(),
	)
}

// setup merges .env, environment and flags into cfg and configures logging
func setup(cmd *cobra.Command) error {
	if path, err := config.LoadDotEnv("."); err != nil {
		log.Warn().Err(err).Msg("load .env failed")
	} else if path != "" {
		log.Debug().Str("dotenv", path).Msg("loaded .env")
	}

	cfg = config.FromEnv()
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel, _ = cmd.Flags().GetString("log-level")
	}
	if cmd.Flags().Lookup("bind") != nil && cmd.Flags().Changed("bind") {
		cfg.Bind, _ = cmd.Flags().GetString("bind")
	}
	if cmd.Flags().Lookup("port") != nil && cmd.Flags().Changed("port") {
		cfg.Port, _ = cmd.Flags().GetString("port")
	}

	level, err := cfg.Level()
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(level)
	return nil
}

// newDeviceChannel registers the platform probe on a fresh messenger
func newDeviceChannel() (*channel.Messenger, *channel.MethodChannel) {
	m := channel.NewMessenger()
	c := probe.NewDispatcher(probe.NewPlatform(probe.Options{})).Register(m)
	return m, c
}
