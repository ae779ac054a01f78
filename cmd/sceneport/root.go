package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/sceneport/cmd/sceneport/opts"
	"github.com/walteh/sceneport/pkg/config"
	"github.com/walteh/sceneport/pkg/log"
	"gitlab.com/tozd/go/errors"
)

var (
	// Flags
	configFile string
	hostName   string
	addr       string
	debug      bool
)

// newRootOpts creates a new rootOpts with initialized dependencies
func newRootOpts(ctx context.Context) (*opts.RootOpts, error) {
	logger := log.New(os.Stdout, zerolog.InfoLevel)
	if debug {
		logger = log.New(os.Stdout, zerolog.DebugLevel)
	}

	cfg, err := loadConfig(ctx)
	if err != nil {
		return nil, errors.Errorf("loading config: %w", err)
	}

	return &opts.RootOpts{
		Config: cfg,
		Logger: logger,
		Host:   hostName,
		Addr:   addr,
	}, nil
}

// loadConfig loads the profile file, or synthesizes a single-host config
// from --addr / SCENEPORT_ADDR when no file exists
func loadConfig(ctx context.Context) (*config.Config, error) {
	if _, err := os.Stat(configFile); err == nil {
		return config.Load(ctx, configFile)
	}

	address := addr
	if address == "" {
		address = os.Getenv("SCENEPORT_ADDR")
	}
	if address == "" {
		return nil, errors.Errorf("no config file at %s and no --addr or SCENEPORT_ADDR given", configFile)
	}

	cfg := &config.Config{
		Hosts: []config.Host{{Name: "default", Address: address}},
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&configFile, "config", "c", ".sceneport.hcl", "config file path")
	cmd.PersistentFlags().StringVarP(&hostName, "host", "H", "", "host profile to use")
	cmd.PersistentFlags().StringVarP(&addr, "addr", "a", "", "command port address override")
	cmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")
}

// setupLogging configures zerolog based on flags and the environment.
// A .env file can carry SCENEPORT_* settings for local development.
func setupLogging() {
	_ = godotenv.Load()

	if debug || os.Getenv("SCENEPORT_DEBUG") != "" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &logger
}
