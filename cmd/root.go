package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/m04kA/EV-ChargingService/internal/config"
	"github.com/m04kA/EV-ChargingService/pkg/logger"
)

// version подставляется при сборке через -ldflags "-X main.version=..."
var version = "dev"

var cfgPath string

var rootCmd = &cobra.Command{
	Use:           "evcs",
	Short:         "EV charging station booking service",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "config.toml", "configuration file (.toml or .yaml)")
}

// loadConfig загружает конфигурацию и создает логгер
func loadConfig() (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("init logger: %w", err)
	}

	return cfg, log, nil
}
