// Package main runs the interactive payment methods menu.
package main

import (
	"os"

	"payproc/internal/config"
	"payproc/internal/console"
	"payproc/internal/logger"
	"payproc/internal/services/payment"
	"payproc/internal/services/processor"
	"payproc/internal/services/registry"
)

func main() {
	config.LoadEnv()
	cfg := config.Load()

	logger.Init(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.LogPretty,
	})
	payment.SetCVVHashCost(cfg.BcryptCost)

	app := console.New(os.Stdin, os.Stdout, registry.New(), processor.New(nil))
	if err := app.Run(); err != nil {
		logger.Fatal().Err(err).Msg("console stopped")
	}
}
