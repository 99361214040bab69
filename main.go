package main

import (
	"context"
	"os"

	"savoia/internal/configuration"
	"savoia/internal/core"

	"go.uber.org/zap"
)

func main() {
	zap.ReplaceGlobals(zap.Must(zap.NewProduction()))

	config := configuration.Read()
	core.NewLogger(config.App.LogLevel)

	app := core.NewApplication(config)

	shell := core.NewShell(app.Controller, os.Stdin, os.Stdout)
	if err := shell.Run(context.Background()); err != nil {
		zap.L().Fatal("Shell terminated", zap.Error(err))
	}
}
