package core

import (
	"savoia/internal/api"
	"savoia/internal/flow"
	"savoia/internal/models"
	"savoia/internal/storage"

	"go.uber.org/zap"
)

// Application holds the wired pieces of the auth client.
type Application struct {
	Controller *flow.Controller
	Backend    api.IBackend
	Tokens     storage.ITokenStore
}

func NewApplication(config models.Configuration) *Application {
	tokens := NewTokenStore(config.Storage)
	if tokens == nil {
		zap.L().Fatal("Unknown storage type", zap.String("type", config.Storage.Type))
	}

	backend := api.NewClient(config.API, tokens, zap.L())
	controller := flow.NewController(backend, tokens, zap.L())

	return &Application{
		Controller: controller,
		Backend:    backend,
		Tokens:     tokens,
	}
}
