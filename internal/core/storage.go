package core

import (
	"savoia/internal/configuration"
	"savoia/internal/models"
	"savoia/internal/storage"

	"go.uber.org/zap"
)

func NewTokenStore(config models.StorageConfiguration) storage.ITokenStore {
	switch config.Type {
	case configuration.ProviderSQLite:
		store, err := storage.NewSQLiteTokenStore(config.SQLite.Path)
		if err != nil {
			zap.L().Fatal("Failed to open the token database",
				zap.String("path", config.SQLite.Path),
				zap.Error(err))
		}
		return store
	case configuration.ProviderMemory:
		return storage.NewMemoryTokenStore()
	default:
		return nil
	}
}
