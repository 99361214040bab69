package core

import "go.uber.org/zap"

// NewLogger swaps the bootstrap logger for one honouring the configured level.
func NewLogger(level string) {
	atomic, err := zap.ParseAtomicLevel(level)
	if err != nil {
		zap.L().Warn("Unknown log level, keeping the default", zap.String("level", level))
		return
	}

	config := zap.NewProductionConfig()
	config.Level = atomic
	zap.ReplaceGlobals(zap.Must(config.Build()))
}
