package main

import (
	"go.uber.org/zap"

	"github.com/storefront/backend/config"
)

// newLogger builds a production logger in production and a development logger otherwise
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	zapCfg := zap.NewDevelopmentConfig()
	if cfg.Server.Environment == "production" {
		zapCfg = zap.NewProductionConfig()
	}
	if cfg.Log.Debug {
		zapCfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return zapCfg.Build()
}
