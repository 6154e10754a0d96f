package main

import (
	"time"

	"go.uber.org/zap"

	quoteweb "github.com/mmonclus-coder/quote-web"
	"github.com/mmonclus-coder/quote-web/config"
)

const (
	reaperWorkers   = 2
	reaperQueueSize = 64
	reaperGrace     = 30 * time.Second
)

func provideUnitPrice(appConfig *config.Config) float64 {
	return appConfig.Quote.UnitPrice
}

func provideReaper(logger *zap.Logger) *quoteweb.Reaper {
	return quoteweb.NewReaper(reaperWorkers, reaperQueueSize, reaperGrace, logger)
}
