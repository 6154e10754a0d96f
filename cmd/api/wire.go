//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	quoteweb "github.com/mmonclus-coder/quote-web"
	"github.com/mmonclus-coder/quote-web/config"
	"github.com/mmonclus-coder/quote-web/counter"
	"github.com/mmonclus-coder/quote-web/driver"
	"github.com/mmonclus-coder/quote-web/handlers"
	"github.com/mmonclus-coder/quote-web/pdf"
	"github.com/mmonclus-coder/quote-web/quote"
	"github.com/mmonclus-coder/quote-web/server"
)

func InitializeQuoteService() (*server.Server, error) {

	wire.Build(
		config.ProvideApplicationConfig,
		config.NewLogger,
		config.ProvidePostgresConn,
		config.ProvideRedis,
		config.ProvideRendererConfig,
		driver.NewTransactionManager,
		wire.Bind(new(driver.TxManager), new(*driver.TransactionManager)),
		counter.NewRepository,
		counter.NewService,
		quote.NewRepository,
		quote.NewService,
		pdf.NewRenderer,
		wire.Bind(new(quoteweb.Renderer), new(*pdf.Renderer)),
		provideUnitPrice,
		quoteweb.NewWorkflow,
		provideReaper,
		handlers.NewQuoteHandler,
		server.NewServer,
	)

	return &server.Server{}, nil
}
