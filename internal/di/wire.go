//go:build wireinject
// +build wireinject

package di

import (
	"BotDash/pkg/config"
	"BotDash/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// The cleanup releases the store; Run also closes it on shutdown.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, func(), error) {
	wire.Build(
		// Ambient
		ProvideLogger,
		ProvideRegistry,
		ProvideMetrics,

		// Repositories
		ProvideSnapshotStore,
		ProvideWebConfigSource,

		// Use cases
		ProvideSnapshotReader,

		// HTTP
		ProvideHandler,
		ProvideRenderer,
		ProvideHTTPServer,

		// Application server
		ProvideApp,
	)
	return nil, nil, nil
}
