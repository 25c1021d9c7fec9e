//go:build wireinject
// +build wireinject

package app

import (
	"io"

	"github.com/google/wire"
	"github.com/lamentierschweinchen/public-commitment-fund/internal/adapters"
	"github.com/lamentierschweinchen/public-commitment-fund/internal/cli/render"
	"github.com/lamentierschweinchen/public-commitment-fund/internal/config"
	"github.com/lamentierschweinchen/public-commitment-fund/internal/logging"
	"github.com/lamentierschweinchen/public-commitment-fund/internal/usecase"
)

// InitApp creates a fully wired App instance
func InitApp(settings *config.Settings, out io.Writer) (*App, error) {
	wire.Build(
		// Configuration
		config.Provider,
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Renderers
		render.NewDeployRenderer,
		wire.Bind(new(usecase.DeployReporter), new(*render.DeployRenderer)),

		// Use cases
		usecase.NewDeployContract,
		usecase.NewShowConfig,
		usecase.NewListNetworks,

		// App
		NewApp,
	)
	return nil, nil
}
