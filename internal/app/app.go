package app

import (
	"github.com/lamentierschweinchen/public-commitment-fund/internal/cli/render"
	"github.com/lamentierschweinchen/public-commitment-fund/internal/domain/config"
	"github.com/lamentierschweinchen/public-commitment-fund/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig

	// Use cases
	DeployContract *usecase.DeployContract
	ShowConfig     *usecase.ShowConfig
	ListNetworks   *usecase.ListNetworks

	// Renderers
	DeployRenderer *render.DeployRenderer
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	deployContract *usecase.DeployContract,
	showConfig *usecase.ShowConfig,
	listNetworks *usecase.ListNetworks,
	deployRenderer *render.DeployRenderer,
) *App {
	return &App{
		Config:         cfg,
		DeployContract: deployContract,
		ShowConfig:     showConfig,
		ListNetworks:   listNetworks,
		DeployRenderer: deployRenderer,
	}
}
