package adapters

import (
	"github.com/google/wire"
	"github.com/lamentierschweinchen/public-commitment-fund/internal/adapters/fs"
	"github.com/lamentierschweinchen/public-commitment-fund/internal/adapters/interactive"
	"github.com/lamentierschweinchen/public-commitment-fund/internal/adapters/mxpy"
	"github.com/lamentierschweinchen/public-commitment-fund/internal/adapters/progress"
	"github.com/lamentierschweinchen/public-commitment-fund/internal/usecase"
)

// FSSet provides filesystem-based implementations
var FSSet = wire.NewSet(
	fs.NewArtifactCheckerAdapter,
	wire.Bind(new(usecase.ArtifactChecker), new(*fs.ArtifactCheckerAdapter)),

	fs.NewReceiptReaderAdapter,
	wire.Bind(new(usecase.ReceiptReader), new(*fs.ReceiptReaderAdapter)),
)

// MxpySet provides the external tool implementations
var MxpySet = wire.NewSet(
	mxpy.NewCommandBuilderAdapter,
	wire.Bind(new(usecase.DeployCommandBuilder), new(*mxpy.CommandBuilderAdapter)),

	mxpy.NewToolRunnerAdapter,
	wire.Bind(new(usecase.ToolRunner), new(*mxpy.ToolRunnerAdapter)),
)

// InteractiveSet provides interactive implementations
var InteractiveSet = wire.NewSet(
	interactive.NewConfirmerAdapter,
	wire.Bind(new(usecase.DeployConfirmer), new(*interactive.ConfirmerAdapter)),
)

// ProgressSet provides the progress sink for the current terminal
var ProgressSet = wire.NewSet(
	progress.ProvideProgressSink,
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	FSSet,
	MxpySet,
	InteractiveSet,
	ProgressSet,
)
