package progress

import (
	"os"

	"github.com/lamentierschweinchen/public-commitment-fund/internal/domain/config"
	"github.com/lamentierschweinchen/public-commitment-fund/internal/usecase"
	"github.com/mattn/go-isatty"
)

// ProvideProgressSink picks the spinner for interactive terminals and a no-op sink otherwise
func ProvideProgressSink(cfg *config.RuntimeConfig) usecase.ProgressSink {
	if cfg.NonInteractive || !isatty.IsTerminal(os.Stderr.Fd()) {
		return NewNopSink()
	}
	return NewStderrSpinnerSink()
}
