package fs

import (
	"context"
	"log/slog"
	"os"

	"github.com/lamentierschweinchen/public-commitment-fund/internal/domain"
	"github.com/lamentierschweinchen/public-commitment-fund/internal/domain/config"
	"github.com/lamentierschweinchen/public-commitment-fund/internal/usecase"
)

// ArtifactCheckerAdapter checks the compiled bytecode on the local file system
type ArtifactCheckerAdapter struct {
	log *slog.Logger
}

// NewArtifactCheckerAdapter creates a new ArtifactCheckerAdapter
func NewArtifactCheckerAdapter(log *slog.Logger) *ArtifactCheckerAdapter {
	return &ArtifactCheckerAdapter{
		log: log.With("component", "ArtifactCheckerAdapter"),
	}
}

// CheckArtifact returns a *domain.ArtifactMissingError unless path is a regular file
func (a *ArtifactCheckerAdapter) CheckArtifact(ctx context.Context, path string) error {
	info, err := os.Stat(path)
	if err == nil && !info.IsDir() {
		a.log.Debug("artifact found", "path", path, "size", info.Size())
		return nil
	}
	if err != nil {
		a.log.Debug("artifact not readable", "path", path, "error", err)
	}

	return &domain.ArtifactMissingError{
		Path:      path,
		BuildHint: config.BuildCommand,
	}
}

// Ensure the adapter implements the interface
var _ usecase.ArtifactChecker = (*ArtifactCheckerAdapter)(nil)
