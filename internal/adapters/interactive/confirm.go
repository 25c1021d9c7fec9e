package interactive

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/lamentierschweinchen/public-commitment-fund/internal/domain/config"
	"github.com/lamentierschweinchen/public-commitment-fund/internal/usecase"
	"github.com/manifoldco/promptui"
)

// Prompter runs a prompt and returns the entered value
type Prompter interface {
	Run() (string, error)
}

// ConfirmerAdapter asks for confirmation on the terminal
type ConfirmerAdapter struct {
	newPrompt func(label string) Prompter
}

// NewConfirmerAdapter creates a new confirmer backed by promptui
func NewConfirmerAdapter() *ConfirmerAdapter {
	return &ConfirmerAdapter{
		newPrompt: func(label string) Prompter {
			return &promptui.Prompt{
				Label:     label,
				IsConfirm: true,
			}
		},
	}
}

// ConfirmDeploy asks whether to submit the deployment. Answering no is not an error.
func (c *ConfirmerAdapter) ConfirmDeploy(ctx context.Context, cfg config.DeployConfig) (bool, error) {
	target := cfg.ChainID
	if cfg.Network != nil {
		target = fmt.Sprintf("%s (chain %s)", cfg.Network.Name, cfg.ChainID)
	}
	label := color.New(color.FgYellow, color.Bold).Sprintf("Deploy to %s via %s", target, cfg.Proxy)

	_, err := c.newPrompt(label).Run()
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, promptui.ErrAbort):
		return false, nil
	default:
		return false, fmt.Errorf("prompt failed: %w", err)
	}
}

// Ensure the adapter implements the interface
var _ usecase.DeployConfirmer = (*ConfirmerAdapter)(nil)
