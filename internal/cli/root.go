package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/lamentierschweinchen/public-commitment-fund/internal/app"
	"github.com/lamentierschweinchen/public-commitment-fund/internal/config"
	"github.com/spf13/cobra"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pcf-deploy",
		Short: "Deploy the Public Commitment Fund contract to MultiversX",
		Long: `pcf-deploy publishes the compiled Public Commitment Fund contract
(contract/output/public-commitment-fund.wasm) through mxpy and reports the
transaction hash and contract address it receives back.`,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip for help/version commands
			if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			override, _ := cmd.Flags().GetString("project-root")
			if override == "" {
				override = os.Getenv(config.ProjectRootEnv)
			}
			projectRoot, err := config.FindProjectRoot(override)
			if err != nil {
				return fmt.Errorf("failed to find project root: %w", err)
			}

			settings, err := config.NewSettings(projectRoot, cmd.Flags())
			if err != nil {
				return err
			}

			// Initialize app with DI
			appInstance, err := app.InitApp(settings, cmd.OutOrStdout())
			if err != nil {
				if config.IsConfigError(err) {
					return err
				}
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			// Store app in context
			cmd.SetContext(context.WithValue(cmd.Context(), appKey, appInstance))
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringP("network", "n", "", "Network preset for proxy and chain id (devnet, testnet, mainnet)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable interactive prompts")
	rootCmd.PersistentFlags().String("project-root", "", "Project root (defaults to the nearest directory with contract/Cargo.toml)")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "main",
		Title: "Main Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "management",
		Title: "Management Commands",
	})

	deployCmd := NewDeployCmd()
	deployCmd.GroupID = "main"
	rootCmd.AddCommand(deployCmd)

	configCmd := NewConfigCmd()
	configCmd.GroupID = "management"
	rootCmd.AddCommand(configCmd)

	networksCmd := NewNetworksCmd()
	networksCmd.GroupID = "management"
	rootCmd.AddCommand(networksCmd)

	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	app, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return app, nil
}
