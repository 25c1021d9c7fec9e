package cli

import (
	"github.com/lamentierschweinchen/public-commitment-fund/internal/cli/render"
	"github.com/spf13/cobra"
)

// NewConfigCmd creates the config command
func NewConfigCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the resolved deployment settings",
		Long: `Show the settings a deploy would use and where each value comes from:
flag, env, deploy.toml, network preset or default.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ShowConfig.Run(cmd.Context())
			if err != nil {
				return err
			}

			renderer := render.NewConfigRenderer(cmd.OutOrStdout(), output)
			return renderer.Render(result)
		},
	}

	// The deploy flags are accepted here too so their effect can be previewed
	cmd.Flags().String("pem", "", "Wallet key file")
	cmd.Flags().String("proxy", "", "Network API endpoint")
	cmd.Flags().String("chain", "", "Chain id")
	cmd.Flags().Uint64("gas-limit", 0, "Gas limit")
	cmd.Flags().String("outfile", "", "Deploy output file")
	cmd.Flags().String("mxpy-bin", "", "mxpy executable")
	cmd.Flags().StringVarP(&output, "output", "o", render.FormatTable, "Output format (table, yaml)")

	return cmd
}
