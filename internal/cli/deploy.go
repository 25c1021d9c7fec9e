package cli

import (
	"github.com/lamentierschweinchen/public-commitment-fund/internal/usecase"
	"github.com/spf13/cobra"
)

// NewDeployCmd creates the deploy command
func NewDeployCmd() *cobra.Command {
	var params usecase.DeployContractParams

	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Deploy the compiled contract with mxpy",
		Long: `Deploy contract/output/public-commitment-fund.wasm by running

  mxpy contract deploy --bytecode=... --pem=... --gas-limit=... \
    --proxy=... --chain=... --send --outfile=...

from the project root. The command line is echoed before it runs and the
tool output is printed once it exits. On success the transaction hash and
contract address are read back from the output file.

Settings come from flags, then PEM_FILE, MVX_PROXY, MVX_CHAIN_ID,
DEPLOY_GAS_LIMIT, DEPLOY_OUTFILE and MXPY_BIN, then the [deploy] table of
deploy.toml, then the --network preset, then built-in defaults.`,
		Example: `  # Deploy to devnet with wallet.pem from the project root
  pcf-deploy deploy

  # Show the mxpy invocation without running it
  pcf-deploy deploy --dry-run

  # Deploy to testnet with a custom key
  pcf-deploy deploy --network testnet --pem ~/keys/deployer.pem`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.DeployContract.Run(cmd.Context(), params)
			if err != nil {
				if app.DeployRenderer.RenderError(err) {
					return reported(err)
				}
				return err
			}

			return app.DeployRenderer.Render(result)
		},
	}

	cmd.Flags().String("pem", "", "Wallet key file passed to mxpy (env PEM_FILE)")
	cmd.Flags().String("proxy", "", "Network API endpoint (env MVX_PROXY)")
	cmd.Flags().String("chain", "", "Chain id: D, T or 1 (env MVX_CHAIN_ID)")
	cmd.Flags().Uint64("gas-limit", 0, "Gas limit for the deploy transaction (env DEPLOY_GAS_LIMIT)")
	cmd.Flags().String("outfile", "", "File mxpy writes the deploy result to (env DEPLOY_OUTFILE)")
	cmd.Flags().String("mxpy-bin", "", "mxpy executable to run (env MXPY_BIN)")
	cmd.Flags().BoolVar(&params.DryRun, "dry-run", false, "Print the mxpy command without running it")
	cmd.Flags().BoolVarP(&params.AssumeYes, "yes", "y", false, "Skip the mainnet confirmation prompt")

	return cmd
}
