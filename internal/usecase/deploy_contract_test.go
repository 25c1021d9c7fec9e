package usecase_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/lamentierschweinchen/public-commitment-fund/internal/domain"
	"github.com/lamentierschweinchen/public-commitment-fund/internal/domain/config"
	"github.com/lamentierschweinchen/public-commitment-fund/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockArtifactChecker struct {
	mock.Mock
}

func (m *MockArtifactChecker) CheckArtifact(ctx context.Context, path string) error {
	args := m.Called(ctx, path)
	return args.Error(0)
}

type MockCommandBuilder struct {
	mock.Mock
}

func (m *MockCommandBuilder) BuildDeployCommand(cfg config.DeployConfig) *domain.ToolCommand {
	args := m.Called(cfg)
	return args.Get(0).(*domain.ToolCommand)
}

type MockToolRunner struct {
	mock.Mock
}

func (m *MockToolRunner) Run(ctx context.Context, cmd *domain.ToolCommand) (*domain.InvocationResult, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InvocationResult), args.Error(1)
}

type MockReceiptReader struct {
	mock.Mock
}

func (m *MockReceiptReader) ReadReceipt(ctx context.Context, path string) (*domain.DeployReceipt, error) {
	args := m.Called(ctx, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DeployReceipt), args.Error(1)
}

type MockConfirmer struct {
	mock.Mock
}

func (m *MockConfirmer) ConfirmDeploy(ctx context.Context, cfg config.DeployConfig) (bool, error) {
	args := m.Called(ctx, cfg)
	return args.Bool(0), args.Error(1)
}

// recordingReporter keeps what the use case echoed
type recordingReporter struct {
	commands []*domain.ToolCommand
	outputs  [][]byte
}

func (r *recordingReporter) ReportCommand(cmd *domain.ToolCommand) {
	r.commands = append(r.commands, cmd)
}

func (r *recordingReporter) ReportOutput(output []byte) {
	r.outputs = append(r.outputs, output)
}

type deployFixture struct {
	cfg       *config.RuntimeConfig
	artifacts *MockArtifactChecker
	builder   *MockCommandBuilder
	runner    *MockToolRunner
	receipts  *MockReceiptReader
	confirmer *MockConfirmer
	reporter  *recordingReporter
	command   *domain.ToolCommand
}

func newDeployFixture(chainID string) *deployFixture {
	f := &deployFixture{
		cfg: &config.RuntimeConfig{
			ProjectRoot: "/work/pcf",
			Deploy: config.DeployConfig{
				ProjectRoot:  "/work/pcf",
				ArtifactPath: "/work/pcf/contract/output/public-commitment-fund.wasm",
				PemFile:      "/work/pcf/wallet.pem",
				Proxy:        "https://devnet-api.multiversx.com",
				ChainID:      chainID,
				GasLimit:     80000000,
				OutFile:      "deploy.json",
				ToolBinary:   "mxpy",
				Network:      config.NetworkByChainID(chainID),
			},
		},
		artifacts: new(MockArtifactChecker),
		builder:   new(MockCommandBuilder),
		runner:    new(MockToolRunner),
		receipts:  new(MockReceiptReader),
		confirmer: new(MockConfirmer),
		reporter:  &recordingReporter{},
		command:   &domain.ToolCommand{Binary: "mxpy", Args: []string{"contract", "deploy", "--send"}, Dir: "/work/pcf"},
	}
	f.builder.On("BuildDeployCommand", f.cfg.Deploy).Return(f.command).Maybe()
	return f
}

func (f *deployFixture) useCase() *usecase.DeployContract {
	return usecase.NewDeployContract(
		f.cfg,
		f.artifacts,
		f.builder,
		f.runner,
		f.receipts,
		f.confirmer,
		f.reporter,
		usecase.NopProgress{},
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
}

func strPtr(s string) *string { return &s }

func TestDeployContract(t *testing.T) {
	ctx := context.Background()

	t.Run("missing artifact never invokes the tool", func(t *testing.T) {
		f := newDeployFixture("D")
		missing := &domain.ArtifactMissingError{Path: f.cfg.Deploy.ArtifactPath}
		f.artifacts.On("CheckArtifact", ctx, f.cfg.Deploy.ArtifactPath).Return(missing)

		result, err := f.useCase().Run(ctx, usecase.DeployContractParams{})

		require.Error(t, err)
		assert.Nil(t, result)
		var target *domain.ArtifactMissingError
		require.ErrorAs(t, err, &target)
		assert.Equal(t, 1, target.ExitCode())
		f.builder.AssertNotCalled(t, "BuildDeployCommand", mock.Anything)
		f.runner.AssertNotCalled(t, "Run", mock.Anything, mock.Anything)
		f.receipts.AssertNotCalled(t, "ReadReceipt", mock.Anything, mock.Anything)
		assert.Empty(t, f.reporter.commands)
	})

	t.Run("tool failure propagates exit code and skips the receipt", func(t *testing.T) {
		for _, code := range []int{1, 2, 42, 127} {
			f := newDeployFixture("D")
			f.artifacts.On("CheckArtifact", ctx, mock.Anything).Return(nil)
			f.runner.On("Run", ctx, f.command).Return(&domain.InvocationResult{
				ExitCode: code,
				Output:   []byte("error: insufficient funds\n"),
			}, nil)

			result, err := f.useCase().Run(ctx, usecase.DeployContractParams{})

			var failed *domain.ToolFailedError
			require.ErrorAs(t, err, &failed)
			assert.Equal(t, code, failed.ExitCode())
			require.NotNil(t, result)
			assert.Equal(t, code, result.Invocation.ExitCode)
			assert.Equal(t, [][]byte{[]byte("error: insufficient funds\n")}, f.reporter.outputs)
			f.receipts.AssertNotCalled(t, "ReadReceipt", mock.Anything, mock.Anything)
		}
	})

	t.Run("success reads the receipt from the output file", func(t *testing.T) {
		f := newDeployFixture("D")
		f.artifacts.On("CheckArtifact", ctx, mock.Anything).Return(nil)
		f.runner.On("Run", ctx, f.command).Return(&domain.InvocationResult{Output: []byte("ok\n")}, nil)
		receipt := &domain.DeployReceipt{
			TransactionHash: strPtr("0xabc"),
			ContractAddress: strPtr("erd1xyz"),
		}
		f.receipts.On("ReadReceipt", ctx, "/work/pcf/deploy.json").Return(receipt, nil)

		result, err := f.useCase().Run(ctx, usecase.DeployContractParams{})

		require.NoError(t, err)
		assert.Same(t, receipt, result.Receipt)
		assert.NoError(t, result.ReceiptErr)
		require.Len(t, f.reporter.commands, 1)
		assert.Same(t, f.command, f.reporter.commands[0])
		f.confirmer.AssertNotCalled(t, "ConfirmDeploy", mock.Anything, mock.Anything)
	})

	t.Run("unreadable receipt is kept on the result", func(t *testing.T) {
		f := newDeployFixture("D")
		f.artifacts.On("CheckArtifact", ctx, mock.Anything).Return(nil)
		f.runner.On("Run", ctx, f.command).Return(&domain.InvocationResult{}, nil)
		parseErr := errors.New("unexpected end of JSON input")
		f.receipts.On("ReadReceipt", ctx, mock.Anything).Return(nil, parseErr)

		result, err := f.useCase().Run(ctx, usecase.DeployContractParams{})

		require.NoError(t, err)
		assert.Nil(t, result.Receipt)
		assert.ErrorIs(t, result.ReceiptErr, parseErr)
	})

	t.Run("runner error is returned", func(t *testing.T) {
		f := newDeployFixture("D")
		f.artifacts.On("CheckArtifact", ctx, mock.Anything).Return(nil)
		f.runner.On("Run", ctx, f.command).Return(nil, context.Canceled)

		_, err := f.useCase().Run(ctx, usecase.DeployContractParams{})

		assert.ErrorIs(t, err, context.Canceled)
		f.receipts.AssertNotCalled(t, "ReadReceipt", mock.Anything, mock.Anything)
	})

	t.Run("dry run echoes without invoking", func(t *testing.T) {
		f := newDeployFixture("D")
		f.artifacts.On("CheckArtifact", ctx, mock.Anything).Return(nil)

		result, err := f.useCase().Run(ctx, usecase.DeployContractParams{DryRun: true})

		require.NoError(t, err)
		assert.True(t, result.DryRun)
		assert.Nil(t, result.Invocation)
		assert.Len(t, f.reporter.commands, 1)
		f.runner.AssertNotCalled(t, "Run", mock.Anything, mock.Anything)
		f.receipts.AssertNotCalled(t, "ReadReceipt", mock.Anything, mock.Anything)
	})

	t.Run("declined mainnet confirmation aborts", func(t *testing.T) {
		f := newDeployFixture("1")
		f.artifacts.On("CheckArtifact", ctx, mock.Anything).Return(nil)
		f.confirmer.On("ConfirmDeploy", ctx, f.cfg.Deploy).Return(false, nil)

		_, err := f.useCase().Run(ctx, usecase.DeployContractParams{})

		assert.ErrorIs(t, err, domain.ErrDeployAborted)
		f.runner.AssertNotCalled(t, "Run", mock.Anything, mock.Anything)
	})

	t.Run("mainnet confirmation skipped with assume yes", func(t *testing.T) {
		f := newDeployFixture("1")
		f.artifacts.On("CheckArtifact", ctx, mock.Anything).Return(nil)
		f.runner.On("Run", ctx, f.command).Return(&domain.InvocationResult{}, nil)
		f.receipts.On("ReadReceipt", ctx, mock.Anything).Return(&domain.DeployReceipt{}, nil)

		_, err := f.useCase().Run(ctx, usecase.DeployContractParams{AssumeYes: true})

		require.NoError(t, err)
		f.confirmer.AssertNotCalled(t, "ConfirmDeploy", mock.Anything, mock.Anything)
	})

	t.Run("mainnet confirmation skipped when non-interactive", func(t *testing.T) {
		f := newDeployFixture("1")
		f.cfg.NonInteractive = true
		f.artifacts.On("CheckArtifact", ctx, mock.Anything).Return(nil)
		f.runner.On("Run", ctx, f.command).Return(&domain.InvocationResult{}, nil)
		f.receipts.On("ReadReceipt", ctx, mock.Anything).Return(&domain.DeployReceipt{}, nil)

		_, err := f.useCase().Run(ctx, usecase.DeployContractParams{})

		require.NoError(t, err)
		f.confirmer.AssertNotCalled(t, "ConfirmDeploy", mock.Anything, mock.Anything)
	})
}

func TestShowConfig(t *testing.T) {
	cfg := &config.RuntimeConfig{
		ProjectRoot: "/work/pcf",
		NetworkName: "testnet",
		Deploy: config.DeployConfig{
			ChainID:  "T",
			GasLimit: 60000000,
			Network:  config.NetworkByChainID("T"),
		},
		Sources: map[string]config.Source{
			config.KeyChain:    config.SourceEnv,
			config.KeyGasLimit: config.SourceFlag,
		},
	}

	result, err := usecase.NewShowConfig(cfg).Run(context.Background())
	require.NoError(t, err)

	byKey := make(map[string]usecase.ConfigEntry)
	for _, e := range result.Entries {
		byKey[e.Key] = e
	}
	assert.Equal(t, "testnet", byKey[config.KeyNetwork].Value)
	assert.Equal(t, config.SourceEnv, byKey[config.KeyChain].Source)
	assert.Equal(t, "60000000", byKey[config.KeyGasLimit].Value)
	assert.Equal(t, config.SourceFlag, byKey[config.KeyGasLimit].Source)
	assert.Equal(t, config.SourceDefault, byKey[config.KeyPem].Source)
	assert.Equal(t, "MVX_CHAIN_ID", byKey[config.KeyChain].EnvVar)
	assert.Empty(t, byKey[config.KeyGasLimit].EnvVar)
}

func TestShowConfig_NetworkRowUsesPreset(t *testing.T) {
	cfg := &config.RuntimeConfig{
		NetworkName: "testnet",
		Deploy: config.DeployConfig{
			ChainID: "D",
			Network: config.NetworkByChainID("D"),
		},
		Sources: map[string]config.Source{
			config.KeyNetwork: config.SourceFlag,
			config.KeyChain:   config.SourceEnv,
		},
	}

	result, err := usecase.NewShowConfig(cfg).Run(context.Background())
	require.NoError(t, err)

	require.Equal(t, config.KeyNetwork, result.Entries[0].Key)
	assert.Equal(t, "testnet", result.Entries[0].Value)
	assert.Equal(t, config.SourceFlag, result.Entries[0].Source)
	assert.Equal(t, "devnet", result.Network.Name)
}

func TestListNetworks(t *testing.T) {
	cfg := &config.RuntimeConfig{Deploy: config.DeployConfig{ChainID: "T"}}

	result, err := usecase.NewListNetworks(cfg).Run(context.Background())
	require.NoError(t, err)
	require.Len(t, result.Networks, 3)

	for _, status := range result.Networks {
		assert.Equal(t, status.Network.Name == "testnet", status.Active, status.Network.Name)
	}
}
