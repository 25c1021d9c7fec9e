package fs

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeReceipt(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "deploy.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadReceipt(t *testing.T) {
	str := func(s string) *string { return &s }

	tests := []struct {
		name        string
		content     string
		wantHash    *string
		wantAddress *string
	}{
		{
			name:        "both fields",
			content:     `{"emittedTransactionHash": "0xabc", "contractAddress": "erd1xyz"}`,
			wantHash:    str("0xabc"),
			wantAddress: str("erd1xyz"),
		},
		{
			name:     "missing contract address",
			content:  `{"emittedTransactionHash": "0xabc"}`,
			wantHash: str("0xabc"),
		},
		{
			name:    "empty object",
			content: `{}`,
		},
		{
			name:        "null is absent",
			content:     `{"emittedTransactionHash": null, "contractAddress": "erd1xyz"}`,
			wantAddress: str("erd1xyz"),
		},
		{
			name:        "non-string value keeps raw json",
			content:     `{"emittedTransactionHash": 12, "contractAddress": {"bech32": "erd1xyz"}}`,
			wantHash:    str("12"),
			wantAddress: str(`{"bech32": "erd1xyz"}`),
		},
		{
			name: "full mxpy output",
			content: `{
  "emittedTransaction": {"nonce": 7, "value": "0", "chainID": "D"},
  "emittedTransactionData": "",
  "emittedTransactionHash": "f3a1c0de",
  "contractAddress": "erd1qqqqqqqqqqqqqpgqr7g7mtfzzqdzmfgnh204ncudsvyg9fqtpkkqzw9k54"
}`,
			wantHash:    str("f3a1c0de"),
			wantAddress: str("erd1qqqqqqqqqqqqqpgqr7g7mtfzzqdzmfgnh204ncudsvyg9fqtpkkqzw9k54"),
		},
	}

	reader := NewReceiptReaderAdapter(testLogger())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			receipt, err := reader.ReadReceipt(context.Background(), writeReceipt(t, tt.content))

			require.NoError(t, err)
			assert.Equal(t, tt.wantHash, receipt.TransactionHash)
			assert.Equal(t, tt.wantAddress, receipt.ContractAddress)
		})
	}
}

func TestReadReceipt_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{name: "empty file", content: ""},
		{name: "not json", content: "Transaction sent!"},
		{name: "truncated", content: `{"emittedTransactionHash": "0xa`},
		{name: "array", content: `["0xabc"]`},
		{name: "json null", content: "null", wantErr: ErrReceiptNotObject},
	}

	reader := NewReceiptReaderAdapter(testLogger())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			receipt, err := reader.ReadReceipt(context.Background(), writeReceipt(t, tt.content))

			require.Error(t, err)
			assert.Nil(t, receipt)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := reader.ReadReceipt(context.Background(), filepath.Join(t.TempDir(), "deploy.json"))

		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}
