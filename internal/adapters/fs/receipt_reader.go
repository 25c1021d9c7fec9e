package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/lamentierschweinchen/public-commitment-fund/internal/domain"
	"github.com/lamentierschweinchen/public-commitment-fund/internal/usecase"
)

// ErrReceiptNotObject is returned when the output file holds JSON that is not an object
var ErrReceiptNotObject = errors.New("deploy output is not a JSON object")

// ReceiptReaderAdapter reads the JSON file mxpy writes with --outfile
type ReceiptReaderAdapter struct {
	log *slog.Logger
}

// NewReceiptReaderAdapter creates a new ReceiptReaderAdapter
func NewReceiptReaderAdapter(log *slog.Logger) *ReceiptReaderAdapter {
	return &ReceiptReaderAdapter{
		log: log.With("component", "ReceiptReaderAdapter"),
	}
}

// ReadReceipt parses the output file. Missing fields are left nil.
func (r *ReceiptReaderAdapter) ReadReceipt(ctx context.Context, path string) (*domain.DeployReceipt, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var payload map[string]json.RawMessage
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if payload == nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, ErrReceiptNotObject)
	}

	receipt := &domain.DeployReceipt{
		TransactionHash: stringField(payload, domain.ReceiptKeyTransactionHash),
		ContractAddress: stringField(payload, domain.ReceiptKeyContractAddress),
	}
	r.log.Debug("receipt parsed", "path", path,
		"hasTransactionHash", receipt.TransactionHash != nil,
		"hasContractAddress", receipt.ContractAddress != nil)

	return receipt, nil
}

// stringField returns the field as a string, its raw JSON text when it is
// not a string, or nil when it is absent or null
func stringField(payload map[string]json.RawMessage, key string) *string {
	raw, ok := payload[key]
	if !ok {
		return nil
	}
	raw = bytes.TrimSpace(raw)
	if bytes.Equal(raw, []byte("null")) {
		return nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return &s
	}
	text := string(raw)
	return &text
}

// Ensure the adapter implements the interface
var _ usecase.ReceiptReader = (*ReceiptReaderAdapter)(nil)
