package domain

import (
	"strings"

	"github.com/kballard/go-shellquote"
)

// ToolCommand is a fully assembled invocation of the external chain tool
type ToolCommand struct {
	// Binary is the executable name or path
	Binary string
	// Args are passed to the binary verbatim, no shell is involved
	Args []string
	// Dir is the working directory the tool runs in
	Dir string
}

// Argv returns the binary followed by its arguments
func (c *ToolCommand) Argv() []string {
	argv := make([]string, 0, len(c.Args)+1)
	argv = append(argv, c.Binary)
	return append(argv, c.Args...)
}

// String renders the command as a POSIX shell command line.
// Every word is quoted individually, so splitting the line in a shell yields Argv.
func (c *ToolCommand) String() string {
	argv := c.Argv()
	words := make([]string, 0, len(argv))
	for _, word := range argv {
		quoted := shellquote.Join(word)
		// sh treats a word-initial # as the start of a comment
		if strings.HasPrefix(quoted, "#") {
			quoted = `\` + quoted
		}
		words = append(words, quoted)
	}
	return strings.Join(words, " ")
}

// InvocationResult is the outcome of running the external tool once
type InvocationResult struct {
	ExitCode int
	// Output holds stdout and stderr merged in the order they were written
	Output []byte
}

// Succeeded reports whether the tool exited with status zero
func (r *InvocationResult) Succeeded() bool {
	return r.ExitCode == 0
}

// DeployReceipt holds the values the tool reports for a submitted deployment.
// A nil field means the tool did not report it.
type DeployReceipt struct {
	TransactionHash *string
	ContractAddress *string
}

// Receipt field names in the tool's output file
const (
	ReceiptKeyTransactionHash = "emittedTransactionHash"
	ReceiptKeyContractAddress = "contractAddress"
)
