package main

import (
	"os"

	"github.com/lamentierschweinchen/public-commitment-fund/internal/cli"
	"github.com/lamentierschweinchen/public-commitment-fund/internal/config"
)

// Set with -ldflags "-X main.version=..."
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	config.SetBuildFlags(version, commit, date)
	os.Exit(cli.Execute())
}
