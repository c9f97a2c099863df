package main

import (
	"fmt"

	"github.com/ghostbank/ghostbank-go/internal"
	"github.com/ghostbank/ghostbank-go/internal/cli"
	"github.com/ghostbank/ghostbank-go/internal/cli/cli_cmds"
)

func main() {
	cfg, log := internal.Init()

	if err := run(cfg, log); err != nil {
		log.Fatal(internal.ComponentGeneral, "Error running wallet: %v", err)
	}
}

func run(cfg *internal.Config, logger *internal.Logger) error {
	// Setup the Root Command with access to the session
	rootParams := &cli.CmdParams{
		Config: cfg,
		Logger: logger,
		Use:    "ghostbank",
		Alias:  "gb",
		Short:  "GhostBank wallet client",
		Long:   "GhostBank wallet client - multi-currency session ledger with routed sends and conversions",
	}

	// Generate command palette
	palette := cli_cmds.GeneratePalette(rootParams)
	rootParams.Palette = palette

	// Create root command
	rootCmd := cli.NewRootCMD(rootParams)

	// Execute root command
	if err := rootCmd.Root.Execute(); err != nil {
		return fmt.Errorf("error executing root command: %v", err)
	}

	return nil
}
