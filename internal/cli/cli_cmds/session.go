package cli_cmds

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ghostbank/ghostbank-go/domain/usecases"
	"github.com/ghostbank/ghostbank-go/factory"
	"github.com/ghostbank/ghostbank-go/internal"
	"github.com/ghostbank/ghostbank-go/internal/cli"
)

// NewExport creates a command that writes the session state as JSON
func NewExport(params *cli.CmdParams) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export session state",
		Long:  `Write the session balances and transaction history as JSON.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			session := GetSession(params)

			if outPath == "" {
				return session.Export(cmd.OutOrStdout())
			}

			f, err := os.Create(outPath)
			if err != nil {
				return err
			}
			defer f.Close()

			if err := session.Export(f); err != nil {
				return err
			}
			cmd.Printf("Session exported to %s\n", outPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (defaults to stdout)")
	return cmd
}

// NewImport creates a command that restores a session from exported state
func NewImport(params *cli.CmdParams) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import session state",
		Long:  `Restore balances and transaction history from a previously exported JSON file.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			state, err := usecases.DecodeState(f)
			if err != nil {
				params.Logger.Error(internal.ComponentCLI, "Import failed: %v", err)
				return err
			}

			session, err := factory.RestoreSession(state, params.Config, params.Logger)
			if err != nil {
				return err
			}

			SetSession(session)
			cmd.Printf("Imported %d transactions\n", session.Log.Len())
			return nil
		},
	}
}
