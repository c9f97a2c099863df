package cli_cmds

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ghostbank/ghostbank-go/internal"
	"github.com/ghostbank/ghostbank-go/internal/cli"
)

// NewVersion creates a version command for the wallet
func NewVersion(params *cli.CmdParams) *cobra.Command {
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version of GhostBank",
		Long:  `Print the version information for GhostBank including build details.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("GhostBank")
			fmt.Println("=========")
			fmt.Printf("%s\n", internal.VersionInfo())
		},
	}

	return versionCmd
}
