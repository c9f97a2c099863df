package cli_cmds

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ghostbank/ghostbank-go/domain/models"
	"github.com/ghostbank/ghostbank-go/internal/cli"
)

// NewBalances creates a command that prints the session balances
func NewBalances(params *cli.CmdParams) *cobra.Command {
	return &cobra.Command{
		Use:   "balances",
		Short: "Show per-currency balances",
		Long:  `Display the current balance of every supported currency in the session.`,
		Run: func(cmd *cobra.Command, args []string) {
			session := GetSession(params)
			snapshot := session.Ledger.Snapshot()

			cmd.Println("Balances:")
			for _, code := range models.Currencies() {
				cmd.Println(fmt.Sprintf("  %-6s %s", code, snapshot[code]))
			}
		},
	}
}

// NewHistory creates a command that prints the transaction history
func NewHistory(params *cli.CmdParams) *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Show transaction history",
		Long:  `Display the session transaction history, most recent first.`,
		Run: func(cmd *cobra.Command, args []string) {
			session := GetSession(params)
			all := session.Log.All()

			if len(all) == 0 {
				cmd.Println("No transactions yet.")
				return
			}

			for _, tx := range all {
				when := time.UnixMilli(tx.Timestamp).Format("2006-01-02 15:04:05")
				line := fmt.Sprintf("%s  %-7s %10s %-5s %-10s %s", when, tx.Type, tx.Amount, tx.Currency, tx.Status, tx.ID)
				cmd.Println(line)
			}
		},
	}
}
