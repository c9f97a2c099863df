package cli_cmds

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/ghostbank/ghostbank-go/domain/models"
	"github.com/ghostbank/ghostbank-go/internal"
	"github.com/ghostbank/ghostbank-go/internal/cli"
)

// NewDemo creates a command that submits a burst of concurrent sends
// against one currency to exercise the per-currency ordering guarantee.
func NewDemo(params *cli.CmdParams) *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run a concurrent submission burst",
		Long:  `Submit a burst of small concurrent sends and verify the final balance matches the sequential result.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			session := GetSession(params)
			currency := models.CurrencyBRL
			amount := decimal.NewFromInt(1)

			before, err := session.Ledger.Balance(currency)
			if err != nil {
				return err
			}

			g, ctx := errgroup.WithContext(cmd.Context())
			for i := 0; i < count; i++ {
				g.Go(func() error {
					_, err := session.Processor.CreateSend(ctx, "burst", currency, amount)
					return err
				})
			}
			if err := g.Wait(); err != nil {
				params.Logger.Error(internal.ComponentCLI, "Demo burst failed: %v", err)
				return err
			}

			after, err := session.Ledger.Balance(currency)
			if err != nil {
				return err
			}

			expected := before.Sub(amount.Mul(decimal.NewFromInt(int64(count))))
			if !after.Equal(expected) {
				return fmt.Errorf("balance drift: want %s, got %s", expected, after)
			}

			cmd.Printf("%d sends applied, %s: %s -> %s\n", count, currency, before, after)
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 25, "number of concurrent sends")
	return cmd
}
