package cli_cmds

import (
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/ghostbank/ghostbank-go/domain/models"
	"github.com/ghostbank/ghostbank-go/internal"
	"github.com/ghostbank/ghostbank-go/internal/cli"
)

// NewSend creates the outbound payment command
func NewSend(params *cli.CmdParams) *cobra.Command {
	var destination string

	cmd := &cobra.Command{
		Use:   "send <currency> <amount>",
		Short: "Send an amount to a destination",
		Long:  `Send an amount of a currency through the routed payment lifecycle.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			currency, amount, err := parseCurrencyAmount(args[0], args[1])
			if err != nil {
				return err
			}

			session := GetSession(params)
			tx, err := session.Processor.CreateSend(cmd.Context(), destination, currency, amount)
			if err != nil {
				params.Logger.Error(internal.ComponentCLI, "Send failed: %v", err)
				return err
			}

			cmd.Printf("Sent %s %s\n", tx.Amount, tx.Currency)
			cmd.Printf("  id:        %s\n", tx.ID)
			cmd.Printf("  status:    %s\n", tx.Status)
			cmd.Printf("  signature: %s\n", tx.Signature)
			return nil
		},
	}

	cmd.Flags().StringVarP(&destination, "to", "t", "hidden recipient", "destination descriptor")
	return cmd
}

// NewConvert creates the currency conversion command
func NewConvert(params *cli.CmdParams) *cobra.Command {
	return &cobra.Command{
		Use:   "convert <from> <to> <amount>",
		Short: "Convert between currencies",
		Long:  `Convert an amount from one currency to another at the configured rate.`,
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, amount, err := parseCurrencyAmount(args[0], args[2])
			if err != nil {
				return err
			}
			to := models.CurrencyCode(args[1])

			session := GetSession(params)
			tx, err := session.Processor.CreateConvert(cmd.Context(), from, to, amount)
			if err != nil {
				params.Logger.Error(internal.ComponentCLI, "Convert failed: %v", err)
				return err
			}

			cmd.Printf("Converted %s %s -> %s\n", tx.Amount, from, to)
			cmd.Printf("  id:     %s\n", tx.ID)
			cmd.Printf("  status: %s\n", tx.Status)
			return nil
		},
	}
}

// NewReceive creates the inbound credit command
func NewReceive(params *cli.CmdParams) *cobra.Command {
	return &cobra.Command{
		Use:   "receive <currency> <amount>",
		Short: "Record an inbound credit",
		Long:  `Credit an inbound amount to the session ledger.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			currency, amount, err := parseCurrencyAmount(args[0], args[1])
			if err != nil {
				return err
			}

			session := GetSession(params)
			tx, err := session.Processor.RecordReceive(currency, amount)
			if err != nil {
				params.Logger.Error(internal.ComponentCLI, "Receive failed: %v", err)
				return err
			}

			cmd.Printf("Received %s %s (%s)\n", tx.Amount, tx.Currency, tx.ID)
			return nil
		},
	}
}

func parseCurrencyAmount(currencyArg, amountArg string) (models.CurrencyCode, decimal.Decimal, error) {
	currency := models.CurrencyCode(currencyArg)
	if !currency.IsValid() {
		return "", decimal.Zero, models.ErrInvalidCurrency
	}

	amount, err := decimal.NewFromString(amountArg)
	if err != nil {
		return "", decimal.Zero, models.ErrInvalidAmount
	}

	return currency, amount, nil
}
