package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"finagent/internal/client"
)

func newTxCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Append to or list an asset's ledger",
	}
	cmd.AddCommand(newTxAddCmd(opts), newTxListCmd(opts))
	return cmd
}

func newTxAddCmd(opts *options) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "add TICKER QUANTITY PRICE",
		Short: "Record a purchase (positive quantity) or sale (negative quantity)",
		Example: `  finctl tx add ITSA4.SA 100 10.50 --date 2025-01-15
  finctl tx add ITSA4.SA -- -50 12.10`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			quantity, err := decimal.NewFromString(args[1])
			if err != nil {
				return fmt.Errorf("invalid quantity %q: %w", args[1], err)
			}
			price, err := decimal.NewFromString(args[2])
			if err != nil {
				return fmt.Errorf("invalid price %q: %w", args[2], err)
			}
			if date == "" {
				date = time.Now().Format(time.DateOnly)
			}

			tx, err := opts.client().AddTransaction(cmd.Context(), args[0], client.NewTransaction{
				Quantity:        quantity,
				Price:           price,
				TransactionDate: date,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "recorded %s x %s on %s (%s)\n",
				tx.Quantity, formatMoney(tx.Price, opts.currency), tx.TransactionDate, tx.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "transaction date YYYY-MM-DD (default today)")
	return cmd
}

func newTxListCmd(opts *options) *cobra.Command {
	var skip, limit int

	cmd := &cobra.Command{
		Use:   "list TICKER",
		Short: "List ledger entries in date order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			txs, err := opts.client().ListTransactions(cmd.Context(), args[0], skip, limit)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', tabwriter.AlignRight)
			fmt.Fprintln(w, "DATE\tQUANTITY\tPRICE\tID\t")
			for _, tx := range txs {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t\n",
					tx.TransactionDate, tx.Quantity, formatMoney(tx.Price, opts.currency), tx.ID)
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVar(&skip, "skip", 0, "entries to skip")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum entries (server default when 0)")
	return cmd
}
