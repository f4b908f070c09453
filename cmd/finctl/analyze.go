package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"finagent/internal/analysis"
)

func newAnalyzeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze [TICKER]",
		Short: "Print position analysis for one asset or the whole portfolio",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := opts.client()

			var reports []analysis.Report
			if len(args) == 1 {
				report, err := c.Analyze(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				reports = append(reports, *report)
			} else {
				var err error
				reports, err = c.AnalyzePortfolio(cmd.Context())
				if err != nil {
					return err
				}
			}
			return writeReports(cmd.OutOrStdout(), reports, opts.currency)
		},
	}
}

func writeReports(out io.Writer, reports []analysis.Report, currency string) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "TICKER\tQUANTITY\tAVG PRICE\tINVESTED\tDIVIDENDS\tPRICE\tVALUE\tRETURN\tRETURN %\t")
	for _, r := range reports {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
			r.Ticker,
			r.TotalQuantity,
			formatAmount(r.AveragePrice, currency),
			formatAmount(r.TotalInvested, currency),
			formatAmount(r.TotalDividendsReceived, currency),
			formatOptional(r.CurrentMarketPrice, currency),
			formatOptional(r.CurrentMarketValue, currency),
			formatOptional(r.FinancialReturnValue, currency),
			formatPercent(r.FinancialReturnPercent),
		)
	}
	return w.Flush()
}
