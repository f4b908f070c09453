package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"finagent/internal/client"
)

func newAssetsCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assets",
		Short: "List or register assets",
	}
	cmd.AddCommand(newAssetsListCmd(opts), newAssetsAddCmd(opts))
	return cmd
}

func newAssetsListCmd(opts *options) *cobra.Command {
	var page, pageSize int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered assets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := opts.client().ListAssets(cmd.Context(), page, pageSize)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "TICKER\tTYPE\tNAME\tSECTOR")
			for _, a := range result.Data {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", a.Ticker, a.AssetType, a.Name, a.Sector)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "page %d of %d (%d assets)\n", result.Page, result.TotalPages, result.TotalItems)
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&pageSize, "page-size", 20, "assets per page")
	return cmd
}

func newAssetsAddCmd(opts *options) *cobra.Command {
	var asset client.NewAsset

	cmd := &cobra.Command{
		Use:   "add TICKER",
		Short: "Register an asset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			asset.Ticker = args[0]
			created, err := opts.client().CreateAsset(cmd.Context(), asset)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "registered %s (%s)\n", created.Ticker, created.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&asset.Name, "name", "", "display name")
	cmd.Flags().StringVar(&asset.AssetType, "type", "", "asset type (stock, reit, etf)")
	cmd.Flags().StringVar(&asset.Sector, "sector", "", "sector")
	return cmd
}
