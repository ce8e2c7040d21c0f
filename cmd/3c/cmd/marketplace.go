package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/threecommas/pkg/threecommas"
)

func (a *app) marketplaceCmd() *cobra.Command {
	marketRoot := &cobra.Command{
		Use:   "marketplace",
		Short: "Browse the signal marketplace",
	}

	marketRoot.AddCommand(
		a.marketplaceItemsCmd(),
		a.marketplaceSignalsCmd(),
	)

	return marketRoot
}

func addMarketplaceFlags(cmd *cobra.Command, opts *threecommas.MarketplaceOptions) {
	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "page size")
	cmd.Flags().IntVar(&opts.Offset, "offset", 0, "page offset")
	cmd.Flags().StringVar(&opts.Order, "order", "", "subscribers, name or newest")
}

func (a *app) marketplaceItemsCmd() *cobra.Command {
	var opts threecommas.MarketplaceOptions

	cmd := &cobra.Command{
		Use:   "items",
		Short: "List signal providers",
		Example: `  3c marketplace items
  3c marketplace items --scope free`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.newClient(cmd)
			if err != nil {
				return err
			}
			items, err := c.Marketplace.Items(cmd.Context(), &opts)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if a.jsonOutput() {
				return outputJSON(out, items)
			}
			if len(items) == 0 {
				_, err := fmt.Fprintln(out, "No marketplace items found.")
				return err
			}
			return printMarketplaceItemsTable(out, items)
		},
	}
	addMarketplaceFlags(cmd, &opts)
	cmd.Flags().StringVar(&opts.Scope, "scope", "", "all, paid or free")

	return cmd
}

func (a *app) marketplaceSignalsCmd() *cobra.Command {
	var opts threecommas.MarketplaceOptions

	cmd := &cobra.Command{
		Use:     "signals <item-id>",
		Short:   "List the signals of a marketplace item",
		Example: `  3c marketplace signals 11 --limit 20`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			c, err := a.newClient(cmd)
			if err != nil {
				return err
			}
			signals, err := c.Marketplace.ItemSignals(cmd.Context(), id, &opts)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if a.jsonOutput() {
				return outputJSON(out, signals)
			}
			if len(signals) == 0 {
				_, err := fmt.Fprintln(out, "No signals found.")
				return err
			}
			return printSignalsTable(out, signals)
		},
	}
	addMarketplaceFlags(cmd, &opts)
	cmd.Flags().StringVar(&opts.OrderDirection, "order-direction", "", "asc or desc")

	return cmd
}
