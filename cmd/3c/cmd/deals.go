package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/threecommas/pkg/threecommas"
)

func (a *app) dealsCmd() *cobra.Command {
	dealsRoot := &cobra.Command{
		Use:   "deals",
		Short: "Inspect and close DCA deals",
	}

	dealsRoot.AddCommand(
		a.dealsListCmd(),
		a.dealsShowCmd(),
		a.dealsCloseCmd("cancel", "Cancel a deal without selling", (*threecommas.DealsService).Cancel),
		a.dealsCloseCmd("panic-sell", "Close a deal at market price", (*threecommas.DealsService).PanicSell),
		a.dealsProfitCmd(),
	)

	return dealsRoot
}

func addDealListFlags(cmd *cobra.Command, opts *threecommas.DealListOptions, defaultScope string) {
	cmd.Flags().StringVar(&opts.Scope, "scope", defaultScope, "active, finished, completed, cancelled or failed")
	cmd.Flags().Int64Var(&opts.AccountID, "account-id", 0, "only deals of this account")
	cmd.Flags().Int64Var(&opts.BotID, "bot-id", 0, "only deals of this bot")
	cmd.Flags().StringVar(&opts.Order, "order", "", "created_at or closed_at")
	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "page size (server default 50, max 1000)")
	cmd.Flags().IntVar(&opts.Offset, "offset", 0, "page offset")
}

func (a *app) dealsListCmd() *cobra.Command {
	var opts threecommas.DealListOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List deals",
		Example: `  3c deals list --scope active
  3c deals list --bot-id 42 --limit 10 --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.newClient(cmd)
			if err != nil {
				return err
			}
			deals, err := c.Deals.List(cmd.Context(), &opts)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if a.jsonOutput() {
				return outputJSON(out, deals)
			}
			if len(deals) == 0 {
				_, err := fmt.Fprintln(out, "No deals found.")
				return err
			}
			return printDealsTable(out, deals)
		},
	}
	addDealListFlags(cmd, &opts, "")

	return cmd
}

func (a *app) dealsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <deal-id>",
		Short: "Show a deal with its event log",
		Example: `  3c deals show 1001
  3c deals show 1001 --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			c, err := a.newClient(cmd)
			if err != nil {
				return err
			}
			d, err := c.Deals.Show(cmd.Context(), id)
			if err != nil {
				return err
			}
			if a.jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), d)
			}
			return printDealDetail(cmd.OutOrStdout(), d)
		},
	}
}

type dealCloser func(*threecommas.DealsService, context.Context, int64) (*threecommas.Deal, error)

func (a *app) dealsCloseCmd(use, short string, closeDeal dealCloser) *cobra.Command {
	return &cobra.Command{
		Use:     use + " <deal-id>",
		Short:   short,
		Example: "  3c deals " + use + " 1001",
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
			d, err := closeDeal(c.Deals, cmd.Context(), id)
			if err != nil {
				return err
			}
			if a.jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), d)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Deal %d %s.\n", d.ID, d.Status)
			return err
		},
	}
}

func (a *app) dealsProfitCmd() *cobra.Command {
	var opts threecommas.DealListOptions

	cmd := &cobra.Command{
		Use:   "profit",
		Short: "Sum the USD profit of a page of deals",
		Long: "Sum usd_final_profit over one page of deals. Use --limit and --offset\n" +
			"to choose the page; the scope defaults to finished deals.",
		Example: `  3c deals profit
  3c deals profit --bot-id 42 --limit 1000`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.newClient(cmd)
			if err != nil {
				return err
			}
			deals, err := c.Deals.List(cmd.Context(), &opts)
			if err != nil {
				return err
			}
			sum := sumProfit(deals)
			if a.jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), sum)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "USD profit: %s over %d deals\n",
				sum.UsdFinalProfit.StringFixed(2), sum.Deals)
			return err
		},
	}
	addDealListFlags(cmd, &opts, "finished")

	return cmd
}
