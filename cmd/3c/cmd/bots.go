package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/threecommas/pkg/threecommas"
)

func (a *app) botsCmd() *cobra.Command {
	botsRoot := &cobra.Command{
		Use:   "bots",
		Short: "Manage DCA bots",
	}

	botsRoot.AddCommand(
		a.botsListCmd(),
		a.botsShowCmd(),
		a.botsSetEnabledCmd(true),
		a.botsSetEnabledCmd(false),
		a.botsStartDealCmd(),
		a.botsDeleteCmd(),
	)

	return botsRoot
}

func (a *app) botsListCmd() *cobra.Command {
	var opts threecommas.BotListOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List bots",
		Example: `  3c bots list
  3c bots list --scope enabled --account-id 7`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.newClient(cmd)
			if err != nil {
				return err
			}
			bots, err := c.Bots.List(cmd.Context(), &opts)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if a.jsonOutput() {
				return outputJSON(out, bots)
			}
			if len(bots) == 0 {
				_, err := fmt.Fprintln(out, "No bots found.")
				return err
			}
			return printBotsTable(out, bots)
		},
	}
	cmd.Flags().StringVar(&opts.Scope, "scope", "", "enabled or disabled")
	cmd.Flags().Int64Var(&opts.AccountID, "account-id", 0, "only bots of this account")
	cmd.Flags().StringVar(&opts.Strategy, "strategy", "", "long or short")
	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "page size (server default 50, max 100)")
	cmd.Flags().IntVar(&opts.Offset, "offset", 0, "page offset")

	return cmd
}

func (a *app) botsShowCmd() *cobra.Command {
	var events bool

	cmd := &cobra.Command{
		Use:   "show <bot-id>",
		Short: "Show bot details",
		Example: `  3c bots show 42
  3c bots show 42 --events --output json`,
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
			b, err := c.Bots.Show(cmd.Context(), id, events)
			if err != nil {
				return err
			}
			if a.jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), b)
			}
			return printBotDetail(cmd.OutOrStdout(), b)
		},
	}
	cmd.Flags().BoolVar(&events, "events", false, "include bot events")

	return cmd
}

func (a *app) botsSetEnabledCmd(enabled bool) *cobra.Command {
	use, short := "enable", "Let a bot open new deals"
	if !enabled {
		use, short = "disable", "Stop a bot from opening new deals"
	}

	return &cobra.Command{
		Use:     use + " <bot-id>",
		Short:   short,
		Example: "  3c bots " + use + " 42",
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

			var b *threecommas.Bot
			if enabled {
				b, err = c.Bots.Enable(cmd.Context(), id)
			} else {
				b, err = c.Bots.Disable(cmd.Context(), id)
			}
			if err != nil {
				return err
			}
			if a.jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), b)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Bot %d %sd.\n", b.ID, use)
			return err
		},
	}
}

func (a *app) botsStartDealCmd() *cobra.Command {
	var opts threecommas.StartDealOptions

	cmd := &cobra.Command{
		Use:   "start-deal <bot-id>",
		Short: "Ask a bot to open a deal now",
		Example: `  3c bots start-deal 42
  3c bots start-deal 42 --pair USDT_ETH --skip-signal-checks`,
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
			d, err := c.Bots.StartNewDeal(cmd.Context(), id, opts)
			if err != nil {
				return err
			}
			if a.jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), d)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Deal %d started on %s.\n", d.ID, d.Pair)
			return err
		},
	}
	cmd.Flags().StringVar(&opts.Pair, "pair", "", "pair to trade (multi-pair bots)")
	cmd.Flags().BoolVar(&opts.SkipSignalChecks, "skip-signal-checks", false, "ignore the bot's start conditions")
	cmd.Flags().BoolVar(&opts.SkipOpenDealsChecks, "skip-open-deals-checks", false, "ignore the open deals limit")

	return cmd
}

func (a *app) botsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <bot-id>",
		Short:   "Delete a bot",
		Example: `  3c bots delete 43`,
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
			if err := c.Bots.Delete(cmd.Context(), id); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Bot %d deleted.\n", id)
			return err
		},
	}
}
