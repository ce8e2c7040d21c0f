package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/threecommas/pkg/threecommas"
)

func (a *app) gridBotsCmd() *cobra.Command {
	gridRoot := &cobra.Command{
		Use:   "grid-bots",
		Short: "Manage grid bots",
	}

	gridRoot.AddCommand(
		a.gridBotsListCmd(),
		a.gridBotsShowCmd(),
		a.gridBotsSetEnabledCmd(true),
		a.gridBotsSetEnabledCmd(false),
		a.gridBotsDeleteCmd(),
	)

	return gridRoot
}

func (a *app) gridBotsListCmd() *cobra.Command {
	var opts threecommas.GridBotListOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List grid bots",
		Example: `  3c grid-bots list
  3c grid-bots list --account-id 7 --account-id 8 --state enabled`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.newClient(cmd)
			if err != nil {
				return err
			}
			bots, err := c.GridBots.List(cmd.Context(), &opts)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if a.jsonOutput() {
				return outputJSON(out, bots)
			}
			if len(bots) == 0 {
				_, err := fmt.Fprintln(out, "No grid bots found.")
				return err
			}
			return printGridBotsTable(out, bots)
		},
	}
	cmd.Flags().Int64SliceVar(&opts.AccountIDs, "account-id", nil, "only grid bots of these accounts")
	cmd.Flags().StringVar(&opts.State, "state", "", "enabled or disabled")
	cmd.Flags().StringVar(&opts.SortBy, "sort-by", "", "current_profit, bot_id or pair")
	cmd.Flags().StringVar(&opts.SortDirection, "sort-direction", "", "asc or desc")
	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "page size")
	cmd.Flags().IntVar(&opts.Offset, "offset", 0, "page offset")

	return cmd
}

func (a *app) gridBotsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "show <grid-bot-id>",
		Short:   "Show grid bot details",
		Example: `  3c grid-bots show 9001`,
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
			g, err := c.GridBots.Show(cmd.Context(), id)
			if err != nil {
				return err
			}
			if a.jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), g)
			}
			return printGridBotDetail(cmd.OutOrStdout(), g)
		},
	}
}

func (a *app) gridBotsSetEnabledCmd(enabled bool) *cobra.Command {
	use := "enable"
	if !enabled {
		use = "disable"
	}

	return &cobra.Command{
		Use:     use + " <grid-bot-id>",
		Short:   "Set whether a grid bot trades (" + use + ")",
		Example: "  3c grid-bots " + use + " 9001",
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

			var g *threecommas.GridBot
			if enabled {
				g, err = c.GridBots.Enable(cmd.Context(), id)
			} else {
				g, err = c.GridBots.Disable(cmd.Context(), id)
			}
			if err != nil {
				return err
			}
			if a.jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), g)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Grid bot %d %sd.\n", g.ID, use)
			return err
		},
	}
}

func (a *app) gridBotsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <grid-bot-id>",
		Short:   "Delete a grid bot",
		Example: `  3c grid-bots delete 9001`,
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
			if err := c.GridBots.Delete(cmd.Context(), id); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Grid bot %d deleted.\n", id)
			return err
		},
	}
}
