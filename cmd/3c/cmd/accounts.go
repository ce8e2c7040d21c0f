package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) accountsCmd() *cobra.Command {
	accountsRoot := &cobra.Command{
		Use:   "accounts",
		Short: "Inspect connected exchange accounts",
	}

	accountsRoot.AddCommand(
		a.accountsListCmd(),
		a.accountsShowCmd(),
		a.accountsSummaryCmd(),
	)

	return accountsRoot
}

func (a *app) accountsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Short:   "List exchange accounts",
		Example: `  3c accounts list`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.newClient(cmd)
			if err != nil {
				return err
			}
			accounts, err := c.Accounts.List(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if a.jsonOutput() {
				return outputJSON(out, accounts)
			}
			if len(accounts) == 0 {
				_, err := fmt.Fprintln(out, "No accounts found.")
				return err
			}
			return printAccountsTable(out, accounts)
		},
	}
}

func (a *app) accountsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "show <account-id>",
		Short:   "Show one exchange account",
		Example: `  3c accounts show 7`,
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
			acc, err := c.Accounts.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			if a.jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), acc)
			}
			return printAccountDetail(cmd.OutOrStdout(), acc)
		},
	}
}

func (a *app) accountsSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "summary",
		Short:   "Show totals over every account",
		Example: `  3c accounts summary --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.newClient(cmd)
			if err != nil {
				return err
			}
			acc, err := c.Accounts.Summary(cmd.Context())
			if err != nil {
				return err
			}
			if a.jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), acc)
			}
			return printAccountDetail(cmd.OutOrStdout(), acc)
		},
	}
}
