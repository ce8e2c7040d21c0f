package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/threecommas/pkg/threecommas"
)

func (a *app) usersCmd() *cobra.Command {
	usersRoot := &cobra.Command{
		Use:   "users",
		Short: "Manage the user profile",
	}

	usersRoot.AddCommand(a.usersModeCmd())

	return usersRoot
}

func (a *app) usersModeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mode <paper|real>",
		Short: "Switch between paper and real trading",
		Example: `  3c users mode paper
  3c users mode real`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{threecommas.ModePaper, threecommas.ModeReal},
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.newClient(cmd)
			if err != nil {
				return err
			}
			if err := c.Users.ChangeMode(cmd.Context(), args[0]); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Trading mode set to %s.\n", args[0])
			return err
		},
	}
}
