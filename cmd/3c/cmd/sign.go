package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/threecommas/pkg/threecommas"
)

// signature is the JSON output of `sign`.
type signature struct {
	Path      string `json:"path"`
	Query     string `json:"query"`
	Signature string `json:"signature"`
}

func (a *app) signCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sign <path> [query]",
		Short: "Print the request signature for a path and query",
		Long: "Print the hex HMAC-SHA256 signature 3Commas expects for a request.\n" +
			"The signed message is the full path immediately followed by the\n" +
			"encoded query, without the \"?\" separator. Compare the output with\n" +
			"what your own code sends when debugging 401 responses.",
		Example: `  3c sign /public/api/ver1/deals "limit=10&scope=active"
  3c sign "/public/api/ver1/deals?limit=10"`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, query, _ := strings.Cut(args[0], "?")
			if len(args) == 2 {
				if query != "" {
					return fmt.Errorf("query given both inline and as an argument")
				}
				query = strings.TrimPrefix(args[1], "?")
			}

			cfg, err := a.settings()
			if err != nil {
				return err
			}
			sig := threecommas.NewSigner(cfg.ThreeCommas.APISecret).Sign(path, query)

			if a.jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), signature{Path: path, Query: query, Signature: sig})
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), sig)
			return err
		},
	}
}
