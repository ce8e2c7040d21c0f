// Package cmd implements the 3c CLI commands.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/donaldgifford/threecommas/internal/config"
	"github.com/donaldgifford/threecommas/pkg/logger"
	"github.com/donaldgifford/threecommas/pkg/threecommas"
)

// app carries the state shared by every command of one root.
type app struct {
	v       *viper.Viper
	cfgFile string
}

// Root returns a fresh root command for documentation generation.
func Root() *cobra.Command {
	return newRootCmd()
}

// Execute runs the root command.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "3c",
		Short: "CLI client for the 3Commas API",
		Long: "3c is a command-line client for the 3Commas public API.\n" +
			"It signs every request with your API key pair and lets you inspect\n" +
			"deals, bots, accounts, grid bots and the signal marketplace.",
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return a.initConfig()
		},
	}

	rootCmd.PersistentFlags().
		StringVar(&a.cfgFile, "config", "", "YAML config file (default: THREECOMMAS_* environment)")
	rootCmd.PersistentFlags().
		String("base-url", "", "API base URL (default https://api.3commas.io)")
	rootCmd.PersistentFlags().
		String("output", "table", "output format (table, json)")
	rootCmd.PersistentFlags().
		String("log-level", "warn", "log level (debug, info, warn, error)")

	cobra.CheckErr(a.v.BindPFlag("base_url", rootCmd.PersistentFlags().Lookup("base-url")))
	cobra.CheckErr(a.v.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output")))
	cobra.CheckErr(a.v.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level")))

	rootCmd.AddCommand(
		a.dealsCmd(),
		a.botsCmd(),
		a.accountsCmd(),
		a.gridBotsCmd(),
		a.marketplaceCmd(),
		a.usersCmd(),
		a.signCmd(),
		versionCmd(),
	)

	return rootCmd
}

func (a *app) initConfig() error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}
	if home, err := os.UserHomeDir(); err == nil {
		if err := config.LoadDotEnv(filepath.Join(home, ".3c.env")); err != nil {
			return err
		}
	}

	a.v.SetEnvPrefix("THREECOMMAS")
	a.v.AutomaticEnv()

	switch a.v.GetString("output") {
	case "table", "json":
	default:
		return fmt.Errorf("--output must be table or json (got %q)", a.v.GetString("output"))
	}
	return nil
}

// settings resolves the API config: the --config file when given, the
// environment otherwise, with --base-url taking precedence over both.
func (a *app) settings() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if a.cfgFile != "" {
		cfg, err = config.Load(a.cfgFile)
	} else {
		cfg, err = config.FromEnv()
	}
	if err != nil {
		return nil, err
	}

	if u := a.v.GetString("base_url"); u != "" {
		cfg.ThreeCommas.BaseURL = u
	}
	return cfg, nil
}

func (a *app) newClient(cmd *cobra.Command) (*threecommas.Client, error) {
	cfg, err := a.settings()
	if err != nil {
		return nil, err
	}

	log := logger.NewWithWriter(cmd.ErrOrStderr(), a.v.GetString("log_level"), cfg.Logging.Format)
	return threecommas.New(
		threecommas.Credentials{
			APIKey:    cfg.ThreeCommas.APIKey,
			APISecret: cfg.ThreeCommas.APISecret,
		},
		threecommas.WithBaseURL(cfg.ThreeCommas.BaseURL),
		threecommas.WithLogger(log),
	)
}

func (a *app) jsonOutput() bool {
	return a.v.GetString("output") == "json"
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}
