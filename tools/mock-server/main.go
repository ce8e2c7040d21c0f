// Package main runs a local mock of the 3Commas public API. It serves the
// embedded fixture set (or a fixtures directory) behind the same request
// signing scheme the real API enforces, so the client and CLI can be exercised
// without real credentials or exchange accounts.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/charmbracelet/log"

	"github.com/donaldgifford/threecommas/internal/api"
	"github.com/donaldgifford/threecommas/internal/config"
	"github.com/donaldgifford/threecommas/internal/store"
	"github.com/donaldgifford/threecommas/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// options are the command-line overrides applied on top of the config.
type options struct {
	configPath  string
	envFile     string
	port        int
	fixturesDir string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "mock-server:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	clog := log.NewWithOptions(stderr, log.Options{
		Level:           parseLogLevel(cfg.Logging.Level),
		ReportTimestamp: true,
		Prefix:          "mock-server",
	})

	st, err := store.NewMemoryStore(cfg.MockServer.FixturesDir)
	if err != nil {
		return fmt.Errorf("loading fixtures: %w", err)
	}
	source := cfg.MockServer.FixturesDir
	if source == "" {
		source = "embedded"
	}
	clog.Info("loaded fixtures", "source", source)

	e := api.NewServer(st, api.Credentials{
		APIKey:    cfg.ThreeCommas.APIKey,
		APISecret: cfg.ThreeCommas.APISecret,
	}, logger.NewWithWriter(stderr, cfg.Logging.Level, cfg.Logging.Format))

	addr := net.JoinHostPort(cfg.MockServer.Host, strconv.Itoa(cfg.MockServer.Port))
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", addr, err)
	}

	return serve(ctx, e, ln, cfg.MockServer, clog)
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("mock-server", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "config", "", "path to a YAML config file (default: THREECOMMAS_* environment)")
	fs.StringVar(&opts.envFile, "env-file", ".env", "dotenv file loaded before the config")
	fs.IntVar(&opts.port, "port", 0, "port to listen on (overrides mock_server.port)")
	fs.StringVar(&opts.fixturesDir, "fixtures", "", "fixtures directory (overrides mock_server.fixtures_dir)")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	return opts, nil
}

func loadConfig(opts options) (*config.Config, error) {
	if err := config.LoadDotEnv(opts.envFile); err != nil {
		return nil, err
	}

	var (
		cfg *config.Config
		err error
	)
	if opts.configPath != "" {
		cfg, err = config.Load(opts.configPath)
	} else {
		cfg, err = config.FromEnv()
	}
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if opts.port != 0 {
		cfg.MockServer.Port = opts.port
	}
	if opts.fixturesDir != "" {
		cfg.MockServer.FixturesDir = opts.fixturesDir
	}
	return cfg, nil
}

// serve runs h on ln until ctx is cancelled, then shuts the server down
// gracefully.
func serve(ctx context.Context, h http.Handler, ln net.Listener, sc config.MockServerConfig, clog *log.Logger) error {
	srv := &http.Server{
		Handler:      h,
		ReadTimeout:  sc.ReadTimeout,
		WriteTimeout: sc.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()
	clog.Info("starting mock 3Commas API", "addr", ln.Addr().String())

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving: %w", err)
	case <-ctx.Done():
	}

	clog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	clog.Info("server stopped")
	return nil
}

func parseLogLevel(level string) log.Level {
	switch level {
	case "debug":
		return log.DebugLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}
