package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/bobmcallan/airflow-mcp/internal/app"
	"github.com/bobmcallan/airflow-mcp/internal/common"
	"github.com/bobmcallan/airflow-mcp/internal/config"
	"github.com/bobmcallan/airflow-mcp/internal/server"
	"github.com/joho/godotenv"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"golang.org/x/sync/errgroup"
)

// listFlag is a repeatable flag. Each value may itself be comma separated.
type listFlag []string

func (l *listFlag) String() string {
	return strings.Join(*l, ",")
}

func (l *listFlag) Set(value string) error {
	*l = append(*l, config.SplitList(value)...)
	return nil
}

var (
	configFiles listFlag
	apiGroups   listFlag
	transport   = flag.String("transport", "", "MCP transport: stdio, sse or http (overrides config)")
	serverHost  = flag.String("host", "", "Listen host for sse/http (overrides config)")
	serverPort  = flag.Int("port", 0, "Listen port for sse/http (overrides config)")
	readOnly    = flag.Bool("read-only", false, "Expose only read-only tools")
	showVersion = flag.Bool("version", false, "Print version information")
)

func init() {
	flag.Var(&configFiles, "config", "Configuration file path (can be specified multiple times)")
	flag.Var(&configFiles, "c", "Configuration file path (shorthand)")
	flag.Var(&apiGroups, "apis", "Tool groups to expose (repeatable or comma separated, default all)")
}

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Printf("airflow-mcp version %s\n", config.GetFullVersion())
		os.Exit(0)
	}

	// A missing .env file is not an error.
	_ = godotenv.Load()

	if len(configFiles) == 0 {
		for _, path := range configSearchPaths() {
			if _, err := os.Stat(path); err == nil {
				configFiles = append(configFiles, path)
				break
			}
		}
	}

	cfg, err := config.LoadFromFiles(configFiles...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	config.ApplyFlagOverrides(cfg, *serverPort, *serverHost, *transport, apiGroups, *readOnly)

	if issues := cfg.Validate(); len(issues) > 0 {
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Configuration error, mandatory fields are missing or invalid:")
		fmt.Fprintln(os.Stderr, "")
		for _, issue := range issues {
			fmt.Fprintf(os.Stderr, "  - %s\n", issue)
		}
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Values can be set via TOML file, AIRFLOW_* environment variables, a .env file, or CLI flags.")
		fmt.Fprintln(os.Stderr, "")
		os.Exit(1)
	}

	logger := common.NewLoggerFromConfig(cfg.Logging)

	logger.Info().
		Str("transport", cfg.Server.Transport).
		Str("airflow_url", cfg.Airflow.URL).
		Bool("read_only", cfg.Tools.ReadOnly).
		Strs("apis", cfg.Tools.APIs).
		Str("config_files", configFiles.String()).
		Msg("configuration loaded")

	application, err := app.New(cfg, logger)
	if err != nil {
		logger.Error().Err(err).Msg("failed to initialize application")
		os.Exit(1)
	}
	defer application.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Server.Transport == config.TransportStdio {
		err = runStdio(ctx, application)
	} else {
		err = runHTTP(ctx, application)
	}
	if err != nil {
		logger.Error().Err(err).Msg("server stopped with error")
		os.Exit(1)
	}
	logger.Info().Msg("server stopped")
}

// runStdio serves MCP over stdin/stdout until ctx is cancelled or stdin closes.
func runStdio(ctx context.Context, application *app.App) error {
	application.Logger.Info().Int("tools", application.ToolCount).Msg("serving MCP over stdio")
	stdio := mcpserver.NewStdioServer(application.MCPServer)
	if err := stdio.Listen(ctx, os.Stdin, os.Stdout); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// runHTTP serves the sse or http transport and shuts down gracefully on ctx.
func runHTTP(ctx context.Context, application *app.App) error {
	srv := server.New(application)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(srv.Start)
	g.Go(func() error {
		<-gctx.Done()
		application.Logger.Info().Msg("shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// configSearchPaths returns TOML files to auto-discover (first match wins).
// Binary-relative paths are tried before the working directory.
func configSearchPaths() []string {
	candidates := []string{
		"airflow-mcp.toml",
		"config/airflow-mcp.toml",
	}

	exe, err := os.Executable()
	if err != nil {
		return candidates
	}
	binDir := filepath.Dir(exe)

	paths := []string{
		filepath.Join(binDir, "airflow-mcp.toml"),
		filepath.Join(binDir, "config", "airflow-mcp.toml"),
	}
	paths = append(paths, candidates...)

	seen := make(map[string]bool, len(paths))
	deduped := make([]string, 0, len(paths))
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			abs = p
		}
		if seen[abs] {
			continue
		}
		seen[abs] = true
		deduped = append(deduped, p)
	}
	return deduped
}
