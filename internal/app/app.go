package app

import (
	"fmt"

	"github.com/bobmcallan/airflow-mcp/internal/airflow"
	"github.com/bobmcallan/airflow-mcp/internal/common"
	"github.com/bobmcallan/airflow-mcp/internal/config"
	"github.com/bobmcallan/airflow-mcp/internal/handlers"
	"github.com/bobmcallan/airflow-mcp/internal/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// App holds all application components and dependencies.
type App struct {
	Config *config.Config
	Logger *common.Logger

	Airflow   *airflow.Client
	Registry  *mcp.Registry
	MCPServer *mcpserver.MCPServer
	Metrics   *prometheus.Registry
	ToolCount int

	// HTTP handlers, nil in stdio mode
	MCPHandler           *mcp.Handler
	HealthHandler        *handlers.HealthHandler
	VersionHandler       *handlers.VersionHandler
	AirflowHealthHandler *handlers.AirflowHealthHandler
}

// New initializes the application with all dependencies.
func New(cfg *config.Config, logger *common.Logger) (*App, error) {
	a := &App{
		Config:  cfg,
		Logger:  logger,
		Metrics: prometheus.NewRegistry(),
	}

	client, err := airflow.NewClient(airflow.Config{
		BaseURL:    cfg.Airflow.URL,
		APIVersion: cfg.Airflow.APIVersion,
		Credential: airflow.Credential{
			Username: cfg.Airflow.Username,
			Password: cfg.Airflow.Password,
			Token:    cfg.Airflow.Token,
		},
		Timeout:   cfg.Airflow.GetTimeout(),
		UserAgent: config.UserAgent(),
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create airflow client: %w", err)
	}
	a.Airflow = client

	a.Registry, err = mcp.BuildRegistry(client, mcp.Providers(), cfg.Tools.APIs, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to build tool registry: %w", err)
	}

	a.Metrics.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := mcp.NewMetrics(a.Metrics)

	a.MCPServer, a.ToolCount = mcp.NewMCPServer(a.Registry, cfg.Tools.ReadOnly, metrics, logger)

	if cfg.Server.Transport != config.TransportStdio {
		a.initHandlers()
	}

	logger.Info().
		Str("airflow_url", client.APIBaseURL()).
		Str("auth", client.DefaultCredential().Scheme()).
		Str("transport", cfg.Server.Transport).
		Msg("application initialization complete")

	return a, nil
}

// initHandlers initializes the HTTP handlers for the sse and http transports.
func (a *App) initHandlers() {
	switch a.Config.Server.Transport {
	case config.TransportSSE:
		a.MCPHandler = mcp.NewSSEHandler(a.MCPServer, a.Logger)
	default:
		a.MCPHandler = mcp.NewStreamableHandler(a.MCPServer, a.Logger)
	}
	a.HealthHandler = handlers.NewHealthHandler(a.Logger, a.ToolCount)
	a.VersionHandler = handlers.NewVersionHandler(a.Logger)
	a.AirflowHealthHandler = handlers.NewAirflowHealthHandler(a.Logger, a.Airflow)

	a.Logger.Debug().Msg("HTTP handlers initialized")
}

// Close closes all application resources.
func (a *App) Close() error {
	return nil
}
