package app

import (
	"bufio"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bobmcallan/airflow-mcp/internal/common"
	"github.com/bobmcallan/airflow-mcp/internal/config"
)

func testConfig() *config.Config {
	cfg := config.NewDefaultConfig()
	cfg.Airflow.URL = "http://airflow.test:8080"
	cfg.Airflow.Username = "admin"
	cfg.Airflow.Password = "admin"
	return cfg
}

func TestNew_Stdio(t *testing.T) {
	a, err := New(testConfig(), common.NewSilentLogger())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if a.MCPServer == nil || a.Registry == nil {
		t.Fatal("MCP server not initialized")
	}
	if a.ToolCount != a.Registry.Len() {
		t.Errorf("ToolCount = %d, registry has %d", a.ToolCount, a.Registry.Len())
	}
	if a.MCPHandler != nil {
		t.Error("stdio mode should not build HTTP handlers")
	}
}

func TestNew_ReadOnlyAndGroups(t *testing.T) {
	cfg := testConfig()
	cfg.Tools.ReadOnly = true
	cfg.Tools.APIs = []string{"pool"}

	a, err := New(cfg, common.NewSilentLogger())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	// get_pools, get_pool
	if a.ToolCount != 2 {
		t.Errorf("ToolCount = %d, want 2", a.ToolCount)
	}
}

func TestNew_HTTPTransportBuildsHandlers(t *testing.T) {
	for _, transport := range []string{config.TransportHTTP, config.TransportSSE} {
		cfg := testConfig()
		cfg.Server.Transport = transport

		a, err := New(cfg, common.NewSilentLogger())
		if err != nil {
			t.Fatalf("%s: New: %v", transport, err)
		}
		if a.MCPHandler == nil || a.HealthHandler == nil || a.AirflowHealthHandler == nil || a.VersionHandler == nil {
			t.Errorf("%s: handlers not initialized", transport)
		}
	}
}

func TestNew_Errors(t *testing.T) {
	cfg := testConfig()
	cfg.Tools.APIs = []string{"nope"}
	if _, err := New(cfg, common.NewSilentLogger()); err == nil || !strings.Contains(err.Error(), "unknown tool groups") {
		t.Errorf("expected unknown group error, got %v", err)
	}

	cfg = testConfig()
	cfg.Airflow.URL = "ftp://airflow"
	if _, err := New(cfg, common.NewSilentLogger()); err == nil {
		t.Error("expected airflow client error")
	}
}

// A wildcard bind address must never leak into the SSE endpoint event.
func TestNew_SSEEndpointIgnoresBindAddress(t *testing.T) {
	cfg := testConfig()
	cfg.Server.Transport = config.TransportSSE
	cfg.Server.Host = "0.0.0.0"

	a, err := New(cfg, common.NewSilentLogger())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	srv := httptest.NewServer(a.MCPHandler)
	t.Cleanup(srv.Close)

	req, err := http.NewRequestWithContext(t.Context(), http.MethodGet, srv.URL+"/sse", nil)
	if err != nil {
		t.Fatalf("NewRequest: %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("GET /sse: %v", err)
	}
	t.Cleanup(func() { resp.Body.Close() })

	reader := bufio.NewReader(resp.Body)
	var endpoint string
	for endpoint == "" {
		line, err := reader.ReadString('\n')
		if err != nil {
			t.Fatalf("reading SSE stream: %v", err)
		}
		if data, ok := strings.CutPrefix(strings.TrimSpace(line), "data:"); ok {
			endpoint = strings.TrimSpace(data)
		}
	}

	if strings.Contains(endpoint, "0.0.0.0") || !strings.HasPrefix(endpoint, "/message?sessionId=") {
		t.Errorf("endpoint = %q, want a relative /message path", endpoint)
	}
}
