package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/bobmcallan/airflow-mcp/internal/common"
	"github.com/pelletier/go-toml/v2"
)

// Transport names accepted by the server.
const (
	TransportStdio = "stdio"
	TransportSSE   = "sse"
	TransportHTTP  = "http"
)

// Config represents the application configuration.
type Config struct {
	Airflow AirflowConfig        `toml:"airflow"`
	Server  ServerConfig         `toml:"server"`
	Tools   ToolsConfig          `toml:"tools"`
	Logging common.LoggingConfig `toml:"logging"`
}

// AirflowConfig describes the Airflow webserver and the default credential.
// Token takes precedence over username/password.
type AirflowConfig struct {
	URL        string `toml:"url"`
	APIVersion string `toml:"api_version"`
	Username   string `toml:"username"`
	Password   string `toml:"password"`
	Token      string `toml:"token"`
	Timeout    string `toml:"timeout"`
}

// GetTimeout parses and returns the request timeout.
func (c AirflowConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil || d <= 0 {
		return 300 * time.Second
	}
	return d
}

// ServerConfig contains MCP transport settings.
type ServerConfig struct {
	Host      string `toml:"host"`
	Port      int    `toml:"port"`
	Transport string `toml:"transport"`
}

// Addr returns host:port for the HTTP transports.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// ToolsConfig selects which tools are advertised.
// An empty APIs list selects every group.
type ToolsConfig struct {
	APIs     []string `toml:"apis"`
	ReadOnly bool     `toml:"read_only"`
}

// LoadFromFiles loads configuration from multiple files with priority:
// defaults -> file1 -> file2 -> ... -> env.
// Later files override earlier files.
func LoadFromFiles(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for i, path := range paths {
		if path == "" {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		err = toml.Unmarshal(data, config)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config file %s (file %d of %d): %w", path, i+1, len(paths), err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies AIRFLOW_* and AIRFLOW_MCP_* environment overrides.
func applyEnvOverrides(config *Config) {
	if host := os.Getenv("AIRFLOW_HOST"); host != "" {
		config.Airflow.URL = host
	}
	if version := os.Getenv("AIRFLOW_API_VERSION"); version != "" {
		config.Airflow.APIVersion = version
	}
	if username := os.Getenv("AIRFLOW_USERNAME"); username != "" {
		config.Airflow.Username = username
	}
	if password := os.Getenv("AIRFLOW_PASSWORD"); password != "" {
		config.Airflow.Password = password
	}
	if token := os.Getenv("AIRFLOW_JWT_TOKEN"); token != "" {
		config.Airflow.Token = token
	}
	if timeout := os.Getenv("AIRFLOW_TIMEOUT"); timeout != "" {
		config.Airflow.Timeout = timeout
	}
	if readOnly, ok := os.LookupEnv("READ_ONLY"); ok {
		config.Tools.ReadOnly = ParseBool(readOnly)
	}
	if apis := os.Getenv("AIRFLOW_MCP_APIS"); apis != "" {
		config.Tools.APIs = SplitList(apis)
	}
	if transport := os.Getenv("AIRFLOW_MCP_TRANSPORT"); transport != "" {
		config.Server.Transport = transport
	}
	if host := os.Getenv("AIRFLOW_MCP_HOST"); host != "" {
		config.Server.Host = host
	}
	if port := os.Getenv("AIRFLOW_MCP_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}
	if level := os.Getenv("AIRFLOW_MCP_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
}

// ApplyFlagOverrides applies command-line flag overrides to config.
// Zero values leave the loaded configuration untouched.
func ApplyFlagOverrides(config *Config, port int, host, transport string, apis []string, readOnly bool) {
	if port > 0 {
		config.Server.Port = port
	}
	if host != "" {
		config.Server.Host = host
	}
	if transport != "" {
		config.Server.Transport = transport
	}
	if len(apis) > 0 {
		config.Tools.APIs = apis
	}
	if readOnly {
		config.Tools.ReadOnly = true
	}
}

// Validate reports every mandatory field that is missing or invalid.
func (c *Config) Validate() []string {
	var issues []string

	if strings.TrimSpace(c.Airflow.URL) == "" {
		issues = append(issues, "airflow.url is required (set AIRFLOW_HOST)")
	} else if u, err := url.Parse(c.Airflow.URL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		issues = append(issues, fmt.Sprintf("airflow.url %q must be an absolute http(s) URL", c.Airflow.URL))
	}

	if c.Airflow.Token == "" && (c.Airflow.Username == "") != (c.Airflow.Password == "") {
		issues = append(issues, "airflow.username and airflow.password must be set together")
	}

	if c.Airflow.Timeout != "" {
		if _, err := time.ParseDuration(c.Airflow.Timeout); err != nil {
			issues = append(issues, fmt.Sprintf("airflow.timeout %q is not a duration", c.Airflow.Timeout))
		}
	}

	switch c.Server.Transport {
	case TransportStdio, TransportSSE, TransportHTTP:
	default:
		issues = append(issues, fmt.Sprintf("server.transport %q must be one of stdio, sse, http", c.Server.Transport))
	}

	if c.Server.Transport != TransportStdio && (c.Server.Port <= 0 || c.Server.Port > 65535) {
		issues = append(issues, fmt.Sprintf("server.port %d is out of range", c.Server.Port))
	}

	return issues
}

// ParseBool treats true, 1, yes and on (any case) as true.
func ParseBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "true", "1", "yes", "on":
		return true
	}
	return false
}

// SplitList splits a comma separated list, dropping blanks.
func SplitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
