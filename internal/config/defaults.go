package config

import "github.com/bobmcallan/airflow-mcp/internal/common"

// NewDefaultConfig creates a configuration with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Airflow: AirflowConfig{
			URL:        "http://localhost:8080",
			APIVersion: "v1",
			Timeout:    "300s",
		},
		Server: ServerConfig{
			Host:      "localhost",
			Port:      8000,
			Transport: TransportStdio,
		},
		Tools: ToolsConfig{
			APIs: []string{},
		},
		Logging: common.LoggingConfig{
			Level:   "info",
			Format:  "text",
			Outputs: []string{"console"},
		},
	}
}
