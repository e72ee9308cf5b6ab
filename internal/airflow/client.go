// Package airflow is a small client for the Apache Airflow stable REST API.
package airflow

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bobmcallan/airflow-mcp/internal/common"
)

// maxResponseSize caps the response body read from Airflow.
const maxResponseSize = 50 << 20 // 50MB

// Config describes how to reach Airflow.
type Config struct {
	// BaseURL is the webserver URL. Any path component is dropped.
	BaseURL    string
	APIVersion string
	Credential Credential
	Timeout    time.Duration
	UserAgent  string
	// HTTPClient overrides the default client, mainly for tests.
	HTTPClient *http.Client
}

// Request is one call against the REST API. Path is relative to /api/<version>.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	// Body is JSON encoded when non-nil.
	Body any
}

// Response is a successful (2xx) Airflow response.
type Response struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

// IsJSON reports whether the response declares a JSON media type.
func (r *Response) IsJSON() bool {
	mediaType, _, err := mime.ParseMediaType(r.ContentType)
	if err != nil {
		return false
	}
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}

// Client issues requests against one Airflow deployment.
// It is immutable after construction and safe for concurrent use.
type Client struct {
	uiBase     string
	apiBase    string
	credential Credential
	userAgent  string
	httpClient *http.Client
	logger     *common.Logger
}

// NewClient validates cfg and creates a client.
func NewClient(cfg Config, logger *common.Logger) (*Client, error) {
	u, err := url.Parse(strings.TrimSpace(cfg.BaseURL))
	if err != nil {
		return nil, fmt.Errorf("invalid airflow url %q: %w", cfg.BaseURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("invalid airflow url %q: must be an absolute http(s) URL", cfg.BaseURL)
	}

	cred := cfg.Credential
	if cred.Token != "" {
		cred.Username, cred.Password = "", ""
	} else if (cred.Username == "") != (cred.Password == "") {
		return nil, fmt.Errorf("airflow username and password must be set together")
	}

	version := cfg.APIVersion
	if version == "" {
		version = "v1"
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 300 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	if logger == nil {
		logger = common.NewSilentLogger()
	}

	uiBase := u.Scheme + "://" + u.Host
	return &Client{
		uiBase:     uiBase,
		apiBase:    uiBase + "/api/" + version,
		credential: cred,
		userAgent:  cfg.UserAgent,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// UIBaseURL returns the webserver base used for deep links.
func (c *Client) UIBaseURL() string {
	return c.uiBase
}

// APIBaseURL returns the REST prefix, e.g. http://host:8080/api/v1.
func (c *Client) APIBaseURL() string {
	return c.apiBase
}

// DefaultCredential returns the credential configured at construction.
func (c *Client) DefaultCredential() Credential {
	return c.credential
}

// Do sends one request. The credential scoped to ctx, if any, replaces the default.
// Non-2xx responses return *BackendError; network failures return *TransportError.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	target := c.apiBase + req.Path
	if len(req.Query) > 0 {
		target += "?" + req.Query.Encode()
	}

	var bodyReader io.Reader
	if req.Body != nil {
		data, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		httpReq.Header.Set("User-Agent", c.userAgent)
	}
	if bodyReader != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	cred := c.credential
	if scoped, ok := CredentialFromContext(ctx); ok {
		cred = scoped
	}
	// Set per request rather than in a RoundTripper so net/http drops it on cross-host redirects.
	if auth := cred.Authorization(); auth != "" {
		httpReq.Header.Set("Authorization", auth)
	}

	c.logger.Debug().Str("method", req.Method).Str("path", req.Path).Str("auth", cred.Scheme()).Msg("airflow request")

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	duration := time.Since(start)
	if err != nil {
		c.logger.Error().Str("method", req.Method).Str("path", req.Path).Int64("duration_ms", duration.Milliseconds()).Str("error", err.Error()).Msg("airflow request failed")
		return nil, &TransportError{Method: req.Method, Path: req.Path, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, &TransportError{Method: req.Method, Path: req.Path, Err: fmt.Errorf("failed to read response: %w", err)}
	}

	c.logger.Debug().Str("method", req.Method).Str("path", req.Path).Int("status", resp.StatusCode).Int64("duration_ms", duration.Milliseconds()).Msg("airflow response")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &BackendError{
			Method:     req.Method,
			Path:       req.Path,
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	return &Response{
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        body,
	}, nil
}

// HealthStatus is the body of GET /health.
type HealthStatus struct {
	Metadatabase struct {
		Status string `json:"status"`
	} `json:"metadatabase"`
	Scheduler struct {
		Status                   string `json:"status"`
		LatestSchedulerHeartbeat string `json:"latest_scheduler_heartbeat"`
	} `json:"scheduler"`
}

// Health fetches the webserver's view of component health.
func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	var out HealthStatus
	if err := c.getJSON(ctx, "/health", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// VersionInfo is the body of GET /version.
type VersionInfo struct {
	Version    string `json:"version"`
	GitVersion string `json:"git_version,omitempty"`
}

// Version fetches the Airflow version.
func (c *Client) Version(ctx context.Context) (*VersionInfo, error) {
	var out VersionInfo
	if err := c.getJSON(ctx, "/version", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	resp, err := c.Do(ctx, &Request{Method: http.MethodGet, Path: path})
	if err != nil {
		return err
	}
	if err := json.Unmarshal(resp.Body, out); err != nil {
		return fmt.Errorf("failed to parse %s response: %w", path, err)
	}
	return nil
}
