package airflow

import (
	"context"
	"encoding/base64"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, url string, cred Credential) *Client {
	t.Helper()
	c, err := NewClient(Config{BaseURL: url, Credential: cred}, nil)
	require.NoError(t, err)
	return c
}

// --- Construction ---

func TestNewClient_StripsPathFromBaseURL(t *testing.T) {
	c, err := NewClient(Config{BaseURL: "https://airflow.example.com:8443/some/path/"}, nil)
	require.NoError(t, err)

	assert.Equal(t, "https://airflow.example.com:8443", c.UIBaseURL())
	assert.Equal(t, "https://airflow.example.com:8443/api/v1", c.APIBaseURL())
}

func TestNewClient_APIVersion(t *testing.T) {
	c, err := NewClient(Config{BaseURL: "http://localhost:8080", APIVersion: "v2"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/api/v2", c.APIBaseURL())
}

func TestNewClient_RejectsInvalidURL(t *testing.T) {
	for _, raw := range []string{"", "localhost:8080", "ftp://airflow", "http://"} {
		_, err := NewClient(Config{BaseURL: raw}, nil)
		assert.Error(t, err, "expected error for %q", raw)
	}
}

func TestNewClient_RejectsHalfBasicCredential(t *testing.T) {
	_, err := NewClient(Config{BaseURL: "http://localhost:8080", Credential: Credential{Username: "admin"}}, nil)
	assert.Error(t, err)
}

func TestNewClient_TokenClearsBasicCredential(t *testing.T) {
	c, err := NewClient(Config{
		BaseURL:    "http://localhost:8080",
		Credential: Credential{Username: "admin", Password: "secret", Token: "jwt"},
	}, nil)
	require.NoError(t, err)

	cred := c.DefaultCredential()
	assert.Empty(t, cred.Username)
	assert.Empty(t, cred.Password)
	assert.Equal(t, "Bearer jwt", cred.Authorization())
}

// --- Credentials ---

func TestCredential_Authorization(t *testing.T) {
	basic := "Basic " + base64.StdEncoding.EncodeToString([]byte("admin:secret"))

	tests := []struct {
		name string
		cred Credential
		want string
	}{
		{"none", Credential{}, ""},
		{"basic", Credential{Username: "admin", Password: "secret"}, basic},
		{"token", Credential{Token: "abc"}, "Bearer abc"},
		{"token wins", Credential{Username: "admin", Password: "secret", Token: "abc"}, "Bearer abc"},
		{"header wins", Credential{Token: "abc", Header: "Custom xyz"}, "Custom xyz"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cred.Authorization())
		})
	}
}

func TestDo_UsesDefaultCredential(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, Credential{Token: "default-token"})
	_, err := c.Do(context.Background(), &Request{Method: http.MethodGet, Path: "/dags"})
	require.NoError(t, err)

	assert.Equal(t, "Bearer default-token", gotAuth)
}

func TestDo_ContextCredentialOverridesDefault(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, Credential{Username: "admin", Password: "secret"})
	ctx := WithCredential(context.Background(), Credential{Token: "caller-token"})
	_, err := c.Do(ctx, &Request{Method: http.MethodGet, Path: "/dags"})
	require.NoError(t, err)

	assert.Equal(t, "Bearer caller-token", gotAuth)
	assert.Equal(t, "basic", c.DefaultCredential().Scheme(), "shared client must not be mutated")
}

func TestDo_NoCredentialSendsNoHeader(t *testing.T) {
	var present bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, present = r.Header["Authorization"]
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, Credential{})
	_, err := c.Do(context.Background(), &Request{Method: http.MethodGet, Path: "/health"})
	require.NoError(t, err)
	assert.False(t, present)
}

// --- Requests ---

func TestDo_SendsPathQueryAndBody(t *testing.T) {
	var gotPath, gotQuery, gotBody, gotContentType, gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotContentType = r.Header.Get("Content-Type")
		gotAccept = r.Header.Get("Accept")
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"name":"default_pool"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, Credential{})
	resp, err := c.Do(context.Background(), &Request{
		Method: http.MethodPatch,
		Path:   "/pools/default_pool",
		Query:  map[string][]string{"update_mask": {"slots"}},
		Body:   map[string]any{"slots": 4},
	})
	require.NoError(t, err)

	assert.Equal(t, "/api/v1/pools/default_pool", gotPath)
	assert.Equal(t, "update_mask=slots", gotQuery)
	assert.JSONEq(t, `{"slots":4}`, gotBody)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "application/json", gotAccept)
	assert.True(t, resp.IsJSON())
	assert.Equal(t, `{"name":"default_pool"}`, string(resp.Body))
}

func TestDo_NilBodySendsNoContent(t *testing.T) {
	var gotLen int64 = -2
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotLen = r.ContentLength
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, Credential{})
	resp, err := c.Do(context.Background(), &Request{Method: http.MethodDelete, Path: "/pools/p"})
	require.NoError(t, err)

	assert.Equal(t, int64(0), gotLen)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Empty(t, resp.Body)
}

func TestDo_SendsUserAgent(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c, err := NewClient(Config{BaseURL: srv.URL, UserAgent: "airflow-mcp/test"}, nil)
	require.NoError(t, err)
	_, err = c.Do(context.Background(), &Request{Method: http.MethodGet, Path: "/health"})
	require.NoError(t, err)

	assert.Equal(t, "airflow-mcp/test", gotUA)
}

func TestDo_FollowsSameHostRedirect(t *testing.T) {
	var gotAuth string
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/dags", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/api/v1/dags/", http.StatusTemporaryRedirect)
	})
	mux.HandleFunc("/api/v1/dags/", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"dags":[]}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := newTestClient(t, srv.URL, Credential{Token: "t"})
	resp, err := c.Do(context.Background(), &Request{Method: http.MethodGet, Path: "/dags"})
	require.NoError(t, err)

	assert.Equal(t, `{"dags":[]}`, string(resp.Body))
	assert.Equal(t, "Bearer t", gotAuth)
}

// --- Errors ---

func TestDo_BackendError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/problem+json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail":"The DAG with dag_id: 'x' was not found","status":404,"title":"DAG not found","type":"about:blank"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, Credential{})
	_, err := c.Do(context.Background(), &Request{Method: http.MethodGet, Path: "/dags/x"})
	require.Error(t, err)

	var backendErr *BackendError
	require.True(t, errors.As(err, &backendErr))
	assert.Equal(t, http.StatusNotFound, backendErr.StatusCode)
	assert.Contains(t, backendErr.Body, "was not found")
	assert.Equal(t, `GET /dags/x returned 404: {"detail":"The DAG with dag_id: 'x' was not found","status":404,"title":"DAG not found","type":"about:blank"}`, err.Error())
}

func TestDo_BackendErrorPlainBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream exploded", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, Credential{})
	_, err := c.Do(context.Background(), &Request{Method: http.MethodGet, Path: "/health"})

	var backendErr *BackendError
	require.True(t, errors.As(err, &backendErr))
	assert.Equal(t, http.StatusBadGateway, backendErr.StatusCode)
	assert.Contains(t, err.Error(), "upstream exploded")
}

func TestDo_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := newTestClient(t, url, Credential{})
	_, err := c.Do(context.Background(), &Request{Method: http.MethodGet, Path: "/health"})

	var transportErr *TransportError
	require.True(t, errors.As(err, &transportErr))
	assert.Equal(t, "/health", transportErr.Path)
	assert.NotNil(t, errors.Unwrap(err))
}

func TestDo_ContextCancellationAbortsRequest(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-release:
		}
	}))
	defer srv.Close()
	defer close(release)

	c := newTestClient(t, srv.URL, Credential{})
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := c.Do(ctx, &Request{Method: http.MethodGet, Path: "/dags"})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 5*time.Second)
}

// --- Typed helpers ---

func TestVersionAndHealth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/v1/version":
			w.Write([]byte(`{"version":"2.10.5","git_version":null}`))
		case "/api/v1/health":
			w.Write([]byte(`{"metadatabase":{"status":"healthy"},"scheduler":{"status":"healthy","latest_scheduler_heartbeat":"2026-01-01T00:00:00+00:00"}}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, Credential{})

	v, err := c.Version(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2.10.5", v.Version)

	h, err := c.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "healthy", h.Metadatabase.Status)
	assert.Equal(t, "healthy", h.Scheduler.Status)
}

// --- Deep links ---

func TestDeepLinks(t *testing.T) {
	base := "http://localhost:8080"
	assert.Equal(t, "http://localhost:8080/dags/etl/grid", DAGURL(base, "etl"))
	assert.Equal(t, "http://localhost:8080/dags/etl/grid?dag_run_id=manual__1", DAGRunURL(base, "etl", "manual__1"))
	assert.Equal(t, "http://localhost:8080/dags/etl/grid?dag_run_id=manual__1&task_id=extract", TaskInstanceURL(base, "etl", "manual__1", "extract"))
}
