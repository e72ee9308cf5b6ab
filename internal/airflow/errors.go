package airflow

import (
	"fmt"
	"strings"
)

// BackendError is a non-2xx response from Airflow. The message carries the
// response body verbatim, RFC 7807 problem documents included.
type BackendError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("%s %s returned %d: %s", e.Method, e.Path, e.StatusCode, strings.TrimSpace(e.Body))
}

// TransportError is a failure to reach Airflow at all.
type TransportError struct {
	Method string
	Path   string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: airflow request failed: %v", e.Method, e.Path, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
