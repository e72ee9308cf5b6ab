package mcp

import (
	"errors"
	"strings"

	"github.com/bobmcallan/airflow-mcp/internal/airflow"
)

var errEmptyCredential = errors.New("authorization header carries no credential")

// credentialFromHeader maps an inbound Authorization header onto the
// credential used for the Airflow calls of that request. ok is false when
// the header is absent and the configured default applies.
func credentialFromHeader(header string) (cred airflow.Credential, ok bool, err error) {
	header = strings.TrimSpace(header)
	if header == "" {
		return airflow.Credential{}, false, nil
	}

	scheme, payload, _ := strings.Cut(header, " ")
	payload = strings.TrimSpace(payload)
	switch {
	case strings.EqualFold(scheme, "Bearer"):
		if payload == "" {
			return airflow.Credential{}, false, errEmptyCredential
		}
		return airflow.Credential{Token: payload}, true, nil
	case strings.EqualFold(scheme, "Basic"):
		if payload == "" {
			return airflow.Credential{}, false, errEmptyCredential
		}
		return airflow.Credential{Header: "Basic " + payload}, true, nil
	default:
		return airflow.Credential{Header: header}, true, nil
	}
}
