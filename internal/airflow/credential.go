package airflow

import (
	"context"
	"encoding/base64"
)

// Credential is the authorization sent to Airflow.
// Precedence: Header, then Token, then Username/Password.
type Credential struct {
	Username string
	Password string
	Token    string
	// Header is a complete Authorization value forwarded verbatim.
	Header string
}

// Authorization returns the Authorization header value, or "" for none.
func (c Credential) Authorization() string {
	switch {
	case c.Header != "":
		return c.Header
	case c.Token != "":
		return "Bearer " + c.Token
	case c.Username != "" || c.Password != "":
		return "Basic " + base64.StdEncoding.EncodeToString([]byte(c.Username+":"+c.Password))
	}
	return ""
}

// Scheme names the auth scheme for logging. Secrets are never logged.
func (c Credential) Scheme() string {
	switch {
	case c.Header != "":
		return "forwarded"
	case c.Token != "":
		return "bearer"
	case c.Username != "" || c.Password != "":
		return "basic"
	}
	return "none"
}

type credentialKey struct{}

// WithCredential scopes a credential to a single in-flight call.
func WithCredential(ctx context.Context, cred Credential) context.Context {
	return context.WithValue(ctx, credentialKey{}, cred)
}

// CredentialFromContext extracts the call-scoped credential, if present.
func CredentialFromContext(ctx context.Context) (Credential, bool) {
	cred, ok := ctx.Value(credentialKey{}).(Credential)
	return cred, ok
}
