package imagen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// CloudPlatformScope is the OAuth scope required by Vertex AI.
const CloudPlatformScope = "https://www.googleapis.com/auth/cloud-platform"

// ErrNoServiceAccount is returned when no private key is configured.
var ErrNoServiceAccount = errors.New("imagen: service account not configured")

// ServiceAccount mirrors the fields of a Google service-account key file.
type ServiceAccount struct {
	Type                    string `json:"type"`
	ProjectID               string `json:"project_id"`
	PrivateKeyID            string `json:"private_key_id"`
	PrivateKey              string `json:"private_key"`
	ClientEmail             string `json:"client_email"`
	ClientID                string `json:"client_id"`
	AuthURI                 string `json:"auth_uri"`
	TokenURI                string `json:"token_uri"`
	AuthProviderX509CertURL string `json:"auth_provider_x509_cert_url"`
	ClientX509CertURL       string `json:"client_x509_cert_url"`
	UniverseDomain          string `json:"universe_domain,omitempty"`
}

// Configured reports whether a private key is present.
func (s ServiceAccount) Configured() bool {
	return strings.TrimSpace(s.PrivateKey) != ""
}

// UnescapePrivateKey turns literal "\n" sequences, as found in single-line
// environment variables, back into newlines.
func UnescapePrivateKey(key string) string {
	return strings.ReplaceAll(key, `\n`, "\n")
}

// JSON renders the key file. Type defaults to service_account.
func (s ServiceAccount) JSON() ([]byte, error) {
	if s.Type == "" {
		s.Type = "service_account"
	}
	s.PrivateKey = UnescapePrivateKey(s.PrivateKey)
	return json.Marshal(s)
}

// TokenSource returns a token source for the cloud-platform scope.
func (s ServiceAccount) TokenSource(ctx context.Context) (oauth2.TokenSource, error) {
	if !s.Configured() {
		return nil, ErrNoServiceAccount
	}
	raw, err := s.JSON()
	if err != nil {
		return nil, fmt.Errorf("imagen: encode service account: %w", err)
	}
	creds, err := google.CredentialsFromJSON(ctx, raw, CloudPlatformScope)
	if err != nil {
		return nil, fmt.Errorf("imagen: load service account: %w", err)
	}
	return creds.TokenSource, nil
}
