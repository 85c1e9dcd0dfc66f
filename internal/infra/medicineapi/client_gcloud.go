//go:build gcloud

package medicineapi

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

// serverlessAuthTransport puts the service ID token in
// X-Serverless-Authorization so the caller's bearer token can still travel
// in Authorization.
type serverlessAuthTransport struct {
	base   http.RoundTripper
	tokens oauth2.TokenSource
}

func (t *serverlessAuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	tok, err := t.tokens.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to get id token: %w", err)
	}

	r := req.Clone(req.Context())
	r.Header.Set("X-Serverless-Authorization", "Bearer "+tok.AccessToken)
	return t.base.RoundTrip(r)
}

func newHTTPClient(baseURL string) *http.Client {
	ts, err := idtoken.NewTokenSource(context.Background(), baseURL)
	if err != nil {
		slog.Error("failed to create idtoken source, falling back to unauthenticated client",
			slog.String("error", err.Error()),
		)
		return &http.Client{
			Timeout: 30 * time.Second,
		}
	}

	return &http.Client{
		Timeout: 30 * time.Second,
		Transport: &serverlessAuthTransport{
			base:   http.DefaultTransport,
			tokens: ts,
		},
	}
}
