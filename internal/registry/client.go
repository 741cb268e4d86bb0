package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"estagio-gateway/pkg/documents"
)

// DefaultTimeout bounds a single lookup. There are no retries; a failed
// attempt is surfaced to the caller immediately.
const DefaultTimeout = 10 * time.Second

// serviceErrorSentinel in a 200 payload signals that the record does not
// resolve despite the success status.
const serviceErrorSentinel = "service_error"

// activeSituation is the registry's wording for an active record.
const activeSituation = "ATIVA"

// Client looks up an organizational tax ID in the external registry.
type Client interface {
	LookupOrg(ctx context.Context, cnpj string) (LookupResult, error)
}

// HTTPClient queries the registry over HTTP. Safe for concurrent use; the
// underlying http.Client pools connections but no request state is shared.
type HTTPClient struct {
	baseURL string
	client  *http.Client
}

// NewHTTPClient constructs a registry client for the given base endpoint.
// A zero timeout falls back to DefaultTimeout.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &HTTPClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// lookupPayload is the subset of the registry response the verifier reads.
type lookupPayload struct {
	Type      string `json:"type"`
	LegalName string `json:"razao_social"`
	Situation string `json:"descricao_situacao_cadastral"`
}

// LookupOrg issues one read-only GET keyed by the normalized CNPJ and maps
// the outcome onto the LookupResult taxonomy. The error return is reserved
// for programmer mistakes (malformed base URL); every registry-side outcome,
// including transport failure, is expressed in the result.
func (c *HTTPClient) LookupOrg(ctx context.Context, cnpj string) (LookupResult, error) {
	normalized := documents.FormatCNPJ(cnpj)
	now := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+normalized, nil)
	if err != nil {
		return LookupResult{}, fmt.Errorf("build registry request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			// Caller cancellation is not a registry outcome.
			return LookupResult{}, ctx.Err()
		}
		// Unreachable, refused, or timed out. Timeout expiry surfaces
		// here too, so the caller never hangs past the bound.
		return LookupResult{Status: StatusTransportError, CheckedAt: now}, nil
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var payload lookupPayload
		if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
			return LookupResult{Status: StatusServiceError, HTTPStatus: resp.StatusCode, CheckedAt: now}, nil
		}
		if payload.Type == serviceErrorSentinel {
			return LookupResult{Status: StatusNotFound, CheckedAt: now}, nil
		}
		legalName := payload.LegalName
		if legalName == "" {
			legalName = placeholderLegalName
		}
		active := payload.Situation == "" || payload.Situation == activeSituation
		return LookupResult{Status: StatusFound, Active: active, LegalName: legalName, CheckedAt: now}, nil
	case http.StatusNotFound:
		return LookupResult{Status: StatusNotFound, CheckedAt: now}, nil
	case http.StatusBadRequest:
		return LookupResult{Status: StatusMalformed, CheckedAt: now}, nil
	default:
		return LookupResult{Status: StatusServiceError, HTTPStatus: resp.StatusCode, CheckedAt: now}, nil
	}
}

// MockClient returns canned results with a configurable latency to mimic
// real-world calls in wiring and tests.
type MockClient struct {
	Latency time.Duration
	Result  LookupResult
}

func (c MockClient) LookupOrg(ctx context.Context, cnpj string) (LookupResult, error) {
	select {
	case <-ctx.Done():
		return LookupResult{}, ctx.Err()
	case <-time.After(c.Latency):
	}
	result := c.Result
	result.CheckedAt = time.Now()
	return result, nil
}
