package registry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCNPJ = "80971798000158"

func lookupAgainst(t *testing.T, handler http.HandlerFunc) LookupResult {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := NewHTTPClient(srv.URL, 2*time.Second)
	result, err := client.LookupOrg(context.Background(), testCNPJ)
	require.NoError(t, err)
	return result
}

func TestHTTPClient_LookupOrg(t *testing.T) {
	t.Run("200 with record maps to found", func(t *testing.T) {
		result := lookupAgainst(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/"+testCNPJ, r.URL.Path)
			w.Write([]byte(`{"razao_social":"ACME LTDA","descricao_situacao_cadastral":"ATIVA"}`))
		})
		assert.Equal(t, StatusFound, result.Status)
		assert.True(t, result.Active)
		assert.Equal(t, "ACME LTDA", result.LegalName)
		assert.False(t, result.CheckedAt.IsZero())
	})

	t.Run("separators are stripped before the request", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/"+testCNPJ, r.URL.Path)
			w.Write([]byte(`{"razao_social":"ACME LTDA"}`))
		}))
		t.Cleanup(srv.Close)

		client := NewHTTPClient(srv.URL, 2*time.Second)
		result, err := client.LookupOrg(context.Background(), "80.971.798/0001-58")
		require.NoError(t, err)
		assert.Equal(t, StatusFound, result.Status)
	})

	t.Run("missing legal name gets a placeholder", func(t *testing.T) {
		result := lookupAgainst(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{}`))
		})
		assert.Equal(t, StatusFound, result.Status)
		assert.NotEmpty(t, result.LegalName)
	})

	t.Run("inactive situation clears the active flag", func(t *testing.T) {
		result := lookupAgainst(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"razao_social":"ACME LTDA","descricao_situacao_cadastral":"BAIXADA"}`))
		})
		assert.Equal(t, StatusFound, result.Status)
		assert.False(t, result.Active)
	})

	t.Run("200 with service_error sentinel maps to not found", func(t *testing.T) {
		result := lookupAgainst(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"type":"service_error","message":"not resolvable"}`))
		})
		assert.Equal(t, StatusNotFound, result.Status)
	})

	t.Run("404 maps to not found", func(t *testing.T) {
		result := lookupAgainst(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})
		assert.Equal(t, StatusNotFound, result.Status)
	})

	t.Run("400 maps to malformed", func(t *testing.T) {
		result := lookupAgainst(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
		})
		assert.Equal(t, StatusMalformed, result.Status)
	})

	t.Run("500 maps to service error with the status", func(t *testing.T) {
		result := lookupAgainst(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})
		assert.Equal(t, StatusServiceError, result.Status)
		assert.Equal(t, http.StatusInternalServerError, result.HTTPStatus)
	})

	t.Run("garbage payload maps to service error", func(t *testing.T) {
		result := lookupAgainst(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{not json`))
		})
		assert.Equal(t, StatusServiceError, result.Status)
	})

	t.Run("unreachable registry maps to transport error", func(t *testing.T) {
		client := NewHTTPClient("http://127.0.0.1:1", 500*time.Millisecond)
		result, err := client.LookupOrg(context.Background(), testCNPJ)
		require.NoError(t, err)
		assert.Equal(t, StatusTransportError, result.Status)
	})

	t.Run("timeout maps to transport error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(300 * time.Millisecond)
		}))
		t.Cleanup(srv.Close)

		client := NewHTTPClient(srv.URL, 50*time.Millisecond)
		result, err := client.LookupOrg(context.Background(), testCNPJ)
		require.NoError(t, err)
		assert.Equal(t, StatusTransportError, result.Status)
	})
}
