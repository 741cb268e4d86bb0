// Package httptransport assembles the public HTTP surface. Route ownership
// stays with the feature handlers; this package only mounts them next to
// the operational endpoints.
package httptransport

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"estagio-gateway/pkg/platform/httputil"
)

// Registrar is implemented by feature handlers that own their routes.
type Registrar interface {
	Register(r chi.Router)
}

// NewRouter wires the feature handlers plus health and metrics endpoints.
func NewRouter(registrars ...Registrar) http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	for _, registrar := range registrars {
		registrar.Register(r)
	}
	return r
}
