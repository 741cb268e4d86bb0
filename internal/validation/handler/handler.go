// Package handler exposes the validation engine over HTTP.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"estagio-gateway/internal/agreement"
	"estagio-gateway/internal/archive"
	"estagio-gateway/internal/platform/middleware"
	"estagio-gateway/internal/validation"
	dErrors "estagio-gateway/pkg/domain-errors"
	"estagio-gateway/pkg/platform/httputil"
	"estagio-gateway/pkg/requestcontext"
)

const (
	requestTimeout     = 30 * time.Second
	defaultRecentLimit = 20
	maxRecentLimit     = 100
)

// Service defines the validation operations the handler depends on.
type Service interface {
	ValidateDocument(ctx context.Context, doc agreement.Document) (*validation.Report, error)
}

// ReportLister reads back archived reports.
type ReportLister interface {
	ListRecent(ctx context.Context, limit int) ([]archive.Record, error)
}

// Handler handles document validation endpoints.
type Handler struct {
	logger       *slog.Logger
	service      Service
	reports      ReportLister
	jwtValidator middleware.JWTValidator
}

// New creates a validation Handler. jwtValidator may be nil, which leaves
// the endpoints open (development mode).
func New(service Service, reports ReportLister, logger *slog.Logger, jwtValidator middleware.JWTValidator) *Handler {
	return &Handler{
		logger:       logger,
		service:      service,
		reports:      reports,
		jwtValidator: jwtValidator,
	}
}

// Register registers the validation routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	router := chi.NewRouter()
	router.Use(middleware.Recovery(h.logger))
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(h.logger))
	router.Use(middleware.Timeout(requestTimeout))
	if h.jwtValidator != nil {
		router.Use(middleware.RequireAuth(h.jwtValidator, h.logger))
	}
	router.Post("/v1/validations", h.handleValidate)
	router.Get("/v1/reports/recent", h.handleRecentReports)

	r.Mount("/", router)
}

type verdictResponse struct {
	Field   string `json:"field"`
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
}

type reportResponse struct {
	ID           string            `json:"id"`
	OverallValid bool              `json:"overall_valid"`
	Verdicts     []verdictResponse `json:"verdicts"`
	Observations []string          `json:"observations"`
	EvaluatedAt  time.Time         `json:"evaluated_at"`
}

func toReportResponse(report *validation.Report) reportResponse {
	verdicts := make([]verdictResponse, 0, len(report.Verdicts))
	for _, v := range report.Verdicts {
		verdicts = append(verdicts, verdictResponse{Field: v.Role, Valid: v.Valid, Message: v.Message})
	}
	return reportResponse{
		ID:           report.ID.String(),
		OverallValid: report.OverallValid,
		Verdicts:     verdicts,
		Observations: report.Observations(),
		EvaluatedAt:  report.EvaluatedAt,
	}
}

// handleValidate runs the full validation sequence over one submitted
// agreement and returns the consolidated report. Invalid documents still
// get a 200; only structural problems with the request itself are 4xx.
func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[validateDocumentRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	doc, err := req.toDocument()
	if err != nil {
		h.logger.WarnContext(ctx, "structurally invalid submission",
			"request_id", requestID,
			"error", err.Error(),
		)
		httputil.WriteError(w, err)
		return
	}

	report, err := h.service.ValidateDocument(ctx, doc)
	if err != nil {
		if dErrors.HasCode(err, dErrors.CodeBadRequest) {
			h.logger.WarnContext(ctx, "rejected submission",
				"request_id", requestID,
				"error", err.Error(),
			)
			httputil.WriteError(w, err)
			return
		}
		h.logger.ErrorContext(ctx, "validation failed",
			"request_id", requestID,
			"error", err.Error(),
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeInternal, "failed to validate document"))
		return
	}

	httputil.WriteJSON(w, http.StatusOK, toReportResponse(report))
}

type recentReportResponse struct {
	ID           string    `json:"id"`
	OverallValid bool      `json:"overall_valid"`
	Observations []string  `json:"observations"`
	EvaluatedAt  time.Time `json:"evaluated_at"`
}

// handleRecentReports lists the most recently archived reports.
func (h *Handler) handleRecentReports(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	limit := defaultRecentLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "limit must be a positive integer"))
			return
		}
		limit = min(n, maxRecentLimit)
	}

	records, err := h.reports.ListRecent(ctx, limit)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list recent reports",
			"request_id", requestID,
			"error", err.Error(),
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeInternal, "failed to list reports"))
		return
	}

	out := make([]recentReportResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, recentReportResponse{
			ID:           rec.ID.String(),
			OverallValid: rec.OverallValid,
			Observations: rec.Observations,
			EvaluatedAt:  rec.EvaluatedAt,
		})
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"reports": out})
}
