package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"estagio-gateway/internal/agreement"
	"estagio-gateway/internal/archive"
	"estagio-gateway/internal/platform/middleware"
	"estagio-gateway/internal/validation"
	dErrors "estagio-gateway/pkg/domain-errors"
)

type stubService struct {
	report  *validation.Report
	err     error
	gotDocs []agreement.Document
}

func (s *stubService) ValidateDocument(_ context.Context, doc agreement.Document) (*validation.Report, error) {
	s.gotDocs = append(s.gotDocs, doc)
	if s.err != nil {
		return nil, s.err
	}
	return s.report, nil
}

type stubLister struct {
	records []archive.Record
	err     error
}

func (s *stubLister) ListRecent(_ context.Context, limit int) ([]archive.Record, error) {
	if s.err != nil {
		return nil, s.err
	}
	if limit < len(s.records) {
		return s.records[:limit], nil
	}
	return s.records, nil
}

type stubValidator struct {
	institution string
	err         error
}

func (s *stubValidator) ValidateToken(string) (*middleware.JWTClaims, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &middleware.JWTClaims{Institution: s.institution}, nil
}

type ValidationHandlerSuite struct {
	suite.Suite
}

func TestValidationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ValidationHandlerSuite))
}

func (s *ValidationHandlerSuite) newRouter(service Service, lister ReportLister, validator middleware.JWTValidator) http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := New(service, lister, logger, validator)
	r := chi.NewRouter()
	h.Register(r)
	return r
}

func validRequest() validateDocumentRequest {
	address := addressRequest{
		Street:   "Rua das Palmeiras, 100",
		CEP:      "01310-100",
		District: "Bela Vista",
		City:     "São Paulo",
		UF:       "SP",
	}
	return validateDocumentRequest{
		Grantor: grantorRequest{
			LegalName:         "ACME Comercio Ltda",
			CNPJ:              "80.971.798/0001-58",
			StateRegistration: "110.042.490.114",
			Phone:             "1123456789",
			Address:           address,
			Representative:    representativeRequest{Name: "Maria Souza", Role: "Diretora"},
		},
		Supervisor: supervisorRequest{
			Name:         "João Pereira",
			CPF:          "121.363.095-95",
			Role:         "Engenheiro",
			Education:    "Engenharia de Produção",
			Registration: registrationRequest{Number: "5069-D", Body: "CREA-SP"},
			Email:        "joao.pereira@acme.com.br",
		},
		Intern: internRequest{
			Name:        "Ana Lima",
			Course:      "Administração",
			Period:      "4º semestre",
			Enrollment:  "SP3041234",
			RG:          "12.345.678-9",
			CPF:         "121.363.095-95",
			DateOfBirth: "2002-06-15",
			Address:     address,
			Mobile:      "11987654321",
			Email:       "ana.lima@exemplo.com.br",
			Mandatory:   true,
		},
		Terms: termsRequest{
			StartDate:    "2025-03-01",
			EndDate:      "2026-02-28",
			DailyStart:   "09:00",
			DailyEnd:     "13:00",
			WeeklyHours:  20,
			InsurerName:  "Seguradora Confiança",
			PolicyNumber: "AP-2025-0001",
			InsuredValue: 20000,
			StipendValue: 1200,
		},
	}
}

func sampleReport() *validation.Report {
	return &validation.Report{
		ID:           uuid.New(),
		OverallValid: true,
		Verdicts: []validation.Verdict{
			{Role: validation.RoleGrantorCNPJ, Valid: true, Message: "valid; registry record active: ACME COMERCIO LTDA"},
		},
		EvaluatedAt: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (s *ValidationHandlerSuite) post(router http.Handler, body any) *httptest.ResponseRecorder {
	raw, err := json.Marshal(body)
	s.Require().NoError(err)
	req := httptest.NewRequest(http.MethodPost, "/v1/validations", bytes.NewReader(raw))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func (s *ValidationHandlerSuite) TestValidate_OK() {
	service := &stubService{report: sampleReport()}
	router := s.newRouter(service, &stubLister{}, nil)

	w := s.post(router, validRequest())

	s.Equal(http.StatusOK, w.Code)
	var resp map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal(true, resp["overall_valid"])
	verdicts := resp["verdicts"].([]any)
	s.Require().Len(verdicts, 1)
	first := verdicts[0].(map[string]any)
	s.Equal("grantor CNPJ", first["field"])
	s.Contains(first["message"], "ACME COMERCIO LTDA")

	// The handler passes a fully-mapped document through.
	s.Require().Len(service.gotDocs, 1)
	doc := service.gotDocs[0]
	s.Equal("80.971.798/0001-58", doc.Grantor.CNPJ)
	s.Equal(time.Date(2002, 6, 15, 0, 0, 0, 0, time.UTC), doc.Intern.DateOfBirth)
	s.Equal(9, doc.Terms.DailyStart.Hour)
	s.Equal(20, doc.Terms.WeeklyHours)
}

func (s *ValidationHandlerSuite) TestValidate_MalformedJSON() {
	router := s.newRouter(&stubService{report: sampleReport()}, &stubLister{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/validations", bytes.NewReader([]byte("{not json")))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	s.Equal(http.StatusBadRequest, w.Code)
	s.Contains(w.Body.String(), "bad_request")
}

func (s *ValidationHandlerSuite) TestValidate_MissingRequiredField() {
	service := &stubService{report: sampleReport()}
	router := s.newRouter(service, &stubLister{}, nil)

	body := validRequest()
	body.Supervisor.Name = ""
	w := s.post(router, body)

	s.Equal(http.StatusBadRequest, w.Code)
	s.Contains(w.Body.String(), "supervisor.nome")
	s.Empty(service.gotDocs, "structurally invalid submissions never reach the engine")
}

func (s *ValidationHandlerSuite) TestValidate_FieldTooLong() {
	router := s.newRouter(&stubService{report: sampleReport()}, &stubLister{}, nil)

	body := validRequest()
	body.Intern.RG = "1234567890123"
	w := s.post(router, body)

	s.Equal(http.StatusBadRequest, w.Code)
	s.Contains(w.Body.String(), "estagiario.rg")
}

func (s *ValidationHandlerSuite) TestValidate_BadDateFormat() {
	router := s.newRouter(&stubService{report: sampleReport()}, &stubLister{}, nil)

	body := validRequest()
	body.Terms.StartDate = "01/03/2025"
	w := s.post(router, body)

	s.Equal(http.StatusBadRequest, w.Code)
	s.Contains(w.Body.String(), "data_inicio")
}

func (s *ValidationHandlerSuite) TestValidate_BadClockFormat() {
	router := s.newRouter(&stubService{report: sampleReport()}, &stubLister{}, nil)

	body := validRequest()
	body.Terms.DailyEnd = "13h00"
	w := s.post(router, body)

	s.Equal(http.StatusBadRequest, w.Code)
	s.Contains(w.Body.String(), "horario_termino")
}

func (s *ValidationHandlerSuite) TestValidate_ServiceRejection() {
	service := &stubService{err: dErrors.New(dErrors.CodeBadRequest, "grantor must supply a CNPJ or a CPF")}
	router := s.newRouter(service, &stubLister{}, nil)

	body := validRequest()
	body.Grantor.CNPJ = ""
	w := s.post(router, body)

	s.Equal(http.StatusBadRequest, w.Code)
	s.Contains(w.Body.String(), "grantor must supply a CNPJ or a CPF")
}

func (s *ValidationHandlerSuite) TestValidate_ServiceFailure() {
	service := &stubService{err: dErrors.New(dErrors.CodeInternal, "boom")}
	router := s.newRouter(service, &stubLister{}, nil)

	w := s.post(router, validRequest())

	s.Equal(http.StatusInternalServerError, w.Code)
	s.Contains(w.Body.String(), "internal_error")
	s.NotContains(w.Body.String(), "boom", "internal details stay out of responses")
}

func (s *ValidationHandlerSuite) TestRecentReports() {
	lister := &stubLister{records: []archive.Record{
		{
			ID:           uuid.New(),
			OverallValid: false,
			Observations: []string{"grantor CNPJ: not found in the federal registry"},
			EvaluatedAt:  time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
		},
	}}
	router := s.newRouter(&stubService{}, lister, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/reports/recent", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	s.Equal(http.StatusOK, w.Code)
	var resp map[string][]recentReportResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Require().Len(resp["reports"], 1)
	s.False(resp["reports"][0].OverallValid)
}

func (s *ValidationHandlerSuite) TestRecentReports_BadLimit() {
	router := s.newRouter(&stubService{}, &stubLister{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/reports/recent?limit=zero", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *ValidationHandlerSuite) TestAuth_MissingToken() {
	validator := &stubValidator{institution: "agente-integracao-sp"}
	router := s.newRouter(&stubService{report: sampleReport()}, &stubLister{}, validator)

	raw, err := json.Marshal(validRequest())
	s.Require().NoError(err)
	req := httptest.NewRequest(http.MethodPost, "/v1/validations", bytes.NewReader(raw))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *ValidationHandlerSuite) TestAuth_ValidToken() {
	validator := &stubValidator{institution: "agente-integracao-sp"}
	router := s.newRouter(&stubService{report: sampleReport()}, &stubLister{}, validator)

	raw, err := json.Marshal(validRequest())
	s.Require().NoError(err)
	req := httptest.NewRequest(http.MethodPost, "/v1/validations", bytes.NewReader(raw))
	req.Header.Set("Authorization", "Bearer any-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	s.Equal(http.StatusOK, w.Code)
}
