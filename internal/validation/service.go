package validation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"estagio-gateway/internal/agreement"
	"estagio-gateway/internal/archive"
	"estagio-gateway/internal/registry"
	"estagio-gateway/internal/validation/metrics"
	dErrors "estagio-gateway/pkg/domain-errors"
	"estagio-gateway/pkg/documents"
)

// Archiver receives finished reports for persistence. Submission is
// best-effort and must not block.
type Archiver interface {
	Submit(record archive.Record) bool
}

// Service validates whole documents. All dependencies except the registry
// client are optional; nil disables them.
type Service struct {
	registry registry.Client
	archiver Archiver
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

func NewService(registryClient registry.Client, archiver Archiver, logger *slog.Logger, m *metrics.Metrics) *Service {
	return &Service{
		registry: registryClient,
		archiver: archiver,
		logger:   logger,
		metrics:  m,
	}
}

// ValidateDocument runs every check over the document and folds the
// outcomes into one report.
//
// Evaluation happens in two phases. Phase one is pure and synchronous: a
// fixed sequence of checksum, format, and business-rule checks, each
// contributing exactly one verdict whether it passes or fails; a failure
// never stops the sequence. Phase two issues the external registry lookup,
// and only when the grantor CNPJ is present and its checksum passed; the
// lookup outcome replaces that field's provisional verdict.
//
// Errors: CodeBadRequest when the grantor carries neither a CNPJ nor a CPF
// (fatal precondition, no field checks run); a context error when the
// caller cancels mid-lookup. Partial reports are never returned.
func (s *Service) ValidateDocument(ctx context.Context, doc agreement.Document) (*Report, error) {
	start := time.Now()

	if doc.Grantor.CNPJ == "" && doc.Grantor.CPF == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "grantor must supply a CNPJ or a CPF")
	}

	var verdicts []Verdict
	add := func(role string, err error) int {
		v := Verdict{Role: role, Valid: err == nil, Message: "valid"}
		if err != nil {
			v.Message = dErrors.MessageOf(err)
		}
		verdicts = append(verdicts, v)
		return len(verdicts) - 1
	}

	// Phase 1: synchronous checks, fixed order.
	lookupIdx := -1
	if doc.Grantor.CNPJ != "" {
		idx := add(RoleGrantorCNPJ, documents.ValidateCNPJ(doc.Grantor.CNPJ))
		if verdicts[idx].Valid {
			verdicts[idx].Message = "valid checksum"
			lookupIdx = idx
		}
	}
	if doc.Grantor.CPF != "" {
		add(RoleGrantorCPF, documents.ValidateCPF(doc.Grantor.CPF))
	}
	add(RoleGrantorPhone, documents.ValidatePhoneNumber(doc.Grantor.Phone))
	add(RoleGrantorCEP, documents.ValidateCEP(doc.Grantor.Address.CEP))
	add(RoleGrantorUF, documents.ValidateUF(doc.Grantor.Address.UF))
	add(RoleSupervisorCPF, documents.ValidateCPF(doc.Supervisor.CPF))
	add(RoleSupervisorEmail, documents.ValidateEmail(doc.Supervisor.Email))
	add(RoleInternCPF, documents.ValidateCPF(doc.Intern.CPF))
	add(RoleInternEmail, documents.ValidateEmail(doc.Intern.Email))
	add(RoleInternMobile, documents.ValidatePhoneNumber(doc.Intern.Mobile))
	if doc.Intern.Phone != "" {
		add(RoleInternPhone, documents.ValidatePhoneNumber(doc.Intern.Phone))
	}
	add(RoleInternCEP, documents.ValidateCEP(doc.Intern.Address.CEP))
	add(RoleInternUF, documents.ValidateUF(doc.Intern.Address.UF))
	add(RoleTerms, agreement.EvaluateTerms(doc.Terms, doc.Intern.PCD))
	add(RoleInternAge, agreement.ValidateMinimumAge(doc.Intern.DateOfBirth, doc.Terms.StartDate))

	// Phase 2: registry confirmation. At most one lookup per document; it
	// carries its own timeout inside the client and its failure affects
	// only this field's verdict.
	if lookupIdx >= 0 {
		g, gctx := errgroup.WithContext(ctx)
		var result registry.LookupResult
		g.Go(func() error {
			r, err := s.registry.LookupOrg(gctx, doc.Grantor.CNPJ)
			if err != nil {
				return err
			}
			result = r
			return nil
		})
		if err := g.Wait(); err != nil {
			return nil, err
		}
		verdicts[lookupIdx] = registryVerdict(result)
	}

	overall := true
	for _, v := range verdicts {
		if !v.Valid {
			overall = false
			s.metrics.IncrementCheckFailure(v.Role)
		}
	}

	report := &Report{
		ID:           uuid.New(),
		OverallValid: overall,
		Verdicts:     verdicts,
		EvaluatedAt:  time.Now(),
	}

	s.metrics.IncrementOutcome(overall)
	s.metrics.ObserveValidateLatency(time.Since(start))

	if s.archiver != nil {
		s.archiver.Submit(archive.Record{
			ID:           report.ID,
			OverallValid: report.OverallValid,
			Observations: report.Observations(),
			EvaluatedAt:  report.EvaluatedAt,
		})
	}

	if s.logger != nil {
		s.logger.InfoContext(ctx, "document validated",
			"report_id", report.ID,
			"overall_valid", report.OverallValid,
			"checks", len(report.Verdicts),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}

	return report, nil
}

// registryVerdict interprets a lookup outcome into the grantor CNPJ field's
// final verdict. Producing LookupResult values is the registry module's
// job; reading them is ours.
func registryVerdict(result registry.LookupResult) Verdict {
	v := Verdict{Role: RoleGrantorCNPJ}
	switch result.Status {
	case registry.StatusFound:
		if result.Active {
			v.Valid = true
			v.Message = fmt.Sprintf("valid; registry record active: %s", result.LegalName)
		} else {
			v.Message = fmt.Sprintf("registry record inactive: %s", result.LegalName)
		}
	case registry.StatusNotFound:
		v.Message = "not found in the federal registry"
	case registry.StatusMalformed:
		v.Message = "rejected by the registry as malformed"
	case registry.StatusTransportError:
		v.Message = "registry unreachable; existence not confirmed"
	case registry.StatusServiceError:
		v.Message = fmt.Sprintf("registry error (status %d); existence not confirmed", result.HTTPStatus)
	default:
		v.Message = "registry lookup produced no outcome"
	}
	return v
}
