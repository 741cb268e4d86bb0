package handler

import (
	"time"

	"estagio-gateway/internal/agreement"
	dErrors "estagio-gateway/pkg/domain-errors"
)

// Wire schema for submitted agreements. Field names follow the document
// layout used by the submitting institutions, hence the Portuguese keys.

const dateLayout = "2006-01-02"

type addressRequest struct {
	Street   string `json:"endereco"`
	CEP      string `json:"cep"`
	District string `json:"bairro"`
	City     string `json:"cidade"`
	UF       string `json:"estado"`
}

type representativeRequest struct {
	Name string `json:"nome"`
	Role string `json:"cargo"`
}

type registrationRequest struct {
	Number string `json:"numero"`
	Body   string `json:"orgao"`
}

type grantorRequest struct {
	LegalName         string                `json:"razao_social"`
	CNPJ              string                `json:"cnpj"`
	StateRegistration string                `json:"insc_estadual"`
	CPF               string                `json:"cpf"`
	Phone             string                `json:"telefone"`
	Address           addressRequest        `json:"endereco"`
	Representative    representativeRequest `json:"representante_legal"`
}

type supervisorRequest struct {
	Name         string              `json:"nome"`
	CPF          string              `json:"cpf"`
	Role         string              `json:"cargo"`
	Education    string              `json:"formacao_academica"`
	Registration registrationRequest `json:"registro_profissional"`
	Email        string              `json:"email"`
}

type internRequest struct {
	Name        string         `json:"nome"`
	Course      string         `json:"curso"`
	Period      string         `json:"periodo"`
	Enrollment  string         `json:"prontuario"`
	RG          string         `json:"rg"`
	CPF         string         `json:"cpf"`
	DateOfBirth string         `json:"data_nascimento"`
	Address     addressRequest `json:"endereco"`
	Phone       string         `json:"telefone"`
	Mobile      string         `json:"celular"`
	Email       string         `json:"email"`
	Mandatory   bool           `json:"estagio_obrigatorio"`
	PCD         bool           `json:"portador_de_deficiencia"`
}

type termsRequest struct {
	StartDate    string  `json:"data_inicio"`
	EndDate      string  `json:"data_termino"`
	DailyStart   string  `json:"horario_inicio"`
	DailyEnd     string  `json:"horario_termino"`
	WeeklyHours  int     `json:"horas_semanais"`
	InsurerName  string  `json:"nome_seguradora"`
	PolicyNumber string  `json:"numero_apolice_seguro"`
	InsuredValue float64 `json:"valor_seguro"`
	StipendValue float64 `json:"valor_bolsa_auxilio"`
}

type validateDocumentRequest struct {
	Grantor    grantorRequest    `json:"unidade_concedente"`
	Supervisor supervisorRequest `json:"supervisor"`
	Intern     internRequest     `json:"estagiario"`
	Terms      termsRequest      `json:"dados_estagio"`
}

// fieldRule is one structural constraint on a string field.
type fieldRule struct {
	name     string
	value    string
	required bool
	maxLen   int
}

func checkFields(rules []fieldRule) error {
	for _, rule := range rules {
		if rule.required && rule.value == "" {
			return dErrors.Newf(dErrors.CodeBadRequest, "%s is required", rule.name)
		}
		if rule.maxLen > 0 && len(rule.value) > rule.maxLen {
			return dErrors.Newf(dErrors.CodeBadRequest, "%s exceeds %d characters", rule.name, rule.maxLen)
		}
	}
	return nil
}

func addressRules(prefix string, a addressRequest) []fieldRule {
	return []fieldRule{
		{prefix + ".endereco", a.Street, true, 100},
		{prefix + ".cep", a.CEP, true, 9},
		{prefix + ".bairro", a.District, true, 100},
		{prefix + ".cidade", a.City, true, 100},
		{prefix + ".estado", a.UF, true, 2},
	}
}

// validate applies the structural constraints of the submission schema:
// required fields and maximum lengths. Content rules (checksums, schedule
// limits) belong to the validation engine, not here.
func (req *validateDocumentRequest) validate() error {
	rules := []fieldRule{
		{"unidade_concedente.razao_social", req.Grantor.LegalName, true, 100},
		{"unidade_concedente.cnpj", req.Grantor.CNPJ, false, 18},
		{"unidade_concedente.insc_estadual", req.Grantor.StateRegistration, true, 20},
		{"unidade_concedente.cpf", req.Grantor.CPF, false, 14},
		{"unidade_concedente.telefone", req.Grantor.Phone, true, 15},
		{"unidade_concedente.representante_legal.nome", req.Grantor.Representative.Name, true, 100},
		{"unidade_concedente.representante_legal.cargo", req.Grantor.Representative.Role, true, 100},

		{"supervisor.nome", req.Supervisor.Name, true, 100},
		{"supervisor.cpf", req.Supervisor.CPF, true, 14},
		{"supervisor.cargo", req.Supervisor.Role, true, 100},
		{"supervisor.formacao_academica", req.Supervisor.Education, true, 100},
		{"supervisor.registro_profissional.numero", req.Supervisor.Registration.Number, true, 20},
		{"supervisor.registro_profissional.orgao", req.Supervisor.Registration.Body, true, 20},
		{"supervisor.email", req.Supervisor.Email, true, 100},

		{"estagiario.nome", req.Intern.Name, true, 100},
		{"estagiario.curso", req.Intern.Course, true, 100},
		{"estagiario.periodo", req.Intern.Period, true, 20},
		{"estagiario.prontuario", req.Intern.Enrollment, true, 20},
		{"estagiario.rg", req.Intern.RG, true, 12},
		{"estagiario.cpf", req.Intern.CPF, true, 14},
		{"estagiario.data_nascimento", req.Intern.DateOfBirth, true, 0},
		{"estagiario.telefone", req.Intern.Phone, false, 15},
		{"estagiario.celular", req.Intern.Mobile, true, 15},
		{"estagiario.email", req.Intern.Email, true, 100},

		{"dados_estagio.data_inicio", req.Terms.StartDate, true, 0},
		{"dados_estagio.data_termino", req.Terms.EndDate, true, 0},
		{"dados_estagio.horario_inicio", req.Terms.DailyStart, true, 0},
		{"dados_estagio.horario_termino", req.Terms.DailyEnd, true, 0},
		{"dados_estagio.nome_seguradora", req.Terms.InsurerName, true, 100},
		{"dados_estagio.numero_apolice_seguro", req.Terms.PolicyNumber, true, 50},
	}
	rules = append(rules, addressRules("unidade_concedente.endereco", req.Grantor.Address)...)
	rules = append(rules, addressRules("estagiario.endereco", req.Intern.Address)...)
	return checkFields(rules)
}

func parseDate(name, value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, dErrors.Newf(dErrors.CodeBadRequest, "%s must be a date in YYYY-MM-DD format", name)
	}
	return t, nil
}

func parseClock(name, value string) (agreement.ClockTime, error) {
	ct, err := agreement.ParseClockTime(value)
	if err != nil {
		return agreement.ClockTime{}, dErrors.Newf(dErrors.CodeBadRequest, "%s must be a time in HH:MM format", name)
	}
	return ct, nil
}

// toDocument maps the wire request onto the domain document, parsing dates
// and clock times. Returns bad_request on any unparseable value.
func (req *validateDocumentRequest) toDocument() (agreement.Document, error) {
	if err := req.validate(); err != nil {
		return agreement.Document{}, err
	}

	birth, err := parseDate("estagiario.data_nascimento", req.Intern.DateOfBirth)
	if err != nil {
		return agreement.Document{}, err
	}
	start, err := parseDate("dados_estagio.data_inicio", req.Terms.StartDate)
	if err != nil {
		return agreement.Document{}, err
	}
	end, err := parseDate("dados_estagio.data_termino", req.Terms.EndDate)
	if err != nil {
		return agreement.Document{}, err
	}
	dailyStart, err := parseClock("dados_estagio.horario_inicio", req.Terms.DailyStart)
	if err != nil {
		return agreement.Document{}, err
	}
	dailyEnd, err := parseClock("dados_estagio.horario_termino", req.Terms.DailyEnd)
	if err != nil {
		return agreement.Document{}, err
	}

	doc := agreement.Document{
		Grantor: agreement.Grantor{
			LegalName:         req.Grantor.LegalName,
			CNPJ:              req.Grantor.CNPJ,
			StateRegistration: req.Grantor.StateRegistration,
			CPF:               req.Grantor.CPF,
			Phone:             req.Grantor.Phone,
			Address:           toAddress(req.Grantor.Address),
			Representative: agreement.Representative{
				Name: req.Grantor.Representative.Name,
				Role: req.Grantor.Representative.Role,
			},
		},
		Supervisor: agreement.Supervisor{
			Name:      req.Supervisor.Name,
			CPF:       req.Supervisor.CPF,
			Role:      req.Supervisor.Role,
			Education: req.Supervisor.Education,
			Registration: agreement.ProfessionalRegistration{
				Number: req.Supervisor.Registration.Number,
				Body:   req.Supervisor.Registration.Body,
			},
			Email: req.Supervisor.Email,
		},
		Intern: agreement.Intern{
			Name:        req.Intern.Name,
			Course:      req.Intern.Course,
			Period:      req.Intern.Period,
			Enrollment:  req.Intern.Enrollment,
			RG:          req.Intern.RG,
			CPF:         req.Intern.CPF,
			DateOfBirth: birth,
			Address:     toAddress(req.Intern.Address),
			Phone:       req.Intern.Phone,
			Mobile:      req.Intern.Mobile,
			Email:       req.Intern.Email,
			Mandatory:   req.Intern.Mandatory,
			PCD:         req.Intern.PCD,
		},
		Terms: agreement.Terms{
			StartDate:    start,
			EndDate:      end,
			DailyStart:   dailyStart,
			DailyEnd:     dailyEnd,
			WeeklyHours:  req.Terms.WeeklyHours,
			InsurerName:  req.Terms.InsurerName,
			PolicyNumber: req.Terms.PolicyNumber,
			InsuredValue: req.Terms.InsuredValue,
			StipendValue: req.Terms.StipendValue,
		},
	}
	return doc, nil
}

func toAddress(a addressRequest) agreement.Address {
	return agreement.Address{
		Street:   a.Street,
		CEP:      a.CEP,
		District: a.District,
		City:     a.City,
		UF:       a.UF,
	}
}
