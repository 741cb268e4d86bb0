// Package agreement holds the internship-agreement document model and the
// business rules that govern its schedule. Everything here is pure domain
// logic: no I/O, no context.Context, no clock reads.
package agreement

import "time"

// Address is the postal address block shared by grantor and intern.
type Address struct {
	Street   string
	CEP      string
	District string
	City     string
	UF       string
}

// Representative is the grantor's legal representative.
type Representative struct {
	Name string
	Role string
}

// ProfessionalRegistration identifies the supervisor's professional council
// entry (number plus issuing body).
type ProfessionalRegistration struct {
	Number string
	Body   string
}

// Grantor is the conceding organization. Exactly one of CNPJ or CPF must be
// present; the orchestrator enforces this before any field check runs.
type Grantor struct {
	LegalName         string
	CNPJ              string
	StateRegistration string
	CPF               string
	Phone             string
	Address           Address
	Representative    Representative
}

// Supervisor is the internship supervisor on the grantor's side.
type Supervisor struct {
	Name         string
	CPF          string
	Role         string
	Education    string
	Registration ProfessionalRegistration
	Email        string
}

// Intern is the student party.
type Intern struct {
	Name        string
	Course      string
	Period      string
	Enrollment  string
	RG          string
	CPF         string
	DateOfBirth time.Time
	Address     Address
	Phone       string // optional
	Mobile      string
	Email       string
	Mandatory   bool
	PCD         bool
}

// Terms carries the schedule facts the business rules evaluate, plus the
// insurance and stipend fields the document records.
type Terms struct {
	StartDate    time.Time
	EndDate      time.Time
	DailyStart   ClockTime
	DailyEnd     ClockTime
	WeeklyHours  int
	InsurerName  string
	PolicyNumber string
	InsuredValue float64
	StipendValue float64
}

// Document is one complete internship agreement as submitted for validation.
type Document struct {
	Grantor    Grantor
	Supervisor Supervisor
	Intern     Intern
	Terms      Terms
}
