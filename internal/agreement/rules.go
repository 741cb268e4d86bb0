package agreement

import (
	"time"

	dErrors "estagio-gateway/pkg/domain-errors"
)

// Limits fixed by the internship regulation.
const (
	maxContractYears = 2
	maxDailyHours    = 6.0
	maxWeeklyHours   = 30
	minimumAge       = 18
)

// IsValidDateRange reports whether end falls strictly after start.
func IsValidDateRange(start, end time.Time) bool {
	return end.After(start)
}

// IsValidContractDuration reports whether the contract lasts at most two
// calendar years from the start date. The comparison date is the start date
// with the year advanced by two; a Feb 29 start normalizes to Mar 1, which
// is exactly the regulation's reading. PCD interns are exempt from the cap.
func IsValidContractDuration(start, end time.Time, pcd bool) bool {
	if pcd {
		return true
	}
	maxEnd := start.AddDate(maxContractYears, 0, 0)
	return !end.After(maxEnd)
}

// IsValidDailyHours reports whether the working window is positive and at
// most six hours long.
func IsValidDailyHours(start, end ClockTime) bool {
	if !end.After(start) {
		return false
	}
	hours := float64(end.Minutes()-start.Minutes()) / 60.0
	return hours <= maxDailyHours
}

// IsValidWeeklyHours reports whether the weekly load is within the 30-hour
// cap.
func IsValidWeeklyHours(hours int) bool {
	return hours <= maxWeeklyHours
}

// EvaluateTerms checks the schedule facts in a fixed order and reports the
// first breached rule only.
//
// Errors: CodeBusinessRule with the specific reason.
func EvaluateTerms(terms Terms, pcd bool) error {
	if !IsValidDateRange(terms.StartDate, terms.EndDate) {
		return dErrors.New(dErrors.CodeBusinessRule, "end date must be after the start date")
	}
	if !IsValidContractDuration(terms.StartDate, terms.EndDate, pcd) {
		return dErrors.New(dErrors.CodeBusinessRule, "contract may not last more than 2 years (except for PCD interns)")
	}
	if !terms.DailyEnd.After(terms.DailyStart) {
		return dErrors.New(dErrors.CodeBusinessRule, "daily end time must be after the daily start time")
	}
	if !IsValidDailyHours(terms.DailyStart, terms.DailyEnd) {
		return dErrors.New(dErrors.CodeBusinessRule, "daily hours may not exceed 6 hours")
	}
	if !IsValidWeeklyHours(terms.WeeklyHours) {
		return dErrors.Newf(dErrors.CodeBusinessRule, "weekly hours (%dh) may not exceed 30 hours", terms.WeeklyHours)
	}
	return nil
}

// AgeAtDate computes full years of age at a reference date, subtracting one
// from the naive year difference when the birthday has not yet occurred by
// that date.
func AgeAtDate(birth, at time.Time) int {
	age := at.Year() - birth.Year()
	if at.Month() < birth.Month() || (at.Month() == birth.Month() && at.Day() < birth.Day()) {
		age--
	}
	return age
}

// ValidateMinimumAge requires the intern to be at least 18 on the start
// date. This is a document-level check, separate from the schedule rules,
// because it joins Intern and Terms data.
//
// Errors: CodeBusinessRule carrying the computed age.
func ValidateMinimumAge(birth, start time.Time) error {
	if age := AgeAtDate(birth, start); age < minimumAge {
		return dErrors.Newf(dErrors.CodeBusinessRule, "intern must be at least 18 on the start date; computed age: %d", age)
	}
	return nil
}
