package lawyer

import (
	"strconv"
	"strings"
	"time"

	"vakeel/models"
)

const earliestPracticeYear = 1950

// derivePracticeStartYear infers the practice start year from the trailing
// four characters of an enrollment id (bar councils commonly suffix the
// enrollment year, e.g. "MH/123/2015"). Returns false when the tail is not a
// plausible year; callers must leave the field unset rather than default it.
func derivePracticeStartYear(enrollmentID string) (int, bool) {
	if len(enrollmentID) < 4 {
		return 0, false
	}
	tail := enrollmentID[len(enrollmentID)-4:]
	year, err := strconv.Atoi(tail)
	if err != nil {
		return 0, false
	}
	if year < earliestPracticeYear || year > time.Now().Year() {
		return 0, false
	}
	return year, true
}

// validateRegistration re-checks the invariants the HTTP binding layer
// already enforces, so the service stays safe when called directly.
func validateRegistration(req models.LawyerRegistrationData) error {
	switch {
	case strings.TrimSpace(req.EnrollmentID) == "":
		return ValidationError{Reason: "enrollment_id is required"}
	case strings.TrimSpace(req.FirstName) == "" || strings.TrimSpace(req.LastName) == "":
		return ValidationError{Reason: "first_Name and last_Name are required"}
	case req.Password == "":
		return ValidationError{Reason: "password is required"}
	case strings.TrimSpace(req.MobileNumber) == "":
		return ValidationError{Reason: "mobile_Number is required"}
	case len(req.City) == 0:
		return ValidationError{Reason: "at least one practice city is required"}
	case len(req.AreaOfExpertise) == 0:
		return ValidationError{Reason: "at least one area of expertise is required"}
	}
	return nil
}
