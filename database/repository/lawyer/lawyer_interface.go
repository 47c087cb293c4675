package lawyerRepo

import (
	"time"

	"vakeel/models"

	"go.mongodb.org/mongo-driver/bson"
)

// LawyerRepository defines methods for lawyer data access.
type LawyerRepository interface {
	// Create inserts a new lawyer record.
	Create(lawyer *models.Lawyer) error
	// GetByID retrieves a lawyer by its surrogate ID with an optional projection.
	GetByID(id string, projection bson.M) (*models.Lawyer, error)
	// GetByEnrollmentID retrieves a lawyer by enrollment id with an optional projection.
	GetByEnrollmentID(enrollmentID string, projection bson.M) (*models.Lawyer, error)
	// GetByLogin retrieves the full record (including the password hash) by
	// enrollment id or email, for credential verification only.
	GetByLogin(identifier string) (*models.Lawyer, error)
	// FindConflict reports which uniqueness invariant an intended registration
	// would violate: "enrollment_id", "email", "mobile_Number", or "" for none.
	FindConflict(enrollmentID, email, mobileNumber string) (string, error)
	// UpdateFields applies a $set document to the lawyer with the given enrollment id.
	UpdateFields(enrollmentID string, fields bson.M) error
	// UpdateLastLogin stamps the last_login field.
	UpdateLastLogin(id string, at time.Time) error
	// Search returns lawyers matching the criteria, premium profiles first.
	Search(criteria SearchCriteria) ([]models.Lawyer, error)
	// ExpireLapsedPremiums clears is_premium where premium_expires_at has passed.
	ExpireLapsedPremiums(now time.Time) (int64, error)
}

// SearchCriteria holds parameters for a directory search. City is mandatory;
// Expertise narrows the result when non-empty.
type SearchCriteria struct {
	City      string
	Expertise string
}
