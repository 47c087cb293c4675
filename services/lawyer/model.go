package lawyer

import (
	lawyerRepo "vakeel/database/repository/lawyer"
	"vakeel/models"
)

// LawyerService defines business logic for the lawyer directory.
type LawyerService interface {
	// Register validates a registration, persists the lawyer, and issues a
	// session token so registration doubles as login.
	Register(req models.LawyerRegistrationData) (*AuthResponse, error)
	// Authenticate verifies credentials (by enrollment id or email) and
	// issues a session token.
	Authenticate(identifier, password string) (*AuthResponse, error)
	// GetByEnrollmentID returns the public view of a profile.
	GetByEnrollmentID(enrollmentID string) (*models.Lawyer, error)
	// GetSelf returns the owning lawyer's own (masked) view.
	GetSelf(enrollmentID string) (*models.Lawyer, error)
	// GetIdentity returns the minimal identity view for the current session.
	GetIdentity(id string) (*models.Lawyer, error)
	// UpdateSelf applies an allow-listed patch to the caller's own profile.
	UpdateSelf(enrollmentID string, req models.LawyerUpdateRequest) (*models.Lawyer, error)
	// Search returns lawyers by city and optional specialization, premium first.
	Search(req models.LawyerSearchRequest) ([]models.Lawyer, error)
	// ExpireLapsedPremiums demotes profiles whose premium window has passed.
	ExpireLapsedPremiums() (int64, error)
}

// DefaultLawyerService is the production implementation.
type DefaultLawyerService struct {
	Repo lawyerRepo.LawyerRepository
}

// NewDefaultLawyerService creates a LawyerService backed by the given repository.
func NewDefaultLawyerService(repo lawyerRepo.LawyerRepository) *DefaultLawyerService {
	return &DefaultLawyerService{Repo: repo}
}

// AuthResponse is returned by Register and Authenticate.
type AuthResponse struct {
	ID           string `json:"id"`
	Token        string `json:"token"`
	EnrollmentID string `json:"enrollment_id"`
	Email        string `json:"email,omitempty"`
	FirstName    string `json:"first_Name,omitempty"`
	LastName     string `json:"last_Name,omitempty"`
}
