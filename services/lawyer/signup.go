package lawyer

import (
	"fmt"

	"vakeel/models"
	"vakeel/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Register validates the registration, checks the three uniqueness invariants
// independently, hashes the password, and persists exactly one document.
// Validation happens before the write, so a failed registration leaves no
// partial state. On success a session token is issued, making registration
// double as login.
func (s *DefaultLawyerService) Register(req models.LawyerRegistrationData) (*AuthResponse, error) {
	if err := validateRegistration(req); err != nil {
		return nil, err
	}

	conflictField, err := s.Repo.FindConflict(req.EnrollmentID, req.Email, req.MobileNumber)
	if err != nil {
		utils.GetLogger().Error("Register: uniqueness check failed", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if conflictField != "" {
		return nil, ConflictError{Field: conflictField}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("Register: failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	lawyerObj := models.Lawyer{
		ID:                uuid.New().String(),
		EnrollmentID:      req.EnrollmentID,
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		Email:             req.Email,
		PasswordHash:      string(hashedPassword),
		MobileNumber:      req.MobileNumber,
		WhatsAppNumber:    req.WhatsAppNumber,
		City:              req.City,
		AreaOfExpertise:   req.AreaOfExpertise,
		Languages:         req.Languages,
		Country:           req.Country,
		PracticeStartYear: req.PracticeStartYear,
		IsActive:          true,
		PasswordSet:       true,
	}

	if lawyerObj.PracticeStartYear == 0 {
		if year, ok := derivePracticeStartYear(req.EnrollmentID); ok {
			lawyerObj.PracticeStartYear = year
		}
	}

	if err := s.Repo.Create(&lawyerObj); err != nil {
		// Unique indexes back the probes above; a concurrent registration can
		// still lose the race and surface here.
		if mongo.IsDuplicateKeyError(err) {
			return nil, ConflictError{}
		}
		utils.GetLogger().Error("Register: failed to create lawyer", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	token, err := utils.GenerateToken(lawyerObj.ID, lawyerObj.Email, lawyerObj.EnrollmentID, utils.AuthTokenTTL)
	if err != nil {
		utils.GetLogger().Error("Register: failed to generate auth token", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	return &AuthResponse{
		ID:           lawyerObj.ID,
		Token:        token,
		EnrollmentID: lawyerObj.EnrollmentID,
		Email:        lawyerObj.Email,
		FirstName:    lawyerObj.FirstName,
		LastName:     lawyerObj.LastName,
	}, nil
}
