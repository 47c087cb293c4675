package lawyer

import (
	"fmt"
	"time"

	"vakeel/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Authenticate verifies credentials and issues a session token. An unknown
// identifier and a wrong password yield the same error so a caller cannot
// probe which enrollment ids exist.
func (s *DefaultLawyerService) Authenticate(identifier, password string) (*AuthResponse, error) {
	if identifier == "" || password == "" {
		return nil, ValidationError{Reason: "identifier and password are required"}
	}

	lawyerRec, err := s.Repo.GetByLogin(identifier)
	if err != nil {
		utils.GetLogger().Error("Authenticate: failed to fetch lawyer", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if lawyerRec == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(lawyerRec.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(lawyerRec.ID, lawyerRec.Email, lawyerRec.EnrollmentID, utils.AuthTokenTTL)
	if err != nil {
		utils.GetLogger().Error("Authenticate: failed to generate auth token", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	if err := s.Repo.UpdateLastLogin(lawyerRec.ID, time.Now()); err != nil {
		utils.GetLogger().Warn("Authenticate: failed to stamp last_login", zap.Error(err))
	}

	return &AuthResponse{
		ID:           lawyerRec.ID,
		Token:        token,
		EnrollmentID: lawyerRec.EnrollmentID,
		Email:        lawyerRec.Email,
		FirstName:    lawyerRec.FirstName,
		LastName:     lawyerRec.LastName,
	}, nil
}
