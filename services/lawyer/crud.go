package lawyer

import (
	"fmt"

	lawyerRepo "vakeel/database/repository/lawyer"
	"vakeel/models"
	"vakeel/utils"

	"go.uber.org/zap"
)

// GetByEnrollmentID returns the public view of a profile: the password hash is
// projected out at the store level.
func (s *DefaultLawyerService) GetByEnrollmentID(enrollmentID string) (*models.Lawyer, error) {
	lawyerRec, err := s.Repo.GetByEnrollmentID(enrollmentID, lawyerRepo.PublicProjection)
	if err != nil {
		utils.GetLogger().Error("GetByEnrollmentID: fetch failed", zap.Error(err))
		return nil, fmt.Errorf("failed to fetch lawyer")
	}
	if lawyerRec == nil {
		return nil, ErrNotFound
	}
	return lawyerRec, nil
}

// GetSelf returns the owning lawyer's own view, which hides the password hash
// plus internal/administrative fields (overview text, internal location ids,
// audit timestamps).
func (s *DefaultLawyerService) GetSelf(enrollmentID string) (*models.Lawyer, error) {
	lawyerRec, err := s.Repo.GetByEnrollmentID(enrollmentID, lawyerRepo.SelfProjection)
	if err != nil {
		utils.GetLogger().Error("GetSelf: fetch failed", zap.Error(err))
		return nil, fmt.Errorf("failed to fetch lawyer")
	}
	if lawyerRec == nil {
		return nil, ErrNotFound
	}
	return lawyerRec, nil
}

// GetIdentity returns the minimal identity fields for the current session,
// resolved by the token's surrogate id.
func (s *DefaultLawyerService) GetIdentity(id string) (*models.Lawyer, error) {
	lawyerRec, err := s.Repo.GetByID(id, lawyerRepo.IdentityProjection)
	if err != nil {
		utils.GetLogger().Error("GetIdentity: fetch failed", zap.Error(err))
		return nil, fmt.Errorf("failed to fetch lawyer")
	}
	if lawyerRec == nil {
		return nil, ErrNotFound
	}
	return lawyerRec, nil
}

// Search validates the criteria and returns matching lawyers, premium
// profiles first. An empty result is returned as an empty slice.
func (s *DefaultLawyerService) Search(req models.LawyerSearchRequest) ([]models.Lawyer, error) {
	if req.City == "" {
		return nil, ValidationError{Reason: "City is required."}
	}

	results, err := s.Repo.Search(lawyerRepo.SearchCriteria{
		City:      req.City,
		Expertise: req.AreaOfExpertise,
	})
	if err != nil {
		utils.GetLogger().Error("Search: query failed", zap.Error(err))
		return nil, fmt.Errorf("failed to fetch lawyers")
	}
	if results == nil {
		results = []models.Lawyer{}
	}
	return results, nil
}
