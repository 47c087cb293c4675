package lawyer

import (
	"errors"
	"fmt"
	"time"

	lawyerRepo "vakeel/database/repository/lawyer"
	"vakeel/models"
	"vakeel/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// buildUpdateDocument assembles a $set document from the allow-listed patch.
// enrollment_id and password_hash cannot appear here: the request schema has
// no slot for them, so any such keys in the raw payload were already dropped.
func buildUpdateDocument(req models.LawyerUpdateRequest) bson.M {
	setFields := bson.M{}

	if req.FirstName != nil {
		setFields["first_Name"] = *req.FirstName
	}
	if req.LastName != nil {
		setFields["last_Name"] = *req.LastName
	}
	if req.Email != nil {
		setFields["email"] = *req.Email
	}
	if req.MobileNumber != nil {
		setFields["mobile_Number"] = *req.MobileNumber
	}
	if req.WhatsAppNumber != nil {
		setFields["WhatsApp_Number"] = *req.WhatsAppNumber
	}
	if req.City != nil {
		setFields["city"] = *req.City
	}
	if req.AreaOfExpertise != nil {
		setFields["area_of_expertise"] = *req.AreaOfExpertise
	}
	if req.Languages != nil {
		setFields["languages"] = *req.Languages
	}
	if req.BuildingName != nil {
		setFields["building_name"] = *req.BuildingName
	}
	if req.DoorNo != nil {
		setFields["door_no"] = *req.DoorNo
	}
	if req.Landmark != nil {
		setFields["landmark"] = *req.Landmark
	}
	if req.PostOffice != nil {
		setFields["post_office"] = *req.PostOffice
	}
	if req.Country != nil {
		setFields["country"] = *req.Country
	}
	if req.Pincode != nil {
		setFields["pincode"] = *req.Pincode
	}
	if req.Education != nil {
		setFields["education"] = *req.Education
	}
	if req.Bio != nil {
		setFields["bio"] = *req.Bio
	}
	if req.CourtPractice != nil {
		setFields["court_practice"] = *req.CourtPractice
	}
	if req.CasesCompleted != nil {
		setFields["cases_completed"] = *req.CasesCompleted
	}
	if req.PracticeStartYear != nil {
		setFields["practice_start_year"] = *req.PracticeStartYear
	}
	if req.ProfilePictureURL != nil {
		setFields["profile_picture_url"] = *req.ProfilePictureURL
	}
	if req.CoverPictureURL != nil {
		setFields["cover_picture_url"] = *req.CoverPictureURL
	}
	if req.IntroVideoURL != nil {
		setFields["intro_video_url"] = *req.IntroVideoURL
	}
	if req.IsActive != nil {
		setFields["is_active"] = *req.IsActive
	}
	if req.ProfileCompleted != nil {
		setFields["profile_completed"] = *req.ProfileCompleted
	}

	return setFields
}

// UpdateSelf applies the patch to the caller's own record, resolved through
// the authenticated enrollment id — never a client-supplied one. A patch that
// reduces to nothing mutable performs no write and returns the current view.
// Field-level last-write-wins; no optimistic concurrency token is checked.
func (s *DefaultLawyerService) UpdateSelf(enrollmentID string, req models.LawyerUpdateRequest) (*models.Lawyer, error) {
	logger := utils.GetLogger()

	setFields := buildUpdateDocument(req)
	if len(setFields) == 0 {
		logger.Debug("UpdateSelf: no updatable fields in patch", zap.String("enrollmentID", enrollmentID))
		return s.GetSelf(enrollmentID)
	}
	setFields["updated_at"] = time.Now()

	if err := s.Repo.UpdateFields(enrollmentID, setFields); err != nil {
		if errors.Is(err, lawyerRepo.ErrNotFound) {
			return nil, ErrNotFound
		}
		logger.Error("UpdateSelf: update failed", zap.String("enrollmentID", enrollmentID), zap.Error(err))
		return nil, fmt.Errorf("failed to update lawyer")
	}

	return s.GetSelf(enrollmentID)
}
