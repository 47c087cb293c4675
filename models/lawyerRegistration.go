package models

// LawyerRegistrationData carries the fields a lawyer submits when signing up.
// Email is optional but must be unique when present.
type LawyerRegistrationData struct {
	EnrollmentID      string   `json:"enrollment_id" binding:"required,enrollment"`
	FirstName         string   `json:"first_Name" binding:"required"`
	LastName          string   `json:"last_Name" binding:"required"`
	Email             string   `json:"email" binding:"omitempty,email"`
	Password          string   `json:"password" binding:"required"`
	MobileNumber      string   `json:"mobile_Number" binding:"required"`
	WhatsAppNumber    string   `json:"WhatsApp_Number"`
	City              []string `json:"city" binding:"required,min=1"`
	AreaOfExpertise   []string `json:"area_of_expertise" binding:"required,min=1"`
	Languages         []string `json:"languages"`
	PracticeStartYear int      `json:"practice_start_year"`
	Country           string   `json:"country"`
}

// LawyerLoginRequest accepts either the enrollment id or the email as the
// login identifier.
type LawyerLoginRequest struct {
	EnrollmentID string `json:"enrollment_id"`
	Email        string `json:"email"`
	Password     string `json:"password" binding:"required"`
}

// LawyerUpdateRequest is the explicit allow-list of fields mutable through the
// profile-update path. enrollment_id and password_hash have no slot here, so a
// patch carrying them is silently discarded at bind time. Pointer fields
// distinguish "absent" from "set to zero value".
type LawyerUpdateRequest struct {
	FirstName         *string   `json:"first_Name"`
	LastName          *string   `json:"last_Name"`
	Email             *string   `json:"email" binding:"omitempty,email"`
	MobileNumber      *string   `json:"mobile_Number"`
	WhatsAppNumber    *string   `json:"WhatsApp_Number"`
	City              *[]string `json:"city"`
	AreaOfExpertise   *[]string `json:"area_of_expertise"`
	Languages         *[]string `json:"languages"`
	BuildingName      *string   `json:"building_name"`
	DoorNo            *string   `json:"door_no"`
	Landmark          *string   `json:"landmark"`
	PostOffice        *string   `json:"post_office"`
	Country           *string   `json:"country"`
	Pincode           *int      `json:"pincode"`
	Education         *string   `json:"education"`
	Bio               *string   `json:"bio"`
	CourtPractice     *string   `json:"court_practice"`
	CasesCompleted    *int      `json:"cases_completed"`
	PracticeStartYear *int      `json:"practice_start_year"`
	ProfilePictureURL *string   `json:"profile_picture_url"`
	CoverPictureURL   *string   `json:"cover_picture_url"`
	IntroVideoURL     *string   `json:"intro_video_url"`
	IsActive          *bool     `json:"is_active"`
	ProfileCompleted  *bool     `json:"profile_completed"`
}

// LawyerSearchRequest filters the directory by practice city and, optionally,
// by a single specialization.
type LawyerSearchRequest struct {
	City            string `json:"city"`
	AreaOfExpertise string `json:"area_of_expertise"`
}
