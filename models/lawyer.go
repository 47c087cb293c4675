package models

import (
	"time"
)

// Lawyer represents a registered advocate's profile document.
//
// The password hash is stored under password_hash but is never serialized to
// JSON; every repository read additionally projects it out so it cannot leak
// even through reflection-based encoders.
type Lawyer struct {
	ID           string `bson:"id" json:"id,omitempty"`
	EnrollmentID string `bson:"enrollment_id" json:"enrollment_id,omitempty"`
	FirstName    string `bson:"first_Name" json:"first_Name,omitempty"`
	LastName     string `bson:"last_Name" json:"last_Name,omitempty"`
	Email        string `bson:"email,omitempty" json:"email,omitempty"`
	PasswordHash string `bson:"password_hash,omitempty" json:"-"`

	MobileNumber   string `bson:"mobile_Number" json:"mobile_Number,omitempty"`
	WhatsAppNumber string `bson:"WhatsApp_Number,omitempty" json:"WhatsApp_Number,omitempty"`

	// Practice locations and specializations are membership sets, not free text.
	City            []string `bson:"city" json:"city,omitempty"`
	AreaOfExpertise []string `bson:"area_of_expertise" json:"area_of_expertise,omitempty"`
	Languages       []string `bson:"languages,omitempty" json:"languages,omitempty"`

	BuildingName string `bson:"building_name,omitempty" json:"building_name,omitempty"`
	DoorNo       string `bson:"door_no,omitempty" json:"door_no,omitempty"`
	Landmark     string `bson:"landmark,omitempty" json:"landmark,omitempty"`
	PostOffice   string `bson:"post_office,omitempty" json:"post_office,omitempty"`
	Country      string `bson:"country,omitempty" json:"country,omitempty"`
	Pincode      int    `bson:"pincode,omitempty" json:"pincode,omitempty"`

	Education         string `bson:"education,omitempty" json:"education,omitempty"`
	Bio               string `bson:"bio,omitempty" json:"bio,omitempty"`
	CourtPractice     string `bson:"court_practice,omitempty" json:"court_practice,omitempty"`
	CasesCompleted    int    `bson:"cases_completed,omitempty" json:"cases_completed,omitempty"`
	PracticeStartYear int    `bson:"practice_start_year,omitempty" json:"practice_start_year,omitempty"`

	ProfilePictureURL string `bson:"profile_picture_url,omitempty" json:"profile_picture_url,omitempty"`
	CoverPictureURL   string `bson:"cover_picture_url,omitempty" json:"cover_picture_url,omitempty"`
	IntroVideoURL     string `bson:"intro_video_url,omitempty" json:"intro_video_url,omitempty"`

	// Administrative fields stripped from the owner's own view.
	ProfileOverview string `bson:"profile_overview,omitempty" json:"profile_overview,omitempty"`
	StateID         int    `bson:"state_id,omitempty" json:"state_id,omitempty"`
	CityID          int    `bson:"city_id,omitempty" json:"city_id,omitempty"`

	IsActive         bool      `bson:"is_active" json:"is_active"`
	EmailVerified    bool      `bson:"email_verified" json:"email_verified"`
	MobileVerified   bool      `bson:"mobile_verified" json:"mobile_verified"`
	ProfileCompleted bool      `bson:"profile_completed" json:"profile_completed"`
	PasswordSet      bool      `bson:"password_set" json:"password_set"`
	IsPremium        bool      `bson:"is_premium" json:"is_premium"`
	PremiumExpiresAt time.Time `bson:"premium_expires_at,omitempty" json:"premium_expires_at,omitzero"`

	LastLogin time.Time `bson:"last_login,omitempty" json:"last_login,omitzero"`
	CreatedAt time.Time `bson:"created_at,omitempty" json:"created_at,omitzero"`
	UpdatedAt time.Time `bson:"updated_at,omitempty" json:"updated_at,omitzero"`
}
