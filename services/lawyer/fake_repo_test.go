package lawyer

import (
	"sort"
	"time"

	lawyerRepo "vakeel/database/repository/lawyer"
	"vakeel/models"

	"go.mongodb.org/mongo-driver/bson"
)

// fakeRepo is an in-memory LawyerRepository for service tests.
type fakeRepo struct {
	byEnrollment map[string]*models.Lawyer
	updateCalls  int
	lastSet      bson.M
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byEnrollment: make(map[string]*models.Lawyer)}
}

func (f *fakeRepo) Create(l *models.Lawyer) error {
	now := time.Now()
	l.CreatedAt = now
	l.UpdatedAt = now
	stored := *l
	f.byEnrollment[l.EnrollmentID] = &stored
	return nil
}

func (f *fakeRepo) GetByID(id string, _ bson.M) (*models.Lawyer, error) {
	for _, l := range f.byEnrollment {
		if l.ID == id {
			cp := *l
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) GetByEnrollmentID(enrollmentID string, _ bson.M) (*models.Lawyer, error) {
	if l, ok := f.byEnrollment[enrollmentID]; ok {
		cp := *l
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeRepo) GetByLogin(identifier string) (*models.Lawyer, error) {
	for _, l := range f.byEnrollment {
		if l.EnrollmentID == identifier || (l.Email != "" && l.Email == identifier) {
			cp := *l
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) FindConflict(enrollmentID, email, mobileNumber string) (string, error) {
	if _, ok := f.byEnrollment[enrollmentID]; ok {
		return "enrollment_id", nil
	}
	for _, l := range f.byEnrollment {
		if email != "" && l.Email == email {
			return "email", nil
		}
	}
	for _, l := range f.byEnrollment {
		if l.MobileNumber == mobileNumber {
			return "mobile_Number", nil
		}
	}
	return "", nil
}

func (f *fakeRepo) UpdateFields(enrollmentID string, fields bson.M) error {
	l, ok := f.byEnrollment[enrollmentID]
	if !ok {
		return lawyerRepo.ErrNotFound
	}
	f.updateCalls++
	f.lastSet = fields

	// Apply the handful of fields the tests exercise.
	if v, ok := fields["first_Name"].(string); ok {
		l.FirstName = v
	}
	if v, ok := fields["cases_completed"].(int); ok {
		l.CasesCompleted = v
	}
	if v, ok := fields["city"].([]string); ok {
		l.City = v
	}
	if v, ok := fields["updated_at"].(time.Time); ok {
		l.UpdatedAt = v
	}
	return nil
}

func (f *fakeRepo) UpdateLastLogin(id string, at time.Time) error {
	for _, l := range f.byEnrollment {
		if l.ID == id {
			l.LastLogin = at
			return nil
		}
	}
	return lawyerRepo.ErrNotFound
}

func (f *fakeRepo) Search(criteria lawyerRepo.SearchCriteria) ([]models.Lawyer, error) {
	contains := func(set []string, v string) bool {
		for _, s := range set {
			if s == v {
				return true
			}
		}
		return false
	}

	var out []models.Lawyer
	for _, l := range f.byEnrollment {
		if !contains(l.City, criteria.City) {
			continue
		}
		if criteria.Expertise != "" && !contains(l.AreaOfExpertise, criteria.Expertise) {
			continue
		}
		cp := *l
		cp.PasswordHash = ""
		out = append(out, cp)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].IsPremium && !out[j].IsPremium
	})
	return out, nil
}

func (f *fakeRepo) ExpireLapsedPremiums(now time.Time) (int64, error) {
	var n int64
	for _, l := range f.byEnrollment {
		if l.IsPremium && !l.PremiumExpiresAt.IsZero() && l.PremiumExpiresAt.Before(now) {
			l.IsPremium = false
			n++
		}
	}
	return n, nil
}
