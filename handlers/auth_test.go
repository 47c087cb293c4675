package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"vakeel/config"
	"vakeel/handlers"
	"vakeel/models"
	"vakeel/routes"
	"vakeel/services/lawyer"
	"vakeel/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	config.AppConfig.JWTSecret = "unit-test-secret"
	os.Exit(m.Run())
}

// stubService scripts service responses so handler behavior (status codes,
// envelopes, cookies) can be tested without Mongo.
type stubService struct {
	registerResp *lawyer.AuthResponse
	registerErr  error
	authResp     *lawyer.AuthResponse
	authErr      error
	selfResp     *models.Lawyer
	selfErr      error
	publicResp   *models.Lawyer
	publicErr    error
	identityResp *models.Lawyer
	identityErr  error
	updateResp   *models.Lawyer
	updateErr    error
	searchResp   []models.Lawyer
	searchErr    error
}

func (s *stubService) Register(models.LawyerRegistrationData) (*lawyer.AuthResponse, error) {
	return s.registerResp, s.registerErr
}

func (s *stubService) Authenticate(string, string) (*lawyer.AuthResponse, error) {
	return s.authResp, s.authErr
}

func (s *stubService) GetByEnrollmentID(string) (*models.Lawyer, error) {
	return s.publicResp, s.publicErr
}

func (s *stubService) GetSelf(string) (*models.Lawyer, error) {
	return s.selfResp, s.selfErr
}

func (s *stubService) GetIdentity(string) (*models.Lawyer, error) {
	return s.identityResp, s.identityErr
}

func (s *stubService) UpdateSelf(string, models.LawyerUpdateRequest) (*models.Lawyer, error) {
	return s.updateResp, s.updateErr
}

func (s *stubService) Search(models.LawyerSearchRequest) ([]models.Lawyer, error) {
	return s.searchResp, s.searchErr
}

func (s *stubService) ExpireLapsedPremiums() (int64, error) {
	return 0, nil
}

func newTestRouter(svc lawyer.LawyerService) *gin.Engine {
	r := gin.New()
	routes.RegisterRoutes(r, handlers.NewLawyerHandler(svc))
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any, cookie string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: utils.AuthCookieName, Value: cookie})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func authCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == utils.AuthCookieName {
			return c
		}
	}
	return nil
}

func TestRegisterSetsSessionCookie(t *testing.T) {
	svc := &stubService{registerResp: &lawyer.AuthResponse{
		ID:           "id-1",
		Token:        "tok-1",
		EnrollmentID: "MH/123/2015",
		Email:        "asha@example.in",
	}}
	r := newTestRouter(svc)

	w := doJSON(t, r, http.MethodPost, "/api/register", gin.H{
		"enrollment_id":     "MH/123/2015",
		"first_Name":        "Asha",
		"last_Name":         "Rao",
		"email":             "asha@example.in",
		"password":          "correct",
		"mobile_Number":     "9876543210",
		"city":              []string{"Mumbai"},
		"area_of_expertise": []string{"Criminal Law"},
	}, "")

	require.Equal(t, http.StatusCreated, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Lawyer registered successfully!", body["message"])

	cookie := authCookie(t, w)
	require.NotNil(t, cookie, "registration must set the session cookie")
	assert.Equal(t, "tok-1", cookie.Value)
	assert.True(t, cookie.HttpOnly)
}

func TestRegisterMissingFields(t *testing.T) {
	r := newTestRouter(&stubService{})

	w := doJSON(t, r, http.MethodPost, "/api/register", gin.H{
		"enrollment_id": "MH/123/2015",
		"password":      "correct",
	}, "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterRejectsMalformedEnrollmentID(t *testing.T) {
	r := newTestRouter(&stubService{})

	w := doJSON(t, r, http.MethodPost, "/api/register", gin.H{
		"enrollment_id":     "a b",
		"first_Name":        "Asha",
		"last_Name":         "Rao",
		"password":          "correct",
		"mobile_Number":     "9876543210",
		"city":              []string{"Mumbai"},
		"area_of_expertise": []string{"Criminal Law"},
	}, "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterConflict(t *testing.T) {
	svc := &stubService{registerErr: lawyer.ConflictError{Field: "enrollment_id"}}
	r := newTestRouter(svc)

	w := doJSON(t, r, http.MethodPost, "/api/register", gin.H{
		"enrollment_id":     "MH/123/2015",
		"first_Name":        "Asha",
		"last_Name":         "Rao",
		"password":          "correct",
		"mobile_Number":     "9876543210",
		"city":              []string{"Mumbai"},
		"area_of_expertise": []string{"Criminal Law"},
	}, "")

	require.Equal(t, http.StatusConflict, w.Code)
	assert.Nil(t, authCookie(t, w), "a failed registration must not set a cookie")
}

func TestLoginInvalidCredentials(t *testing.T) {
	svc := &stubService{authErr: lawyer.ErrInvalidCredentials}
	r := newTestRouter(svc)

	w := doJSON(t, r, http.MethodPost, "/api/login", gin.H{
		"enrollment_id": "MH/123/2015",
		"password":      "wrong",
	}, "")

	require.Equal(t, http.StatusUnauthorized, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Invalid enrollment ID/email or password.", body["message"])
}

func TestLoginRequiresIdentifier(t *testing.T) {
	r := newTestRouter(&stubService{})

	w := doJSON(t, r, http.MethodPost, "/api/login", gin.H{"password": "correct"}, "")

	require.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Either enrollment ID or email, and password are required.", body["message"])
}

func TestLoginSuccessEnvelope(t *testing.T) {
	svc := &stubService{authResp: &lawyer.AuthResponse{
		ID:           "id-1",
		Token:        "tok-2",
		EnrollmentID: "MH/123/2015",
		Email:        "asha@example.in",
	}}
	r := newTestRouter(svc)

	w := doJSON(t, r, http.MethodPost, "/api/login", gin.H{
		"email":    "asha@example.in",
		"password": "correct",
	}, "")

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Message string `json:"message"`
		Token   string `json:"token"`
		Lawyer  struct {
			EnrollmentID string `json:"enrollment_id"`
			Email        string `json:"email"`
		} `json:"lawyer"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Login successful.", body.Message)
	assert.Equal(t, "tok-2", body.Token)
	assert.Equal(t, "MH/123/2015", body.Lawyer.EnrollmentID)
	assert.Equal(t, "asha@example.in", body.Lawyer.Email)

	cookie := authCookie(t, w)
	require.NotNil(t, cookie)
	assert.Equal(t, "tok-2", cookie.Value)
}

func TestProtectedRouteRejectsMissingToken(t *testing.T) {
	r := newTestRouter(&stubService{})

	w := doJSON(t, r, http.MethodGet, "/api/lawyer", nil, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProtectedRouteRejectsTamperedToken(t *testing.T) {
	r := newTestRouter(&stubService{})

	token, err := utils.GenerateToken("id-1", "asha@example.in", "MH/123/2015", time.Hour)
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodGet, "/api/lawyer", nil, token+"x")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProtectedRouteServesOwnProfile(t *testing.T) {
	svc := &stubService{selfResp: &models.Lawyer{
		EnrollmentID: "MH/123/2015",
		FirstName:    "Asha",
		LastName:     "Rao",
	}}
	r := newTestRouter(svc)

	token, err := utils.GenerateToken("id-1", "asha@example.in", "MH/123/2015", time.Hour)
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodGet, "/api/lawyer", nil, token)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data models.Lawyer `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "MH/123/2015", body.Data.EnrollmentID)
	assert.Empty(t, body.Data.PasswordHash)
}

func TestProtectedRouteAcceptsBearerHeader(t *testing.T) {
	svc := &stubService{identityResp: &models.Lawyer{
		EnrollmentID: "MH/123/2015",
		FirstName:    "Asha",
		Email:        "asha@example.in",
	}}
	r := newTestRouter(svc)

	token, err := utils.GenerateToken("id-1", "asha@example.in", "MH/123/2015", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Lawyer struct {
			EnrollmentID string `json:"enrollmentId"`
			FirstName    string `json:"firstName"`
		} `json:"lawyer"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "MH/123/2015", body.Lawyer.EnrollmentID)
	assert.Equal(t, "Asha", body.Lawyer.FirstName)
}

func TestSearchMissingCity(t *testing.T) {
	svc := &stubService{searchErr: lawyer.ValidationError{Reason: "City is required."}}
	r := newTestRouter(svc)

	w := doJSON(t, r, http.MethodPost, "/api/search", gin.H{}, "")

	require.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "City is required.", body["message"])
}

func TestSearchEnvelope(t *testing.T) {
	svc := &stubService{searchResp: []models.Lawyer{
		{EnrollmentID: "DL-55", FirstName: "Meera", IsPremium: true},
		{EnrollmentID: "DL-56", FirstName: "Ravi"},
	}}
	r := newTestRouter(svc)

	w := doJSON(t, r, http.MethodPost, "/api/search", gin.H{"city": "Delhi"}, "")

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Message string          `json:"message"`
		Data    []models.Lawyer `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Lawyers fetched successfully!", body.Message)
	require.Len(t, body.Data, 2)
	assert.Equal(t, "DL-55", body.Data[0].EnrollmentID)
}

func TestLogoutClearsCookieAndRedirects(t *testing.T) {
	r := newTestRouter(&stubService{})

	token, err := utils.GenerateToken("id-1", "asha@example.in", "MH/123/2015", time.Hour)
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodGet, "/api/logout", nil, token)

	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	cookie := authCookie(t, w)
	require.NotNil(t, cookie, "logout must overwrite the session cookie")
	assert.Empty(t, cookie.Value)
	assert.True(t, cookie.MaxAge < 0)
}
