package handlers

import (
	"errors"
	"net/http"

	"vakeel/config"
	"vakeel/models"
	"vakeel/services/lawyer"
	"vakeel/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// setAuthCookie delivers the session token as an HTTP-only, SameSite=Lax
// cookie with the same lifetime as the token itself.
func setAuthCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(utils.AuthCookieName, token, int(utils.AuthTokenTTL.Seconds()), "/", "", config.IsProduction(), true)
}

func clearAuthCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(utils.AuthCookieName, "", -1, "/", "", config.IsProduction(), true)
}

// RegisterLawyerHandler creates a new lawyer profile and signs the caller in.
func (h *LawyerHandler) RegisterLawyerHandler(c *gin.Context) {
	var req models.LawyerRegistrationData
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Missing required fields", err.Error())
		return
	}

	resp, err := h.Service.Register(req)
	if err != nil {
		var conflict lawyer.ConflictError
		var invalid lawyer.ValidationError
		switch {
		case errors.As(err, &conflict):
			utils.JSONError(c, http.StatusConflict, conflict.Error(), "")
		case errors.As(err, &invalid):
			utils.JSONError(c, http.StatusBadRequest, invalid.Error(), "")
		default:
			getLogger(c).Error("Registration failed", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Failed to register lawyer", "")
		}
		return
	}

	setAuthCookie(c, resp.Token)
	c.JSON(http.StatusCreated, gin.H{"message": "Lawyer registered successfully!", "data": resp})
}

// AuthenticateLawyerHandler verifies credentials and sets the session cookie.
func (h *LawyerHandler) AuthenticateLawyerHandler(c *gin.Context) {
	var req models.LawyerLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil || (req.EnrollmentID == "" && req.Email == "") {
		utils.JSONError(c, http.StatusBadRequest, "Either enrollment ID or email, and password are required.", "")
		return
	}

	identifier := req.EnrollmentID
	if identifier == "" {
		identifier = req.Email
	}

	resp, err := h.Service.Authenticate(identifier, req.Password)
	if err != nil {
		if errors.Is(err, lawyer.ErrInvalidCredentials) {
			utils.JSONError(c, http.StatusUnauthorized, "Invalid enrollment ID/email or password.", "")
			return
		}
		getLogger(c).Error("Login failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Server error. Please try again later.", "")
		return
	}

	setAuthCookie(c, resp.Token)
	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful.",
		"token":   resp.Token,
		"lawyer": gin.H{
			"enrollment_id": resp.EnrollmentID,
			"email":         resp.Email,
		},
	})
}

// LogoutHandler revokes the current token and clears the cookie. The
// revocation entry lives exactly as long as the token would have; without
// Redis the token simply remains valid until natural expiry.
func (h *LawyerHandler) LogoutHandler(c *gin.Context) {
	if token, err := c.Cookie(utils.AuthCookieName); err == nil && token != "" {
		ttl := utils.TokenRemainingTTL(token)
		if err := utils.RevokeAuthToken(c.Request.Context(), utils.HashToken(token), ttl); err != nil {
			getLogger(c).Warn("Failed to revoke token on logout", zap.Error(err))
		}
	}

	clearAuthCookie(c)
	c.Redirect(http.StatusFound, "/")
}

// MeHandler returns the minimal identity of the current session.
func (h *LawyerHandler) MeHandler(c *gin.Context) {
	lawyerID, exists := c.Get("lawyerID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	identity, err := h.Service.GetIdentity(lawyerID.(string))
	if err != nil {
		if errors.Is(err, lawyer.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "User not found", "")
			return
		}
		getLogger(c).Error("Failed to fetch identity", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch identity", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"lawyer": gin.H{
			"email":        identity.Email,
			"firstName":    identity.FirstName,
			"lastName":     identity.LastName,
			"enrollmentId": identity.EnrollmentID,
			"phone":        identity.MobileNumber,
		},
	})
}
