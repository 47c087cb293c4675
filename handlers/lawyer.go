package handlers

import (
	"errors"
	"net/http"

	"vakeel/models"
	"vakeel/services/lawyer"
	"vakeel/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LawyerHandler exposes the lawyer directory as JSON endpoints.
type LawyerHandler struct {
	Service lawyer.LawyerService
}

// NewLawyerHandler creates a new LawyerHandler.
func NewLawyerHandler(svc lawyer.LawyerService) *LawyerHandler {
	return &LawyerHandler{Service: svc}
}

// GetSelfHandler returns the authenticated lawyer's own (masked) profile.
func (h *LawyerHandler) GetSelfHandler(c *gin.Context) {
	enrollmentID, exists := c.Get("enrollmentID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	profile, err := h.Service.GetSelf(enrollmentID.(string))
	if err != nil {
		if errors.Is(err, lawyer.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Lawyer not found", "")
			return
		}
		getLogger(c).Error("Failed to fetch lawyer profile", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch lawyer", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": profile})
}

// UpdateSelfHandler applies an allow-listed patch to the authenticated
// lawyer's own profile. The target record is resolved from the token, never
// from the payload.
func (h *LawyerHandler) UpdateSelfHandler(c *gin.Context) {
	enrollmentID, exists := c.Get("enrollmentID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	var req models.LawyerUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	updated, err := h.Service.UpdateSelf(enrollmentID.(string), req)
	if err != nil {
		if errors.Is(err, lawyer.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Lawyer not found", "")
			return
		}
		getLogger(c).Error("Failed to update lawyer profile", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update lawyer", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Lawyer updated successfully", "data": updated})
}

// GetPublicProfileHandler returns a lawyer's public profile by enrollment id.
func (h *LawyerHandler) GetPublicProfileHandler(c *gin.Context) {
	enrollmentID := c.Param("enrollment_id")

	profile, err := h.Service.GetByEnrollmentID(enrollmentID)
	if err != nil {
		if errors.Is(err, lawyer.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Lawyer not found", "")
			return
		}
		getLogger(c).Error("Failed to fetch lawyer profile", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch lawyer", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"lawyer": profile})
}
