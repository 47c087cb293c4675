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

// SearchHandler returns lawyers practicing in a city, optionally narrowed to
// one specialization. Premium profiles come first; an empty array is a valid
// result, not an error.
func (h *LawyerHandler) SearchHandler(c *gin.Context) {
	var req models.LawyerSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "City is required.", "")
		return
	}

	results, err := h.Service.Search(req)
	if err != nil {
		var invalid lawyer.ValidationError
		if errors.As(err, &invalid) {
			utils.JSONError(c, http.StatusBadRequest, invalid.Error(), "")
			return
		}
		getLogger(c).Error("Search failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch lawyers", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Lawyers fetched successfully!", "data": results})
}
