// controllers/availability.go
package controllers

import (
	"errors"
	"net/http"

	"locappoint-backend/config"
	"locappoint-backend/models"
	"locappoint-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateAvailabilityInput defines the expected JSON structure for creating
// an availability window. Times are HH:MM strings.
type CreateAvailabilityInput struct {
	Weekday   *int   `json:"weekday" binding:"required"` // 0 = Sunday
	StartTime string `json:"startTime" binding:"required"`
	EndTime   string `json:"endTime" binding:"required"`
}

// UpdateAvailabilityInput defines the expected JSON structure for updating
// an availability window
type UpdateAvailabilityInput struct {
	Weekday   *int    `json:"weekday"`
	StartTime *string `json:"startTime"`
	EndTime   *string `json:"endTime"`
	IsActive  *bool   `json:"isActive"`
}

type availabilityResponse struct {
	ID        uuid.UUID `json:"id"`
	Weekday   int       `json:"weekday"`
	StartTime string    `json:"startTime"`
	EndTime   string    `json:"endTime"`
	IsActive  bool      `json:"isActive"`
}

func toAvailabilityResponse(w models.AvailabilityWindow) availabilityResponse {
	return availabilityResponse{
		ID:        w.ID,
		Weekday:   w.Weekday,
		StartTime: utils.FormatTime(w.StartMinutes),
		EndTime:   utils.FormatTime(w.EndMinutes),
		IsActive:  w.IsActive,
	}
}

// CreateAvailability adds an availability window for the business. Multiple
// windows per weekday are allowed (split shifts).
func CreateAvailability(c *gin.Context) {
	businessUUID, ok := businessFromContext(c)
	if !ok {
		return
	}

	var input CreateAvailabilityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if *input.Weekday < 0 || *input.Weekday > 6 {
		utils.RespondWithError(c, http.StatusBadRequest, "Weekday must be between 0 (Sunday) and 6 (Saturday)")
		return
	}

	start := utils.ParseTime(input.StartTime)
	end := utils.ParseTime(input.EndTime)
	if start >= end {
		utils.RespondWithError(c, http.StatusBadRequest, "Start time must be before end time")
		return
	}

	window := models.AvailabilityWindow{
		BusinessID:   businessUUID,
		Weekday:      *input.Weekday,
		StartMinutes: start,
		EndMinutes:   end,
		IsActive:     true,
	}

	if err := config.DB.Create(&window).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create availability window")
		return
	}

	c.JSON(http.StatusCreated, toAvailabilityResponse(window))
}

// GetAvailability lists the business's availability windows, ordered by
// weekday then start time.
func GetAvailability(c *gin.Context) {
	businessUUID, ok := businessFromContext(c)
	if !ok {
		return
	}

	var windows []models.AvailabilityWindow
	if err := config.DB.Where("business_id = ?", businessUUID).
		Order("weekday, start_minutes").Find(&windows).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve availability")
		return
	}

	out := make([]availabilityResponse, 0, len(windows))
	for _, w := range windows {
		out = append(out, toAvailabilityResponse(w))
	}

	c.JSON(http.StatusOK, out)
}

// UpdateAvailability updates an existing availability window
func UpdateAvailability(c *gin.Context) {
	businessUUID, ok := businessFromContext(c)
	if !ok {
		return
	}

	windowUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid availability ID format")
		return
	}

	var input UpdateAvailabilityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var window models.AvailabilityWindow
	if err := config.DB.Where("business_id = ? AND id = ?", businessUUID, windowUUID).
		First(&window).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Availability window not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Weekday != nil {
		if *input.Weekday < 0 || *input.Weekday > 6 {
			utils.RespondWithError(c, http.StatusBadRequest, "Weekday must be between 0 (Sunday) and 6 (Saturday)")
			return
		}
		window.Weekday = *input.Weekday
	}
	if input.StartTime != nil {
		window.StartMinutes = utils.ParseTime(*input.StartTime)
	}
	if input.EndTime != nil {
		window.EndMinutes = utils.ParseTime(*input.EndTime)
	}
	if window.StartMinutes >= window.EndMinutes {
		utils.RespondWithError(c, http.StatusBadRequest, "Start time must be before end time")
		return
	}
	if input.IsActive != nil {
		window.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&window).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update availability window")
		return
	}

	c.JSON(http.StatusOK, toAvailabilityResponse(window))
}

// DeleteAvailability removes an availability window
func DeleteAvailability(c *gin.Context) {
	businessUUID, ok := businessFromContext(c)
	if !ok {
		return
	}

	windowUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid availability ID format")
		return
	}

	result := config.DB.Where("business_id = ? AND id = ?", businessUUID, windowUUID).
		Delete(&models.AvailabilityWindow{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete availability window")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Availability window not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Availability window deleted successfully"})
}
