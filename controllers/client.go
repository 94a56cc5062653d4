// controllers/client.go
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

func clientFromContext(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return uuid.Nil, false
	}
	clientUUID, err := uuid.Parse(userID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid user ID format")
		return uuid.Nil, false
	}
	return clientUUID, true
}

// GetMyAppointments lists the authenticated client's appointments across
// all businesses.
func GetMyAppointments(c *gin.Context) {
	clientUUID, ok := clientFromContext(c)
	if !ok {
		return
	}

	var appointments []models.Appointment
	if err := config.DB.Preload("Service").
		Where("client_id = ?", clientUUID).
		Order("appointment_date DESC, appointment_time").
		Find(&appointments).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve appointments")
		return
	}

	c.JSON(http.StatusOK, appointments)
}

// CancelMyAppointment cancels a client's own pending appointment. Confirmed
// appointments can only be cancelled by the business.
func CancelMyAppointment(c *gin.Context) {
	clientUUID, ok := clientFromContext(c)
	if !ok {
		return
	}

	appointmentUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment ID format")
		return
	}

	var appointment models.Appointment
	if err := config.DB.Where("client_id = ? AND id = ?", clientUUID, appointmentUUID).
		First(&appointment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if appointment.Status != models.StatusPending {
		utils.RespondWithError(c, http.StatusForbidden, "Only pending appointments can be cancelled here")
		return
	}

	appointment.Status = models.StatusCancelled
	if err := config.DB.Save(&appointment).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to cancel appointment")
		return
	}

	c.JSON(http.StatusOK, appointment)
}
