// controllers/appointment.go
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

// UpdateAppointmentStatusInput defines the expected JSON structure for a
// status transition
type UpdateAppointmentStatusInput struct {
	Status string `json:"status" binding:"required"`
}

// GetAppointments lists the business's appointments, optionally filtered by
// date and/or status.
func GetAppointments(c *gin.Context) {
	businessUUID, ok := businessFromContext(c)
	if !ok {
		return
	}

	query := config.DB.Preload("Service").Where("business_id = ?", businessUUID)

	if dateParam := c.Query("date"); dateParam != "" {
		date, err := utils.ParseDate(dateParam)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid date (expected YYYY-MM-DD)")
			return
		}
		query = query.Where("appointment_date = ?", date)
	}

	if status := c.Query("status"); status != "" {
		if !models.ValidStatus(status) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid status filter")
			return
		}
		query = query.Where("status = ?", status)
	}

	var appointments []models.Appointment
	if err := query.Order("appointment_date, appointment_time").Find(&appointments).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve appointments")
		return
	}

	c.JSON(http.StatusOK, appointments)
}

// GetAppointment retrieves a specific appointment by ID
func GetAppointment(c *gin.Context) {
	businessUUID, ok := businessFromContext(c)
	if !ok {
		return
	}

	appointmentUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment ID format")
		return
	}

	var appointment models.Appointment
	if err := config.DB.Preload("Service").
		Where("business_id = ? AND id = ?", businessUUID, appointmentUUID).
		First(&appointment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, appointment)
}

// UpdateAppointmentStatus moves an appointment through its lifecycle.
// Illegal transitions (including any move out of cancelled or completed)
// are rejected.
func UpdateAppointmentStatus(c *gin.Context) {
	businessUUID, ok := businessFromContext(c)
	if !ok {
		return
	}

	appointmentUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment ID format")
		return
	}

	var input UpdateAppointmentStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !models.ValidStatus(input.Status) {
		utils.RespondWithError(c, http.StatusBadRequest, "Unknown status")
		return
	}

	var appointment models.Appointment
	if err := config.DB.Where("business_id = ? AND id = ?", businessUUID, appointmentUUID).
		First(&appointment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if !models.CanTransition(appointment.Status, input.Status) {
		utils.RespondWithError(c, http.StatusConflict,
			"Cannot change status from "+appointment.Status+" to "+input.Status)
		return
	}

	appointment.Status = input.Status
	if err := config.DB.Save(&appointment).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update appointment")
		return
	}

	c.JSON(http.StatusOK, appointment)
}
