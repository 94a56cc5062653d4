// controllers/booking.go
package controllers

import (
	"errors"
	"net/http"

	"locappoint-backend/config"
	"locappoint-backend/models"
	"locappoint-backend/services"
	"locappoint-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateBookingInput is a booking submission from the public booking flow.
// Contact fields are checked for presence only; email format is not
// validated at this stage.
type CreateBookingInput struct {
	ServiceID   string `json:"serviceId" binding:"required"`
	Date        string `json:"date" binding:"required"` // YYYY-MM-DD
	Time        string `json:"time" binding:"required"` // HH:MM or HH:MM:SS
	ClientName  string `json:"clientName"`
	ClientEmail string `json:"clientEmail"`
	ClientPhone string `json:"clientPhone"`
	Notes       string `json:"notes"`
}

// isSlotTaken reports whether an insert failed on the unique index guarding
// slot start times, meaning a racing submission landed the slot first.
func isSlotTaken(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// GetSlots computes the bookable start times for one business, date and
// service. No availability windows for the weekday is an empty list, not an
// error.
func GetSlots(c *gin.Context) {
	businessUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid business ID format")
		return
	}

	date, err := utils.ParseDate(c.Query("date"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid or missing date (expected YYYY-MM-DD)")
		return
	}

	serviceUUID, err := uuid.Parse(c.Query("serviceId"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid or missing service ID")
		return
	}

	var business models.Business
	if err := config.DB.Where("id = ? AND is_active = true", businessUUID).
		First(&business).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Business not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	var service models.Service
	if err := config.DB.Where("business_id = ? AND id = ? AND is_active = true", businessUUID, serviceUUID).
		First(&service).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	var windows []models.AvailabilityWindow
	if err := config.DB.
		Where("business_id = ? AND weekday = ? AND is_active = true", businessUUID, utils.Weekday(date)).
		Find(&windows).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve availability")
		return
	}

	var bookedTimes []string
	if err := config.DB.Model(&models.Appointment{}).
		Where("business_id = ? AND appointment_date = ? AND status IN ?",
			businessUUID, date, models.BlockingStatuses).
		Pluck("appointment_time", &bookedTimes).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve appointments")
		return
	}

	slots := services.GenerateSlots(windows, bookedTimes, service.Duration)

	c.JSON(http.StatusOK, gin.H{
		"date":      c.Query("date"),
		"serviceId": service.ID,
		"duration":  service.Duration,
		"slots":     slots,
	})
}

// CreateBooking inserts a pending appointment. It runs without auth for
// guest bookings; when mounted behind the client middleware the booking is
// linked to the authenticated client account.
func CreateBooking(c *gin.Context) {
	businessUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid business ID format")
		return
	}

	var input CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if msg, ok := utils.ValidateBookingContact(input.ClientName, input.ClientEmail, input.ClientPhone); !ok {
		utils.RespondWithError(c, http.StatusBadRequest, msg)
		return
	}

	serviceUUID, err := uuid.Parse(input.ServiceID)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	date, err := utils.ParseDate(input.Date)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date (expected YYYY-MM-DD)")
		return
	}

	// Normalize HH:MM input to the stored HH:MM:SS form
	appointmentTime := utils.FormatTime(utils.ParseTime(input.Time))

	var business models.Business
	if err := config.DB.Where("id = ? AND is_active = true", businessUUID).
		First(&business).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Business not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	var service models.Service
	if err := config.DB.Where("business_id = ? AND id = ? AND is_active = true", businessUUID, serviceUUID).
		First(&service).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	// Reject exact start-time collisions before inserting. A unique index on
	// (business, date, time) over non-cancelled rows backs this check, so two
	// racing submissions cannot both land.
	var existing models.Appointment
	err = config.DB.
		Where("business_id = ? AND appointment_date = ? AND appointment_time = ? AND status IN ?",
			businessUUID, date, appointmentTime, models.BlockingStatuses).
		First(&existing).Error
	if err == nil {
		utils.RespondWithError(c, http.StatusConflict, "This time slot is no longer available")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	appointment := models.Appointment{
		BusinessID:      businessUUID,
		ServiceID:       serviceUUID,
		AppointmentDate: date,
		AppointmentTime: appointmentTime,
		Status:          models.StatusPending,
		ClientName:      input.ClientName,
		ClientEmail:     input.ClientEmail,
		ClientPhone:     input.ClientPhone,
		Notes:           input.Notes,
	}

	// Link the booking to the client account when one is authenticated
	if userID, exists := c.Get("userId"); exists {
		if role, _ := c.Get("role"); role == models.RoleClient {
			if clientUUID, err := uuid.Parse(userID.(string)); err == nil {
				appointment.ClientID = &clientUUID
			}
		}
	}

	if err := config.DB.Create(&appointment).Error; err != nil {
		if isSlotTaken(err) {
			utils.RespondWithError(c, http.StatusConflict, "This time slot is no longer available")
			return
		}
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create appointment")
		return
	}

	c.JSON(http.StatusCreated, appointment)
}
