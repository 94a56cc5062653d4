package controllers

import (
	"net/http"
	"time"

	"locappoint-backend/config"
	"locappoint-backend/models"
	"locappoint-backend/utils"

	"github.com/gin-gonic/gin"
)

type DashboardOverview struct {
	TodayAppointments []models.Appointment `json:"todayAppointments"`
	PendingCount      int64                `json:"pendingCount"`
	WeekTotal         int64                `json:"weekTotal"`
	CompletedTotal    int64                `json:"completedTotal"`
	ActiveServices    int64                `json:"activeServices"`
}

// GetDashboardOverview summarizes the business's bookings for the portal
// landing page.
func GetDashboardOverview(c *gin.Context) {
	businessUUID, ok := businessFromContext(c)
	if !ok {
		return
	}

	// Booking dates are stored as UTC midnights, so today must match
	today := utils.BeginningOfDay(time.Now().UTC())
	weekEnd := today.AddDate(0, 0, 7)

	var overview DashboardOverview

	if err := config.DB.Preload("Service").
		Where("business_id = ? AND appointment_date = ? AND status IN ?",
			businessUUID, today, models.BlockingStatuses).
		Order("appointment_time").
		Find(&overview.TodayAppointments).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve appointments")
		return
	}

	config.DB.Model(&models.Appointment{}).
		Where("business_id = ? AND status = ?", businessUUID, models.StatusPending).
		Count(&overview.PendingCount)

	config.DB.Model(&models.Appointment{}).
		Where("business_id = ? AND appointment_date >= ? AND appointment_date < ? AND status IN ?",
			businessUUID, today, weekEnd, models.BlockingStatuses).
		Count(&overview.WeekTotal)

	config.DB.Model(&models.Appointment{}).
		Where("business_id = ? AND status = ?", businessUUID, models.StatusCompleted).
		Count(&overview.CompletedTotal)

	config.DB.Model(&models.Service{}).
		Where("business_id = ? AND is_active = true", businessUUID).
		Count(&overview.ActiveServices)

	c.JSON(http.StatusOK, overview)
}
