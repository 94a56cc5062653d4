// services/reminder_service.go
package services

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"locappoint-backend/models"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

type ReminderService struct {
	db     *gorm.DB
	client *twilio.RestClient
}

func NewReminderService(db *gorm.DB) *ReminderService {
	// Initialize Twilio client
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &ReminderService{
		db: db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
	}
}

func (s *ReminderService) StartScheduler() {
	c := cron.New()

	// Run every day at 9 AM
	c.AddFunc("0 9 * * *", s.SendDailyReminders)

	c.Start()
	log.Println("Reminder scheduler started")
}

// SendDailyReminders texts every client with a confirmed appointment
// tomorrow. Failures are logged per appointment and never abort the run.
func (s *ReminderService) SendDailyReminders() {
	log.Println("Starting daily reminder processing...")

	tomorrow := time.Now().AddDate(0, 0, 1)
	date := time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), 0, 0, 0, 0, time.UTC)

	var appointments []models.Appointment
	if err := s.db.Preload("Service").
		Where("appointment_date = ? AND status = ?", date, models.StatusConfirmed).
		Find(&appointments).Error; err != nil {
		log.Printf("Failed to fetch tomorrow's appointments: %v", err)
		return
	}

	for _, appt := range appointments {
		s.sendReminder(appt)
	}

	log.Printf("Daily reminder processing completed (%d appointments)", len(appointments))
}

func (s *ReminderService) sendReminder(appt models.Appointment) {
	var business models.Business
	if err := s.db.First(&business, "id = ?", appt.BusinessID).Error; err != nil {
		log.Printf("Appointment %s: business lookup failed: %v", appt.ID, err)
		return
	}

	// HH:MM is enough for the message
	displayTime := appt.AppointmentTime
	if len(displayTime) >= 5 {
		displayTime = displayTime[:5]
	}

	message := fmt.Sprintf("Hi %s, this is a reminder of your %s appointment at %s tomorrow at %s. See you there!",
		appt.ClientName, appt.Service.Name, business.Name, displayTime)

	to := strings.TrimSpace(appt.ClientPhone)

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))
	params.SetBody(message)

	resp, err := s.client.Api.CreateMessage(params)
	status := "sent"
	errorMsg := ""

	if err != nil {
		log.Printf("Failed to send reminder to %s: %v", to, err)
		status = "failed"
		errorMsg = err.Error()
	} else if resp.Sid != nil {
		log.Printf("Reminder sent to %s, SID: %s", to, *resp.Sid)
	} else {
		log.Printf("Reminder sent to %s, but no SID returned", to)
	}

	reminderLog := models.ReminderLog{
		BusinessID:    appt.BusinessID,
		AppointmentID: appt.ID,
		Message:       message,
		Status:        status,
		ErrorMessage:  errorMsg,
		SentAt:        time.Now(),
	}

	if err := s.db.Create(&reminderLog).Error; err != nil {
		log.Printf("Failed to log reminder for appointment %s: %v", appt.ID, err)
	}
}
