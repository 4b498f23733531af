package services

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"github.com/isLah-15/CarDB-Render/models"
)

// ReminderService sends pickup reminders to customers and flags insurance
// policies that are about to lapse. Everything here is best effort; a
// failed notification is logged and never retried.
type ReminderService struct {
	db *gorm.DB
}

func NewReminderService(db *gorm.DB) *ReminderService {
	return &ReminderService{db: db}
}

func (s *ReminderService) StartScheduler() {
	c := cron.New()

	// Run every day at 9 AM
	c.AddFunc("0 9 * * *", func() {
		s.SendPickupReminders()
		s.ReportExpiringInsurance()
	})

	c.Start()
	log.Println("Reminder scheduler started")
}

// SendPickupReminders notifies customers whose reservation pickup falls
// within the next 24 hours.
func (s *ReminderService) SendPickupReminders() {
	now := time.Now()
	cutoff := now.Add(24 * time.Hour)

	var reservations []models.Reservation
	if err := s.db.Preload("Customer").Preload("Car").
		Where("pickup_date BETWEEN ? AND ?", now, cutoff).
		Find(&reservations).Error; err != nil {
		log.Printf("Failed to fetch upcoming reservations: %v", err)
		return
	}

	for _, reservation := range reservations {
		if reservation.Customer == nil || reservation.Car == nil {
			continue
		}
		customer := reservation.Customer
		car := reservation.Car

		pickup := reservation.PickupDate.Format("02 Jan 2006 15:04")
		subject := "Your car pickup is coming up"
		plain := fmt.Sprintf(
			"Hello %s,\n\nA reminder that your %s %s is scheduled for pickup on %s.\n\nSee you soon!",
			customer.LastName, car.Manufacturer, car.CarModel, pickup)
		html := fmt.Sprintf(
			"<div><h2>Hello %s,</h2><p>A reminder that your <strong>%s %s</strong> is scheduled for pickup on <strong>%s</strong>.</p><p>See you soon!</p></div>",
			customer.LastName, car.Manufacturer, car.CarModel, pickup)

		if err := SendEmail(customer.Email, customer.LastName, subject, plain, html); err != nil {
			log.Printf("Pickup reminder email to %s failed: %v", customer.Email, err)
		}

		// SMS only for numbers already in E.164 format.
		if strings.HasPrefix(customer.Phone, "+") {
			msg := fmt.Sprintf("CarDB: your %s %s pickup is scheduled for %s.",
				car.Manufacturer, car.CarModel, pickup)
			if err := SendSMS(customer.Phone, msg); err != nil {
				log.Printf("Pickup reminder SMS to %s failed: %v", customer.Phone, err)
			}
		}
	}

	log.Printf("Pickup reminder run completed, %d reservation(s) processed", len(reservations))
}

// ReportExpiringInsurance logs policies ending within the next 7 days so
// the fleet admin can renew them.
func (s *ReminderService) ReportExpiringInsurance() {
	now := time.Now()
	cutoff := now.AddDate(0, 0, 7)

	var policies []models.Insurance
	if err := s.db.Preload("Car").
		Where("end_date BETWEEN ? AND ?", now, cutoff).
		Find(&policies).Error; err != nil {
		log.Printf("Failed to fetch expiring insurance policies: %v", err)
		return
	}

	for _, policy := range policies {
		carLabel := fmt.Sprintf("car %d", policy.CarID)
		if policy.Car != nil {
			carLabel = fmt.Sprintf("%s %s", policy.Car.Manufacturer, policy.Car.CarModel)
		}
		log.Printf("Insurance policy %s (%s) for %s expires on %s",
			policy.PolicyNumber, policy.Provider, carLabel,
			policy.EndDate.Format("02 Jan 2006"))
	}
}
