package utils

import (
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/isLah-15/CarDB-Render/models"
)

// SeedDemoData inserts a small demo fleet and a verified admin account.
// It is a no-op when cars already exist.
func SeedDemoData(db *gorm.DB) {
	var count int64
	db.Model(&models.Car{}).Count(&count)
	if count > 0 {
		return
	}

	cars := []models.Car{
		{CarModel: "Camry", Manufacturer: "Toyota", Year: 2020, Color: "Blue", RentalRate: 100, Availability: true},
		{CarModel: "Civic", Manufacturer: "Honda", Year: 2019, Color: "Red", RentalRate: 90, Availability: true},
		{CarModel: "Model 3", Manufacturer: "Tesla", Year: 2023, Color: "White", RentalRate: 180, Availability: true},
	}
	for i := range cars {
		if err := db.Create(&cars[i]).Error; err != nil {
			log.Printf("Seed: failed to create car %s: %v", cars[i].CarModel, err)
			return
		}
	}

	db.Create(&models.Location{
		CarID:         cars[0].ID,
		LocationName:  "Downtown Branch",
		Address:       "12 Harbour Street",
		ContactNumber: "+14155550100",
	})

	db.Create(&models.Insurance{
		CarID:        cars[0].ID,
		Provider:     "Acme Insurance",
		PolicyNumber: "POL-1001",
		StartDate:    time.Now().AddDate(0, -6, 0),
		EndDate:      time.Now().AddDate(0, 6, 0),
	})

	hashed, err := HashPassword("changeme123")
	if err != nil {
		log.Printf("Seed: failed to hash admin password: %v", err)
		return
	}
	admin := models.Customer{
		FirstName:  "Fleet",
		LastName:   "Admin",
		Email:      "admin@cardb.local",
		Phone:      "+14155550101",
		Password:   hashed,
		Role:       "admin",
		Address:    "Head Office",
		IsVerified: true,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("Seed: failed to create admin account: %v", err)
		return
	}

	log.Println("Seeded demo fleet and admin account")
}
