package controllers

import (
	"errors"

	"gorm.io/gorm"

	"github.com/isLah-15/CarDB-Render/models"
	"github.com/isLah-15/CarDB-Render/services"
)

// One Resource per entity. Preloads mirror the relations each entity is
// served with; date-ordering rules are checked here at the boundary, not
// stored as database constraints.

func NewCarResource(db *gorm.DB) *Resource[models.Car, *models.Car] {
	return &Resource[models.Car, *models.Car]{
		Name:   "Car",
		Plural: "cars",
		Store:  services.NewStore[models.Car](db, "Reservations", "Bookings", "Maintenance", "Insurance", "Location"),
	}
}

func NewLocationResource(db *gorm.DB) *Resource[models.Location, *models.Location] {
	return &Resource[models.Location, *models.Location]{
		Name:   "Location",
		Plural: "locations",
		Store:  services.NewStore[models.Location](db),
	}
}

func NewReservationResource(db *gorm.DB) *Resource[models.Reservation, *models.Reservation] {
	return &Resource[models.Reservation, *models.Reservation]{
		Name:   "Reservation",
		Plural: "reservations",
		Store:  services.NewStore[models.Reservation](db, "Customer", "Car"),
		Validate: func(r *models.Reservation) error {
			if !r.PickupDate.Before(r.ReturnDate) {
				return errors.New("Pickup date must be before return date")
			}
			return nil
		},
	}
}

func NewBookingResource(db *gorm.DB) *Resource[models.Booking, *models.Booking] {
	return &Resource[models.Booking, *models.Booking]{
		Name:   "Booking",
		Plural: "bookings",
		Store:  services.NewStore[models.Booking](db, "Customer", "Car", "Payments"),
		Validate: func(b *models.Booking) error {
			if !b.RentalStartDate.Before(b.RentalEndDate) {
				return errors.New("Rental start date must be before rental end date")
			}
			return nil
		},
	}
}

func NewPaymentResource(db *gorm.DB) *Resource[models.Payment, *models.Payment] {
	return &Resource[models.Payment, *models.Payment]{
		Name:   "Payment",
		Plural: "payments",
		Store:  services.NewStore[models.Payment](db, "Booking"),
	}
}

func NewMaintenanceResource(db *gorm.DB) *Resource[models.Maintenance, *models.Maintenance] {
	return &Resource[models.Maintenance, *models.Maintenance]{
		Name:   "Maintenance",
		Plural: "maintenance",
		Store:  services.NewStore[models.Maintenance](db, "Car"),
	}
}

func NewInsuranceResource(db *gorm.DB) *Resource[models.Insurance, *models.Insurance] {
	return &Resource[models.Insurance, *models.Insurance]{
		Name:   "Insurance",
		Plural: "insurance",
		Store:  services.NewStore[models.Insurance](db, "Car"),
	}
}

func NewCustomerResource(db *gorm.DB) *Resource[models.Customer, *models.Customer] {
	return &Resource[models.Customer, *models.Customer]{
		Name:   "Customer",
		Plural: "customers",
		Store:  services.NewStore[models.Customer](db, "Reservations", "Bookings"),
	}
}
