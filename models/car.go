package models

type Car struct {
	ID           uint    `json:"carId" gorm:"primaryKey"`
	CarModel     string  `json:"carModel" gorm:"not null"`
	Manufacturer string  `json:"manufacturer" gorm:"not null"`
	Year         int     `json:"year" gorm:"not null"`
	Color        string  `json:"color" gorm:"not null"`
	RentalRate   float64 `json:"rentalRate" gorm:"type:decimal(10,2);not null"`
	Availability bool    `json:"availability"`

	Reservations []Reservation `json:"reservations,omitempty" gorm:"foreignKey:CarID;constraint:OnDelete:CASCADE"`
	Bookings     []Booking     `json:"bookings,omitempty" gorm:"foreignKey:CarID;constraint:OnDelete:CASCADE"`
	Maintenance  []Maintenance `json:"maintenance,omitempty" gorm:"foreignKey:CarID;constraint:OnDelete:CASCADE"`
	Insurance    []Insurance   `json:"insurance,omitempty" gorm:"foreignKey:CarID;constraint:OnDelete:CASCADE"`
	Location     *Location     `json:"location,omitempty" gorm:"foreignKey:CarID;constraint:OnDelete:CASCADE"`
}

func (c Car) GetID() uint    { return c.ID }
func (c *Car) SetID(id uint) { c.ID = id }
