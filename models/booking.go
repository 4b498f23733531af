package models

import "time"

type Booking struct {
	ID              uint      `json:"bookingId" gorm:"primaryKey"`
	CustomerID      uint      `json:"customerId" gorm:"index;not null"`
	CarID           uint      `json:"carId" gorm:"index;not null"`
	RentalStartDate time.Time `json:"rentalStartDate" gorm:"not null"`
	RentalEndDate   time.Time `json:"rentalEndDate" gorm:"not null"`
	TotalAmount     float64   `json:"totalAmount" gorm:"type:decimal(10,2);not null"`

	Customer *Customer `json:"customer,omitempty" gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
	Car      *Car      `json:"car,omitempty" gorm:"foreignKey:CarID;constraint:OnDelete:CASCADE"`
	Payments []Payment `json:"payments,omitempty" gorm:"foreignKey:BookingID;constraint:OnDelete:CASCADE"`
}

func (b Booking) GetID() uint    { return b.ID }
func (b *Booking) SetID(id uint) { b.ID = id }
