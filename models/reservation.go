package models

import "time"

type Reservation struct {
	ID              uint      `json:"reservationId" gorm:"primaryKey"`
	CustomerID      uint      `json:"customerId" gorm:"index;not null"`
	CarID           uint      `json:"carId" gorm:"index;not null"`
	ReservationDate time.Time `json:"reservationDate" gorm:"not null"`
	PickupDate      time.Time `json:"pickupDate" gorm:"not null"`
	ReturnDate      time.Time `json:"returnDate" gorm:"not null"`

	Customer *Customer `json:"customer,omitempty" gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
	Car      *Car      `json:"car,omitempty" gorm:"foreignKey:CarID;constraint:OnDelete:CASCADE"`
}

func (r Reservation) GetID() uint    { return r.ID }
func (r *Reservation) SetID(id uint) { r.ID = id }
