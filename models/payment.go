package models

import "time"

type Payment struct {
	ID            uint      `json:"paymentId" gorm:"primaryKey"`
	BookingID     uint      `json:"bookingId" gorm:"index;not null"`
	PaymentDate   time.Time `json:"paymentDate" gorm:"not null"`
	Amount        float64   `json:"amount" gorm:"type:decimal(10,2);not null"`
	PaymentMethod string    `json:"paymentMethod" gorm:"not null"`

	Booking *Booking `json:"booking,omitempty" gorm:"foreignKey:BookingID;constraint:OnDelete:CASCADE"`
}

func (p Payment) GetID() uint    { return p.ID }
func (p *Payment) SetID(id uint) { p.ID = id }
