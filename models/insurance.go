package models

import "time"

type Insurance struct {
	ID           uint      `json:"insuranceId" gorm:"primaryKey"`
	CarID        uint      `json:"carId" gorm:"index;not null"`
	Provider     string    `json:"provider" gorm:"not null"`
	PolicyNumber string    `json:"policyNumber" gorm:"not null"`
	StartDate    time.Time `json:"startDate" gorm:"not null"`
	EndDate      time.Time `json:"endDate" gorm:"not null"`

	Car *Car `json:"car,omitempty" gorm:"foreignKey:CarID;constraint:OnDelete:CASCADE"`
}

func (i Insurance) GetID() uint    { return i.ID }
func (i *Insurance) SetID(id uint) { i.ID = id }
