package models

import "time"

type Maintenance struct {
	ID              uint      `json:"maintenanceId" gorm:"primaryKey"`
	CarID           uint      `json:"carId" gorm:"index;not null"`
	MaintenanceDate time.Time `json:"maintenanceDate" gorm:"not null"`
	Description     string    `json:"description" gorm:"not null"`
	Cost            float64   `json:"cost" gorm:"type:decimal(10,2);not null"`

	Car *Car `json:"car,omitempty" gorm:"foreignKey:CarID;constraint:OnDelete:CASCADE"`
}

func (m Maintenance) GetID() uint    { return m.ID }
func (m *Maintenance) SetID(id uint) { m.ID = id }
