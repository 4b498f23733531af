package models

type Location struct {
	ID            uint   `json:"locationId" gorm:"primaryKey"`
	CarID         uint   `json:"carId" gorm:"index;not null"`
	LocationName  string `json:"locationName" gorm:"not null"`
	Address       string `json:"address" gorm:"not null"`
	ContactNumber string `json:"contactNumber" gorm:"not null"`
}

func (l Location) GetID() uint    { return l.ID }
func (l *Location) SetID(id uint) { l.ID = id }
