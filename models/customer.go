package models

type Customer struct {
	ID        uint   `json:"customerId" gorm:"primaryKey"`
	FirstName string `json:"firstName" gorm:"not null"`
	LastName  string `json:"lastName" gorm:"not null"`
	Email     string `json:"email" gorm:"uniqueIndex;not null"`
	Phone     string `json:"phone" gorm:"not null"`
	Password  string `json:"-" gorm:"not null"`
	Role      string `json:"role" gorm:"type:varchar(20);default:'customer'"`
	Address   string `json:"address" gorm:"not null"`

	// Set at registration, cleared once the account is verified.
	VerificationCode *string `json:"-"`
	IsVerified       bool    `json:"isVerified" gorm:"default:false"`

	Reservations []Reservation `json:"reservations,omitempty" gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
	Bookings     []Booking     `json:"bookings,omitempty" gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
}

func (c Customer) GetID() uint    { return c.ID }
func (c *Customer) SetID(id uint) { c.ID = id }
