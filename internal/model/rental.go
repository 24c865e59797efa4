package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RentalStatus string

const (
	RentalActive   RentalStatus = "active"
	RentalReturned RentalStatus = "returned"
)

type Rental struct {
	ID            uuid.UUID `gorm:"type:char(36);primaryKey"`
	UserID        uuid.UUID `gorm:"type:char(36);not null;index"`
	BookID        uuid.UUID `gorm:"type:char(36);not null;index"`
	LibraryID     uuid.UUID `gorm:"type:char(36);not null;index"`
	Book          Book
	Library       Library
	Weeks         int          `gorm:"not null"`
	RentAmount    float64      `gorm:"type:decimal(10,2);not null"`
	DepositAmount float64      `gorm:"type:decimal(10,2);not null"`
	Status        RentalStatus `gorm:"size:20;not null;default:active"`
	DueAt         time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (r *Rental) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return
}
